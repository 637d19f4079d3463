// Package config defines the data structures related to configuration and
// includes functions for loading, defaulting, and validating the config.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/askayyi/saas-forecast/pkg/constants"
	"github.com/askayyi/saas-forecast/pkg/opex"
	"github.com/askayyi/saas-forecast/pkg/staffing"
)

// DateTimeLayout is the format expected in config files and is also the
// output date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all inputs for one projection run.
type Configuration struct {
	StartDate      string  `yaml:"startDate"`
	EndDate        string  `yaml:"endDate"`
	Frequency      string  `yaml:"frequency"`
	InitialCash    float64 `yaml:"initialCash"`
	InitialClients int     `yaml:"initialClients"`

	ChurnRateAnnual float64      `yaml:"churnRateAnnual"`
	Growth          GrowthConfig `yaml:"growth"`

	Plans        map[string]PlanConfig `yaml:"plans"`
	Distribution map[string]float64    `yaml:"distribution"`
	TopUp        TopUpConfig           `yaml:"topUp"`

	Research      ResearchConfig `yaml:"research"`
	FundingRounds []RoundConfig  `yaml:"fundingRounds"`

	FixedStaff    map[string]FixedStaffConfig    `yaml:"fixedStaff"`
	VariableStaff map[string]VariableStaffConfig `yaml:"variableStaff"`
	Hours         HoursConfig                    `yaml:"hours"`

	Overheads               []OverheadConfig `yaml:"overheads"`
	Marketing               MarketingConfig  `yaml:"marketing"`
	HardwareCostPerEmployee float64          `yaml:"hardwareCostPerEmployee"`

	Loan LoanConfig `yaml:"loan"`

	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// GrowthConfig holds the 3-phase growth ramp plus the plateau rate.
type GrowthConfig struct {
	Phase1      PhaseConfig `yaml:"phase1"`
	Phase2      PhaseConfig `yaml:"phase2"`
	Phase3      PhaseConfig `yaml:"phase3"`
	PlateauRate float64     `yaml:"plateauRate"`
}

// PhaseConfig is one growth-ramp segment with 1-based month boundaries.
type PhaseConfig struct {
	StartMonth int     `yaml:"startMonth"`
	EndMonth   int     `yaml:"endMonth"`
	StartRate  float64 `yaml:"startRate"`
	EndRate    float64 `yaml:"endRate"`
}

// PlanConfig prices one subscription plan, including its monthly usage quota.
type PlanConfig struct {
	MonthlySellingPrice float64 `yaml:"monthlySellingPrice"`
	MonthlyCOS          float64 `yaml:"monthlyCos"`
	SetupSellingPrice   float64 `yaml:"setupSellingPrice"`
	SetupCOS            float64 `yaml:"setupCos"`
	IncludedMessages    float64 `yaml:"includedMessages"`
	IncludedMinutes     float64 `yaml:"includedMinutes"`
}

// TopUpConfig holds overage billing assumptions. The user and utilization
// shares are fractions, not percentages.
type TopUpConfig struct {
	UsersFraction       float64 `yaml:"usersFraction"`
	UtilizationFraction float64 `yaml:"utilizationFraction"`
	CostPerMessage      float64 `yaml:"costPerMessage"`
	PricePerMessage     float64 `yaml:"pricePerMessage"`
	CostPerMinute       float64 `yaml:"costPerMinute"`
	PricePerMinute      float64 `yaml:"pricePerMinute"`
}

// ResearchConfig holds the two R&D levers: a share of each funding round and
// a share of revenue.
type ResearchConfig struct {
	InvestmentPct float64 `yaml:"investmentPct"`
	RevenuePct    float64 `yaml:"revenuePct"`
}

// RoundConfig is one funding round, recognized at its 1-based trigger period.
type RoundConfig struct {
	Name          string  `yaml:"name"`
	PeriodTrigger int     `yaml:"periodTrigger"`
	Amount        float64 `yaml:"amount"`
}

// FixedStaffConfig describes a fixed role. BaseSalary is monthly.
type FixedStaffConfig struct {
	Headcount   int     `yaml:"headcount"`
	BaseSalary  float64 `yaml:"baseSalary"`
	AnnualRaise float64 `yaml:"annualRaise"`
}

// VariableStaffConfig describes a workload-sized role. Workload selects the
// driver: "onboarding" or "maintenance".
type VariableStaffConfig struct {
	Workload         string  `yaml:"workload"`
	InitialHeadcount int     `yaml:"initialHeadcount"`
	BaseSalary       float64 `yaml:"baseSalary"`
	AnnualRaise      float64 `yaml:"annualRaise"`
	Capacity         float64 `yaml:"capacity"`
}

// HoursConfig holds the per-plan onboarding/maintenance hour tables and
// their annual decrease factors.
type HoursConfig struct {
	OnboardingPerPlan   map[string]float64 `yaml:"onboardingPerPlan"`
	MaintenancePerPlan  map[string]float64 `yaml:"maintenancePerPlan"`
	OnboardingDecrease  map[string]float64 `yaml:"onboardingDecrease"`
	MaintenanceDecrease map[string]float64 `yaml:"maintenanceDecrease"`
}

// OverheadConfig is one recurring overhead line item.
type OverheadConfig struct {
	Name           string  `yaml:"name"`
	MonthlyCost    float64 `yaml:"monthlyCost"`
	AnnualIncrease float64 `yaml:"annualIncrease"`
}

// MarketingConfig selects the marketing spend mode and its parameters.
type MarketingConfig struct {
	Mode          string  `yaml:"mode"`
	MonthlyBudget float64 `yaml:"monthlyBudget"`
	PctOfRevenue  float64 `yaml:"pctOfRevenue"`
}

// LoanConfig describes the optional initial loan and its payback strategy.
type LoanConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Amount          float64 `yaml:"amount"`
	AnnualRatePct   float64 `yaml:"annualRatePct"`
	PaybackStrategy string  `yaml:"paybackStrategy"`
	PaybackStart    int     `yaml:"paybackStart"`
	PaybackEndDate  string  `yaml:"paybackEndDate"`
	FixedAmount     float64 `yaml:"fixedAmount"`
	PercentOfProfit float64 `yaml:"percentOfProfit"`
	LumpSum         float64 `yaml:"lumpSum"`
	LumpSumPaid     bool    `yaml:"lumpSumPaid"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Plan names and role names are user-defined map keys
// and are preserved exactly as written.
func LoadConfiguration(configPath string) (*Configuration, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	configuration, err := ParseConfiguration(raw)
	if err != nil {
		return nil, err
	}
	return configuration, nil
}

// ParseConfiguration decodes a YAML document into a Configuration and fills
// unset sections with the standard defaults.
func ParseConfiguration(raw []byte) (*Configuration, error) {
	var configuration Configuration
	if err := yaml.Unmarshal(raw, &configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// DefaultConfiguration returns the opinionated default projection inputs:
// one Basic plan, the standard overhead list, an executive fixed-staff pair,
// and onboarding/technical-support variable roles. Every call returns a
// fresh value so callers can mutate freely.
func DefaultConfiguration() *Configuration {
	conf := &Configuration{
		Frequency:       constants.FrequencyMonth,
		InitialCash:     500000,
		InitialClients:  10,
		ChurnRateAnnual: 10,
		Growth: GrowthConfig{
			Phase1:      PhaseConfig{StartMonth: 1, EndMonth: 3, StartRate: 3, EndRate: 5},
			Phase2:      PhaseConfig{StartMonth: 4, EndMonth: 8, StartRate: 6, EndRate: 15},
			Phase3:      PhaseConfig{StartMonth: 9, EndMonth: 12, StartRate: 16, EndRate: 25},
			PlateauRate: 10,
		},
		TopUp: TopUpConfig{
			CostPerMessage:  0.05,
			PricePerMessage: 0.08,
			CostPerMinute:   0.05,
			PricePerMinute:  0.08,
		},
		Marketing: MarketingConfig{
			Mode:          opex.MarketingModeFixed,
			MonthlyBudget: 120000,
		},
		Loan: LoanConfig{PaybackStrategy: constants.StrategyNone, PaybackStart: 1},
	}
	conf.ApplyDefaults()
	return conf
}

// ApplyDefaults fills any unset sections with the standard assumptions. Maps
// and slices are freshly allocated, never shared between configurations.
func (conf *Configuration) ApplyDefaults() {
	if conf.StartDate == "" {
		conf.StartDate = time.Now().Format(DateTimeLayout)
	}
	if conf.EndDate == "" {
		start, err := time.Parse(DateTimeLayout, conf.StartDate)
		if err != nil {
			start = time.Now()
		}
		conf.EndDate = start.AddDate(0, constants.MonthsPerYear, 0).Format(DateTimeLayout)
	}
	if conf.Frequency == "" {
		conf.Frequency = constants.FrequencyMonth
	}

	if conf.Plans == nil {
		conf.Plans = map[string]PlanConfig{
			"Basic": {
				MonthlySellingPrice: 5000,
				MonthlyCOS:          2000,
				SetupSellingPrice:   4000,
				SetupCOS:            3000,
				IncludedMessages:    5000,
				IncludedMinutes:     300,
			},
		}
	}
	if conf.Distribution == nil {
		conf.Distribution = map[string]float64{"Basic": 1.0}
	}

	if conf.FixedStaff == nil {
		conf.FixedStaff = map[string]FixedStaffConfig{
			"CEO - RCS Executive": {Headcount: 1, BaseSalary: 150000, AnnualRaise: 0.07},
			"CTO - RCS Executive": {Headcount: 1, BaseSalary: 130000, AnnualRaise: 0.07},
		}
	}
	if conf.VariableStaff == nil {
		conf.VariableStaff = map[string]VariableStaffConfig{
			"Onboarding Specialist": {
				Workload:    string(staffing.WorkloadOnboarding),
				BaseSalary:  3000,
				AnnualRaise: 0.05,
				Capacity:    160,
			},
			"Technical Support Programmers": {
				Workload:    string(staffing.WorkloadMaintenance),
				BaseSalary:  3500,
				AnnualRaise: 0.05,
				Capacity:    160,
			},
		}
	}

	if conf.Hours.OnboardingPerPlan == nil {
		conf.Hours.OnboardingPerPlan = map[string]float64{"Basic": 12}
	}
	if conf.Hours.MaintenancePerPlan == nil {
		conf.Hours.MaintenancePerPlan = map[string]float64{"Basic": 4}
	}
	if conf.Hours.OnboardingDecrease == nil {
		conf.Hours.OnboardingDecrease = map[string]float64{"Basic": 1.0}
	}
	if conf.Hours.MaintenanceDecrease == nil {
		conf.Hours.MaintenanceDecrease = map[string]float64{"Basic": 1.0}
	}

	if conf.Overheads == nil {
		conf.Overheads = []OverheadConfig{
			{Name: "Office Rental", MonthlyCost: 10000, AnnualIncrease: 5},
			{Name: "Communications", MonthlyCost: 3000, AnnualIncrease: 5},
			{Name: "Administration", MonthlyCost: 2000, AnnualIncrease: 5},
			{Name: "Insurance", MonthlyCost: 1500, AnnualIncrease: 5},
			{Name: "Logistics", MonthlyCost: 2500, AnnualIncrease: 5},
			{Name: "Transport", MonthlyCost: 4000, AnnualIncrease: 5},
			{Name: "Legal", MonthlyCost: 5000, AnnualIncrease: 5},
			{Name: "Sundry", MonthlyCost: 2000, AnnualIncrease: 5},
			{Name: "Software Subscriptions", MonthlyCost: 5000, AnnualIncrease: 5},
			{Name: "Software", MonthlyCost: 2000, AnnualIncrease: 5},
		}
	}

	if conf.Marketing.Mode == "" {
		conf.Marketing.Mode = opex.MarketingModeFixed
	}
	if conf.Loan.PaybackStrategy == "" {
		conf.Loan.PaybackStrategy = constants.StrategyNone
	}
	if conf.Loan.PaybackStart == 0 {
		conf.Loan.PaybackStart = 1
	}
}
