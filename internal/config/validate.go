package config

import (
	"fmt"
	"math"
	"time"

	"github.com/askayyi/saas-forecast/pkg/constants"
	"github.com/askayyi/saas-forecast/pkg/opex"
	"github.com/askayyi/saas-forecast/pkg/staffing"
)

// distributionTolerance allows for float drift when checking that the plan
// distribution sums to 1.
const distributionTolerance = 1e-6

// Validate checks the configuration for problems and returns a list of
// warnings. The projection still runs with warnings present; only unparseable
// inputs are treated as hard errors by the loader.
func (conf *Configuration) Validate() []string {
	var warnings []string

	if _, err := time.Parse(DateTimeLayout, conf.StartDate); err != nil {
		warnings = append(warnings, fmt.Sprintf("startDate %q does not parse as %s", conf.StartDate, DateTimeLayout))
	}
	if _, err := time.Parse(DateTimeLayout, conf.EndDate); err != nil {
		warnings = append(warnings, fmt.Sprintf("endDate %q does not parse as %s", conf.EndDate, DateTimeLayout))
	}

	switch conf.Frequency {
	case constants.FrequencyMonth, constants.FrequencyQuarter, constants.FrequencyYear:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown frequency %q, falling back to %q", conf.Frequency, constants.FrequencyMonth))
	}

	if conf.InitialClients < 0 {
		warnings = append(warnings, "initialClients is negative")
	}
	if conf.InitialCash < 0 {
		warnings = append(warnings, "initialCash is negative")
	}
	if conf.ChurnRateAnnual < 0 {
		warnings = append(warnings, "churnRateAnnual is negative")
	}

	if len(conf.Plans) == 0 {
		warnings = append(warnings, "no plans configured, revenue will be zero")
	}

	sum := 0.0
	for planName, fraction := range conf.Distribution {
		sum += fraction
		if _, ok := conf.Plans[planName]; !ok {
			warnings = append(warnings, fmt.Sprintf("distribution references unknown plan %q", planName))
		}
		if fraction < 0 {
			warnings = append(warnings, fmt.Sprintf("distribution fraction for plan %q is negative", planName))
		}
	}
	if len(conf.Distribution) > 0 && math.Abs(sum-1.0) > distributionTolerance {
		warnings = append(warnings, fmt.Sprintf("plan distribution sums to %.4f, expected 1.0", sum))
	}

	for name, role := range conf.VariableStaff {
		switch staffing.Workload(role.Workload) {
		case staffing.WorkloadOnboarding, staffing.WorkloadMaintenance:
		default:
			warnings = append(warnings, fmt.Sprintf("variable staff role %q has unknown workload %q", name, role.Workload))
		}
		if role.Capacity < 0 {
			warnings = append(warnings, fmt.Sprintf("variable staff role %q has negative capacity", name))
		}
	}

	switch conf.Marketing.Mode {
	case opex.MarketingModeFixed, opex.MarketingModePercentage:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown marketing mode %q", conf.Marketing.Mode))
	}

	if conf.Loan.Enabled {
		switch conf.Loan.PaybackStrategy {
		case constants.StrategyNone, constants.StrategyFixed, constants.StrategyPercentOfProfit,
			constants.StrategyPercentPlusLump, constants.StrategyLumpTimeline:
		default:
			warnings = append(warnings, fmt.Sprintf("unknown loan payback strategy %q", conf.Loan.PaybackStrategy))
		}
		if conf.Loan.Amount <= 0 {
			warnings = append(warnings, "loan is enabled but its amount is not positive")
		}
		if conf.Loan.PaybackEndDate != "" {
			if _, err := time.Parse(DateTimeLayout, conf.Loan.PaybackEndDate); err != nil {
				warnings = append(warnings, fmt.Sprintf("loan paybackEndDate %q does not parse as %s", conf.Loan.PaybackEndDate, DateTimeLayout))
			}
		}
	}

	for _, round := range conf.FundingRounds {
		if round.PeriodTrigger < 1 {
			warnings = append(warnings, fmt.Sprintf("funding round %q has period trigger %d, rounds trigger on 1-based periods", round.Name, round.PeriodTrigger))
		}
		if round.Amount < 0 {
			warnings = append(warnings, fmt.Sprintf("funding round %q has a negative amount", round.Name))
		}
	}

	return warnings
}
