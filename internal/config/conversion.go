package config

import (
	"fmt"
	"time"

	"github.com/askayyi/saas-forecast/pkg/constants"
	"github.com/askayyi/saas-forecast/pkg/funding"
	"github.com/askayyi/saas-forecast/pkg/growth"
	"github.com/askayyi/saas-forecast/pkg/opex"
	"github.com/askayyi/saas-forecast/pkg/periods"
	"github.com/askayyi/saas-forecast/pkg/revenue"
	"github.com/askayyi/saas-forecast/pkg/staffing"
)

// ParseDates returns the projection start and end dates.
func (conf *Configuration) ParseDates() (time.Time, time.Time, error) {
	start, err := time.Parse(DateTimeLayout, conf.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse startDate %q: %w", conf.StartDate, err)
	}
	end, err := time.Parse(DateTimeLayout, conf.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse endDate %q: %w", conf.EndDate, err)
	}
	return start, end, nil
}

// GrowthCurve converts the growth section into the engine's curve type.
func (conf *Configuration) GrowthCurve() growth.Curve {
	return growth.Curve{
		Phase1:      phase(conf.Growth.Phase1),
		Phase2:      phase(conf.Growth.Phase2),
		Phase3:      phase(conf.Growth.Phase3),
		PlateauRate: conf.Growth.PlateauRate,
	}
}

func phase(p PhaseConfig) growth.Phase {
	return growth.Phase{
		StartMonth: p.StartMonth,
		EndMonth:   p.EndMonth,
		StartRate:  p.StartRate,
		EndRate:    p.EndRate,
	}
}

// RevenuePlans converts the plan table into the engine's pricing type.
func (conf *Configuration) RevenuePlans() map[string]revenue.Plan {
	plans := make(map[string]revenue.Plan, len(conf.Plans))
	for name, plan := range conf.Plans {
		plans[name] = revenue.Plan{
			MonthlySellingPrice: plan.MonthlySellingPrice,
			MonthlyCOS:          plan.MonthlyCOS,
			SetupSellingPrice:   plan.SetupSellingPrice,
			SetupCOS:            plan.SetupCOS,
			IncludedMessages:    plan.IncludedMessages,
			IncludedMinutes:     plan.IncludedMinutes,
		}
	}
	return plans
}

// TopUpPricing converts the top-up section into the engine's pricing type.
func (conf *Configuration) TopUpPricing() revenue.TopUpPricing {
	return revenue.TopUpPricing{
		UsersFraction:       conf.TopUp.UsersFraction,
		UtilizationFraction: conf.TopUp.UtilizationFraction,
		CostPerMessage:      conf.TopUp.CostPerMessage,
		PricePerMessage:     conf.TopUp.PricePerMessage,
		CostPerMinute:       conf.TopUp.CostPerMinute,
		PricePerMinute:      conf.TopUp.PricePerMinute,
	}
}

// FixedRoles converts the fixed-staff table into the engine's role type.
func (conf *Configuration) FixedRoles() map[string]staffing.FixedRole {
	roles := make(map[string]staffing.FixedRole, len(conf.FixedStaff))
	for name, role := range conf.FixedStaff {
		roles[name] = staffing.FixedRole{
			Headcount:   role.Headcount,
			BaseSalary:  role.BaseSalary,
			AnnualRaise: role.AnnualRaise,
		}
	}
	return roles
}

// VariableRoles converts the variable-staff table into the engine's role type.
// Unknown workload names default to onboarding; Validate flags them.
func (conf *Configuration) VariableRoles() map[string]staffing.VariableRole {
	roles := make(map[string]staffing.VariableRole, len(conf.VariableStaff))
	for name, role := range conf.VariableStaff {
		workload := staffing.Workload(role.Workload)
		if workload != staffing.WorkloadMaintenance {
			workload = staffing.WorkloadOnboarding
		}
		roles[name] = staffing.VariableRole{
			Workload:         workload,
			InitialHeadcount: role.InitialHeadcount,
			BaseSalary:       role.BaseSalary,
			AnnualRaise:      role.AnnualRaise,
			Capacity:         role.Capacity,
		}
	}
	return roles
}

// HoursTable converts the workload-hours section into the engine's table type.
func (conf *Configuration) HoursTable() staffing.HoursTable {
	return staffing.HoursTable{
		OnboardingHours:     conf.Hours.OnboardingPerPlan,
		MaintenanceHours:    conf.Hours.MaintenancePerPlan,
		OnboardingDecrease:  conf.Hours.OnboardingDecrease,
		MaintenanceDecrease: conf.Hours.MaintenanceDecrease,
	}
}

// OverheadItems converts the overhead list into the engine's line-item type.
func (conf *Configuration) OverheadItems() []opex.OverheadItem {
	items := make([]opex.OverheadItem, 0, len(conf.Overheads))
	for _, item := range conf.Overheads {
		items = append(items, opex.OverheadItem{
			Name:           item.Name,
			MonthlyCost:    item.MonthlyCost,
			AnnualIncrease: item.AnnualIncrease,
		})
	}
	return items
}

// MarketingPlan converts the marketing section into the engine's type.
func (conf *Configuration) MarketingPlan() opex.Marketing {
	return opex.Marketing{
		Mode:          conf.Marketing.Mode,
		MonthlyBudget: conf.Marketing.MonthlyBudget,
		PctOfRevenue:  conf.Marketing.PctOfRevenue,
	}
}

// Rounds converts the funding-round list into the engine's type.
func (conf *Configuration) Rounds() []funding.Round {
	rounds := make([]funding.Round, 0, len(conf.FundingRounds))
	for _, round := range conf.FundingRounds {
		rounds = append(rounds, funding.Round{
			Name:          round.Name,
			PeriodTrigger: round.PeriodTrigger,
			Amount:        round.Amount,
		})
	}
	return rounds
}

// PaybackPlan resolves the loan section into the engine's payback plan. The
// end date, when set, is resolved to a 1-based period index against the
// projection start; otherwise the timeline runs to the far-future sentinel.
func (conf *Configuration) PaybackPlan(projectionStart time.Time) funding.PaybackPlan {
	endPeriod := constants.FarFuturePeriod
	if conf.Loan.PaybackEndDate != "" {
		if endDate, err := time.Parse(DateTimeLayout, conf.Loan.PaybackEndDate); err == nil {
			if resolved := periods.IndexForDate(endDate, projectionStart, conf.Frequency); resolved > 0 {
				endPeriod = resolved
			}
		}
	}
	return funding.PaybackPlan{
		Strategy:        conf.Loan.PaybackStrategy,
		StartPeriod:     conf.Loan.PaybackStart,
		EndPeriod:       endPeriod,
		FixedAmount:     conf.Loan.FixedAmount,
		PercentOfProfit: conf.Loan.PercentOfProfit,
		LumpSum:         conf.Loan.LumpSum,
	}
}

// InitialLoanState seeds the loan ledger from configuration. A disabled loan
// starts with a zero balance and never accrues or pays anything.
func (conf *Configuration) InitialLoanState() funding.LoanState {
	if !conf.Loan.Enabled {
		return funding.LoanState{}
	}
	return funding.LoanState{
		Balance:     conf.Loan.Amount,
		LumpSumPaid: conf.Loan.LumpSumPaid,
	}
}
