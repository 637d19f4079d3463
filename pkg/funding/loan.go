package funding

import (
	"math"

	"github.com/askayyi/saas-forecast/pkg/constants"
	"github.com/askayyi/saas-forecast/pkg/finmath"
)

// lumpTolerance decides whether a partial lump payment still counts as
// paying the lump in full.
const lumpTolerance = 1e-9

// LoanState is the mutable loan ledger carried across periods. Balance never
// goes negative; LumpSumPaid latches once the configured lump sum has been
// paid in full.
type LoanState struct {
	Balance     float64
	LumpSumPaid bool
}

// PaybackPlan selects and parameterizes one payback strategy. EndPeriod only
// applies to the Lump + Timeline strategy and holds a resolved 1-based period
// index (FarFuturePeriod when no end date was configured).
type PaybackPlan struct {
	Strategy        string
	StartPeriod     int
	EndPeriod       int
	FixedAmount     float64
	PercentOfProfit float64
	LumpSum         float64
}

// PaybackResult reports a period's payback application: the total payment and
// the net income / funding inflow remaining after it.
type PaybackResult struct {
	Payment       float64
	NetIncome     float64
	FundingInflow float64
}

// AccrueInterest adds one period of interest to the balance and returns the
// amount accrued. Interest compounds before any payback in the same period.
func (s *LoanState) AccrueInterest(annualRatePct float64, periodMonths int) float64 {
	if s.Balance <= 0 {
		return 0
	}
	interest := s.Balance * (annualRatePct / constants.PercentageMultiplier / constants.MonthsPerYear) * float64(periodMonths)
	s.Balance += interest
	return interest
}

// ApplyPayback runs the plan's strategy for the given 1-based period. Every
// payment is capped by the outstanding balance and (except the hybrid lump,
// which draws from the funding inflow) by non-negative net income, so the
// balance is never driven below zero.
func (s *LoanState) ApplyPayback(plan PaybackPlan, periodIndex, periodMonths int,
	netIncome, fundingInflow float64) PaybackResult {

	result := PaybackResult{NetIncome: netIncome, FundingInflow: fundingInflow}
	if s.Balance <= 0 || periodIndex < plan.StartPeriod {
		return result
	}

	switch plan.Strategy {
	case constants.StrategyFixed:
		if plan.FixedAmount <= 0 {
			break
		}
		payment := finmath.Min(plan.FixedAmount*float64(periodMonths), finmath.Min(s.Balance, math.Max(0, result.NetIncome)))
		s.Balance -= payment
		result.Payment += payment
		result.NetIncome -= payment

	case constants.StrategyPercentOfProfit:
		if plan.PercentOfProfit <= 0 || result.NetIncome <= 0 {
			break
		}
		portion := finmath.Min(finmath.ApplyPercentage(result.NetIncome, plan.PercentOfProfit), s.Balance)
		s.Balance -= portion
		result.Payment += portion
		result.NetIncome -= portion

	case constants.StrategyPercentPlusLump:
		// The lump draws from the period's funding inflow, not from profit.
		if !s.LumpSumPaid && plan.LumpSum > 0 {
			payNow := finmath.Min(plan.LumpSum, finmath.Min(s.Balance, result.FundingInflow))
			s.Balance -= payNow
			result.Payment += payNow
			result.FundingInflow -= payNow
			if math.Abs(payNow-plan.LumpSum) < lumpTolerance {
				s.LumpSumPaid = true
			}
		}
		if plan.PercentOfProfit > 0 && result.NetIncome > 0 && s.Balance > 0 {
			portion := finmath.Min(finmath.ApplyPercentage(result.NetIncome, plan.PercentOfProfit), s.Balance)
			s.Balance -= portion
			result.Payment += portion
			result.NetIncome -= portion
		}

	case constants.StrategyLumpTimeline:
		if periodIndex > plan.EndPeriod {
			break
		}
		if periodIndex == plan.StartPeriod && !s.LumpSumPaid && plan.LumpSum > 0 {
			payment := finmath.Min(plan.LumpSum, finmath.Min(s.Balance, math.Max(0, result.NetIncome)))
			s.Balance -= payment
			result.Payment += payment
			result.NetIncome -= payment
			if math.Abs(payment-plan.LumpSum) < lumpTolerance {
				s.LumpSumPaid = true
			}
		}
		// Amortize the remaining balance evenly across remaining periods.
		periodsLeft := plan.EndPeriod - periodIndex + 1
		if periodsLeft > 0 {
			installment := s.Balance / float64(periodsLeft)
			payment := finmath.Min(installment, finmath.Min(s.Balance, math.Max(0, result.NetIncome)))
			s.Balance -= payment
			result.Payment += payment
			result.NetIncome -= payment
		}
	}

	return result
}
