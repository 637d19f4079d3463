// Package revenue computes per-period subscription, setup-fee, and top-up
// revenue and cost of service across the plan catalogue.
package revenue

import (
	"sort"
)

// Plan describes the pricing of one subscription plan. The included quota is
// the monthly message/minute allowance before top-ups apply.
type Plan struct {
	MonthlySellingPrice float64
	MonthlyCOS          float64
	SetupSellingPrice   float64
	SetupCOS            float64
	IncludedMessages    float64
	IncludedMinutes     float64
}

// TopUpPricing holds the overage billing assumptions. UsersFraction is the
// share of ending clients buying top-ups; UtilizationFraction is the share of
// the included quota they consume on top of it.
type TopUpPricing struct {
	UsersFraction       float64
	UtilizationFraction float64
	CostPerMessage      float64
	PricePerMessage     float64
	CostPerMinute       float64
	PricePerMinute      float64
}

// Inputs carries everything the engine needs for one period.
type Inputs struct {
	Plans          map[string]Plan
	Distribution   map[string]float64
	AverageClients float64
	NewClients     float64
	EndingClients  float64
	PeriodMonths   int
	TopUp          TopUpPricing
}

// Breakdown is the per-period revenue and cost result. COSSubscription folds
// setup COS in, matching the reporting convention; COSTotal adds top-up COS.
type Breakdown struct {
	Subscription    float64
	SetupFees       float64
	TopUp           float64
	Total           float64
	COSSubscription float64
	COSTopUp        float64
	COSTotal        float64
	GrossProfit     float64
}

// Compute produces the revenue/COS breakdown for one period. Plans are
// weighted by their distribution fraction; plans absent from the
// distribution contribute nothing. Setup fees are recognized once for the
// period's newly acquired clients and are not scaled by period length.
func Compute(in Inputs) Breakdown {
	var b Breakdown
	periodMonths := float64(in.PeriodMonths)

	for _, name := range sortedPlanNames(in.Plans) {
		plan := in.Plans[name]
		fraction := in.Distribution[name]

		avgOnPlan := in.AverageClients * fraction
		b.Subscription += avgOnPlan * plan.MonthlySellingPrice * periodMonths
		b.COSSubscription += avgOnPlan * plan.MonthlyCOS * periodMonths

		newOnPlan := in.NewClients * fraction
		b.SetupFees += newOnPlan * plan.SetupSellingPrice
		b.COSSubscription += newOnPlan * plan.SetupCOS

		buyers := in.EndingClients * fraction * in.TopUp.UsersFraction
		extraMessages := buyers * plan.IncludedMessages * periodMonths * in.TopUp.UtilizationFraction
		extraMinutes := buyers * plan.IncludedMinutes * periodMonths * in.TopUp.UtilizationFraction

		b.TopUp += extraMessages*in.TopUp.PricePerMessage + extraMinutes*in.TopUp.PricePerMinute
		b.COSTopUp += extraMessages*in.TopUp.CostPerMessage + extraMinutes*in.TopUp.CostPerMinute
	}

	b.Total = b.Subscription + b.SetupFees + b.TopUp
	b.COSTotal = b.COSSubscription + b.COSTopUp
	b.GrossProfit = b.Total - b.COSTotal
	return b
}

func sortedPlanNames(plans map[string]Plan) []string {
	names := make([]string, 0, len(plans))
	for name := range plans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
