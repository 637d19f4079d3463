package revenue

import (
	"math"
	"testing"
)

func singlePlanInputs() Inputs {
	return Inputs{
		Plans: map[string]Plan{
			"Basic": {
				MonthlySellingPrice: 1000,
				MonthlyCOS:          400,
				SetupSellingPrice:   500,
				SetupCOS:            200,
				IncludedMessages:    5000,
				IncludedMinutes:     300,
			},
		},
		Distribution:   map[string]float64{"Basic": 1.0},
		AverageClients: 10,
		NewClients:     2,
		EndingClients:  11,
		PeriodMonths:   1,
	}
}

func TestComputeSubscriptionAndSetup(t *testing.T) {
	b := Compute(singlePlanInputs())

	if b.Subscription != 10000 {
		t.Errorf("Subscription = %v, expected 10000", b.Subscription)
	}
	if b.SetupFees != 1000 {
		t.Errorf("SetupFees = %v, expected 1000", b.SetupFees)
	}
	// Subscription COS folds in setup COS: 10*400 + 2*200.
	if b.COSSubscription != 4400 {
		t.Errorf("COSSubscription = %v, expected 4400", b.COSSubscription)
	}
	if b.TopUp != 0 {
		t.Errorf("TopUp = %v, expected 0 without top-up pricing", b.TopUp)
	}
	if b.GrossProfit != b.Total-b.COSTotal {
		t.Errorf("GrossProfit = %v, expected Total-COSTotal = %v", b.GrossProfit, b.Total-b.COSTotal)
	}
}

func TestComputePeriodLengthScaling(t *testing.T) {
	in := singlePlanInputs()
	in.PeriodMonths = 3

	b := Compute(in)
	if b.Subscription != 30000 {
		t.Errorf("Subscription = %v, expected 30000 for a quarter", b.Subscription)
	}
	// Setup fees are one-time and never scale with period length.
	if b.SetupFees != 1000 {
		t.Errorf("SetupFees = %v, expected 1000 regardless of period length", b.SetupFees)
	}
}

func TestComputeTopUps(t *testing.T) {
	in := singlePlanInputs()
	in.TopUp = TopUpPricing{
		UsersFraction:       0.5,
		UtilizationFraction: 0.1,
		CostPerMessage:      0.05,
		PricePerMessage:     0.08,
		CostPerMinute:       0.50,
		PricePerMinute:      0.80,
	}

	b := Compute(in)

	// buyers = 11 * 0.5 = 5.5
	// extra messages = 5.5 * 5000 * 0.1 = 2750; extra minutes = 5.5 * 300 * 0.1 = 165
	expectedRevenue := 2750*0.08 + 165*0.80
	expectedCOS := 2750*0.05 + 165*0.50
	if math.Abs(b.TopUp-expectedRevenue) > 1e-9 {
		t.Errorf("TopUp = %v, expected %v", b.TopUp, expectedRevenue)
	}
	if math.Abs(b.COSTopUp-expectedCOS) > 1e-9 {
		t.Errorf("COSTopUp = %v, expected %v", b.COSTopUp, expectedCOS)
	}
}

func TestComputeAdditivity(t *testing.T) {
	in := Inputs{
		Plans: map[string]Plan{
			"Basic":      {MonthlySellingPrice: 1000, MonthlyCOS: 400, SetupSellingPrice: 500, SetupCOS: 100, IncludedMessages: 5000, IncludedMinutes: 300},
			"Enterprise": {MonthlySellingPrice: 9000, MonthlyCOS: 3000, SetupSellingPrice: 4000, SetupCOS: 1500, IncludedMessages: 20000, IncludedMinutes: 1200},
		},
		Distribution:   map[string]float64{"Basic": 0.7, "Enterprise": 0.3},
		AverageClients: 42.5,
		NewClients:     5,
		EndingClients:  45,
		PeriodMonths:   1,
		TopUp: TopUpPricing{
			UsersFraction:       0.25,
			UtilizationFraction: 0.15,
			CostPerMessage:      0.05,
			PricePerMessage:     0.08,
			CostPerMinute:       0.50,
			PricePerMinute:      0.80,
		},
	}

	b := Compute(in)
	if b.Total != b.Subscription+b.SetupFees+b.TopUp {
		t.Errorf("Total = %v, expected exact sum %v", b.Total, b.Subscription+b.SetupFees+b.TopUp)
	}
	if b.COSTotal != b.COSSubscription+b.COSTopUp {
		t.Errorf("COSTotal = %v, expected exact sum %v", b.COSTotal, b.COSSubscription+b.COSTopUp)
	}
}

func TestComputePlanMissingFromDistribution(t *testing.T) {
	in := singlePlanInputs()
	in.Plans["Premium"] = Plan{MonthlySellingPrice: 100000, MonthlyCOS: 50000}

	withPremium := Compute(in)
	delete(in.Plans, "Premium")
	withoutPremium := Compute(in)

	if withPremium != withoutPremium {
		t.Errorf("plan without a distribution fraction changed the result: %+v vs %+v",
			withPremium, withoutPremium)
	}
}
