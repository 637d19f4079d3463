package opex

import (
	"math"
	"testing"
)

func TestOverheadCost(t *testing.T) {
	items := []OverheadItem{
		{Name: "Office Rental", MonthlyCost: 10000, AnnualIncrease: 5},
		{Name: "Insurance", MonthlyCost: 1500, AnnualIncrease: 5},
	}

	tests := []struct {
		name         string
		yearsElapsed int
		periodMonths int
		expected     float64
	}{
		{name: "First year monthly", yearsElapsed: 0, periodMonths: 1, expected: 11500},
		{name: "First year yearly period", yearsElapsed: 0, periodMonths: 12, expected: 138000},
		{name: "Second year inflated", yearsElapsed: 1, periodMonths: 1, expected: 11500 * 1.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverheadCost(items, tt.yearsElapsed, tt.periodMonths)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("OverheadCost() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestHardwareCost(t *testing.T) {
	if got := HardwareCost(8, 500, 3); got != 12000 {
		t.Errorf("HardwareCost(8, 500, 3) = %v, expected 12000", got)
	}
	if got := HardwareCost(0, 500, 1); got != 0 {
		t.Errorf("HardwareCost(0, 500, 1) = %v, expected 0", got)
	}
}

func TestMarketingSpend(t *testing.T) {
	tests := []struct {
		name      string
		marketing Marketing
		revenue   float64
		months    int
		expected  float64
	}{
		{
			name:      "Fixed mode uses budget when percentage is below threshold",
			marketing: Marketing{Mode: MarketingModeFixed, MonthlyBudget: 120000, PctOfRevenue: 5},
			revenue:   1000000,
			months:    1,
			expected:  120000, // pct = 50000 < 1.2 * 120000
		},
		{
			name:      "Fixed mode switches to percentage past 1.2x budget",
			marketing: Marketing{Mode: MarketingModeFixed, MonthlyBudget: 100000, PctOfRevenue: 5},
			revenue:   3000000,
			months:    1,
			expected:  150000, // pct = 150000 > 1.2 * 100000
		},
		{
			name:      "Fixed mode keeps budget just under the 1.2x threshold",
			marketing: Marketing{Mode: MarketingModeFixed, MonthlyBudget: 100000, PctOfRevenue: 3},
			revenue:   3000000,
			months:    1,
			expected:  100000, // pct = 90000 does not exceed 1.2 * 100000
		},
		{
			name:      "Fixed budget scales with period length",
			marketing: Marketing{Mode: MarketingModeFixed, MonthlyBudget: 100000, PctOfRevenue: 0},
			revenue:   0,
			months:    3,
			expected:  300000,
		},
		{
			name:      "Percentage mode ignores budget",
			marketing: Marketing{Mode: MarketingModePercentage, MonthlyBudget: 999999, PctOfRevenue: 10},
			revenue:   500000,
			months:    1,
			expected:  50000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarketingSpend(tt.marketing, tt.revenue, tt.months)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("MarketingSpend() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestResearchSpend(t *testing.T) {
	if got := ResearchSpend(200000, 2.5); math.Abs(got-5000) > 1e-9 {
		t.Errorf("ResearchSpend(200000, 2.5) = %v, expected 5000", got)
	}
}
