// Package opex computes overhead, hardware, marketing, and R&D operating
// expenses for a reporting period.
package opex

import (
	"github.com/askayyi/saas-forecast/pkg/finmath"
)

// OverheadItem is one recurring facility/admin cost line. AnnualIncrease is a
// percentage compounded once per elapsed year.
type OverheadItem struct {
	Name           string
	MonthlyCost    float64
	AnnualIncrease float64
}

// Marketing modes: a fixed monthly budget with a percentage override, or a
// pure percentage of revenue.
const (
	MarketingModeFixed      = "fixed"
	MarketingModePercentage = "percentage"
)

// Marketing holds the marketing-spend configuration.
type Marketing struct {
	Mode          string
	MonthlyBudget float64
	PctOfRevenue  float64
}

// OverheadCost sums all overhead line items for one period with annual
// inflation applied.
func OverheadCost(items []OverheadItem, yearsElapsed, periodMonths int) float64 {
	total := 0.0
	for _, item := range items {
		inflatedMonthly := finmath.CompoundGrowth(item.MonthlyCost, item.AnnualIncrease/100.0, yearsElapsed)
		total += inflatedMonthly * float64(periodMonths)
	}
	return total
}

// HardwareCost charges a per-employee hardware allowance across the full
// headcount for the period.
func HardwareCost(totalHeadcount int, costPerEmployee float64, periodMonths int) float64 {
	return float64(totalHeadcount) * costPerEmployee * float64(periodMonths)
}

// MarketingSpend computes the period's marketing cost. In fixed mode the
// percentage-of-revenue figure only wins once it exceeds 1.2x the scaled
// budget, protecting against budget starvation under fast revenue growth.
func MarketingSpend(m Marketing, revenue float64, periodMonths int) float64 {
	pctBased := finmath.ApplyPercentage(revenue, m.PctOfRevenue)
	if m.Mode == MarketingModeFixed {
		budgetBased := m.MonthlyBudget * float64(periodMonths)
		if pctBased > budgetBased*1.2 {
			return pctBased
		}
		return budgetBased
	}
	return pctBased
}

// ResearchSpend is the revenue-linked R&D expense. The percentage-of-funding
// R&D cut is applied separately at funding-round recognition.
func ResearchSpend(revenue, pctOfRevenue float64) float64 {
	return finmath.ApplyPercentage(revenue, pctOfRevenue)
}
