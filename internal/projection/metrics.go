package projection

import (
	"time"

	"github.com/askayyi/saas-forecast/pkg/constants"
	"github.com/askayyi/saas-forecast/pkg/finmath"
)

const daysPerYear = 365.0

// Metrics are the headline investor figures for one projection, all expressed
// as percentages.
type Metrics struct {
	CAGRRevenue float64 `json:"cagrRevenue" yaml:"cagrRevenue"`
	IRR         float64 `json:"irr" yaml:"irr"`
	ROI         float64 `json:"roi" yaml:"roi"`
}

// ComputeSaaSMetrics fills the per-row margin and ARPU columns in place and
// returns the headline metrics. The cash-flow series for IRR/ROI starts with
// the initial cash as the invested outflow, followed by each period's net
// income plus financing inflows.
func ComputeSaaSMetrics(ledger Ledger, start, end time.Time, initialCash float64) Metrics {
	if len(ledger) == 0 {
		return Metrics{}
	}

	for i := range ledger {
		row := &ledger[i]
		if row.RevenueTotal != 0 {
			row.GrossMarginPct = row.GrossProfit / row.RevenueTotal * constants.PercentageMultiplier
			row.EBITDAMarginPct = row.EBITDA / row.RevenueTotal * constants.PercentageMultiplier
			row.NetMarginPct = row.NetIncome / row.RevenueTotal * constants.PercentageMultiplier
		}
		if row.ClientsEnding != 0 {
			row.ARPU = row.RevenueTotal / float64(row.ClientsEnding)
		}
	}

	years := 1.0
	if days := end.Sub(start).Hours() / 24; days > 0 {
		years = days / daysPerYear
	}

	startRevenue, endRevenue := 0.0, 0.0
	if len(ledger) > 1 {
		startRevenue = ledger[0].RevenueTotal
		endRevenue = ledger[len(ledger)-1].RevenueTotal
	}
	cagr := finmath.CAGR(startRevenue, endRevenue, years)

	flows := make([]float64, 0, len(ledger)+1)
	flows = append(flows, -initialCash)
	for _, row := range ledger {
		flows = append(flows, row.NetIncome+row.FundingInflow+row.LoanInflow)
	}

	irr, ok := finmath.IRR(flows)
	if !ok {
		irr = 0
	}
	roi, ok := finmath.ROI(flows)
	if !ok {
		roi = 0
	}

	return Metrics{
		CAGRRevenue: cagr * constants.PercentageMultiplier,
		IRR:         irr * constants.PercentageMultiplier,
		ROI:         roi * constants.PercentageMultiplier,
	}
}
