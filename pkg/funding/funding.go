// Package funding tracks funding-round cash injections and the loan ledger:
// interest accrual and the configured payback strategy.
package funding

// Round is a single funding-round injection. PeriodTrigger is the 1-based
// period index at which the cash is recognized, exactly once.
type Round struct {
	Name          string
	PeriodTrigger int
	Amount        float64
}

// InflowForPeriod sums the cash from every round triggering at the given
// 1-based period index. Rounds sharing a trigger all fire in that period.
func InflowForPeriod(rounds []Round, periodIndex int) float64 {
	inflow := 0.0
	for _, round := range rounds {
		if round.PeriodTrigger == periodIndex {
			inflow += round.Amount
		}
	}
	return inflow
}
