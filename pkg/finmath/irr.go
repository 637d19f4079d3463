package finmath

import "math"

// IRR search bounds and convergence parameters for the bisection fallback.
const (
	irrMinRate       = -0.999999
	irrMaxRate       = 10.0
	irrMaxIterations = 1000
	irrNPVTolerance  = 1e-2
)

// NPV computes the net present value of the cash flows at the given periodic
// rate. Flow index 0 is undiscounted.
func NPV(rate float64, cashFlows []float64) float64 {
	npv := 0.0
	for i, cf := range cashFlows {
		denom := math.Pow(1+rate, float64(i))
		if denom == 0 {
			denom = 1e-9
		}
		npv += cf / denom
	}
	return npv
}

// IRR computes the internal rate of return for the given cash flows by
// bisection. The second return value is false when the flows have no sign
// change or the iteration budget is exhausted before |NPV| converges.
func IRR(cashFlows []float64) (float64, bool) {
	hasNegative := false
	hasPositive := false
	for _, cf := range cashFlows {
		if cf < 0 {
			hasNegative = true
		}
		if cf > 0 {
			hasPositive = true
		}
	}
	if !hasNegative || !hasPositive {
		return 0, false
	}

	minRate := irrMinRate
	maxRate := irrMaxRate
	for i := 0; i < irrMaxIterations; i++ {
		midRate := (minRate + maxRate) / 2
		npv := NPV(midRate, cashFlows)
		if math.Abs(npv) < irrNPVTolerance {
			return midRate, true
		}
		if npv > 0 {
			minRate = midRate
		} else {
			maxRate = midRate
		}
	}
	return 0, false
}

// ROI computes the simple return on investment where flow index 0 is the
// initial investment (negative) and the remaining flows are period returns.
// The second return value is false for an empty flow vector.
func ROI(cashFlows []float64) (float64, bool) {
	if len(cashFlows) < 1 {
		return 0, false
	}
	initialInvestment := 0.0
	if cashFlows[0] < 0 {
		initialInvestment = -cashFlows[0]
	}
	finalValue := 0.0
	for _, cf := range cashFlows[1:] {
		finalValue += cf
	}
	if initialInvestment == 0 {
		return 0, true
	}
	return (finalValue - initialInvestment) / initialInvestment, true
}

// CAGR computes the compound annual growth rate between two endpoint values
// over the given number of years. Returns 0 when either endpoint is
// non-positive or the span is non-positive.
func CAGR(startValue, endValue, years float64) float64 {
	if startValue <= 0 || endValue <= 0 || years <= 0 {
		return 0
	}
	return math.Pow(endValue/startValue, 1/years) - 1
}
