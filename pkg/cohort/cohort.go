// Package cohort evolves the client base period over period and fans
// aggregate client counts out across the configured plan distribution.
package cohort

import (
	"math"
	"sort"

	"github.com/askayyi/saas-forecast/pkg/constants"
)

// Step holds the client movement for one reporting period.
type Step struct {
	Starting int
	New      int
	Churned  int
	Ending   int
}

// ChurnPerPeriod converts an annual churn percentage into the fractional
// churn applied each reporting period.
func ChurnPerPeriod(annualChurnPct float64, periodsPerYear int) float64 {
	return (annualChurnPct / constants.PercentageMultiplier) / float64(periodsPerYear)
}

// Advance computes one period of client movement. Organic acquisition only
// occurs for a positive growth rate; a declining rate never produces negative
// "new" clients, shrinkage happens through churn alone. The ending count is
// floored at zero.
func Advance(startClients int, growthRatePct, churnPerPeriod float64) Step {
	growthFactor := 1.0 + growthRatePct/constants.PercentageMultiplier

	organicNew := 0
	if growthFactor > 1.0 {
		organicNew = int(math.Round(float64(startClients) * (growthFactor - 1.0)))
	}
	churned := int(math.Round(float64(startClients) * churnPerPeriod))

	ending := startClients + organicNew - churned
	if ending < 0 {
		ending = 0
	}

	return Step{
		Starting: startClients,
		New:      organicNew,
		Churned:  churned,
		Ending:   ending,
	}
}

// Average returns the mean client count over a period, used for subscription
// revenue recognition.
func (s Step) Average() float64 {
	return (float64(s.Starting) + float64(s.Ending)) / 2.0
}

// SplitByPlan fans a total client count out across the plan distribution.
// Fractional clients are permitted; rounding happens only at presentation
// boundaries.
func SplitByPlan(total float64, distribution map[string]float64) map[string]float64 {
	split := make(map[string]float64, len(distribution))
	for plan, fraction := range distribution {
		split[plan] = total * fraction
	}
	return split
}

// PlanNames returns the distribution's plan names in sorted order so callers
// can iterate deterministically.
func PlanNames(distribution map[string]float64) []string {
	names := make([]string, 0, len(distribution))
	for name := range distribution {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
