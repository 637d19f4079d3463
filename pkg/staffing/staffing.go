// Package staffing computes fixed-staff payroll and workload-driven variable
// staffing costs, including one-off hiring and termination charges when the
// required variable headcount changes between periods.
package staffing

import (
	"math"
	"sort"

	"github.com/askayyi/saas-forecast/pkg/constants"
	"github.com/askayyi/saas-forecast/pkg/finmath"
)

// Workload names the driver for a variable role's required headcount.
type Workload string

const (
	// WorkloadOnboarding sizes a role from onboarding hours for new clients.
	WorkloadOnboarding Workload = "onboarding"

	// WorkloadMaintenance sizes a role from recurring maintenance hours for
	// the active client base.
	WorkloadMaintenance Workload = "maintenance"
)

// FixedRole is a staff role with a configured headcount. BaseSalary is
// monthly; AnnualRaise is fractional and compounds once per elapsed year.
type FixedRole struct {
	Headcount   int
	BaseSalary  float64
	AnnualRaise float64
}

// VariableRole is a staff role whose headcount is recomputed each period from
// workload hours divided by per-FTE capacity. InitialHeadcount seeds the
// hire/terminate comparison for the first period.
type VariableRole struct {
	Workload         Workload
	InitialHeadcount int
	BaseSalary       float64
	AnnualRaise      float64
	Capacity         float64
}

// HoursTable holds the per-plan workload assumptions. Decrease factors
// compound annually, modeling efficiency gains.
type HoursTable struct {
	OnboardingHours     map[string]float64
	MaintenanceHours    map[string]float64
	OnboardingDecrease  map[string]float64
	MaintenanceDecrease map[string]float64
}

// VariableOutcome is the variable-staffing result for one period. Headcounts
// is a fresh map; the caller carries it into the next period.
type VariableOutcome struct {
	Cost             float64
	TotalHeadcount   int
	Headcounts       map[string]int
	Hires            int
	Terminations     int
	OnboardingHours  float64
	MaintenanceHours float64
}

// FixedCost returns the payroll cost and total headcount of all fixed roles
// for one period, applying the annual raise for each elapsed year.
func FixedCost(roles map[string]FixedRole, yearsElapsed, periodMonths int) (float64, int) {
	cost := 0.0
	headcount := 0
	for _, name := range sortedRoleNames(roles) {
		role := roles[name]
		salaryNow := finmath.CompoundGrowth(role.BaseSalary, role.AnnualRaise, yearsElapsed)
		cost += salaryNow * float64(periodMonths) * float64(role.Headcount)
		headcount += role.Headcount
	}
	return cost, headcount
}

// OnboardingHours sums the hours needed to onboard the period's new clients,
// per plan, with the annual decrease factor applied.
func OnboardingHours(newByPlan map[string]float64, table HoursTable, yearsElapsed int) float64 {
	total := 0.0
	for plan, newClients := range newByPlan {
		baseHours, ok := table.OnboardingHours[plan]
		if !ok {
			continue
		}
		factor := decreaseFactor(table.OnboardingDecrease, plan)
		total += newClients * baseHours * math.Pow(factor, float64(yearsElapsed))
	}
	return total
}

// MaintenanceHours sums the recurring support hours for the period's ending
// client base, per plan, scaled by the period length.
func MaintenanceHours(endingByPlan map[string]float64, table HoursTable, yearsElapsed, periodMonths int) float64 {
	total := 0.0
	for plan, endingClients := range endingByPlan {
		baseHours, ok := table.MaintenanceHours[plan]
		if !ok {
			continue
		}
		factor := decreaseFactor(table.MaintenanceDecrease, plan)
		adjusted := baseHours * math.Pow(factor, float64(yearsElapsed))
		total += endingClients * adjusted * float64(periodMonths)
	}
	return total
}

// VariableCost sizes every variable role from its workload, charges salary
// for the required headcount, and adds one-off hire/terminate costs for the
// delta against the previous period's headcount. Required headcount is
// recomputed, never accumulated: ceil(hours/capacity) when capacity is
// configured, otherwise a single FTE.
func VariableCost(roles map[string]VariableRole, previous map[string]int,
	onboardingHours, maintenanceHours float64, yearsElapsed, periodMonths int) VariableOutcome {

	out := VariableOutcome{
		Headcounts:       make(map[string]int, len(roles)),
		OnboardingHours:  onboardingHours,
		MaintenanceHours: maintenanceHours,
	}

	for _, name := range sortedVariableRoleNames(roles) {
		role := roles[name]
		salaryNow := finmath.CompoundGrowth(role.BaseSalary, role.AnnualRaise, yearsElapsed)

		required := 1
		if role.Capacity > 0 {
			hours := onboardingHours
			if role.Workload == WorkloadMaintenance {
				hours = maintenanceHours
			}
			required = int(math.Ceil(hours / role.Capacity))
		}

		salaryCost := salaryNow * float64(periodMonths) * float64(required)
		current := previous[name]
		switch {
		case required > current:
			hires := required - current
			out.Cost += salaryCost + constants.HireCostPerEmployee*float64(hires)
			out.Hires += hires
		case required < current:
			terminations := current - required
			out.Cost += salaryCost + constants.TerminateCostPerEmployee*float64(terminations)
			out.Terminations += terminations
		default:
			out.Cost += salaryCost
		}

		out.Headcounts[name] = required
		out.TotalHeadcount += required
	}

	return out
}

// InitialHeadcounts builds the headcount state seeded from each role's
// configured initial headcount.
func InitialHeadcounts(roles map[string]VariableRole) map[string]int {
	headcounts := make(map[string]int, len(roles))
	for name, role := range roles {
		headcounts[name] = role.InitialHeadcount
	}
	return headcounts
}

func decreaseFactor(factors map[string]float64, plan string) float64 {
	if factor, ok := factors[plan]; ok {
		return factor
	}
	return 1.0
}

func sortedRoleNames(roles map[string]FixedRole) []string {
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedVariableRoleNames(roles map[string]VariableRole) []string {
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
