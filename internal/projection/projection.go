// Package projection runs the period-by-period financial projection: client
// movement, revenue and cost of service, staffing, operating expenses,
// funding rounds, the loan ledger, and the resulting cash position.
package projection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/askayyi/saas-forecast/internal/config"
	"github.com/askayyi/saas-forecast/pkg/cohort"
	"github.com/askayyi/saas-forecast/pkg/constants"
	"github.com/askayyi/saas-forecast/pkg/funding"
	"github.com/askayyi/saas-forecast/pkg/opex"
	"github.com/askayyi/saas-forecast/pkg/periods"
	"github.com/askayyi/saas-forecast/pkg/revenue"
	"github.com/askayyi/saas-forecast/pkg/staffing"
)

// GenerateProjection builds the full ledger for the configured horizon. Any
// panic during generation is recovered and reported as an error alongside an
// empty ledger.
func GenerateProjection(logger *zap.Logger, conf *config.Configuration) (ledger Ledger, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("projection generation panicked",
				zap.String("op", "projection.GenerateProjection"),
				zap.Any("panic", r),
			)
			ledger = Ledger{}
			err = fmt.Errorf("projection generation failed: %v", r)
		}
	}()

	start, end, err := conf.ParseDates()
	if err != nil {
		return Ledger{}, err
	}

	frequency := periods.Normalize(conf.Frequency)
	dates := periods.Sequence(start, end, frequency)
	periodMonths := periods.LengthMonths(frequency)
	periodsPerYear := periods.PerYear(frequency)

	logger.Debug("starting projection",
		zap.String("op", "projection.GenerateProjection"),
		zap.String("frequency", frequency),
		zap.Int("periods", len(dates)),
	)

	curve := conf.GrowthCurve()
	plans := conf.RevenuePlans()
	topUp := conf.TopUpPricing()
	fixedRoles := conf.FixedRoles()
	variableRoles := conf.VariableRoles()
	hoursTable := conf.HoursTable()
	overheads := conf.OverheadItems()
	marketing := conf.MarketingPlan()
	rounds := conf.Rounds()
	paybackPlan := conf.PaybackPlan(start)

	churnPerPeriod := cohort.ChurnPerPeriod(conf.ChurnRateAnnual, periodsPerYear)

	clients := conf.InitialClients
	cash := conf.InitialCash
	loanState := conf.InitialLoanState()
	headcounts := staffing.InitialHeadcounts(variableRoles)

	ledger = make(Ledger, 0, len(dates))
	for idx, date := range dates {
		periodIndex := idx + 1
		yearsElapsed := periods.YearIndex(periodIndex, periodsPerYear) - 1

		step := cohort.Advance(clients, curve.Rate(periodIndex), churnPerPeriod)

		breakdown := revenue.Compute(revenue.Inputs{
			Plans:          plans,
			Distribution:   conf.Distribution,
			AverageClients: step.Average(),
			NewClients:     float64(step.New),
			EndingClients:  float64(step.Ending),
			PeriodMonths:   periodMonths,
			TopUp:          topUp,
		})

		newByPlan := cohort.SplitByPlan(float64(step.New), conf.Distribution)
		endingByPlan := cohort.SplitByPlan(float64(step.Ending), conf.Distribution)
		onboardingHours := staffing.OnboardingHours(newByPlan, hoursTable, yearsElapsed)
		maintenanceHours := staffing.MaintenanceHours(endingByPlan, hoursTable, yearsElapsed, periodMonths)

		fixedCost, fixedHeadcount := staffing.FixedCost(fixedRoles, yearsElapsed, periodMonths)
		variable := staffing.VariableCost(variableRoles, headcounts,
			onboardingHours, maintenanceHours, yearsElapsed, periodMonths)
		staffCost := fixedCost + variable.Cost

		overheadCost := opex.OverheadCost(overheads, yearsElapsed, periodMonths)
		hardwareCost := opex.HardwareCost(fixedHeadcount+variable.TotalHeadcount,
			conf.HardwareCostPerEmployee, periodMonths)
		marketingSpend := opex.MarketingSpend(marketing, breakdown.Total, periodMonths)
		researchSpend := opex.ResearchSpend(breakdown.Total, conf.Research.RevenuePct)

		operatingExpenses := staffCost + overheadCost + hardwareCost + marketingSpend + researchSpend
		ebitda := breakdown.GrossProfit - operatingExpenses
		netIncome := ebitda

		// Funding rounds recognized this period carry an R&D earmark that
		// hits the income statement immediately.
		fundingInflow := funding.InflowForPeriod(rounds, periodIndex)
		rdCut := fundingInflow * conf.Research.InvestmentPct / constants.PercentageMultiplier
		netIncome -= rdCut
		operatingExpenses += rdCut

		// The initial loan is inherited debt, never a cash injection.
		loanInflow := 0.0
		interest := loanState.AccrueInterest(conf.Loan.AnnualRatePct, periodMonths)
		netIncome -= interest

		loanPayment := 0.0
		if conf.Loan.Enabled {
			result := loanState.ApplyPayback(paybackPlan, periodIndex, periodMonths, netIncome, fundingInflow)
			loanPayment = result.Payment
			netIncome = result.NetIncome
			fundingInflow = result.FundingInflow
		}

		cash += netIncome + fundingInflow + loanInflow
		insolvent := false
		if cash < 0 {
			insolvent = true
			cash = 0
			logger.Warn("cash balance floored at zero",
				zap.String("op", "projection.GenerateProjection"),
				zap.String("period", periods.Label(date, frequency)),
			)
		}

		ledger = append(ledger, LedgerRow{
			TimeLabel:  periods.Label(date, frequency),
			ParsedDate: date,

			ClientsStarting: step.Starting,
			ClientsNew:      step.New,
			ClientsChurned:  step.Churned,
			ClientsEnding:   step.Ending,

			RevenueSubscription: breakdown.Subscription,
			RevenueSetupFees:    breakdown.SetupFees,
			RevenueTopUp:        breakdown.TopUp,
			RevenueTotal:        breakdown.Total,

			COSSubscription: breakdown.COSSubscription,
			COSTopUp:        breakdown.COSTopUp,
			COSTotal:        breakdown.COSTotal,
			GrossProfit:     breakdown.GrossProfit,

			StaffFixed:    fixedHeadcount,
			StaffVariable: variable.TotalHeadcount,

			CostStaffFixed:    fixedCost,
			CostStaffVariable: variable.Cost,
			CostStaff:         staffCost,
			CostOverheads:     overheadCost,
			CostHardware:      hardwareCost,
			CostMarketing:     marketingSpend,
			CostRDExpense:     researchSpend,
			OperatingExpenses: operatingExpenses,

			EBITDA:    ebitda,
			NetIncome: netIncome,

			FundingInflow: fundingInflow,
			LoanInflow:    loanInflow,
			LoanPayment:   loanPayment,
			LoanBalance:   loanState.Balance,
			EndingCash:    cash,
			Insolvent:     insolvent,

			OnboardingHoursUsed:  onboardingHours,
			MaintenanceHoursUsed: maintenanceHours,
		})

		clients = step.Ending
		headcounts = variable.Headcounts
	}

	logger.Debug("projection complete",
		zap.String("op", "projection.GenerateProjection"),
		zap.Int("rows", len(ledger)),
		zap.Float64("finalCash", ledger.FinalCash()),
	)

	return ledger, nil
}
