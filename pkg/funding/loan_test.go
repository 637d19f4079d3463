package funding

import (
	"math"
	"testing"

	"github.com/askayyi/saas-forecast/pkg/constants"
)

func TestAccrueInterest(t *testing.T) {
	state := LoanState{Balance: 120000}

	// 12% annual over one month: 120000 * 0.01 = 1200.
	interest := state.AccrueInterest(12, 1)
	if math.Abs(interest-1200) > 1e-9 {
		t.Errorf("interest = %v, expected 1200", interest)
	}
	if math.Abs(state.Balance-121200) > 1e-9 {
		t.Errorf("balance = %v, expected 121200", state.Balance)
	}

	// Interest accrued scales with period length.
	quarterly := LoanState{Balance: 120000}
	if got := quarterly.AccrueInterest(12, 3); math.Abs(got-3600) > 1e-9 {
		t.Errorf("quarterly interest = %v, expected 3600", got)
	}

	// Zero balance accrues nothing.
	empty := LoanState{}
	if got := empty.AccrueInterest(12, 1); got != 0 {
		t.Errorf("interest on zero balance = %v, expected 0", got)
	}
}

func TestApplyPaybackBeforeStartPeriod(t *testing.T) {
	state := LoanState{Balance: 50000}
	plan := PaybackPlan{Strategy: constants.StrategyFixed, StartPeriod: 6, FixedAmount: 1000}

	result := state.ApplyPayback(plan, 3, 1, 10000, 0)
	if result.Payment != 0 {
		t.Errorf("Payment = %v, expected 0 before the start period", result.Payment)
	}
	if state.Balance != 50000 {
		t.Errorf("Balance = %v, expected untouched 50000", state.Balance)
	}
}

func TestApplyPaybackFixed(t *testing.T) {
	tests := []struct {
		name            string
		balance         float64
		netIncome       float64
		fixedAmount     float64
		periodMonths    int
		expectedPayment float64
	}{
		{name: "Full installment", balance: 50000, netIncome: 10000, fixedAmount: 2000, periodMonths: 1, expectedPayment: 2000},
		{name: "Scaled by period length", balance: 50000, netIncome: 10000, fixedAmount: 2000, periodMonths: 3, expectedPayment: 6000},
		{name: "Capped by net income", balance: 50000, netIncome: 500, fixedAmount: 2000, periodMonths: 1, expectedPayment: 500},
		{name: "Negative net income pays nothing", balance: 50000, netIncome: -1000, fixedAmount: 2000, periodMonths: 1, expectedPayment: 0},
		{name: "Capped by balance", balance: 1500, netIncome: 10000, fixedAmount: 2000, periodMonths: 1, expectedPayment: 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := LoanState{Balance: tt.balance}
			plan := PaybackPlan{Strategy: constants.StrategyFixed, StartPeriod: 1, FixedAmount: tt.fixedAmount}

			result := state.ApplyPayback(plan, 1, tt.periodMonths, tt.netIncome, 0)
			if math.Abs(result.Payment-tt.expectedPayment) > 1e-9 {
				t.Errorf("Payment = %v, expected %v", result.Payment, tt.expectedPayment)
			}
			if state.Balance < 0 {
				t.Errorf("Balance = %v, must never go negative", state.Balance)
			}
			if math.Abs(result.NetIncome-(tt.netIncome-tt.expectedPayment)) > 1e-9 {
				t.Errorf("NetIncome = %v, expected payment deducted", result.NetIncome)
			}
		})
	}
}

func TestApplyPaybackPercentOfProfit(t *testing.T) {
	state := LoanState{Balance: 100000}
	plan := PaybackPlan{Strategy: constants.StrategyPercentOfProfit, StartPeriod: 1, PercentOfProfit: 25}

	result := state.ApplyPayback(plan, 1, 1, 40000, 0)
	if math.Abs(result.Payment-10000) > 1e-9 {
		t.Errorf("Payment = %v, expected 25%% of profit = 10000", result.Payment)
	}
	if math.Abs(state.Balance-90000) > 1e-9 {
		t.Errorf("Balance = %v, expected 90000", state.Balance)
	}

	// No payment when the period made a loss.
	lossState := LoanState{Balance: 100000}
	lossResult := lossState.ApplyPayback(plan, 1, 1, -5000, 0)
	if lossResult.Payment != 0 {
		t.Errorf("Payment = %v, expected 0 on a loss period", lossResult.Payment)
	}
}

func TestApplyPaybackPercentPlusLump(t *testing.T) {
	state := LoanState{Balance: 300000}
	plan := PaybackPlan{
		Strategy:        constants.StrategyPercentPlusLump,
		StartPeriod:     1,
		PercentOfProfit: 10,
		LumpSum:         100000,
	}

	// Lump is funded from the funding inflow, then the percentage applies.
	result := state.ApplyPayback(plan, 1, 1, 50000, 150000)
	expectedPayment := 100000.0 + 5000.0
	if math.Abs(result.Payment-expectedPayment) > 1e-9 {
		t.Errorf("Payment = %v, expected %v", result.Payment, expectedPayment)
	}
	if math.Abs(result.FundingInflow-50000) > 1e-9 {
		t.Errorf("FundingInflow = %v, expected lump deducted to 50000", result.FundingInflow)
	}
	if math.Abs(result.NetIncome-45000) > 1e-9 {
		t.Errorf("NetIncome = %v, expected only the percentage deducted", result.NetIncome)
	}
	if !state.LumpSumPaid {
		t.Error("LumpSumPaid should latch after a full lump payment")
	}

	// A second period must not pay the lump again.
	second := state.ApplyPayback(plan, 2, 1, 50000, 150000)
	if math.Abs(second.FundingInflow-150000) > 1e-9 {
		t.Errorf("second period FundingInflow = %v, expected untouched", second.FundingInflow)
	}
}

func TestApplyPaybackPercentPlusLumpPartialLumpDoesNotLatch(t *testing.T) {
	state := LoanState{Balance: 300000}
	plan := PaybackPlan{Strategy: constants.StrategyPercentPlusLump, StartPeriod: 1, LumpSum: 100000}

	// Funding inflow smaller than the lump: partial payment, flag stays unset.
	result := state.ApplyPayback(plan, 1, 1, 0, 30000)
	if math.Abs(result.Payment-30000) > 1e-9 {
		t.Errorf("Payment = %v, expected partial lump of 30000", result.Payment)
	}
	if state.LumpSumPaid {
		t.Error("LumpSumPaid must not latch on a partial payment")
	}
}

func TestApplyPaybackLumpTimeline(t *testing.T) {
	state := LoanState{Balance: 100000}
	plan := PaybackPlan{
		Strategy:    constants.StrategyLumpTimeline,
		StartPeriod: 1,
		EndPeriod:   4,
		LumpSum:     20000,
	}

	// Period 1: lump (20000) then amortization of the remaining 80000 over 4 periods.
	result := state.ApplyPayback(plan, 1, 1, 1000000, 0)
	if math.Abs(result.Payment-40000) > 1e-9 {
		t.Errorf("period 1 Payment = %v, expected lump 20000 + installment 20000", result.Payment)
	}
	if math.Abs(state.Balance-60000) > 1e-9 {
		t.Fatalf("period 1 Balance = %v, expected 60000", state.Balance)
	}

	// Period 2: 60000 across 3 remaining periods.
	result = state.ApplyPayback(plan, 2, 1, 1000000, 0)
	if math.Abs(result.Payment-20000) > 1e-9 {
		t.Errorf("period 2 Payment = %v, expected 20000", result.Payment)
	}

	// Periods 3 and 4 clear the loan.
	state.ApplyPayback(plan, 3, 1, 1000000, 0)
	state.ApplyPayback(plan, 4, 1, 1000000, 0)
	if math.Abs(state.Balance) > 1e-6 {
		t.Errorf("final Balance = %v, expected 0 at the end of the timeline", state.Balance)
	}

	// Past the end period nothing more is paid.
	afterEnd := state.ApplyPayback(plan, 5, 1, 1000000, 0)
	if afterEnd.Payment != 0 {
		t.Errorf("post-timeline Payment = %v, expected 0", afterEnd.Payment)
	}
}

// A lump larger than the balance is capped, drives the balance to exactly
// zero, and no further timeline payments occur.
func TestApplyPaybackLumpTimelineLumpExceedsBalance(t *testing.T) {
	state := LoanState{Balance: 50000}
	plan := PaybackPlan{
		Strategy:    constants.StrategyLumpTimeline,
		StartPeriod: 1,
		EndPeriod:   6,
		LumpSum:     80000,
	}

	result := state.ApplyPayback(plan, 1, 1, 1000000, 0)
	if math.Abs(result.Payment-50000) > 1e-9 {
		t.Errorf("Payment = %v, expected capped at balance 50000", result.Payment)
	}
	if state.Balance != 0 {
		t.Errorf("Balance = %v, expected exactly 0", state.Balance)
	}
	if state.LumpSumPaid {
		t.Error("LumpSumPaid must not latch when the lump was capped short")
	}

	// The timeline division still executes but pays 0 against a zero balance.
	next := state.ApplyPayback(plan, 2, 1, 1000000, 0)
	if next.Payment != 0 {
		t.Errorf("next Payment = %v, expected 0 against a zero balance", next.Payment)
	}
}

// balance_after = balance_before + interest - payments, and payments never
// exceed balance_before + interest.
func TestLoanConservation(t *testing.T) {
	state := LoanState{Balance: 10000}
	plan := PaybackPlan{Strategy: constants.StrategyFixed, StartPeriod: 1, FixedAmount: 4000}

	for period := 1; period <= 6; period++ {
		before := state.Balance
		interest := state.AccrueInterest(10, 1)
		result := state.ApplyPayback(plan, period, 1, 100000, 0)

		if result.Payment > before+interest+1e-9 {
			t.Fatalf("period %d: payment %v exceeds balance+interest %v", period, result.Payment, before+interest)
		}
		expected := before + interest - result.Payment
		if math.Abs(state.Balance-expected) > 1e-9 {
			t.Fatalf("period %d: balance %v, expected %v", period, state.Balance, expected)
		}
		if state.Balance < 0 {
			t.Fatalf("period %d: balance went negative: %v", period, state.Balance)
		}
	}

	if state.Balance != 0 {
		t.Errorf("loan should be fully repaid, balance = %v", state.Balance)
	}
}
