package projection

import "time"

// LedgerRow is one reporting period of the projection ledger. Margin and ARPU
// columns are zero until ComputeSaaSMetrics fills them in.
type LedgerRow struct {
	TimeLabel  string    `json:"timeLabel" yaml:"timeLabel"`
	ParsedDate time.Time `json:"parsedDate" yaml:"parsedDate"`

	ClientsStarting int `json:"clientsStarting" yaml:"clientsStarting"`
	ClientsNew      int `json:"clientsNew" yaml:"clientsNew"`
	ClientsChurned  int `json:"clientsChurned" yaml:"clientsChurned"`
	ClientsEnding   int `json:"clientsEnding" yaml:"clientsEnding"`

	RevenueSubscription float64 `json:"revenueSubscription" yaml:"revenueSubscription"`
	RevenueSetupFees    float64 `json:"revenueSetupFees" yaml:"revenueSetupFees"`
	RevenueTopUp        float64 `json:"revenueTopUp" yaml:"revenueTopUp"`
	RevenueTotal        float64 `json:"revenueTotal" yaml:"revenueTotal"`

	COSSubscription float64 `json:"cosSubscription" yaml:"cosSubscription"`
	COSTopUp        float64 `json:"cosTopUp" yaml:"cosTopUp"`
	COSTotal        float64 `json:"cosTotal" yaml:"cosTotal"`
	GrossProfit     float64 `json:"grossProfit" yaml:"grossProfit"`

	StaffFixed    int `json:"staffFixed" yaml:"staffFixed"`
	StaffVariable int `json:"staffVariable" yaml:"staffVariable"`

	CostStaffFixed    float64 `json:"costStaffFixed" yaml:"costStaffFixed"`
	CostStaffVariable float64 `json:"costStaffVariable" yaml:"costStaffVariable"`
	CostStaff         float64 `json:"costStaff" yaml:"costStaff"`
	CostOverheads     float64 `json:"costOverheads" yaml:"costOverheads"`
	CostHardware      float64 `json:"costHardware" yaml:"costHardware"`
	CostMarketing     float64 `json:"costMarketing" yaml:"costMarketing"`
	CostRDExpense     float64 `json:"costRdExpense" yaml:"costRdExpense"`
	OperatingExpenses float64 `json:"operatingExpenses" yaml:"operatingExpenses"`

	EBITDA    float64 `json:"ebitda" yaml:"ebitda"`
	NetIncome float64 `json:"netIncome" yaml:"netIncome"`

	FundingInflow float64 `json:"fundingInflow" yaml:"fundingInflow"`
	LoanInflow    float64 `json:"loanInflow" yaml:"loanInflow"`
	LoanPayment   float64 `json:"loanPayment" yaml:"loanPayment"`
	LoanBalance   float64 `json:"loanBalance" yaml:"loanBalance"`
	EndingCash    float64 `json:"endingCash" yaml:"endingCash"`

	// Insolvent marks a period whose cash balance would have gone negative
	// before being floored at zero.
	Insolvent bool `json:"insolvent" yaml:"insolvent"`

	OnboardingHoursUsed  float64 `json:"onboardingHoursUsed" yaml:"onboardingHoursUsed"`
	MaintenanceHoursUsed float64 `json:"maintenanceHoursUsed" yaml:"maintenanceHoursUsed"`

	GrossMarginPct  float64 `json:"grossMarginPct" yaml:"grossMarginPct"`
	EBITDAMarginPct float64 `json:"ebitdaMarginPct" yaml:"ebitdaMarginPct"`
	NetMarginPct    float64 `json:"netMarginPct" yaml:"netMarginPct"`
	ARPU            float64 `json:"arpu" yaml:"arpu"`
}

// Ledger is the full projection, one row per reporting period in calendar
// order.
type Ledger []LedgerRow

// TotalRevenue sums revenue across all periods.
func (l Ledger) TotalRevenue() float64 {
	total := 0.0
	for _, row := range l {
		total += row.RevenueTotal
	}
	return total
}

// FinalCash returns the last period's ending cash, or zero for an empty
// ledger.
func (l Ledger) FinalCash() float64 {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].EndingCash
}
