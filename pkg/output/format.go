// Package output renders projection ledgers as human-readable tables or CSV.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/askayyi/saas-forecast/internal/projection"
	"github.com/askayyi/saas-forecast/pkg/format"
)

// csvHeader lists every ledger column in report order.
var csvHeader = []string{
	"Time_Label",
	"Date",
	"Clients_Starting",
	"Clients_New",
	"Clients_Churned",
	"Clients_Ending",
	"Revenue_Subscription",
	"Revenue_SetupFees",
	"Revenue_TopUp",
	"Revenue_Total",
	"COS_Subscription",
	"COS_TopUp",
	"COS_Total",
	"Profit_GrossProfit",
	"Staff_Fixed",
	"Staff_Variable",
	"Cost_StaffFixed",
	"Cost_StaffVariable",
	"Cost_Staff",
	"Cost_Overheads",
	"Cost_Hardware",
	"Cost_Marketing",
	"Cost_RDExpense",
	"Cost_OperatingExpenses",
	"Profit_EBITDA",
	"Profit_NetIncome",
	"CashFlow_FundingInflow",
	"CashFlow_LoanInflow",
	"CashFlow_LoanPayment",
	"CashFlow_LoanBalance",
	"CashFlow_EndingCash",
	"Insolvent",
	"Staff_OnboardingHrsUsed",
	"Staff_MaintenanceHrsUsed",
	"GrossMarginPct",
	"EBITDAMarginPct",
	"NetMarginPct",
	"ARPU",
}

// PrettyFormat writes a condensed human-readable table of the ledger followed
// by the headline metrics.
func PrettyFormat(w io.Writer, ledger projection.Ledger, metrics projection.Metrics) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "Period  | Clients | Revenue         | EBITDA          | Net Income      | Ending Cash\n")
	fmt.Fprintf(w, "______  | _______ | _______         | ______          | __________      | ___________\n")
	for _, row := range ledger {
		marker := ""
		if row.Insolvent {
			marker = " (insolvent)"
		}
		_, _ = p.Fprintf(w, "%s | %7d | %15s | %15s | %15s | %s%s\n",
			row.TimeLabel,
			row.ClientsEnding,
			format.Currency(row.RevenueTotal),
			format.Currency(row.EBITDA),
			format.Currency(row.NetIncome),
			format.Currency(row.EndingCash),
			marker,
		)
	}

	fmt.Fprintf(w, "\nRevenue CAGR: %.2f%%\n", metrics.CAGRRevenue)
	fmt.Fprintf(w, "IRR:          %.2f%%\n", metrics.IRR)
	fmt.Fprintf(w, "ROI:          %.2f%%\n", metrics.ROI)
}

// CsvFormat writes the full ledger in comma-separated value format, one row
// per reporting period.
func CsvFormat(w io.Writer, ledger projection.Ledger) {
	fmt.Fprintf(w, "%s\n", quoteJoin(csvHeader))
	for _, row := range ledger {
		fields := []string{
			row.TimeLabel,
			row.ParsedDate.Format("2006-01-02"),
			fmt.Sprintf("%d", row.ClientsStarting),
			fmt.Sprintf("%d", row.ClientsNew),
			fmt.Sprintf("%d", row.ClientsChurned),
			fmt.Sprintf("%d", row.ClientsEnding),
			fmt.Sprintf("%.2f", row.RevenueSubscription),
			fmt.Sprintf("%.2f", row.RevenueSetupFees),
			fmt.Sprintf("%.2f", row.RevenueTopUp),
			fmt.Sprintf("%.2f", row.RevenueTotal),
			fmt.Sprintf("%.2f", row.COSSubscription),
			fmt.Sprintf("%.2f", row.COSTopUp),
			fmt.Sprintf("%.2f", row.COSTotal),
			fmt.Sprintf("%.2f", row.GrossProfit),
			fmt.Sprintf("%d", row.StaffFixed),
			fmt.Sprintf("%d", row.StaffVariable),
			fmt.Sprintf("%.2f", row.CostStaffFixed),
			fmt.Sprintf("%.2f", row.CostStaffVariable),
			fmt.Sprintf("%.2f", row.CostStaff),
			fmt.Sprintf("%.2f", row.CostOverheads),
			fmt.Sprintf("%.2f", row.CostHardware),
			fmt.Sprintf("%.2f", row.CostMarketing),
			fmt.Sprintf("%.2f", row.CostRDExpense),
			fmt.Sprintf("%.2f", row.OperatingExpenses),
			fmt.Sprintf("%.2f", row.EBITDA),
			fmt.Sprintf("%.2f", row.NetIncome),
			fmt.Sprintf("%.2f", row.FundingInflow),
			fmt.Sprintf("%.2f", row.LoanInflow),
			fmt.Sprintf("%.2f", row.LoanPayment),
			fmt.Sprintf("%.2f", row.LoanBalance),
			fmt.Sprintf("%.2f", row.EndingCash),
			fmt.Sprintf("%t", row.Insolvent),
			fmt.Sprintf("%.2f", row.OnboardingHoursUsed),
			fmt.Sprintf("%.2f", row.MaintenanceHoursUsed),
			fmt.Sprintf("%.2f", row.GrossMarginPct),
			fmt.Sprintf("%.2f", row.EBITDAMarginPct),
			fmt.Sprintf("%.2f", row.NetMarginPct),
			fmt.Sprintf("%.2f", row.ARPU),
		}
		fmt.Fprintf(w, "%s\n", quoteJoin(fields))
	}
}

// CsvString renders the ledger as a CSV document in memory.
func CsvString(ledger projection.Ledger) string {
	var builder strings.Builder
	CsvFormat(&builder, ledger)
	return builder.String()
}

func quoteJoin(fields []string) string {
	quoted := make([]string, 0, len(fields))
	for _, field := range fields {
		quoted = append(quoted, `"`+field+`"`)
	}
	return strings.Join(quoted, ",")
}
