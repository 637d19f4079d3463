// Package format renders currency amounts for reports. Amounts are rounded
// with decimal arithmetic so presentation never drifts from the cent.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the rand symbol used across all reports.
const CurrencySymbol = "R"

// Currency returns a currency string with the rand symbol and thousands
// separators (e.g., "-R1,234.56").
func Currency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	formatted := groupThousands(d.Abs().StringFixed(2))
	if d.IsNegative() {
		return "-" + CurrencySymbol + formatted
	}
	return CurrencySymbol + formatted
}

// NumericCurrency returns a currency string without the symbol but with
// separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	formatted := groupThousands(d.Abs().StringFixed(2))
	if d.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// Cents rounds an amount to two decimal places using decimal arithmetic and
// returns it as a float64.
func Cents(amount float64) float64 {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return rounded
}

func groupThousands(fixed string) string {
	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
