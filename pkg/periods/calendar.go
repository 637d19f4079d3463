// Package periods generates the reporting-period calendar for a projection
// and maps dates to period indexes under a chosen frequency.
package periods

import (
	"fmt"
	"strings"
	"time"

	"github.com/askayyi/saas-forecast/pkg/constants"
)

// DateTimeLayout is the format expected in config files and is also the
// output date format.
const DateTimeLayout = constants.DateTimeLayout

// Normalize lower-cases a frequency name and falls back to monthly for
// anything unrecognized.
func Normalize(frequency string) string {
	switch strings.ToLower(frequency) {
	case constants.FrequencyQuarter:
		return constants.FrequencyQuarter
	case constants.FrequencyYear:
		return constants.FrequencyYear
	default:
		return constants.FrequencyMonth
	}
}

// PerYear returns the number of reporting periods in a calendar year for the
// given frequency.
func PerYear(frequency string) int {
	switch Normalize(frequency) {
	case constants.FrequencyQuarter:
		return 4
	case constants.FrequencyYear:
		return 1
	default:
		return constants.MonthsPerYear
	}
}

// LengthMonths returns the length of one reporting period in calendar months.
func LengthMonths(frequency string) int {
	switch Normalize(frequency) {
	case constants.FrequencyQuarter:
		return 3
	case constants.FrequencyYear:
		return constants.MonthsPerYear
	default:
		return 1
	}
}

// Sequence returns the ordered reporting dates from start through end,
// stepping by the frequency's period length. At least two periods are always
// returned; a degenerate range falls back to start plus one month.
func Sequence(start, end time.Time, frequency string) []time.Time {
	step := LengthMonths(frequency)

	var dates []time.Time
	for current := start; !current.After(end); current = current.AddDate(0, step, 0) {
		dates = append(dates, current)
	}
	if len(dates) < 2 {
		dates = []time.Time{start, start.AddDate(0, 1, 0)}
	}
	return dates
}

// IndexForDate returns the 1-based index of the period containing target
// relative to start, or 0 if target falls before start.
func IndexForDate(target, start time.Time, frequency string) int {
	monthDiff := (target.Year()-start.Year())*constants.MonthsPerYear + int(target.Month()) - int(start.Month())
	if monthDiff < 0 {
		return 0
	}
	return monthDiff/LengthMonths(frequency) + 1
}

// Label builds the reporting label for a period date, e.g. "2026-03",
// "2026-Q1", or "2026" depending on frequency.
func Label(date time.Time, frequency string) string {
	switch Normalize(frequency) {
	case constants.FrequencyQuarter:
		quarter := (int(date.Month())-1)/3 + 1
		return fmt.Sprintf("%d-Q%d", date.Year(), quarter)
	case constants.FrequencyYear:
		return date.Format("2006")
	default:
		return date.Format("2006-01")
	}
}

// YearIndex returns the 1-based projection year a period belongs to, used for
// annual raise and inflation compounding.
func YearIndex(periodIndex, periodsPerYear int) int {
	return (periodIndex-1)/periodsPerYear + 1
}
