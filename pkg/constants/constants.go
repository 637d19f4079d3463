// Package constants provides shared constants for the saas-forecast application.
package constants

// DateTimeLayout is the date format expected in config files and is also the
// output date format.
const DateTimeLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Staffing cost constants, charged once per headcount change (ZAR).
const (
	// HireCostPerEmployee is the one-off cost of hiring one variable-staff FTE
	HireCostPerEmployee = 10000.0

	// TerminateCostPerEmployee is the one-off cost of terminating one variable-staff FTE
	TerminateCostPerEmployee = 5000.0
)

// Reporting frequency constants
const (
	// FrequencyMonth steps the projection calendar one month at a time
	FrequencyMonth = "month"

	// FrequencyQuarter steps the projection calendar three months at a time
	FrequencyQuarter = "quarter"

	// FrequencyYear steps the projection calendar twelve months at a time
	FrequencyYear = "year"
)

// Loan payback strategy names as they appear in configuration files.
const (
	StrategyNone            = "none"
	StrategyFixed           = "fixed"
	StrategyPercentOfProfit = "Percentage of Profit"
	StrategyPercentPlusLump = "Percentage of Profit + Lump"
	StrategyLumpTimeline    = "Lump + Timeline"
)

// FarFuturePeriod stands in for an unset payback end period; no projection
// ever reaches this index.
const FarFuturePeriod = 999999

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
