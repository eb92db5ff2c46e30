// Package constants provides shared constants for the finance-planner application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPlaces is the precision for currency and percentage rounding
	DecimalPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DefaultTopExpenses is the default number of top expense categories reported
	DefaultTopExpenses = 3
)

// Goal feasibility thresholds, expressed as a percentage of monthly income.
// A required contribution below ModerateThreshold is Easy, below
// ChallengingThreshold is Moderate, and anything at or above it is Challenging.
const (
	FeasibilityModerateThreshold    = 20.0
	FeasibilityChallengingThreshold = 40.0
)

// Tax defaults. Ceilings and slab tables are configuration data (see pkg/tax);
// these are the statutory defaults used when the configuration does not
// override them.
const (
	// DefaultStandardDeduction is the flat deduction applied before slab evaluation
	DefaultStandardDeduction = 50000.0

	// DefaultCessRate is the health and education cess applied on computed tax
	DefaultCessRate = 0.04

	// Section80CCeiling caps investments like PPF, EPF, ELSS, and life insurance
	Section80CCeiling = 150000.0

	// Section80DCeiling caps health insurance premiums
	Section80DCeiling = 25000.0

	// Section80CCD1BCeiling caps additional NPS contributions
	Section80CCD1BCeiling = 50000.0
)

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

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
