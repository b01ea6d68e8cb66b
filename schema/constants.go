package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of exported output.
	OutputMode string

	// DatabaseBackend represents the relational backend for storage.
	DatabaseBackend string

	// ValueKind distinguishes the two parallel value-record series.
	ValueKind string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// Value record series.
const (
	PerformanceKind  ValueKind = "performance"
	AvailabilityKind ValueKind = "availability"
)

// UnassignedLabel names project- and portfolio-level buckets that have no
// owning row.
const UnassignedLabel = "Unassigned"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// MonthNames lists canonical month names in calendar order. Index+1 is
// the month number.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// QuarterMonths maps a quarter label to its month numbers.
var QuarterMonths = map[string][]int{
	"Q1": {1, 2, 3},
	"Q2": {4, 5, 6},
	"Q3": {7, 8, 9},
	"Q4": {10, 11, 12},
}
