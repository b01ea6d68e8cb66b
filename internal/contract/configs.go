package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/ticketdash/ticketdash/schema"
)

// Default values for configuration.
const (
	DefaultListenAddr = ":3001"
	DefaultPrecision  = 2
	MinSupportedYear  = 2000
	MaxSupportedYear  = 2100
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the service and CLI.
// This struct remains the "final, validated" config.
type Config struct {
	Backend   schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	ListenAddr string

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	// Year is the focus year for statistics and exports (0 = current year).
	Year int

	// ProjectID narrows exports to one project (0 = all projects).
	ProjectID int64

	// Kind selects which value series export and seed commands operate on.
	Kind schema.ValueKind

	// SeedYear is the year synthetic seed data is generated for.
	SeedYear int
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Backend    string `mapstructure:"backend"`
	DBConnect  string `mapstructure:"db-connect"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	// --- Fields from serveCmd.Flags() ---
	Listen string `mapstructure:"listen"`

	// --- Fields from exportCmd.Flags() ---
	Year    int    `mapstructure:"year"`
	Project int64  `mapstructure:"project"`
	Kind    string `mapstructure:"kind"`

	// --- Fields from seedCmd.Flags() ---
	SeedYear int `mapstructure:"seed-year"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := validateOutputConfig(cfg, input); err != nil {
		return err
	}
	if err := validateScopeConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfig validates the database backend selection.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.Backend = schema.DatabaseBackend(strings.ToLower(input.Backend))
	if _, ok := schema.ValidDatabaseBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid backend '%s'. must be sqlite, mysql, postgresql", input.Backend)
	}
	cfg.DBConnect = input.DBConnect
	return ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect)
}

// validateOutputConfig validates output format, precision and color settings.
func validateOutputConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be between 0 and 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors
	return nil
}

// validateScopeConfig validates listen address, focus year, project and
// value kind selections.
func validateScopeConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.ListenAddr = strings.TrimSpace(input.Listen)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	cfg.Year = input.Year
	if cfg.Year == 0 {
		cfg.Year = time.Now().Year()
	}
	if cfg.Year < MinSupportedYear || cfg.Year > MaxSupportedYear {
		return fmt.Errorf("year must be between %d and %d (received %d)", MinSupportedYear, MaxSupportedYear, input.Year)
	}

	if input.Project < 0 {
		return fmt.Errorf("project id cannot be negative (received %d)", input.Project)
	}
	cfg.ProjectID = input.Project

	cfg.Kind = schema.ValueKind(strings.ToLower(input.Kind))
	switch cfg.Kind {
	case schema.PerformanceKind, schema.AvailabilityKind:
	default:
		return fmt.Errorf("invalid kind '%s'. must be performance, availability", input.Kind)
	}

	cfg.SeedYear = input.SeedYear
	if cfg.SeedYear == 0 {
		cfg.SeedYear = time.Now().Year()
	}
	if cfg.SeedYear < MinSupportedYear || cfg.SeedYear > MaxSupportedYear {
		return fmt.Errorf("seed-year must be between %d and %d (received %d)", MinSupportedYear, MaxSupportedYear, input.SeedYear)
	}
	return nil
}
