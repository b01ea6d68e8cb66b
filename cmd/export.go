package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ticketdash/ticketdash/core"
	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/internal/outwriter"
	"github.com/ticketdash/ticketdash/schema"
)

// exportCmd groups the export subcommands.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored data as text, CSV, JSON or Parquet",
	Long: `Export stored data in the configured output format.

Subcommands:
  records - Flatten analysis records into per-month facts
  values  - Dump one value series (performance or availability)

Use --output to select the format and --output-file to write to a file
instead of stdout. Parquet output always requires --output-file.

Examples:
  # Print this year's facts as a table
  ticketdash export records

  # Export one project's 2024 facts to CSV
  ticketdash export records --project 3 --year 2024 --output csv --output-file facts.csv

  # Export availability data points to Parquet
  ticketdash export values --kind availability --output parquet --output-file availability.parquet`,
}

// exportRecordsCmd exports flattened month facts.
var exportRecordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Export analysis records flattened into per-month facts.",
	Long: `Flatten stored analysis records into one row per project month.

Each row carries the month's ticket counts, the recomputed success rate
and a qualitative label. Facts are limited to the focus year, which
defaults to the current year.

Examples:
  # Current year, all projects, text table
  ticketdash export records

  # One project's 2024 facts as JSON
  ticketdash export records --project 3 --year 2024 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer func() { _ = appStore.Close() }()

		records, err := listRecordsForExport()
		if err != nil {
			contract.LogFatal("Failed to load records", err)
		}

		facts := core.FlattenRecords(records)
		kept := facts[:0]
		for _, f := range facts {
			if f.Year == cfg.Year {
				kept = append(kept, f)
			}
		}

		if err := outwriter.NewOutWriter().WriteFacts(kept, cfg); err != nil {
			contract.LogFatal("Failed to write facts", err)
		}
	},
}

// exportValuesCmd exports one value series.
var exportValuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Export performance or availability data points.",
	Long: `Dump every stored data point of one value series.

Examples:
  # Performance data points as a table
  ticketdash export values

  # Availability data points to CSV
  ticketdash export values --kind availability --output csv --output-file availability.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer func() { _ = appStore.Close() }()

		values, err := appStore.ListValues(rootCtx, cfg.Kind)
		if err != nil {
			contract.LogFatal("Failed to load data points", err)
		}

		if err := outwriter.NewOutWriter().WriteValues(values, cfg); err != nil {
			contract.LogFatal("Failed to write data points", err)
		}
	},
}

// listRecordsForExport loads the records in scope for a facts export.
func listRecordsForExport() ([]schema.AnalysisRecord, error) {
	if cfg.ProjectID > 0 {
		return appStore.ListProjectRecords(rootCtx, cfg.ProjectID)
	}
	return appStore.ListRecords(rootCtx)
}
