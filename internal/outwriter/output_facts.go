package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ticketdash/ticketdash/core"
	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/internal/parquet"
	"github.com/ticketdash/ticketdash/schema"
)

// WriteFactResults exports flattened month facts, dispatching based on
// the output format configured.
func WriteFactResults(facts []schema.NormalizedFact, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, facts)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForFacts(w, facts, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires an output file")
		}
		return parquet.WriteMonthFactsParquet(parquet.ConvertFacts(facts), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFactTable(facts, cfg, fmtFloat, intFmt, w)
		}, "Wrote table")
	}
}

func writeCSVResultsForFacts(w io.Writer, facts []schema.NormalizedFact, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"record_id",
		"project_id",
		"project_name",
		"filename",
		"year",
		"quarter",
		"month",
		"display_name",
		"total_tickets",
		"resolved_in_2days",
		"resolved_after_2days",
		"success_rate",
		"label",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, f := range facts {
			row := []string{
				strconv.FormatInt(f.RecordID, 10),
				strconv.FormatInt(f.ProjectID, 10),
				f.ProjectName,
				f.Filename,
				fmt.Sprintf(intFmt, f.Year),
				f.Quarter,
				fmt.Sprintf(intFmt, f.Month),
				f.DisplayName,
				fmt.Sprintf(intFmt, f.TotalTickets),
				fmt.Sprintf(intFmt, f.ResolvedIn2Days),
				fmt.Sprintf(intFmt, f.ResolvedAfter2Days),
				fmtFloat(f.SuccessRate),
				contract.GetPlainLabel(f.SuccessRate),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeFactTable generates and writes the human-readable table.
func writeFactTable(facts []schema.NormalizedFact, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Project", "Year", "Quarter", "Month", "Total", "In 2d", "After 2d", "Rate", "Label"})

	// 2. Right-align the numeric columns
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}
	nameWidth := getMaxTableNameWidth(cfg)

	var data [][]string
	for _, f := range facts {
		name := f.ProjectName
		if name == "" {
			name = schema.UnassignedLabel
		}
		month := f.DisplayName
		if month == "" && f.Month >= 1 && f.Month <= 12 {
			month = schema.MonthNames[f.Month-1]
		}
		data = append(data, []string{
			contract.TruncateName(name, nameWidth),
			fmt.Sprintf(intFmt, f.Year),
			f.Quarter,
			month,
			fmt.Sprintf(intFmt, f.TotalTickets),
			fmt.Sprintf(intFmt, f.ResolvedIn2Days),
			fmt.Sprintf(intFmt, f.ResolvedAfter2Days),
			fmtFloat(f.SuccessRate),
			label(f.SuccessRate),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Summary stats
	totalTickets := 0
	resolved := 0
	for _, f := range facts {
		totalTickets += f.TotalTickets
		resolved += f.ResolvedIn2Days
	}
	_, err := fmt.Fprintf(writer, "Showing %d month facts (total tickets: %d, overall rate: %s%%)\n",
		len(facts), totalTickets, fmtFloat(core.Rate(resolved, totalTickets)))
	return err
}
