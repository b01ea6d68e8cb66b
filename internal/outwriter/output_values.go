package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/internal/parquet"
	"github.com/ticketdash/ticketdash/schema"
)

// WriteValueResults exports value data points, dispatching based on the
// output format configured.
func WriteValueResults(values []schema.ValueRecord, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, values)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForValues(w, values, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires an output file")
		}
		return parquet.WriteValuesParquet(parquet.ConvertValues(values), cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeValueTable(values, cfg, fmtFloat, intFmt, w)
		}, "Wrote table")
	}
}

func writeCSVResultsForValues(w io.Writer, values []schema.ValueRecord, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"id",
		"project_id",
		"project_name",
		"year",
		"quarter",
		"month",
		"value",
		"filename",
		"label",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, v := range values {
			row := []string{
				strconv.FormatInt(v.ID, 10),
				strconv.FormatInt(v.ProjectID, 10),
				v.ProjectName,
				fmt.Sprintf(intFmt, v.Year),
				v.Quarter,
				v.Month,
				fmtFloat(v.Value),
				v.Filename,
				contract.GetPlainLabel(v.Value),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeValueTable(values []schema.ValueRecord, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Project", "Year", "Quarter", "Month", "Value", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}
	nameWidth := getMaxTableNameWidth(cfg)

	var data [][]string
	for _, v := range values {
		name := v.ProjectName
		if name == "" {
			name = schema.UnassignedLabel
		}
		data = append(data, []string{
			contract.TruncateName(name, nameWidth),
			fmt.Sprintf(intFmt, v.Year),
			v.Quarter,
			v.Month,
			fmtFloat(v.Value),
			label(v.Value),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	sum := 0.0
	for _, v := range values {
		sum += v.Value
	}
	average := 0.0
	if len(values) > 0 {
		average = sum / float64(len(values))
	}
	_, err := fmt.Fprintf(writer, "Showing %d data points (average: %s)\n", len(values), fmtFloat(average))
	return err
}
