// Package parquet exports ticket analytics data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/ticketdash/ticketdash/schema"
)

// MonthFactRow is one flattened month of an analysis record, shaped for
// columnar storage.
type MonthFactRow struct {
	// RecordID references the uploaded analysis record the month came from
	RecordID int64 `parquet:"record_id,snappy"`

	// ProjectID is the owning project (0 when unassigned)
	ProjectID int64 `parquet:"project_id,snappy"`

	// ProjectName is the owning project's name at export time
	ProjectName string `parquet:"project_name,snappy"`

	// Filename is the upload the record came from
	Filename string `parquet:"filename,snappy"`

	// Year is the record's calendar year
	Year int32 `parquet:"year,snappy"`

	// Month is the resolved month number, 0 when unresolvable
	Month int32 `parquet:"month,snappy"`

	// Quarter is the derived quarter label (Q1..Q4, empty when unresolved)
	Quarter string `parquet:"quarter,snappy"`

	// DisplayName is the month label as uploaded
	DisplayName string `parquet:"display_name,snappy"`

	TotalTickets       int32   `parquet:"total_tickets,snappy"`
	ResolvedIn2Days    int32   `parquet:"resolved_in_2days,snappy"`
	ResolvedAfter2Days int32   `parquet:"resolved_after_2days,snappy"`
	SuccessRate        float64 `parquet:"success_rate,snappy"`

	// CreatedAt is when the record was uploaded
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// ValueRow is one performance or availability data point.
type ValueRow struct {
	ID          int64     `parquet:"id,snappy"`
	ProjectID   int64     `parquet:"project_id,snappy"`
	ProjectName string    `parquet:"project_name,snappy"`
	Year        int32     `parquet:"year,snappy"`
	Quarter     string    `parquet:"quarter,snappy"`
	Month       string    `parquet:"month,snappy"`
	Value       float64   `parquet:"value,snappy"`
	Filename    string    `parquet:"filename,snappy"`
	CreatedAt   time.Time `parquet:"created_at,snappy"`
}

// WriteMonthFactsParquet writes flattened month facts to a Parquet file.
func WriteMonthFactsParquet(data []MonthFactRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is inferred from the MonthFactRow struct tags.
	writer := parquet.NewGenericWriter[MonthFactRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteValuesParquet writes value data points to a Parquet file.
func WriteValuesParquet(data []ValueRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[ValueRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertFacts converts normalized facts to Parquet rows.
func ConvertFacts(facts []schema.NormalizedFact) []MonthFactRow {
	result := make([]MonthFactRow, len(facts))
	for i, f := range facts {
		result[i] = MonthFactRow{
			RecordID:           f.RecordID,
			ProjectID:          f.ProjectID,
			ProjectName:        f.ProjectName,
			Filename:           f.Filename,
			Year:               int32(f.Year),
			Month:              int32(f.Month),
			Quarter:            f.Quarter,
			DisplayName:        f.DisplayName,
			TotalTickets:       int32(f.TotalTickets),
			ResolvedIn2Days:    int32(f.ResolvedIn2Days),
			ResolvedAfter2Days: int32(f.ResolvedAfter2Days),
			SuccessRate:        f.SuccessRate,
			CreatedAt:          f.CreatedAt,
		}
	}
	return result
}

// ConvertValues converts value records to Parquet rows.
func ConvertValues(values []schema.ValueRecord) []ValueRow {
	result := make([]ValueRow, len(values))
	for i, v := range values {
		result[i] = ValueRow{
			ID:          v.ID,
			ProjectID:   v.ProjectID,
			ProjectName: v.ProjectName,
			Year:        int32(v.Year),
			Quarter:     v.Quarter,
			Month:       v.Month,
			Value:       v.Value,
			Filename:    v.Filename,
			CreatedAt:   v.CreatedAt,
		}
	}
	return result
}
