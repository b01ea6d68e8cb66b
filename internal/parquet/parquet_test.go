package parquet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketdash/ticketdash/schema"
)

func TestMonthFactRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(MonthFactRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"record_id",
		"project_id",
		"project_name",
		"filename",
		"year",
		"month",
		"quarter",
		"display_name",
		"total_tickets",
		"resolved_in_2days",
		"resolved_after_2days",
		"success_rate",
		"created_at",
	}
	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestValueRowStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(ValueRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"id",
		"project_id",
		"project_name",
		"year",
		"quarter",
		"month",
		"value",
		"filename",
		"created_at",
	}
	for _, colName := range expectedColumns {
		_, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteMonthFactsParquet_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.parquet")

	facts := []schema.NormalizedFact{
		{
			RecordID:        7,
			ProjectID:       3,
			ProjectName:     "Customer Support",
			Filename:        "q2-analysis.xlsx",
			Year:            2025,
			Month:           4,
			Quarter:         "Q2",
			DisplayName:     "April",
			TotalTickets:    100,
			ResolvedIn2Days: 80,
			SuccessRate:     80,
			CreatedAt:       time.Now(),
		},
		{
			RecordID:        7,
			ProjectID:       3,
			ProjectName:     "Customer Support",
			Year:            2025,
			Month:           5,
			Quarter:         "Q2",
			DisplayName:     "May",
			TotalTickets:    50,
			ResolvedIn2Days: 40,
			SuccessRate:     80,
		},
	}

	require.NoError(t, WriteMonthFactsParquet(ConvertFacts(facts), path))

	rows, err := parquet.ReadFile[MonthFactRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "April", rows[0].DisplayName)
	assert.Equal(t, int32(100), rows[0].TotalTickets)
	assert.Equal(t, "Q2", rows[1].Quarter)
}

func TestWriteValuesParquet_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.parquet")

	values := []schema.ValueRecord{
		{ID: 1, ProjectID: 3, ProjectName: "Customer Support", Year: 2025, Quarter: "Q1", Month: "January", Value: 99.5},
	}

	require.NoError(t, WriteValuesParquet(ConvertValues(values), path))

	rows, err := parquet.ReadFile[ValueRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 99.5, rows[0].Value)
	assert.Equal(t, "January", rows[0].Month)
}
