package outwriter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

func testFacts() []schema.NormalizedFact {
	return []schema.NormalizedFact{
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
}

func testConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Precision: contract.DefaultPrecision,
		Width:     120,
	}
}

func TestWriteFactTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, intFmt := createFormatters(2)

	err := writeFactTable(testFacts(), testConfig(), fmtFloat, intFmt, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Customer Support")
	assert.Contains(t, out, "April")
	assert.Contains(t, out, "80.00")
	assert.Contains(t, out, "Showing 2 month facts (total tickets: 150, overall rate: 80.00%)")
}

func TestWriteFactTable_UnassignedProject(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, intFmt := createFormatters(2)

	facts := testFacts()
	facts[0].ProjectName = ""
	err := writeFactTable(facts, testConfig(), fmtFloat, intFmt, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), schema.UnassignedLabel)
}

func TestWriteCSVResultsForFacts(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, intFmt := createFormatters(2)

	err := writeCSVResultsForFacts(&buf, testFacts(), fmtFloat, intFmt)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "record_id", rows[0][0])
	assert.Equal(t, "Customer Support", rows[1][2])
	assert.Equal(t, "80.00", rows[1][11])
	assert.Equal(t, contract.GoodValue, rows[1][12])
}

func TestWriteValueTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, intFmt := createFormatters(1)

	values := []schema.ValueRecord{
		{ID: 1, ProjectName: "Customer Support", Year: 2025, Quarter: "Q1", Month: "January", Value: 99.5},
		{ID: 2, ProjectName: "Customer Support", Year: 2025, Quarter: "Q1", Month: "February", Value: 98.5},
	}
	err := writeValueTable(values, testConfig(), fmtFloat, intFmt, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "January")
	assert.Contains(t, out, "99.5")
	assert.Contains(t, out, "Showing 2 data points (average: 99.0)")
}

func TestWriteFactResults_JSONToFile(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "facts.json")

	require.NoError(t, WriteFactResults(testFacts(), cfg))

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var decoded []schema.NormalizedFact
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "April", decoded[0].DisplayName)
}

func TestWriteFactResults_ParquetRequiresFile(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.ParquetOut

	err := WriteFactResults(testFacts(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parquet output requires an output file")
}

func TestGetMaxTableNameWidth(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 200
	assert.Equal(t, 40, getMaxTableNameWidth(cfg))

	cfg.Width = 30
	assert.Equal(t, 15, getMaxTableNameWidth(cfg))

	cfg.Width = 90
	assert.Equal(t, 30, getMaxTableNameWidth(cfg))
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)
	assert.Equal(t, "80.0", fmtFloat(80.04))
	assert.Equal(t, "%d", intFmt)
}
