package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketdash/ticketdash/schema"
)

func TestRollupRecords(t *testing.T) {
	rec := analysisRecord(`[
		{"displayName":"April","month":"April","totalTickets":100,"resolvedIn2Days":80},
		{"displayName":"May","month":"May","totalTickets":50,"resolvedIn2Days":40}
	]`)
	rollups := RollupRecords([]schema.AnalysisRecord{rec})

	proj, ok := rollups["3"]
	require.True(t, ok)
	assert.Equal(t, "Customer Support", proj.ProjectName)
	require.NotNil(t, proj.ProjectID)
	assert.Equal(t, int64(3), *proj.ProjectID)

	year := proj.Years[2025]
	require.NotNil(t, year)
	q2 := year.Quarters["Q2"]
	require.NotNil(t, q2)
	assert.Equal(t, 150, q2.TotalTickets)
	assert.Equal(t, 120, q2.ResolvedIn2Days)
	assert.Equal(t, 80.0, q2.SuccessRate)
	require.Len(t, q2.Records, 1)
	assert.Equal(t, int64(7), q2.Records[0].ID)

	require.Contains(t, q2.Months, "April")
	assert.Equal(t, 100, q2.Months["April"].TotalTickets)
	assert.Equal(t, 80.0, q2.Months["April"].SuccessRate)
}

func TestRollupRecords_MultiQuarterRecord(t *testing.T) {
	rec := analysisRecord(`[
		{"displayName":"March","month":"March","totalTickets":60,"resolvedIn2Days":30},
		{"displayName":"April","month":"April","totalTickets":90,"resolvedIn2Days":90}
	]`)
	rec.Months = []string{"March", "April"}
	rec.TotalTickets = 150
	rec.ResolvedIn2Days = 120
	rollups := RollupRecords([]schema.AnalysisRecord{rec})

	year := rollups["3"].Years[2025]
	require.NotNil(t, year.Quarters["Q1"])
	require.NotNil(t, year.Quarters["Q2"])

	// A record spanning two quarters counts its full totals in each, and
	// its complete month detail is attached to both quarters.
	for _, q := range []string{"Q1", "Q2"} {
		quarter := year.Quarters[q]
		assert.Equal(t, 150, quarter.TotalTickets, q)
		assert.Equal(t, 120, quarter.ResolvedIn2Days, q)
		assert.Contains(t, quarter.Months, "March")
		assert.Contains(t, quarter.Months, "April")
	}
}

func TestRollupRecords_UnassignedProject(t *testing.T) {
	rec := analysisRecord(`[{"month":"April","totalTickets":10,"resolvedIn2Days":5}]`)
	rec.ProjectID = 0
	rec.ProjectName = ""
	rollups := RollupRecords([]schema.AnalysisRecord{rec})

	proj, ok := rollups["unassigned"]
	require.True(t, ok)
	assert.Nil(t, proj.ProjectID)
	assert.Equal(t, schema.UnassignedLabel, proj.ProjectName)
}

func TestRollupRecords_UnresolvableMonthsSkipped(t *testing.T) {
	rec := analysisRecord(`[{"month":"April","totalTickets":10,"resolvedIn2Days":5}]`)
	rec.Months = []string{"xyz"}
	rollups := RollupRecords([]schema.AnalysisRecord{rec})

	year := rollups["3"].Years[2025]
	require.NotNil(t, year)
	assert.Empty(t, year.Quarters)
}

func valueRecord(year int, quarter, month string, value float64) schema.ValueRecord {
	return schema.ValueRecord{
		ProjectID:   3,
		ProjectName: "Customer Support",
		Year:        year,
		Quarter:     quarter,
		Month:       month,
		Value:       value,
	}
}

func TestAggregateValues(t *testing.T) {
	records := []schema.ValueRecord{
		valueRecord(2025, "Q1", "January", 95),
		valueRecord(2025, "Q1", "February", 85),
		valueRecord(2025, "Q2", "April", 70),
		valueRecord(2024, "Q4", "October", 100),
	}
	summary := AggregateValues(records)
	require.NotNil(t, summary)

	assert.Equal(t, 4, summary.TotalDataPoints)
	assert.Equal(t, 87.5, summary.OverallAverage)
	assert.Equal(t, 2025, summary.LatestYear)

	// Latest quarter is the highest numeral within the latest year, even
	// when an older year has a later quarter.
	assert.Equal(t, "Q2", summary.LatestQuarter)
	assert.Equal(t, 70.0, summary.LatestQuarterAverage)

	q1 := summary.Years[2025].Quarters["Q1"]
	require.NotNil(t, q1)
	assert.Equal(t, 90.0, q1.Average)
	assert.Equal(t, 2, q1.Count)
	assert.Equal(t, []string{"January", "February"}, q1.Months)
}

func TestAggregateValues_Empty(t *testing.T) {
	assert.Nil(t, AggregateValues(nil))
}

func TestValueDashboard(t *testing.T) {
	records := []schema.ValueRecord{
		valueRecord(2025, "Q1", "February", 80),
		valueRecord(2025, "Q1", "January", 90),
		valueRecord(2025, "Q2", "April", 70),
	}
	rollups := ValueDashboard(records)

	proj, ok := rollups["3"]
	require.True(t, ok)
	assert.Equal(t, "Customer Support", proj.ProjectName)

	year := proj.Years[2025]
	require.NotNil(t, year)
	q1 := year.Quarters["Q1"]
	require.NotNil(t, q1)

	// Quarter months come back in calendar order regardless of input order.
	assert.Equal(t, []string{"January", "February"}, q1.Months)
	assert.Equal(t, []float64{90, 80}, q1.Values)
	assert.Equal(t, 85.0, q1.Average)

	// The per-year month list keeps input order.
	require.Len(t, year.AllMonths, 3)
	assert.Equal(t, "February", year.AllMonths[0].Month)
	assert.Equal(t, "Q1", year.AllMonths[0].Quarter)
}

func TestPortfolioValueRollup(t *testing.T) {
	portfolios := []schema.Portfolio{
		{ID: 1, Name: "Infrastructure", ProjectCount: 2},
		{ID: 2, Name: "Applications", ProjectCount: 1},
		{ID: 3, Name: "Empty", ProjectCount: 0},
	}
	pid1, pid2 := int64(1), int64(2)
	records := []schema.ValueRecord{
		{PortfolioID: &pid1, Year: 2025, Quarter: "Q1", Month: "January", Value: 90},
		{PortfolioID: &pid1, Year: 2025, Quarter: "Q1", Month: "January", Value: 70},
		{PortfolioID: &pid1, Year: 2025, Quarter: "Q1", Month: "February", Value: 100},
		{PortfolioID: &pid2, Year: 2025, Quarter: "Q3", Month: "August", Value: 50},
	}
	results := PortfolioValueRollup(portfolios, records)

	// Portfolios without data are dropped; the rest order by name.
	require.Len(t, results, 2)
	assert.Equal(t, "Applications", results[0].Name)
	assert.Equal(t, "Infrastructure", results[1].Name)

	infra := results[1]
	assert.Equal(t, 3, infra.TotalDataPoints)
	q1 := infra.Years[2025].Quarters["Q1"]
	require.NotNil(t, q1)
	assert.Equal(t, 3, q1.Count)
	assert.Equal(t, 86.67, q1.Average)

	require.Len(t, q1.Months, 2)
	assert.Equal(t, "january", q1.Months[0].Month)
	assert.Equal(t, 80.0, q1.Months[0].Average)
	assert.Equal(t, 2, q1.Months[0].Count)
	assert.Equal(t, "february", q1.Months[1].Month)
	assert.Equal(t, 100.0, q1.Months[1].Average)
}

func TestPortfolioValueRollup_IgnoresUnknownPortfolio(t *testing.T) {
	pid := int64(99)
	records := []schema.ValueRecord{{PortfolioID: &pid, Year: 2025, Quarter: "Q1", Month: "January", Value: 1}}
	assert.Empty(t, PortfolioValueRollup([]schema.Portfolio{{ID: 1, Name: "Known"}}, records))
}
