package httpapi

import (
	"net/http"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

func sampleRecord() schema.AnalysisRecord {
	return schema.AnalysisRecord{
		ID:              7,
		ProjectID:       3,
		ProjectName:     "Customer Support",
		Filename:        "q2-analysis.xlsx",
		Year:            2025,
		Months:          []string{"April", "May"},
		TotalTickets:    150,
		ResolvedIn2Days: 120,
		SuccessRate:     80,
		AnalysisData: json.RawMessage(`[
			{"displayName":"April","month":"April","totalTickets":100,"resolvedIn2Days":80,"successRate":80},
			{"displayName":"May","month":"May","totalTickets":50,"resolvedIn2Days":40,"successRate":80}
		]`),
	}
}

func TestListRecords(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("ListRecords", mock.Anything).Return([]schema.AnalysisRecord{sampleRecord()}, nil)

	rr, out := doJSON(t, newTestServer(ms), http.MethodGet, "/api/records", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	records := out["records"].([]any)
	require.Len(t, records, 1)
	assert.Equal(t, "q2-analysis.xlsx", records[0].(map[string]any)["filename"])
}

func TestCreateRecord(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("SaveRecords", mock.Anything, mock.MatchedBy(func(recs []schema.AnalysisRecord) bool {
		return len(recs) == 1 && recs[0].Filename == "q2-analysis.xlsx"
	})).Return([]int64{42}, nil)

	body := `{"project_id":3,"filename":"q2-analysis.xlsx","year":2025,"months":["April"],` +
		`"total_tickets":100,"resolved_in_2days":80,"success_rate":80,"analysis_data":[]}`
	rr, out := doJSON(t, newTestServer(ms), http.MethodPost, "/api/records", body)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Record saved successfully", out["message"])
	assert.Equal(t, float64(42), out["record"].(map[string]any)["id"])
}

func TestCreateRecord_MissingFields(t *testing.T) {
	ms := &contract.MockStore{}

	rr, out := doJSON(t, newTestServer(ms), http.MethodPost, "/api/records",
		`{"project_id":3,"filename":"x.xlsx","year":2025}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Missing required fields", out["error"])
	ms.AssertNotCalled(t, "SaveRecords", mock.Anything, mock.Anything)
}

func TestDeleteAllRecords(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("DeleteAllRecords", mock.Anything).Return(int64(3), nil)

	rr, out := doJSON(t, newTestServer(ms), http.MethodDelete, "/api/records", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "All records deleted successfully", out["message"])
	assert.Equal(t, float64(3), out["deleted"])
}

func TestDeleteRecord_NotFound(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("DeleteRecord", mock.Anything, int64(99)).Return(contract.ErrNotFound)

	rr, out := doJSON(t, newTestServer(ms), http.MethodDelete, "/api/records/99", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Record not found", out["error"])
}

func TestAggregatedRecords(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("ListRecords", mock.Anything).Return([]schema.AnalysisRecord{sampleRecord()}, nil)

	rr, out := doJSON(t, newTestServer(ms), http.MethodGet, "/api/records/aggregated", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	aggregated := out["aggregated"].(map[string]any)
	project := aggregated["3"].(map[string]any)
	assert.Equal(t, "Customer Support", project["project_name"])
	q2 := project["years"].(map[string]any)["2025"].(map[string]any)["quarters"].(map[string]any)["Q2"].(map[string]any)
	assert.Equal(t, float64(150), q2["total_tickets"])
}

func TestDashboard(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("ListRecords", mock.Anything).Return([]schema.AnalysisRecord{sampleRecord()}, nil)

	rr, out := doJSON(t, newTestServer(ms), http.MethodGet, "/api/dashboard", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	records := out["records"].([]any)
	require.Len(t, records, 2)
	first := records[0].(map[string]any)
	assert.Equal(t, "resolved", first["status"])
	assert.Equal(t, "within_2_days", first["resolution_type"])
	assert.Equal(t, "April", first["displayName"])
}

func TestDashboard_ProjectFilter(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("ListProjectRecords", mock.Anything, int64(3)).Return([]schema.AnalysisRecord{sampleRecord()}, nil)

	rr, _ := doJSON(t, newTestServer(ms), http.MethodGet, "/api/dashboard?projectId=3", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	ms.AssertNotCalled(t, "ListRecords", mock.Anything)
}
