package httpapi

import (
	"errors"
	"net/http"

	"github.com/ticketdash/ticketdash/core"
	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListRecords(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

func (s *Server) projectRecords(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.urlID(w, r, "projectId")
	if !ok {
		return
	}

	records, err := s.store.ListProjectRecords(r.Context(), projectID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

func (s *Server) aggregatedRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListRecords(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"aggregated": core.RollupRecords(records)})
}

func (s *Server) createRecord(w http.ResponseWriter, r *http.Request) {
	var rec schema.AnalysisRecord
	if !s.decodeBody(w, r, &rec) {
		return
	}
	if rec.ProjectID == 0 || rec.Filename == "" || rec.Year == 0 || len(rec.Months) == 0 {
		s.writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	ids, err := s.store.SaveRecords(r.Context(), []schema.AnalysisRecord{rec})
	if err != nil {
		s.serverError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Record saved successfully",
		"record":  map[string]int64{"id": ids[0]},
	})
}

func (s *Server) deleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := s.urlID(w, r, "id")
	if !ok {
		return
	}

	err := s.store.DeleteRecord(r.Context(), id)
	switch {
	case errors.Is(err, contract.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Record not found")
	case err != nil:
		s.serverError(w, err)
	default:
		s.writeJSON(w, http.StatusOK, map[string]string{"message": "Record deleted successfully"})
	}
}

func (s *Server) deleteAllRecords(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteAllRecords(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "All records deleted successfully",
		"deleted": deleted,
	})
}

// dashboardRecord is a flattened fact annotated with the resolution
// fields the dashboard frontend keys on.
type dashboardRecord struct {
	schema.NormalizedFact
	Status         string `json:"status"`
	ResolutionType string `json:"resolution_type"`
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	// The period query parameter is accepted for forward compatibility
	// but does not filter; clients narrow by project only.
	projectID := r.URL.Query().Get("projectId")

	var (
		records []schema.AnalysisRecord
		err     error
	)
	if projectID != "" && projectID != "all" {
		records, err = s.store.ListProjectRecords(r.Context(), queryInt64(r, "projectId"))
	} else {
		records, err = s.store.ListRecords(r.Context())
	}
	if err != nil {
		s.serverError(w, err)
		return
	}

	facts := core.FlattenRecords(records)
	out := make([]dashboardRecord, 0, len(facts))
	for _, f := range facts {
		d := dashboardRecord{NormalizedFact: f, Status: "pending", ResolutionType: "after_2_days"}
		if f.ResolvedIn2Days > 0 {
			d.Status = "resolved"
			d.ResolutionType = "within_2_days"
		}
		out = append(out, d)
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"records": out})
}
