package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ticketdash/ticketdash/core"
	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

func (s *Server) listValues(api valueAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := s.store.ListValues(r.Context(), api.kind)
		if err != nil {
			s.serverError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{api.listKey: values})
	}
}

func (s *Server) projectValues(api valueAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.urlID(w, r, "id")
		if !ok {
			return
		}
		values, err := s.store.ListProjectValues(r.Context(), api.kind, id)
		if err != nil {
			s.serverError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{api.listKey: values})
	}
}

// valueDashboard groups one kind's data points per project and year,
// optionally narrowed by projectId and year query parameters.
func (s *Server) valueDashboard(api valueAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := queryInt64(r, "projectId")
		year := queryInt(r, "year")

		var (
			values []schema.ValueRecord
			err    error
		)
		if projectID > 0 {
			values, err = s.store.ListProjectValues(r.Context(), api.kind, projectID)
		} else {
			values, err = s.store.ListValues(r.Context(), api.kind)
		}
		if err != nil {
			s.serverError(w, err)
			return
		}

		if year > 0 {
			filtered := values[:0]
			for _, v := range values {
				if v.Year == year {
					filtered = append(filtered, v)
				}
			}
			values = filtered
		}

		s.writeJSON(w, http.StatusOK, map[string]any{"data": core.ValueDashboard(values)})
	}
}

// valueSummary serves the per-project overall and latest-quarter averages.
func (s *Server) valueSummary(api valueAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.urlID(w, r, "id")
		if !ok {
			return
		}
		values, err := s.store.ListProjectValues(r.Context(), api.kind, id)
		if err != nil {
			s.serverError(w, err)
			return
		}

		summary := core.AggregateValues(values)
		s.writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"hasData":    summary != nil,
			"statistics": summary,
		})
	}
}

func (s *Server) saveValues(api valueAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Records []schema.ValueRecord `json:"records"`
		}
		if !s.decodeBody(w, r, &req) {
			return
		}
		if len(req.Records) == 0 {
			s.writeError(w, http.StatusBadRequest, "Records array is required")
			return
		}

		if _, err := s.store.SaveValues(r.Context(), api.kind, req.Records); err != nil {
			s.serverError(w, err)
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": fmt.Sprintf("%d %s saved successfully", len(req.Records), api.plural),
		})
	}
}

func (s *Server) deleteValuesScoped(api valueAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		scope := q.Get("scope")
		projectID := queryInt64(r, "projectId")
		if scope == "" || projectID == 0 {
			s.writeError(w, http.StatusBadRequest, "Scope and projectId are required")
			return
		}

		year, quarter, month := queryInt(r, "year"), q.Get("quarter"), q.Get("month")

		// Narrow the filter to exactly what the scope names.
		switch scope {
		case "all":
			year, quarter, month = 0, "", ""
		case "year":
			quarter, month = "", ""
		case "quarter":
			month = ""
		case "month":
		default:
			s.writeError(w, http.StatusBadRequest, "Invalid scope or missing required parameters")
			return
		}
		if scope != "all" && year == 0 ||
			scope == "quarter" && quarter == "" ||
			scope == "month" && (quarter == "" || month == "") {
			s.writeError(w, http.StatusBadRequest, "Invalid scope or missing required parameters")
			return
		}

		deleted, err := s.store.DeleteValuesScoped(r.Context(), api.kind, projectID, year, quarter, month)
		if err != nil {
			s.serverError(w, err)
			return
		}

		msg := fmt.Sprintf("Successfully deleted %d record(s)", deleted)
		if deleted == 0 {
			msg = "No records found to delete"
		}
		s.writeJSON(w, http.StatusOK, map[string]any{
			"success":      true,
			"message":      msg,
			"deletedCount": deleted,
		})
	}
}

func (s *Server) deleteValue(api valueAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.urlID(w, r, "id")
		if !ok {
			return
		}

		err := s.store.DeleteValue(r.Context(), api.kind, id)
		switch {
		case errors.Is(err, contract.ErrNotFound):
			s.writeError(w, http.StatusNotFound, "Record not found")
		case err != nil:
			s.serverError(w, err)
		default:
			s.writeJSON(w, http.StatusOK, map[string]string{
				"message": api.singular + " deleted successfully",
			})
		}
	}
}

func (s *Server) deleteAllValues(api valueAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := s.store.DeleteAllValues(r.Context(), api.kind)
		if err != nil {
			s.serverError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{
			"message":      "All " + api.plural + " deleted successfully",
			"deletedCount": deleted,
		})
	}
}

func (s *Server) portfolioStatistics(w http.ResponseWriter, r *http.Request) {
	portfolios, err := s.store.ListPortfolios(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	values, err := s.store.ListPortfolioValues(r.Context(), schema.PerformanceKind)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"portfolios": core.PortfolioValueRollup(portfolios, values),
	})
}
