package httpapi

import (
	"errors"
	"net/http"

	"github.com/ticketdash/ticketdash/internal/contract"
)

type projectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PortfolioID *int64 `json:"portfolio_id"`
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	id, ok := s.urlID(w, r, "id")
	if !ok {
		return
	}

	project, err := s.store.GetProject(r.Context(), id)
	if errors.Is(err, contract.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"project": project})
}

// checkPortfolio verifies an optional portfolio assignment against the
// store. A missing portfolio is a client error, not a 404.
func (s *Server) checkPortfolio(w http.ResponseWriter, r *http.Request, portfolioID *int64) bool {
	if portfolioID == nil {
		return true
	}
	_, err := s.store.GetPortfolio(r.Context(), *portfolioID)
	if errors.Is(err, contract.ErrNotFound) {
		s.writeError(w, http.StatusBadRequest, "Portfolio not found")
		return false
	}
	if err != nil {
		s.serverError(w, err)
		return false
	}
	return true
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "Project name is required")
		return
	}
	if !s.checkPortfolio(w, r, req.PortfolioID) {
		return
	}

	project, err := s.store.CreateProject(r.Context(), req.Name, req.Description, req.PortfolioID)
	if errors.Is(err, contract.ErrDuplicateName) {
		s.writeError(w, http.StatusBadRequest, "Project name already exists")
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Project created successfully",
		"project": project,
	})
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := s.urlID(w, r, "id")
	if !ok {
		return
	}
	var req projectRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if !s.checkPortfolio(w, r, req.PortfolioID) {
		return
	}

	_, err := s.store.UpdateProject(r.Context(), id, req.Name, req.Description, req.PortfolioID)
	switch {
	case errors.Is(err, contract.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, contract.ErrDuplicateName):
		s.writeError(w, http.StatusBadRequest, "Project name already exists")
	case err != nil:
		s.serverError(w, err)
	default:
		s.writeJSON(w, http.StatusOK, map[string]string{"message": "Project updated successfully"})
	}
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := s.urlID(w, r, "id")
	if !ok {
		return
	}

	err := s.store.DeleteProject(r.Context(), id)
	switch {
	case errors.Is(err, contract.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Project not found")
	case err != nil:
		s.serverError(w, err)
	default:
		s.writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
	}
}

func (s *Server) projectQuickStats(w http.ResponseWriter, r *http.Request) {
	id, ok := s.urlID(w, r, "id")
	if !ok {
		return
	}

	stats, err := s.store.GetProjectQuickStats(r.Context(), id)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"statistics": stats,
	})
}
