package httpapi

import (
	"errors"
	"net/http"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

type portfolioRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) listPortfolios(w http.ResponseWriter, r *http.Request) {
	portfolios, err := s.store.ListPortfolios(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"portfolios": portfolios})
}

func (s *Server) getPortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := s.urlID(w, r, "id")
	if !ok {
		return
	}

	portfolio, err := s.store.GetPortfolio(r.Context(), id)
	if errors.Is(err, contract.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}

	// Attach the projects assigned to this portfolio.
	all, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	projects := []schema.Project{}
	for _, p := range all {
		if p.PortfolioID != nil && *p.PortfolioID == id {
			projects = append(projects, p)
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"portfolio": portfolio,
		"projects":  projects,
	})
}

func (s *Server) createPortfolio(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "Portfolio name is required")
		return
	}

	portfolio, err := s.store.CreatePortfolio(r.Context(), req.Name, req.Description)
	if errors.Is(err, contract.ErrDuplicateName) {
		s.writeError(w, http.StatusBadRequest, "Portfolio name already exists")
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Portfolio created successfully",
		"portfolio": portfolio,
	})
}

func (s *Server) updatePortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := s.urlID(w, r, "id")
	if !ok {
		return
	}
	var req portfolioRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	_, err := s.store.UpdatePortfolio(r.Context(), id, req.Name, req.Description)
	switch {
	case errors.Is(err, contract.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Portfolio not found")
	case errors.Is(err, contract.ErrDuplicateName):
		s.writeError(w, http.StatusBadRequest, "Portfolio name already exists")
	case err != nil:
		s.serverError(w, err)
	default:
		s.writeJSON(w, http.StatusOK, map[string]string{"message": "Portfolio updated successfully"})
	}
}

func (s *Server) deletePortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := s.urlID(w, r, "id")
	if !ok {
		return
	}

	err := s.store.DeletePortfolio(r.Context(), id)
	switch {
	case errors.Is(err, contract.ErrPortfolioHasProjects):
		s.writeError(w, http.StatusBadRequest,
			"Cannot delete portfolio with associated projects. Please reassign or delete the projects first.")
	case errors.Is(err, contract.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Portfolio not found")
	case err != nil:
		s.serverError(w, err)
	default:
		s.writeJSON(w, http.StatusOK, map[string]string{"message": "Portfolio deleted successfully"})
	}
}
