package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/ticketdash/ticketdash/core"
	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

// compareStatistics serves the flexible comparison: the primary period is
// always computed, the compare period only when any compare parameter is
// present.
func (s *Server) compareStatistics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("projectId") == "" {
		s.writeError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	primary := schema.PeriodFilter{
		Year:    queryInt(r, "primaryYear"),
		Quarter: q.Get("primaryQuarter"),
		Month:   queryInt(r, "primaryMonth"),
	}
	compare := schema.PeriodFilter{
		Year:    queryInt(r, "compareYear"),
		Quarter: q.Get("compareQuarter"),
		Month:   queryInt(r, "compareMonth"),
	}
	hasCompare := q.Get("compareYear") != "" || q.Get("compareQuarter") != "" || q.Get("compareMonth") != ""

	records, err := s.store.ListProjectRecords(r.Context(), queryInt64(r, "projectId"))
	if err != nil {
		s.serverError(w, err)
		return
	}

	result := core.CompareFlexible(core.FlattenRecords(records), primary, compare, hasCompare)
	s.writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
		schema.FlexibleComparison
	}{true, result})
}

func (s *Server) projectStatistics(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.urlID(w, r, "projectId")
	if !ok {
		return
	}
	year := queryInt(r, "year")
	if year == 0 {
		year = time.Now().Year()
	}

	records, err := s.store.ListProjectRecords(r.Context(), projectID)
	if err != nil {
		s.serverError(w, err)
		return
	}

	var info *schema.ProjectInfo
	project, err := s.store.GetProject(r.Context(), projectID)
	if err != nil && !errors.Is(err, contract.ErrNotFound) {
		s.serverError(w, err)
		return
	}
	if project != nil {
		info = &schema.ProjectInfo{ID: project.ID, Name: project.Name, Description: project.Description}
	}

	stats := core.BuildProjectStatistics(core.FlattenRecords(records), year, info)
	s.writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
		schema.ProjectStatistics
	}{true, stats})
}

// compareProjectPeriods serves the typed comparison: both periods are
// fully specified by the comparison type.
func (s *Server) compareProjectPeriods(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.urlID(w, r, "projectId")
	if !ok {
		return
	}

	q := r.URL.Query()
	comparisonType := q.Get("type")
	if comparisonType == "" {
		s.writeError(w, http.StatusBadRequest, "Project ID and comparison type are required")
		return
	}

	p1 := schema.PeriodFilter{Year: queryInt(r, "period1Year")}
	p2 := schema.PeriodFilter{Year: queryInt(r, "period2Year")}
	switch comparisonType {
	case "quarter":
		p1.Quarter = q.Get("period1Quarter")
		p2.Quarter = q.Get("period2Quarter")
	case "month":
		p1.Month = queryInt(r, "period1Month")
		p2.Month = queryInt(r, "period2Month")
	case "year":
	default:
		s.writeError(w, http.StatusBadRequest, "Invalid comparison type")
		return
	}

	records, err := s.store.ListProjectRecords(r.Context(), projectID)
	if err != nil {
		s.serverError(w, err)
		return
	}

	result := core.ComparePeriods(core.FlattenRecords(records), p1, p2, comparisonType)
	s.writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
		schema.PeriodComparison
	}{true, result})
}
