// Package schema has configs, models and global variables for all parts of ticketdash.
package schema

import "time"

// Portfolio groups related projects for cross-project rollups.
type Portfolio struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ProjectCount int       `json:"project_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Project is a single ticket stream. A project optionally belongs to one
// portfolio; the portfolio reference is nullable.
type Project struct {
	ID            int64     `json:"id"`
	PortfolioID   *int64    `json:"portfolio_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PortfolioName string    `json:"portfolio_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProjectQuickStats is the lightweight per-project summary computed
// directly from the stored aggregate columns.
type ProjectQuickStats struct {
	TotalTickets    int     `json:"totalTickets"`
	ResolvedTickets int     `json:"resolvedTickets"`
	Within2Days     int     `json:"within2Days"`
	ResolutionRate  float64 `json:"resolutionRate"`
}
