// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ticketdash/ticketdash/internal/contract"
)

// NewMCPServer initializes and configures the ticketdash MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, st contract.Store) *server.MCPServer {
	s := server.NewMCPServer(
		"Ticketdash Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   st,
	}

	// --- 1. Tool: get_project_statistics ---
	s.AddTool(mcp.NewTool("get_project_statistics",
		mcp.WithDescription("Get aggregated ticket statistics for one project: monthly, quarterly and yearly totals with success rates."),
		mcp.WithNumber("project_id", mcp.Description("The project id to analyze."), mcp.Required()),
		mcp.WithNumber("year", mcp.Description("Focus year for the current-year breakdown (defaults to the current year).")),
	), h.handleGetProjectStatistics)

	// --- 2. Tool: compare_periods ---
	s.AddTool(mcp.NewTool("compare_periods",
		mcp.WithDescription("Compare ticket totals between two periods of one project."),
		mcp.WithNumber("project_id", mcp.Description("The project id to analyze."), mcp.Required()),
		mcp.WithString("comparison_type", mcp.Description("Granularity of the comparison."), mcp.Enum("quarter", "month", "year"), mcp.Required()),
		mcp.WithNumber("period1_year", mcp.Description("Year of the first period."), mcp.Required()),
		mcp.WithString("period1_quarter", mcp.Description("Quarter of the first period (e.g. 'Q2'), for quarter comparisons.")),
		mcp.WithNumber("period1_month", mcp.Description("Month number of the first period (1-12), for month comparisons.")),
		mcp.WithNumber("period2_year", mcp.Description("Year of the second period."), mcp.Required()),
		mcp.WithString("period2_quarter", mcp.Description("Quarter of the second period, for quarter comparisons.")),
		mcp.WithNumber("period2_month", mcp.Description("Month number of the second period, for month comparisons.")),
	), h.handleComparePeriods)

	// --- 3. Tool: get_dashboard ---
	s.AddTool(mcp.NewTool("get_dashboard",
		mcp.WithDescription("List flattened per-month ticket facts across projects, for dashboard-style views."),
		mcp.WithNumber("project_id", mcp.Description("Limit facts to one project id (omit for all projects).")),
		mcp.WithNumber("year", mcp.Description("Limit facts to one year.")),
	), h.handleGetDashboard)

	return s
}

// StartMCPServer starts the ticketdash MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, st contract.Store) error {
	s := NewMCPServer(baseCfg, st)
	return server.ServeStdio(s)
}
