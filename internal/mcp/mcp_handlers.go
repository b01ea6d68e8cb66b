package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ticketdash/ticketdash/core"
	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.Store
}

func (h *toolHandler) handleGetProjectStatistics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := int64(request.GetInt("project_id", 0))
	if projectID <= 0 {
		return mcp.NewToolResultError("project_id must be a positive number"), nil
	}
	year := request.GetInt("year", 0)
	if year == 0 {
		year = time.Now().Year()
	}

	records, err := h.store.ListProjectRecords(ctx, projectID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading records failed: %v", err)), nil
	}

	info, err := h.projectInfo(ctx, projectID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading project failed: %v", err)), nil
	}

	stats := core.BuildProjectStatistics(core.FlattenRecords(records), year, info)
	jsonData, _ := json.MarshalIndent(stats, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleComparePeriods(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := int64(request.GetInt("project_id", 0))
	if projectID <= 0 {
		return mcp.NewToolResultError("project_id must be a positive number"), nil
	}

	comparisonType := request.GetString("comparison_type", "")
	p1 := schema.PeriodFilter{Year: request.GetInt("period1_year", 0)}
	p2 := schema.PeriodFilter{Year: request.GetInt("period2_year", 0)}

	switch comparisonType {
	case "quarter":
		p1.Quarter = request.GetString("period1_quarter", "")
		p2.Quarter = request.GetString("period2_quarter", "")
		if p1.Quarter == "" || p2.Quarter == "" {
			return mcp.NewToolResultError("quarter comparisons require period1_quarter and period2_quarter"), nil
		}
	case "month":
		p1.Month = request.GetInt("period1_month", 0)
		p2.Month = request.GetInt("period2_month", 0)
		if p1.Month == 0 || p2.Month == 0 {
			return mcp.NewToolResultError("month comparisons require period1_month and period2_month"), nil
		}
	case "year":
	default:
		return mcp.NewToolResultError("comparison_type must be quarter, month or year"), nil
	}
	if p1.Year == 0 || p2.Year == 0 {
		return mcp.NewToolResultError("period1_year and period2_year are required"), nil
	}

	records, err := h.store.ListProjectRecords(ctx, projectID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading records failed: %v", err)), nil
	}

	comparison := core.ComparePeriods(core.FlattenRecords(records), p1, p2, comparisonType)
	jsonData, _ := json.MarshalIndent(comparison, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetDashboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := int64(request.GetInt("project_id", 0))
	year := request.GetInt("year", 0)

	var records []schema.AnalysisRecord
	var err error
	if projectID > 0 {
		records, err = h.store.ListProjectRecords(ctx, projectID)
	} else {
		records, err = h.store.ListRecords(ctx)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading records failed: %v", err)), nil
	}

	facts := core.FlattenRecords(records)
	if year != 0 {
		kept := facts[:0]
		for _, f := range facts {
			if f.Year == year {
				kept = append(kept, f)
			}
		}
		facts = kept
	}

	jsonData, _ := json.MarshalIndent(facts, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// projectInfo loads the name and description shown alongside statistics.
// A missing project is not an error; statistics still cover its records.
func (h *toolHandler) projectInfo(ctx context.Context, projectID int64) (*schema.ProjectInfo, error) {
	project, err := h.store.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schema.ProjectInfo{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
	}, nil
}
