package mcp_test

import (
	"context"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ticketdash/ticketdash/internal/contract"
	mcp_internal "github.com/ticketdash/ticketdash/internal/mcp"
	"github.com/ticketdash/ticketdash/schema"
)

func callTool(t *testing.T, st contract.Store, name string, args map[string]any) (*mcpgo.CallToolResult, error) {
	t.Helper()
	baseCfg := &contract.Config{ListenAddr: contract.DefaultListenAddr}
	s := mcp_internal.NewMCPServer(baseCfg, st)

	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcpgo.CallToolRequest{
		Params: mcpgo.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	return tool.Handler(context.Background(), req)
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	ms := &contract.MockStore{}

	t.Run("get_project_statistics missing project_id", func(t *testing.T) {
		res, err := callTool(t, ms, "get_project_statistics", map[string]any{})
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcpgo.TextContent).Text, "project_id must be a positive number")
	})

	t.Run("compare_periods invalid comparison_type", func(t *testing.T) {
		res, err := callTool(t, ms, "compare_periods", map[string]any{
			"project_id":      3.0,
			"comparison_type": "decade",
			"period1_year":    2024.0,
			"period2_year":    2025.0,
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcpgo.TextContent).Text, "comparison_type must be quarter, month or year")
	})

	t.Run("compare_periods missing quarters", func(t *testing.T) {
		res, err := callTool(t, ms, "compare_periods", map[string]any{
			"project_id":      3.0,
			"comparison_type": "quarter",
			"period1_year":    2024.0,
			"period2_year":    2025.0,
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcpgo.TextContent).Text, "period1_quarter and period2_quarter")
	})

	// Validation failures must short-circuit before any store access.
	ms.AssertNotCalled(t, "ListProjectRecords", mock.Anything, mock.Anything)
}

func TestMCPServerHandlers_ComparePeriods(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("ListProjectRecords", mock.Anything, int64(3)).Return([]schema.AnalysisRecord{
		{
			ID:        1,
			ProjectID: 3,
			Year:      2025,
			Months:    []string{"April"},
			AnalysisData: []byte(`[{"displayName":"April 2025","month":"April",` +
				`"totalTickets":100,"resolvedIn2Days":80,"resolvedAfter2Days":20,"successRate":"80.00"}]`),
		},
		{
			ID:        2,
			ProjectID: 3,
			Year:      2024,
			Months:    []string{"May"},
			AnalysisData: []byte(`[{"displayName":"May 2024","month":"May",` +
				`"totalTickets":50,"resolvedIn2Days":25,"resolvedAfter2Days":25,"successRate":"50.00"}]`),
		},
	}, nil)

	res, err := callTool(t, ms, "compare_periods", map[string]any{
		"project_id":      3.0,
		"comparison_type": "year",
		"period1_year":    2025.0,
		"period2_year":    2024.0,
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := res.Content[0].(mcpgo.TextContent).Text
	assert.Contains(t, text, `"comparisonType": "year"`)
	assert.Contains(t, text, `"label": "2025"`)
	assert.Contains(t, text, `"total_tickets": 50`)
	ms.AssertExpectations(t)
}

func TestMCPServerHandlers_GetDashboard(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("ListRecords", mock.Anything).Return([]schema.AnalysisRecord{
		{
			ID:          1,
			ProjectID:   3,
			ProjectName: "Customer Support",
			Year:        2025,
			Months:      []string{"April"},
			AnalysisData: []byte(`[{"displayName":"April 2025","month":"April",` +
				`"totalTickets":100,"resolvedIn2Days":80,"resolvedAfter2Days":20,"successRate":"80.00"}]`),
		},
	}, nil)

	res, err := callTool(t, ms, "get_dashboard", map[string]any{"year": 2025.0})
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := res.Content[0].(mcpgo.TextContent).Text
	assert.Contains(t, text, `"displayName": "April 2025"`)
	assert.Contains(t, text, `"success_rate": 80`)
	ms.AssertExpectations(t)
}
