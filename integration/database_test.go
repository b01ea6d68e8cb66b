//go:build database

// Package integration contains end-to-end tests against real database
// backends. These tests are excluded from normal test runs due to build
// tags. To run them: go test -tags database ./integration
package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/internal/store"
	"github.com/ticketdash/ticketdash/schema"
)

// TestStoreWithMySQL runs the store suite against a MySQL backend.
func TestStoreWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "ticketdash",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/ticketdash", host, port.Port())
	runStoreSuite(t, schema.MySQLBackend, connStr)
}

// TestStoreWithPostgres runs the store suite against a PostgreSQL backend.
func TestStoreWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runStoreSuite(t, schema.PostgreSQLBackend, connStr)
}

// runStoreSuite migrates the schema and exercises the full persistence
// surface against a live database.
func runStoreSuite(t *testing.T, backend schema.DatabaseBackend, connStr string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Migrate(backend, connStr, -1))

	st, err := store.New(backend, connStr)
	require.NoError(t, err)
	defer func() { _ = st.Close() }()
	require.NoError(t, st.Ping(ctx))

	// Portfolios and projects
	pf, err := st.CreatePortfolio(ctx, "Support Org", "Customer-facing teams")
	require.NoError(t, err)

	project, err := st.CreateProject(ctx, "Helpdesk", "Ticket triage", &pf.ID)
	require.NoError(t, err)
	require.NotNil(t, project.PortfolioID)
	assert.Equal(t, pf.ID, *project.PortfolioID)

	_, err = st.CreateProject(ctx, "Helpdesk", "", nil)
	assert.ErrorIs(t, err, contract.ErrDuplicateName)

	err = st.DeletePortfolio(ctx, pf.ID)
	assert.ErrorIs(t, err, contract.ErrPortfolioHasProjects)

	// Analysis records
	ids, err := st.SaveRecords(ctx, []schema.AnalysisRecord{{
		ProjectID:       project.ID,
		Filename:        "Helpdesk_2025_Q2_Report.xlsx",
		Year:            2025,
		Months:          []string{"April", "May"},
		TotalTickets:    150,
		ResolvedIn2Days: 120,
		SuccessRate:     80,
		AnalysisData: []byte(`[{"displayName":"April 2025","month":"April","totalTickets":100,"resolvedIn2Days":80,"resolvedAfter2Days":20,"successRate":"80.00"},` +
			`{"displayName":"May 2025","month":"May","totalTickets":50,"resolvedIn2Days":40,"resolvedAfter2Days":10,"successRate":"80.00"}]`),
	}})
	require.NoError(t, err)
	require.Len(t, ids, 1)

	records, err := st.ListProjectRecords(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Helpdesk", records[0].ProjectName)
	assert.Equal(t, []string{"April", "May"}, records[0].Months)

	quick, err := st.GetProjectQuickStats(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, quick.TotalTickets)
	assert.Equal(t, 120, quick.Within2Days)
	assert.InDelta(t, 80.0, quick.ResolutionRate, 0.01)

	// Value series
	_, err = st.SaveValues(ctx, schema.PerformanceKind, []schema.ValueRecord{
		{ProjectID: project.ID, Year: 2025, Quarter: "Q2", Month: "April", Value: 99.5},
		{ProjectID: project.ID, Year: 2025, Quarter: "Q2", Month: "May", Value: 98.5},
	})
	require.NoError(t, err)

	values, err := st.ListProjectValues(ctx, schema.PerformanceKind, project.ID)
	require.NoError(t, err)
	require.Len(t, values, 2)

	portfolioValues, err := st.ListPortfolioValues(ctx, schema.PerformanceKind)
	require.NoError(t, err)
	require.Len(t, portfolioValues, 2)
	require.NotNil(t, portfolioValues[0].PortfolioID)
	assert.Equal(t, pf.ID, *portfolioValues[0].PortfolioID)

	deleted, err := st.DeleteValuesScoped(ctx, schema.PerformanceKind, project.ID, 2025, "Q2", "april")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted, "month matching must ignore case")

	// Cascade: deleting the project removes its records
	require.NoError(t, st.DeleteProject(ctx, project.ID))
	records, err = st.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, st.DeletePortfolio(ctx, pf.ID))
	err = st.DeleteProject(ctx, project.ID)
	assert.ErrorIs(t, err, contract.ErrNotFound)
}
