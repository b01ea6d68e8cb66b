// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"

	"github.com/ticketdash/ticketdash/schema"
)

// Sentinel errors surfaced by store implementations. Handlers map these
// onto HTTP statuses, so stores must return them unwrapped or wrapped
// with %w.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName means a unique name constraint was violated.
	ErrDuplicateName = errors.New("name already exists")

	// ErrPortfolioHasProjects means a portfolio delete was rejected
	// because projects are still attached to it.
	ErrPortfolioHasProjects = errors.New("portfolio has assigned projects")
)

// PortfolioStore manages portfolio rows.
type PortfolioStore interface {
	// ListPortfolios returns all portfolios ordered by name, with their
	// attached project counts.
	ListPortfolios(ctx context.Context) ([]schema.Portfolio, error)

	// GetPortfolio returns one portfolio by id.
	GetPortfolio(ctx context.Context, id int64) (*schema.Portfolio, error)

	// CreatePortfolio inserts a portfolio and returns the stored row.
	CreatePortfolio(ctx context.Context, name, description string) (*schema.Portfolio, error)

	// UpdatePortfolio overwrites name and description.
	UpdatePortfolio(ctx context.Context, id int64, name, description string) (*schema.Portfolio, error)

	// DeletePortfolio removes a portfolio. It fails with
	// ErrPortfolioHasProjects when projects still reference it.
	DeletePortfolio(ctx context.Context, id int64) error
}

// ProjectStore manages project rows.
type ProjectStore interface {
	// ListProjects returns all projects ordered by name, each carrying
	// its portfolio name when assigned.
	ListProjects(ctx context.Context) ([]schema.Project, error)

	// GetProject returns one project by id.
	GetProject(ctx context.Context, id int64) (*schema.Project, error)

	// CreateProject inserts a project, optionally assigned to a portfolio.
	CreateProject(ctx context.Context, name, description string, portfolioID *int64) (*schema.Project, error)

	// UpdateProject overwrites name, description and portfolio assignment.
	UpdateProject(ctx context.Context, id int64, name, description string, portfolioID *int64) (*schema.Project, error)

	// DeleteProject removes a project and everything recorded under it.
	DeleteProject(ctx context.Context, id int64) error

	// GetProjectQuickStats returns the cached record totals for one project.
	GetProjectQuickStats(ctx context.Context, id int64) (*schema.ProjectQuickStats, error)
}

// RecordStore manages uploaded analysis records.
type RecordStore interface {
	// ListRecords returns all records joined with their project names,
	// newest first.
	ListRecords(ctx context.Context) ([]schema.AnalysisRecord, error)

	// ListProjectRecords returns one project's records, newest first.
	ListProjectRecords(ctx context.Context, projectID int64) ([]schema.AnalysisRecord, error)

	// SaveRecords inserts a batch of records in a single transaction.
	// Either every record lands or none do.
	SaveRecords(ctx context.Context, records []schema.AnalysisRecord) ([]int64, error)

	// DeleteRecord removes one record by id.
	DeleteRecord(ctx context.Context, id int64) error

	// DeleteAllRecords wipes the record table and reports how many rows
	// were removed.
	DeleteAllRecords(ctx context.Context) (int64, error)
}

// ValueStore manages performance and availability data points. The same
// operations serve both kinds.
type ValueStore interface {
	// ListValues returns all data points of one kind joined with project
	// names, newest year first.
	ListValues(ctx context.Context, kind schema.ValueKind) ([]schema.ValueRecord, error)

	// ListProjectValues returns one project's data points of one kind.
	ListProjectValues(ctx context.Context, kind schema.ValueKind, projectID int64) ([]schema.ValueRecord, error)

	// ListPortfolioValues returns the data points of one kind whose
	// projects are assigned to a portfolio.
	ListPortfolioValues(ctx context.Context, kind schema.ValueKind) ([]schema.ValueRecord, error)

	// SaveValues inserts a batch of data points in a single transaction.
	SaveValues(ctx context.Context, kind schema.ValueKind, values []schema.ValueRecord) ([]int64, error)

	// DeleteValue removes one data point by id.
	DeleteValue(ctx context.Context, kind schema.ValueKind, id int64) error

	// DeleteValuesScoped removes one project's data points narrowed by
	// the non-zero filter fields. Month comparison ignores case.
	DeleteValuesScoped(ctx context.Context, kind schema.ValueKind, projectID int64, year int, quarter, month string) (int64, error)

	// DeleteAllValues wipes one kind's table and reports how many rows
	// were removed.
	DeleteAllValues(ctx context.Context, kind schema.ValueKind) (int64, error)
}

// Store is the full persistence surface the application runs against.
// This allows handlers and commands to be tested without a real database.
type Store interface {
	PortfolioStore
	ProjectStore
	RecordStore
	ValueStore

	// Ping verifies the underlying connection.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}
