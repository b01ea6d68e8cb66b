package contract

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ticketdash/ticketdash/schema"
)

// MockStore is a mock implementation of Store for testing.
type MockStore struct {
	mock.Mock
}

var _ Store = &MockStore{} // Compile-time check

// ListPortfolios implements the PortfolioStore interface.
func (m *MockStore) ListPortfolios(ctx context.Context) ([]schema.Portfolio, error) {
	args := m.Called(ctx)
	ret, _ := args.Get(0).([]schema.Portfolio)
	return ret, args.Error(1)
}

// GetPortfolio implements the PortfolioStore interface.
func (m *MockStore) GetPortfolio(ctx context.Context, id int64) (*schema.Portfolio, error) {
	args := m.Called(ctx, id)
	ret, _ := args.Get(0).(*schema.Portfolio)
	return ret, args.Error(1)
}

// CreatePortfolio implements the PortfolioStore interface.
func (m *MockStore) CreatePortfolio(ctx context.Context, name, description string) (*schema.Portfolio, error) {
	args := m.Called(ctx, name, description)
	ret, _ := args.Get(0).(*schema.Portfolio)
	return ret, args.Error(1)
}

// UpdatePortfolio implements the PortfolioStore interface.
func (m *MockStore) UpdatePortfolio(ctx context.Context, id int64, name, description string) (*schema.Portfolio, error) {
	args := m.Called(ctx, id, name, description)
	ret, _ := args.Get(0).(*schema.Portfolio)
	return ret, args.Error(1)
}

// DeletePortfolio implements the PortfolioStore interface.
func (m *MockStore) DeletePortfolio(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ListProjects implements the ProjectStore interface.
func (m *MockStore) ListProjects(ctx context.Context) ([]schema.Project, error) {
	args := m.Called(ctx)
	ret, _ := args.Get(0).([]schema.Project)
	return ret, args.Error(1)
}

// GetProject implements the ProjectStore interface.
func (m *MockStore) GetProject(ctx context.Context, id int64) (*schema.Project, error) {
	args := m.Called(ctx, id)
	ret, _ := args.Get(0).(*schema.Project)
	return ret, args.Error(1)
}

// CreateProject implements the ProjectStore interface.
func (m *MockStore) CreateProject(ctx context.Context, name, description string, portfolioID *int64) (*schema.Project, error) {
	args := m.Called(ctx, name, description, portfolioID)
	ret, _ := args.Get(0).(*schema.Project)
	return ret, args.Error(1)
}

// UpdateProject implements the ProjectStore interface.
func (m *MockStore) UpdateProject(ctx context.Context, id int64, name, description string, portfolioID *int64) (*schema.Project, error) {
	args := m.Called(ctx, id, name, description, portfolioID)
	ret, _ := args.Get(0).(*schema.Project)
	return ret, args.Error(1)
}

// DeleteProject implements the ProjectStore interface.
func (m *MockStore) DeleteProject(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// GetProjectQuickStats implements the ProjectStore interface.
func (m *MockStore) GetProjectQuickStats(ctx context.Context, id int64) (*schema.ProjectQuickStats, error) {
	args := m.Called(ctx, id)
	ret, _ := args.Get(0).(*schema.ProjectQuickStats)
	return ret, args.Error(1)
}

// ListRecords implements the RecordStore interface.
func (m *MockStore) ListRecords(ctx context.Context) ([]schema.AnalysisRecord, error) {
	args := m.Called(ctx)
	ret, _ := args.Get(0).([]schema.AnalysisRecord)
	return ret, args.Error(1)
}

// ListProjectRecords implements the RecordStore interface.
func (m *MockStore) ListProjectRecords(ctx context.Context, projectID int64) ([]schema.AnalysisRecord, error) {
	args := m.Called(ctx, projectID)
	ret, _ := args.Get(0).([]schema.AnalysisRecord)
	return ret, args.Error(1)
}

// SaveRecords implements the RecordStore interface.
func (m *MockStore) SaveRecords(ctx context.Context, records []schema.AnalysisRecord) ([]int64, error) {
	args := m.Called(ctx, records)
	ret, _ := args.Get(0).([]int64)
	return ret, args.Error(1)
}

// DeleteAllRecords implements the RecordStore interface.
func (m *MockStore) DeleteAllRecords(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// DeleteRecord implements the RecordStore interface.
func (m *MockStore) DeleteRecord(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ListValues implements the ValueStore interface.
func (m *MockStore) ListValues(ctx context.Context, kind schema.ValueKind) ([]schema.ValueRecord, error) {
	args := m.Called(ctx, kind)
	ret, _ := args.Get(0).([]schema.ValueRecord)
	return ret, args.Error(1)
}

// ListProjectValues implements the ValueStore interface.
func (m *MockStore) ListProjectValues(ctx context.Context, kind schema.ValueKind, projectID int64) ([]schema.ValueRecord, error) {
	args := m.Called(ctx, kind, projectID)
	ret, _ := args.Get(0).([]schema.ValueRecord)
	return ret, args.Error(1)
}

// ListPortfolioValues implements the ValueStore interface.
func (m *MockStore) ListPortfolioValues(ctx context.Context, kind schema.ValueKind) ([]schema.ValueRecord, error) {
	args := m.Called(ctx, kind)
	ret, _ := args.Get(0).([]schema.ValueRecord)
	return ret, args.Error(1)
}

// SaveValues implements the ValueStore interface.
func (m *MockStore) SaveValues(ctx context.Context, kind schema.ValueKind, values []schema.ValueRecord) ([]int64, error) {
	args := m.Called(ctx, kind, values)
	ret, _ := args.Get(0).([]int64)
	return ret, args.Error(1)
}

// DeleteValuesScoped implements the ValueStore interface.
func (m *MockStore) DeleteValuesScoped(ctx context.Context, kind schema.ValueKind, projectID int64, year int, quarter, month string) (int64, error) {
	args := m.Called(ctx, kind, projectID, year, quarter, month)
	return args.Get(0).(int64), args.Error(1)
}

// DeleteAllValues implements the ValueStore interface.
func (m *MockStore) DeleteAllValues(ctx context.Context, kind schema.ValueKind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

// DeleteValue implements the ValueStore interface.
func (m *MockStore) DeleteValue(ctx context.Context, kind schema.ValueKind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

// Ping implements the Store interface.
func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close implements the Store interface.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
