package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ticketdash/ticketdash/core"
	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

const projectColumns = `pr.id, pr.portfolio_id, pr.name, COALESCE(pr.description, ''), COALESCE(p.name, ''), pr.created_at`

const projectListQuery = `
	SELECT ` + projectColumns + `
	FROM projects pr
	LEFT JOIN portfolios p ON p.id = pr.portfolio_id
	ORDER BY pr.name`

// ListProjects returns all projects with their portfolio names.
func (s *Store) ListProjects(ctx context.Context) ([]schema.Project, error) {
	rows, err := s.db.QueryContext(ctx, projectListQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []schema.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// GetProject returns one project by id.
func (s *Store) GetProject(ctx context.Context, id int64) (*schema.Project, error) {
	query := s.rebind(`
		SELECT ` + projectColumns + `
		FROM projects pr
		LEFT JOIN portfolios p ON p.id = pr.portfolio_id
		WHERE pr.id = ?`)

	p, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contract.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*schema.Project, error) {
	var p schema.Project
	var portfolioID sql.NullInt64
	if err := row.Scan(&p.ID, &portfolioID, &p.Name, &p.Description, &p.PortfolioName, &p.CreatedAt); err != nil {
		return nil, err
	}
	if portfolioID.Valid {
		p.PortfolioID = &portfolioID.Int64
	}
	return &p, nil
}

// CreateProject inserts a project, optionally assigned to a portfolio.
func (s *Store) CreateProject(ctx context.Context, name, description string, portfolioID *int64) (*schema.Project, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	id, err := insertReturningID(ctx, tx, s,
		`INSERT INTO projects (name, description, portfolio_id) VALUES (?, ?, ?)`,
		name, description, nullableID(portfolioID))
	if isDuplicateErr(err) {
		return nil, contract.ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.GetProject(ctx, id)
}

// UpdateProject overwrites name, description and portfolio assignment.
func (s *Store) UpdateProject(ctx context.Context, id int64, name, description string, portfolioID *int64) (*schema.Project, error) {
	res, err := s.db.ExecContext(ctx,
		s.rebind(`UPDATE projects SET name = ?, description = ?, portfolio_id = ? WHERE id = ?`),
		name, description, nullableID(portfolioID), id)
	if isDuplicateErr(err) {
		return nil, contract.ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project %d: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		if _, err := s.GetProject(ctx, id); err != nil {
			return nil, err
		}
	}
	return s.GetProject(ctx, id)
}

// DeleteProject removes a project. Records and data points cascade.
func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM projects WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// GetProjectQuickStats returns the cached record totals for one project.
// The rate comes from summed counts, matching every other aggregate.
func (s *Store) GetProjectQuickStats(ctx context.Context, id int64) (*schema.ProjectQuickStats, error) {
	query := s.rebind(`
		SELECT COUNT(*), COALESCE(SUM(total_tickets), 0), COALESCE(SUM(resolved_in_2days), 0)
		FROM analysis_records
		WHERE project_id = ?`)

	var records int
	var stats schema.ProjectQuickStats
	err := s.db.QueryRowContext(ctx, query, id).Scan(&records, &stats.TotalTickets, &stats.Within2Days)
	if err != nil {
		return nil, fmt.Errorf("failed to get quick stats for project %d: %w", id, err)
	}
	stats.ResolvedTickets = stats.Within2Days
	stats.ResolutionRate = core.Rate(stats.Within2Days, stats.TotalTickets)
	return &stats, nil
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
