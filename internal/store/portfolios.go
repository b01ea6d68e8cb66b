package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

const portfolioColumns = `p.id, p.name, COALESCE(p.description, ''), p.created_at, COUNT(pr.id)`

const portfolioListQuery = `
	SELECT ` + portfolioColumns + `
	FROM portfolios p
	LEFT JOIN projects pr ON pr.portfolio_id = p.id
	GROUP BY p.id, p.name, p.description, p.created_at
	ORDER BY p.name`

// ListPortfolios returns all portfolios with their project counts.
func (s *Store) ListPortfolios(ctx context.Context) ([]schema.Portfolio, error) {
	rows, err := s.db.QueryContext(ctx, portfolioListQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var portfolios []schema.Portfolio
	for rows.Next() {
		var p schema.Portfolio
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.ProjectCount); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio: %w", err)
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, rows.Err()
}

// GetPortfolio returns one portfolio by id.
func (s *Store) GetPortfolio(ctx context.Context, id int64) (*schema.Portfolio, error) {
	query := s.rebind(`
		SELECT ` + portfolioColumns + `
		FROM portfolios p
		LEFT JOIN projects pr ON pr.portfolio_id = p.id
		WHERE p.id = ?
		GROUP BY p.id, p.name, p.description, p.created_at`)

	var p schema.Portfolio
	err := s.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.ProjectCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contract.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio %d: %w", id, err)
	}
	return &p, nil
}

// CreatePortfolio inserts a portfolio and returns the stored row.
func (s *Store) CreatePortfolio(ctx context.Context, name, description string) (*schema.Portfolio, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	id, err := insertReturningID(ctx, tx, s,
		`INSERT INTO portfolios (name, description) VALUES (?, ?)`, name, description)
	if isDuplicateErr(err) {
		return nil, contract.ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.GetPortfolio(ctx, id)
}

// UpdatePortfolio overwrites name and description.
func (s *Store) UpdatePortfolio(ctx context.Context, id int64, name, description string) (*schema.Portfolio, error) {
	res, err := s.db.ExecContext(ctx,
		s.rebind(`UPDATE portfolios SET name = ?, description = ? WHERE id = ?`),
		name, description, id)
	if isDuplicateErr(err) {
		return nil, contract.ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio %d: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		if _, err := s.GetPortfolio(ctx, id); err != nil {
			return nil, err
		}
	}
	return s.GetPortfolio(ctx, id)
}

// DeletePortfolio removes a portfolio unless projects still reference it.
func (s *Store) DeletePortfolio(ctx context.Context, id int64) error {
	var attached int
	err := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT COUNT(*) FROM projects WHERE portfolio_id = ?`), id).Scan(&attached)
	if err != nil {
		return fmt.Errorf("failed to count attached projects: %w", err)
	}
	if attached > 0 {
		return contract.ErrPortfolioHasProjects
	}

	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM portfolios WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio %d: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return contract.ErrNotFound
	}
	return nil
}
