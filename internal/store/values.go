package store

import (
	"context"
	"fmt"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

// valueTable maps a value kind onto its table. The two tables share one
// column layout, so every query below works for both.
func valueTable(kind schema.ValueKind) string {
	if kind == schema.AvailabilityKind {
		return "project_availability"
	}
	return "performance_statistics"
}

// ListValues returns all data points of one kind with project names.
func (s *Store) ListValues(ctx context.Context, kind schema.ValueKind) ([]schema.ValueRecord, error) {
	query := fmt.Sprintf(`
		SELECT v.id, v.project_id, COALESCE(p.name, ''), p.portfolio_id,
			v.year, v.quarter, v.month, v.value, COALESCE(v.filename, ''), v.created_at
		FROM %s v
		LEFT JOIN projects p ON p.id = v.project_id
		ORDER BY v.year DESC, v.quarter, v.month`, valueTable(kind))
	return s.queryValues(ctx, query)
}

// ListProjectValues returns one project's data points of one kind.
func (s *Store) ListProjectValues(ctx context.Context, kind schema.ValueKind, projectID int64) ([]schema.ValueRecord, error) {
	query := s.rebind(fmt.Sprintf(`
		SELECT v.id, v.project_id, COALESCE(p.name, ''), p.portfolio_id,
			v.year, v.quarter, v.month, v.value, COALESCE(v.filename, ''), v.created_at
		FROM %s v
		LEFT JOIN projects p ON p.id = v.project_id
		WHERE v.project_id = ?
		ORDER BY v.year DESC, v.quarter, v.month`, valueTable(kind)))
	return s.queryValues(ctx, query, projectID)
}

// ListPortfolioValues returns the data points of one kind whose projects
// are assigned to a portfolio.
func (s *Store) ListPortfolioValues(ctx context.Context, kind schema.ValueKind) ([]schema.ValueRecord, error) {
	query := fmt.Sprintf(`
		SELECT v.id, v.project_id, COALESCE(p.name, ''), p.portfolio_id,
			v.year, v.quarter, v.month, v.value, COALESCE(v.filename, ''), v.created_at
		FROM %s v
		JOIN projects p ON p.id = v.project_id
		WHERE p.portfolio_id IS NOT NULL
		ORDER BY v.year DESC, v.quarter, v.month`, valueTable(kind))
	return s.queryValues(ctx, query)
}

func (s *Store) queryValues(ctx context.Context, query string, args ...any) ([]schema.ValueRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query values: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var values []schema.ValueRecord
	for rows.Next() {
		var v schema.ValueRecord
		var portfolioID *int64
		err := rows.Scan(&v.ID, &v.ProjectID, &v.ProjectName, &portfolioID,
			&v.Year, &v.Quarter, &v.Month, &v.Value, &v.Filename, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan value: %w", err)
		}
		v.PortfolioID = portfolioID
		values = append(values, v)
	}
	return values, rows.Err()
}

// SaveValues inserts a batch of data points in one transaction.
func (s *Store) SaveValues(ctx context.Context, kind schema.ValueKind, values []schema.ValueRecord) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, year, quarter, month, value, filename)
		VALUES (?, ?, ?, ?, ?, ?)`, valueTable(kind))

	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := insertReturningID(ctx, tx, s, query,
			v.ProjectID, v.Year, v.Quarter, v.Month, v.Value, v.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to insert %s value: %w", kind, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteValuesScoped removes one project's data points narrowed by the
// non-zero filter fields.
func (s *Store) DeleteValuesScoped(ctx context.Context, kind schema.ValueKind, projectID int64, year int, quarter, month string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE project_id = ?`, valueTable(kind))
	args := []any{projectID}
	if year != 0 {
		query += ` AND year = ?`
		args = append(args, year)
	}
	if quarter != "" {
		query += ` AND quarter = ?`
		args = append(args, quarter)
	}
	if month != "" {
		query += ` AND LOWER(month) = LOWER(?)`
		args = append(args, month)
	}

	res, err := s.db.ExecContext(ctx, s.rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s values: %w", kind, err)
	}
	return res.RowsAffected()
}

// DeleteAllValues wipes one kind's table.
func (s *Store) DeleteAllValues(ctx context.Context, kind schema.ValueKind) (int64, error) {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, valueTable(kind)))
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s values: %w", kind, err)
	}
	return res.RowsAffected()
}

// DeleteValue removes one data point by id.
func (s *Store) DeleteValue(ctx context.Context, kind schema.ValueKind, id int64) error {
	res, err := s.db.ExecContext(ctx,
		s.rebind(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, valueTable(kind))), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s value %d: %w", kind, id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return contract.ErrNotFound
	}
	return nil
}
