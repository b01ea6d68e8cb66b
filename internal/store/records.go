package store

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

const recordColumns = `r.id, r.project_id, COALESCE(p.name, ''), r.filename, r.year,
	COALESCE(r.months, ''), r.total_tickets, r.resolved_in_2days, r.success_rate,
	COALESCE(r.analysis_data, ''), r.created_at`

// ListRecords returns all analysis records with project names, newest first.
func (s *Store) ListRecords(ctx context.Context) ([]schema.AnalysisRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM analysis_records r
		LEFT JOIN projects p ON p.id = r.project_id
		ORDER BY r.created_at DESC, r.id DESC`
	return s.queryRecords(ctx, query)
}

// ListProjectRecords returns one project's records, newest first.
func (s *Store) ListProjectRecords(ctx context.Context, projectID int64) ([]schema.AnalysisRecord, error) {
	query := s.rebind(`
		SELECT ` + recordColumns + `
		FROM analysis_records r
		LEFT JOIN projects p ON p.id = r.project_id
		WHERE r.project_id = ?
		ORDER BY r.created_at DESC, r.id DESC`)
	return s.queryRecords(ctx, query, projectID)
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]schema.AnalysisRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.AnalysisRecord
	for rows.Next() {
		var rec schema.AnalysisRecord
		var months, data string
		err := rows.Scan(&rec.ID, &rec.ProjectID, &rec.ProjectName, &rec.Filename, &rec.Year,
			&months, &rec.TotalTickets, &rec.ResolvedIn2Days, &rec.SuccessRate,
			&data, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		// Broken months JSON leaves an empty list; the per-month detail in
		// analysis_data still drives aggregation downstream.
		if months != "" {
			if err := json.Unmarshal([]byte(months), &rec.Months); err != nil {
				contract.LogWarn(fmt.Sprintf("skipping months for record %d", rec.ID), err)
			}
		}
		rec.AnalysisData = json.RawMessage(data)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SaveRecords inserts a batch of records in one transaction. Either every
// record lands or none do.
func (s *Store) SaveRecords(ctx context.Context, records []schema.AnalysisRecord) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO analysis_records
			(project_id, filename, year, months, total_tickets, resolved_in_2days, success_rate, analysis_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		months, err := json.Marshal(rec.Months)
		if err != nil {
			return nil, fmt.Errorf("failed to encode months for %s: %w", rec.Filename, err)
		}
		id, err := insertReturningID(ctx, tx, s, query,
			rec.ProjectID, rec.Filename, rec.Year, string(months),
			rec.TotalTickets, rec.ResolvedIn2Days, rec.SuccessRate, string(rec.AnalysisData))
		if err != nil {
			return nil, fmt.Errorf("failed to insert record %s: %w", rec.Filename, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteAllRecords wipes the record table.
func (s *Store) DeleteAllRecords(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM analysis_records`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete records: %w", err)
	}
	return res.RowsAffected()
}

// DeleteRecord removes one record by id.
func (s *Store) DeleteRecord(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM analysis_records WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return contract.ErrNotFound
	}
	return nil
}
