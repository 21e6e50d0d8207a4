// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/secondbrain/internal/ports/secondary"
)

// InboxRepository implements secondary.InboxRepository with SQLite.
type InboxRepository struct {
	db *sql.DB
}

// NewInboxRepository creates a new SQLite inbox repository.
func NewInboxRepository(db *sql.DB) *InboxRepository {
	return &InboxRepository{db: db}
}

// Add persists a new unprocessed inbox item.
func (r *InboxRepository) Add(ctx context.Context, rawText string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO inbox (raw_text, status) VALUES (?, 'unprocessed')",
		rawText,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add inbox item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inbox item ID: %w", err)
	}
	return id, nil
}

// GetByID retrieves an inbox item by its ID.
func (r *InboxRepository) GetByID(ctx context.Context, id int64) (*secondary.InboxRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, raw_text, status, category, confidence, model, error, created_at FROM inbox WHERE id = ?",
		id,
	)

	record, err := scanInboxRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("inbox item %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inbox item: %w", err)
	}
	return record, nil
}

// ListUnprocessed retrieves unprocessed items oldest-id-first, bounded by
// limit. This is the pipeline's work queue query.
func (r *InboxRepository) ListUnprocessed(ctx context.Context, limit int) ([]*secondary.InboxRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, raw_text, status, category, confidence, model, error, created_at FROM inbox WHERE status = 'unprocessed' ORDER BY id ASC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list unprocessed items: %w", err)
	}
	defer rows.Close()

	return collectInboxRows(rows)
}

// List retrieves inbox items matching the given filters, newest first.
func (r *InboxRepository) List(ctx context.Context, filters secondary.InboxFilters) ([]*secondary.InboxRecord, error) {
	query := "SELECT id, raw_text, status, category, confidence, model, error, created_at FROM inbox WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox items: %w", err)
	}
	defer rows.Close()

	return collectInboxRows(rows)
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInboxRow(row rowScanner) (*secondary.InboxRecord, error) {
	var (
		category   sql.NullString
		confidence sql.NullFloat64
		model      sql.NullString
		errText    sql.NullString
		createdAt  time.Time
	)

	record := &secondary.InboxRecord{}
	err := row.Scan(&record.ID, &record.RawText, &record.Status, &category, &confidence, &model, &errText, &createdAt)
	if err != nil {
		return nil, err
	}

	record.Category = category.String
	record.Confidence = confidence.Float64
	record.Model = model.String
	record.Error = errText.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

func collectInboxRows(rows *sql.Rows) ([]*secondary.InboxRecord, error) {
	var items []*secondary.InboxRecord
	for rows.Next() {
		record, err := scanInboxRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inbox item: %w", err)
		}
		items = append(items, record)
	}
	return items, nil
}

// Ensure InboxRepository implements the interface
var _ secondary.InboxRepository = (*InboxRepository)(nil)
