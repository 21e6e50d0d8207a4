package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/secondbrain/internal/ports/secondary"
)

// EventLogRepository implements secondary.EventLogRepository with SQLite.
// It is read-only; log rows are written inside OutcomeStore transactions.
type EventLogRepository struct {
	db *sql.DB
}

// NewEventLogRepository creates a new SQLite event log repository.
func NewEventLogRepository(db *sql.DB) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// List retrieves log events, newest first, bounded by limit.
func (r *EventLogRepository) List(ctx context.Context, limit int) ([]*secondary.LogEventRecord, error) {
	query := "SELECT id, event, inbox_id, details, created_at FROM log_events ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list log events: %w", err)
	}
	defer rows.Close()

	var events []*secondary.LogEventRecord
	for rows.Next() {
		var (
			inboxID   sql.NullInt64
			details   sql.NullString
			createdAt time.Time
		)

		record := &secondary.LogEventRecord{}
		if err := rows.Scan(&record.ID, &record.Event, &inboxID, &details, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan log event: %w", err)
		}

		record.InboxID = inboxID.Int64
		record.Details = details.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		events = append(events, record)
	}

	return events, nil
}

// Ensure EventLogRepository implements the interface
var _ secondary.EventLogRepository = (*EventLogRepository)(nil)
