package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/secondbrain/internal/ports/secondary"
)

// maxLogDetails caps the details column of log_events.
const maxLogDetails = 2000

// OutcomeStore implements secondary.OutcomeStore with SQLite. Each Commit
// runs the destination insert, the inbox status transition, and the log
// event in a single transaction, so an item can never end up with a
// terminal status but no log entry, or a record without a status update.
type OutcomeStore struct {
	db *sql.DB
}

// NewOutcomeStore creates a new SQLite outcome store.
func NewOutcomeStore(db *sql.DB) *OutcomeStore {
	return &OutcomeStore{db: db}
}

// Commit atomically applies a routing decision. The inbox update is
// guarded on the item still being unprocessed: committing an item already
// in a terminal status is an error and writes nothing, which makes
// re-running the pipeline over processed items safe.
func (s *OutcomeStore) Commit(ctx context.Context, outcome *secondary.Outcome) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertDestination(ctx, tx, outcome); err != nil {
		return err
	}

	var category sql.NullString
	if outcome.Category != "" {
		category = sql.NullString{String: outcome.Category, Valid: true}
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE inbox SET status = ?, category = ?, confidence = ?, model = ?, error = ? WHERE id = ? AND status = 'unprocessed'",
		outcome.Status, category, outcome.Confidence, outcome.Model, outcome.Error, outcome.InboxID,
	)
	if err != nil {
		return fmt.Errorf("failed to update inbox item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("inbox item %d is not unprocessed", outcome.InboxID)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO log_events (event, inbox_id, details) VALUES (?, ?, ?)",
		outcome.LogEvent, outcome.InboxID, truncateDetails(outcome.LogDetails),
	); err != nil {
		return fmt.Errorf("failed to append log event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit outcome: %w", err)
	}

	return nil
}

func insertDestination(ctx context.Context, tx *sql.Tx, outcome *secondary.Outcome) error {
	switch {
	case outcome.Person != nil:
		p := outcome.Person
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO people (name, context, follow_up, last_contact, updated_at) VALUES (?, ?, ?, ?, datetime('now'))",
			p.Name, p.Context, p.FollowUp, p.LastContact,
		); err != nil {
			return fmt.Errorf("failed to insert person: %w", err)
		}

	case outcome.Project != nil:
		p := outcome.Project
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO projects (name, status, next_action, notes, updated_at) VALUES (?, ?, ?, ?, datetime('now'))",
			p.Name, p.Status, p.NextAction, p.Notes,
		); err != nil {
			return fmt.Errorf("failed to insert project: %w", err)
		}

	case outcome.Idea != nil:
		i := outcome.Idea
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO ideas (title, one_liner, notes) VALUES (?, ?, ?)",
			i.Title, i.OneLiner, i.Notes,
		); err != nil {
			return fmt.Errorf("failed to insert idea: %w", err)
		}

	case outcome.Admin != nil:
		a := outcome.Admin
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO admin (task, due_date, status) VALUES (?, ?, ?)",
			a.Task, a.DueDate, a.Status,
		); err != nil {
			return fmt.Errorf("failed to insert admin task: %w", err)
		}
	}

	return nil
}

func truncateDetails(details string) string {
	if len(details) > maxLogDetails {
		return details[:maxLogDetails]
	}
	return details
}

// Ensure OutcomeStore implements the interface
var _ secondary.OutcomeStore = (*OutcomeStore)(nil)
