package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/secondbrain/internal/ports/secondary"
)

// IdeaRepository implements secondary.IdeaRepository with SQLite.
type IdeaRepository struct {
	db *sql.DB
}

// NewIdeaRepository creates a new SQLite idea repository.
func NewIdeaRepository(db *sql.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

// Insert persists a new idea record.
func (r *IdeaRepository) Insert(ctx context.Context, idea *secondary.IdeaRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO ideas (title, one_liner, notes) VALUES (?, ?, ?)",
		idea.Title, idea.OneLiner, idea.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert idea: %w", err)
	}
	return result.LastInsertId()
}

// List retrieves ideas, newest first.
func (r *IdeaRepository) List(ctx context.Context, limit int) ([]*secondary.IdeaRecord, error) {
	query := "SELECT id, title, one_liner, notes FROM ideas ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer rows.Close()

	var ideas []*secondary.IdeaRecord
	for rows.Next() {
		var oneLiner, notes sql.NullString

		record := &secondary.IdeaRecord{}
		if err := rows.Scan(&record.ID, &record.Title, &oneLiner, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}

		record.OneLiner = oneLiner.String
		record.Notes = notes.String

		ideas = append(ideas, record)
	}

	return ideas, nil
}

// Ensure IdeaRepository implements the interface
var _ secondary.IdeaRepository = (*IdeaRepository)(nil)
