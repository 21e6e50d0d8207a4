package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/secondbrain/internal/ports/secondary"
)

// ProjectRepository implements secondary.ProjectRepository with SQLite.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new SQLite project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Insert persists a new project record.
func (r *ProjectRepository) Insert(ctx context.Context, project *secondary.ProjectRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (name, status, next_action, notes, updated_at) VALUES (?, ?, ?, ?, datetime('now'))",
		project.Name, project.Status, project.NextAction, project.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert project: %w", err)
	}
	return result.LastInsertId()
}

// List retrieves projects, optionally filtered by status.
func (r *ProjectRepository) List(ctx context.Context, status string, limit int) ([]*secondary.ProjectRecord, error) {
	query := "SELECT id, name, status, next_action, notes, updated_at FROM projects WHERE 1=1"
	args := []any{}

	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}

	query += " ORDER BY updated_at DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*secondary.ProjectRecord
	for rows.Next() {
		var (
			nextAction sql.NullString
			notes      sql.NullString
			updatedAt  sql.NullTime
		)

		record := &secondary.ProjectRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Status, &nextAction, &notes, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}

		record.NextAction = nextAction.String
		record.Notes = notes.String
		if updatedAt.Valid {
			record.UpdatedAt = updatedAt.Time.Format(time.RFC3339)
		}

		projects = append(projects, record)
	}

	return projects, nil
}

// Ensure ProjectRepository implements the interface
var _ secondary.ProjectRepository = (*ProjectRepository)(nil)
