package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/secondbrain/internal/ports/secondary"
)

// AdminTaskRepository implements secondary.AdminTaskRepository with SQLite.
type AdminTaskRepository struct {
	db *sql.DB
}

// NewAdminTaskRepository creates a new SQLite admin task repository.
func NewAdminTaskRepository(db *sql.DB) *AdminTaskRepository {
	return &AdminTaskRepository{db: db}
}

// Insert persists a new admin task record.
func (r *AdminTaskRepository) Insert(ctx context.Context, task *secondary.AdminTaskRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO admin (task, due_date, status) VALUES (?, ?, ?)",
		task.Task, task.DueDate, task.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert admin task: %w", err)
	}
	return result.LastInsertId()
}

// List retrieves admin tasks, optionally filtered by status.
func (r *AdminTaskRepository) List(ctx context.Context, status string, limit int) ([]*secondary.AdminTaskRecord, error) {
	query := "SELECT id, task, due_date, status FROM admin WHERE 1=1"
	args := []any{}

	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}

	query += " ORDER BY id DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*secondary.AdminTaskRecord
	for rows.Next() {
		var dueDate sql.NullString

		record := &secondary.AdminTaskRecord{}
		if err := rows.Scan(&record.ID, &record.Task, &dueDate, &record.Status); err != nil {
			return nil, fmt.Errorf("failed to scan admin task: %w", err)
		}

		record.DueDate = dueDate.String

		tasks = append(tasks, record)
	}

	return tasks, nil
}

// Ensure AdminTaskRepository implements the interface
var _ secondary.AdminTaskRepository = (*AdminTaskRepository)(nil)
