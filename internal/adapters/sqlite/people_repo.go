package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/secondbrain/internal/ports/secondary"
)

// PeopleRepository implements secondary.PeopleRepository with SQLite.
type PeopleRepository struct {
	db *sql.DB
}

// NewPeopleRepository creates a new SQLite people repository.
func NewPeopleRepository(db *sql.DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

// Insert persists a new person record.
func (r *PeopleRepository) Insert(ctx context.Context, person *secondary.PersonRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO people (name, context, follow_up, last_contact, updated_at) VALUES (?, ?, ?, ?, datetime('now'))",
		person.Name, person.Context, person.FollowUp, person.LastContact,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert person: %w", err)
	}
	return result.LastInsertId()
}

// List retrieves people, most recently updated first.
func (r *PeopleRepository) List(ctx context.Context, limit int) ([]*secondary.PersonRecord, error) {
	query := "SELECT id, name, context, follow_up, last_contact, updated_at FROM people ORDER BY updated_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []*secondary.PersonRecord
	for rows.Next() {
		var (
			personContext sql.NullString
			followUp      sql.NullString
			lastContact   sql.NullString
			updatedAt     sql.NullTime
		)

		record := &secondary.PersonRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &personContext, &followUp, &lastContact, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}

		record.Context = personContext.String
		record.FollowUp = followUp.String
		record.LastContact = lastContact.String
		if updatedAt.Valid {
			record.UpdatedAt = updatedAt.Time.Format(time.RFC3339)
		}

		people = append(people, record)
	}

	return people, nil
}

// Ensure PeopleRepository implements the interface
var _ secondary.PeopleRepository = (*PeopleRepository)(nil)
