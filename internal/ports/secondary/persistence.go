// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import "context"

// Inbox item statuses. An item is mutated exactly once per pipeline pass,
// from unprocessed to one of the terminal statuses; the core never reverts
// a terminal item.
const (
	StatusUnprocessed = "unprocessed"
	StatusProcessed   = "processed"
	StatusNeedsReview = "needs_review"
)

// Audit log event names. Each terminal decision appends exactly one event.
const (
	EventProcessed   = "processed"
	EventNeedsReview = "needs_review"
)

// InboxRepository defines the secondary port for inbox persistence.
type InboxRepository interface {
	// Add persists a new unprocessed inbox item and returns its ID.
	Add(ctx context.Context, rawText string) (int64, error)

	// GetByID retrieves an inbox item by its ID.
	GetByID(ctx context.Context, id int64) (*InboxRecord, error)

	// ListUnprocessed retrieves unprocessed items oldest-id-first, bounded
	// by limit.
	ListUnprocessed(ctx context.Context, limit int) ([]*InboxRecord, error)

	// List retrieves inbox items matching the given filters.
	List(ctx context.Context, filters InboxFilters) ([]*InboxRecord, error)
}

// InboxRecord represents an inbox item as stored in persistence.
type InboxRecord struct {
	ID         int64
	RawText    string
	Status     string
	Category   string
	Confidence float64
	Model      string
	Error      string
	CreatedAt  string
}

// InboxFilters contains filter options for querying inbox items.
type InboxFilters struct {
	Status string
	Limit  int
}

// PeopleRepository defines the secondary port for people persistence.
type PeopleRepository interface {
	// Insert persists a new person record and returns its ID.
	Insert(ctx context.Context, person *PersonRecord) (int64, error)

	// List retrieves people, most recently updated first.
	List(ctx context.Context, limit int) ([]*PersonRecord, error)
}

// PersonRecord represents a person as stored in persistence.
type PersonRecord struct {
	ID          int64
	Name        string
	Context     string
	FollowUp    string
	LastContact string
	UpdatedAt   string
}

// ProjectRepository defines the secondary port for project persistence.
type ProjectRepository interface {
	// Insert persists a new project record and returns its ID.
	Insert(ctx context.Context, project *ProjectRecord) (int64, error)

	// List retrieves projects, optionally filtered by status.
	List(ctx context.Context, status string, limit int) ([]*ProjectRecord, error)
}

// ProjectRecord represents a project as stored in persistence.
type ProjectRecord struct {
	ID         int64
	Name       string
	Status     string
	NextAction string
	Notes      string
	UpdatedAt  string
}

// IdeaRepository defines the secondary port for idea persistence.
type IdeaRepository interface {
	// Insert persists a new idea record and returns its ID.
	Insert(ctx context.Context, idea *IdeaRecord) (int64, error)

	// List retrieves ideas, newest first.
	List(ctx context.Context, limit int) ([]*IdeaRecord, error)
}

// IdeaRecord represents an idea as stored in persistence.
type IdeaRecord struct {
	ID       int64
	Title    string
	OneLiner string
	Notes    string
}

// AdminTaskRepository defines the secondary port for admin task persistence.
type AdminTaskRepository interface {
	// Insert persists a new admin task record and returns its ID.
	Insert(ctx context.Context, task *AdminTaskRecord) (int64, error)

	// List retrieves admin tasks, optionally filtered by status.
	List(ctx context.Context, status string, limit int) ([]*AdminTaskRecord, error)
}

// AdminTaskRecord represents an admin task as stored in persistence.
type AdminTaskRecord struct {
	ID      int64
	Task    string
	DueDate string
	Status  string
}

// EventLogRepository defines the secondary port for reading the audit log.
// The log is append-only; writes happen exclusively through OutcomeStore
// so that every event commits atomically with its routing decision.
type EventLogRepository interface {
	// List retrieves log events, newest first, bounded by limit.
	List(ctx context.Context, limit int) ([]*LogEventRecord, error)
}

// LogEventRecord represents an audit log event as stored in persistence.
type LogEventRecord struct {
	ID        int64
	Event     string
	InboxID   int64
	Details   string
	CreatedAt string
}
