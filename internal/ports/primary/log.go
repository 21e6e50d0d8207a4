package primary

import "context"

// LogService is the primary port for reading the audit trail.
type LogService interface {
	// ListEvents retrieves audit events, newest first.
	ListEvents(ctx context.Context, limit int) ([]*LogEntry, error)
}

// LogEntry represents an audit log event for presentation.
type LogEntry struct {
	ID        int64
	Event     string
	InboxID   int64
	Details   string
	CreatedAt string
}
