package primary

import "context"

// InboxService is the primary port for capturing and inspecting inbox
// items.
type InboxService interface {
	// AddItem captures a new raw note and returns its inbox ID.
	AddItem(ctx context.Context, rawText string) (int64, error)

	// ListItems lists inbox items, optionally filtered by status.
	ListItems(ctx context.Context, status string, limit int) ([]*InboxItem, error)

	// ListReview lists items awaiting manual resolution.
	ListReview(ctx context.Context, limit int) ([]*InboxItem, error)
}

// InboxItem represents an inbox item for presentation.
type InboxItem struct {
	ID         int64
	RawText    string
	Status     string
	Category   string
	Confidence float64
	Model      string
	Error      string
	CreatedAt  string
}
