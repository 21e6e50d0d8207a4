package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/secondbrain/internal/ports/primary"
	"github.com/example/secondbrain/internal/ports/secondary"
)

// InboxServiceImpl implements the InboxService interface.
type InboxServiceImpl struct {
	inboxRepo secondary.InboxRepository
}

// NewInboxService creates a new InboxService with injected dependencies.
func NewInboxService(inboxRepo secondary.InboxRepository) *InboxServiceImpl {
	return &InboxServiceImpl{inboxRepo: inboxRepo}
}

// AddItem captures a new raw note.
func (s *InboxServiceImpl) AddItem(ctx context.Context, rawText string) (int64, error) {
	if strings.TrimSpace(rawText) == "" {
		return 0, fmt.Errorf("note text is empty")
	}

	id, err := s.inboxRepo.Add(ctx, rawText)
	if err != nil {
		return 0, fmt.Errorf("failed to add inbox item: %w", err)
	}
	return id, nil
}

// ListItems lists inbox items, optionally filtered by status.
func (s *InboxServiceImpl) ListItems(ctx context.Context, status string, limit int) ([]*primary.InboxItem, error) {
	records, err := s.inboxRepo.List(ctx, secondary.InboxFilters{Status: status, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox items: %w", err)
	}

	items := make([]*primary.InboxItem, len(records))
	for i, r := range records {
		items[i] = recordToInboxItem(r)
	}
	return items, nil
}

// ListReview lists items awaiting manual resolution.
func (s *InboxServiceImpl) ListReview(ctx context.Context, limit int) ([]*primary.InboxItem, error) {
	return s.ListItems(ctx, secondary.StatusNeedsReview, limit)
}

func recordToInboxItem(r *secondary.InboxRecord) *primary.InboxItem {
	return &primary.InboxItem{
		ID:         r.ID,
		RawText:    r.RawText,
		Status:     r.Status,
		Category:   r.Category,
		Confidence: r.Confidence,
		Model:      r.Model,
		Error:      r.Error,
		CreatedAt:  r.CreatedAt,
	}
}

// Ensure InboxServiceImpl implements the interface
var _ primary.InboxService = (*InboxServiceImpl)(nil)
