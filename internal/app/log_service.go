package app

import (
	"context"
	"fmt"

	"github.com/example/secondbrain/internal/ports/primary"
	"github.com/example/secondbrain/internal/ports/secondary"
)

// LogServiceImpl implements the LogService interface.
type LogServiceImpl struct {
	logRepo secondary.EventLogRepository
}

// NewLogService creates a new LogService with injected dependencies.
func NewLogService(logRepo secondary.EventLogRepository) *LogServiceImpl {
	return &LogServiceImpl{logRepo: logRepo}
}

// ListEvents retrieves audit events, newest first.
func (s *LogServiceImpl) ListEvents(ctx context.Context, limit int) ([]*primary.LogEntry, error) {
	records, err := s.logRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list log events: %w", err)
	}

	entries := make([]*primary.LogEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.LogEntry{
			ID:        r.ID,
			Event:     r.Event,
			InboxID:   r.InboxID,
			Details:   r.Details,
			CreatedAt: r.CreatedAt,
		}
	}
	return entries, nil
}

// Ensure LogServiceImpl implements the interface
var _ primary.LogService = (*LogServiceImpl)(nil)
