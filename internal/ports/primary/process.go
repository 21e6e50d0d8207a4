// Package primary defines the primary ports (driving interfaces) for the
// application and their request/response types.
package primary

import "context"

// ProcessService is the primary port for the classification pipeline.
type ProcessService interface {
	// ProcessInbox routes up to limit unprocessed inbox items, oldest
	// first. Items are processed strictly one at a time; a failure in one
	// item never aborts the rest of the batch. The returned report covers
	// every item that was attempted.
	ProcessInbox(ctx context.Context, limit int) (*ProcessReport, error)
}

// ProcessReport summarizes one pipeline run.
type ProcessReport struct {
	Results     []ItemResult
	Processed   int
	NeedsReview int
	Failed      int // commit failures; items left unprocessed for the next run
}

// ItemResult is the outcome of routing a single inbox item.
type ItemResult struct {
	InboxID  int64
	Status   string // processed, needs_review, or error
	Category string
	Model    string
	Detail   string // review reason or commit error, empty when processed cleanly
}

// ItemResult statuses beyond the terminal inbox statuses.
const (
	// ResultError marks an item whose commit failed; it stays unprocessed.
	ResultError = "error"
)
