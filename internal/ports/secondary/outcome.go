package secondary

import "context"

// Outcome is the full routing decision for one inbox item: at most one
// destination record, the terminal inbox status, and the audit log event.
// At most one of Person/Project/Idea/Admin is non-nil, and only for
// processed outcomes.
type Outcome struct {
	InboxID    int64
	Status     string // StatusProcessed or StatusNeedsReview
	Category   string // empty leaves the stored category untouched
	Confidence float64
	Model      string
	Error      string

	LogEvent   string // EventProcessed or EventNeedsReview
	LogDetails string // truncated to 2000 chars on write

	Person  *PersonRecord
	Project *ProjectRecord
	Idea    *IdeaRecord
	Admin   *AdminTaskRecord
}

// OutcomeStore defines the secondary port for committing routing
// decisions. Commit applies the destination insert (if any), the inbox
// status transition, and the log event as one atomic unit; a failure
// partway through leaves the item untouched for the next run. Committing
// an item that is no longer unprocessed is an error and writes nothing.
type OutcomeStore interface {
	Commit(ctx context.Context, outcome *Outcome) error
}
