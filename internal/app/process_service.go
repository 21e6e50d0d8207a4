package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/example/secondbrain/internal/core/alias"
	"github.com/example/secondbrain/internal/core/classify"
	"github.com/example/secondbrain/internal/core/route"
	"github.com/example/secondbrain/internal/ports/primary"
	"github.com/example/secondbrain/internal/ports/secondary"
)

// ModelPrefix is the model tag recorded on items routed by the
// deterministic prefix router.
const ModelPrefix = "prefix"

// ProcessServiceImpl implements the ProcessService interface. It is the
// classification-and-routing pipeline: prefix stage, fallback classifier
// with bounded retries, validation, per-category field extraction, and an
// atomic per-item commit.
type ProcessServiceImpl struct {
	inboxRepo  secondary.InboxRepository
	outcomes   secondary.OutcomeStore
	classifier secondary.Classifier
	aliases    alias.Table
	threshold  float64
	maxRetries int
}

// NewProcessService creates a new ProcessService with injected dependencies.
func NewProcessService(
	inboxRepo secondary.InboxRepository,
	outcomes secondary.OutcomeStore,
	classifier secondary.Classifier,
	aliases alias.Table,
	threshold float64,
	maxRetries int,
) *ProcessServiceImpl {
	return &ProcessServiceImpl{
		inboxRepo:  inboxRepo,
		outcomes:   outcomes,
		classifier: classifier,
		aliases:    aliases,
		threshold:  threshold,
		maxRetries: maxRetries,
	}
}

// ProcessInbox routes up to limit unprocessed items, oldest first. Each
// item reaches exactly one terminal outcome committed atomically with its
// log event; a commit failure leaves that item unprocessed for the next
// run and never aborts the rest of the batch.
func (s *ProcessServiceImpl) ProcessInbox(ctx context.Context, limit int) (*primary.ProcessReport, error) {
	items, err := s.inboxRepo.ListUnprocessed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unprocessed items: %w", err)
	}

	report := &primary.ProcessReport{}
	for _, item := range items {
		result := s.processItem(ctx, item)
		report.Results = append(report.Results, result)

		switch result.Status {
		case secondary.StatusProcessed:
			report.Processed++
		case secondary.StatusNeedsReview:
			report.NeedsReview++
		default:
			report.Failed++
		}
	}

	return report, nil
}

// processItem routes a single item through the two-stage router and
// commits the outcome. All per-item failures are captured into the
// returned result, never propagated.
func (s *ProcessServiceImpl) processItem(ctx context.Context, item *secondary.InboxRecord) primary.ItemResult {
	var outcome *secondary.Outcome

	if cat, remainder, ok := route.Route(item.RawText); ok {
		outcome = s.prefixOutcome(item, cat, remainder)
	} else {
		outcome = s.fallbackOutcome(ctx, item)
	}

	if err := s.outcomes.Commit(ctx, outcome); err != nil {
		return primary.ItemResult{
			InboxID: item.ID,
			Status:  primary.ResultError,
			Detail:  err.Error(),
		}
	}

	return primary.ItemResult{
		InboxID:  item.ID,
		Status:   outcome.Status,
		Category: outcome.Category,
		Model:    outcome.Model,
		Detail:   outcome.Error,
	}
}

// prefixOutcome builds the outcome for a prefix-routed item. The prefix is
// authoritative: confidence is fixed at 1.0 and no external call is made.
func (s *ProcessServiceImpl) prefixOutcome(item *secondary.InboxRecord, cat classify.Category, remainder string) *secondary.Outcome {
	if remainder == "" {
		return s.needsReview(item.ID, string(cat), 1.0, ModelPrefix,
			"empty after prefix",
			fmt.Sprintf("prefix %s but empty", cat))
	}

	outcome := &secondary.Outcome{
		InboxID:    item.ID,
		Status:     secondary.StatusProcessed,
		Category:   string(cat),
		Confidence: 1.0,
		Model:      ModelPrefix,
		LogEvent:   secondary.EventProcessed,
		LogDetails: fmt.Sprintf("prefix_route -> %s", cat),
	}

	switch cat {
	case classify.CategoryAdmin:
		outcome.Admin = &secondary.AdminTaskRecord{
			Task:   remainder,
			Status: string(classify.AdminOpen),
		}

	case classify.CategoryProjects:
		outcome.Project = &secondary.ProjectRecord{
			Name:   remainder,
			Status: string(classify.ProjectActive),
		}

	case classify.CategoryIdeas:
		outcome.Idea = &secondary.IdeaRecord{Title: remainder}

	case classify.CategoryPeople:
		name := s.aliases.Canonicalize(remainder)
		if name == "" {
			return s.needsReview(item.ID, string(classify.CategoryPeople), 1.0, ModelPrefix,
				"missing person name", "missing person name (prefix)")
		}
		// Keep the original raw text as follow-up context; the short name
		// token alone would discard it.
		outcome.Person = &secondary.PersonRecord{
			Name:     name,
			FollowUp: item.RawText,
		}
	}

	return outcome
}

// fallbackOutcome classifies an item through the external model. The retry
// budget is spent only on process failures and unparsable output; the
// first parseable object ends the loop and is judged once by validation.
func (s *ProcessServiceImpl) fallbackOutcome(ctx context.Context, item *secondary.InboxRecord) *secondary.Outcome {
	model := s.classifier.Model()

	var obj map[string]any
	var lastErr string

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		out, err := s.classifier.Classify(ctx, item.RawText)
		if err != nil {
			lastErr = err.Error()
			continue
		}

		parsed, ok := classify.ExtractJSON(out)
		if !ok {
			lastErr = fmt.Sprintf("invalid json (attempt %d)", attempt)
			continue
		}

		obj = parsed
		break
	}

	if obj == nil {
		// Total classifier failure: no partial record, just the last error.
		return s.needsReview(item.ID, "", 0, model, lastErr, lastErr)
	}

	result := classify.FromObject(obj)
	detail := compactJSON(obj)

	verdict := classify.Gate(result, s.threshold)
	if !verdict.OK {
		return s.needsReview(item.ID, string(verdict.Category), result.Confidence, model, "", detail)
	}

	outcome := &secondary.Outcome{
		InboxID:    item.ID,
		Status:     secondary.StatusProcessed,
		Category:   string(verdict.Category),
		Confidence: result.Confidence,
		Model:      model,
		LogEvent:   secondary.EventProcessed,
		LogDetails: detail,
	}

	switch verdict.Category {
	case classify.CategoryPeople:
		name := trimField(result.Fields["name"])
		if name == "" {
			name = s.aliases.InferPersonName(item.RawText)
		}
		if name == "" {
			return s.needsReview(item.ID, string(classify.CategoryPeople), result.Confidence, model,
				"missing person name", "missing person name")
		}
		outcome.Person = &secondary.PersonRecord{
			Name:        name,
			Context:     result.Fields["context"],
			FollowUp:    result.Fields["follow_up"],
			LastContact: result.Fields["last_contact"],
		}

	case classify.CategoryProjects:
		name := trimField(result.Fields["name"])
		if name == "" {
			return s.needsReview(item.ID, string(classify.CategoryProjects), result.Confidence, model,
				"missing project name", "missing project name")
		}
		outcome.Project = &secondary.ProjectRecord{
			Name:       name,
			Status:     string(classify.ParseProjectStatus(result.Fields["status"])),
			NextAction: result.Fields["next_action"],
			Notes:      result.Fields["notes"],
		}

	case classify.CategoryIdeas:
		// Ideas alone fall back to the classifier's top-level title.
		title := trimField(result.Fields["title"])
		if title == "" {
			title = trimField(result.Title)
		}
		if title == "" {
			return s.needsReview(item.ID, string(classify.CategoryIdeas), result.Confidence, model,
				"missing idea title", "missing idea title")
		}
		outcome.Idea = &secondary.IdeaRecord{
			Title:    title,
			OneLiner: result.Fields["one_liner"],
			Notes:    result.Fields["notes"],
		}

	case classify.CategoryAdmin:
		task := trimField(result.Fields["task"])
		if task == "" {
			return s.needsReview(item.ID, string(classify.CategoryAdmin), result.Confidence, model,
				"missing admin task", "missing admin task")
		}
		outcome.Admin = &secondary.AdminTaskRecord{
			Task:    task,
			DueDate: result.Fields["due_date"],
			Status:  string(classify.ParseAdminStatus(result.Fields["status"])),
		}
	}

	return outcome
}

// needsReview builds a needs_review outcome with its log event.
func (s *ProcessServiceImpl) needsReview(inboxID int64, category string, confidence float64, model, reason, logDetails string) *secondary.Outcome {
	return &secondary.Outcome{
		InboxID:    inboxID,
		Status:     secondary.StatusNeedsReview,
		Category:   category,
		Confidence: confidence,
		Model:      model,
		Error:      reason,
		LogEvent:   secondary.EventNeedsReview,
		LogDetails: logDetails,
	}
}

// trimField trims a required field before the non-empty check. Optional
// fields are stored as extracted.
func trimField(s string) string {
	return strings.TrimSpace(s)
}

func compactJSON(obj map[string]any) string {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Sprintf("%v", obj)
	}
	return string(data)
}

// Ensure ProcessServiceImpl implements the interface
var _ primary.ProcessService = (*ProcessServiceImpl)(nil)
