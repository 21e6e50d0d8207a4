package sqlite_test

import (
	"context"
	"strings"
	"testing"

	"github.com/example/secondbrain/internal/adapters/sqlite"
	"github.com/example/secondbrain/internal/ports/secondary"
)

func TestCommitProcessedWithProject(t *testing.T) {
	testDB := setupTestDB(t)
	store := sqlite.NewOutcomeStore(testDB)
	ctx := context.Background()

	inboxID := seedInboxItem(t, testDB, "project: migrate db", "unprocessed")

	err := store.Commit(ctx, &secondary.Outcome{
		InboxID:    inboxID,
		Status:     secondary.StatusProcessed,
		Category:   "projects",
		Confidence: 1.0,
		Model:      "prefix",
		LogEvent:   secondary.EventProcessed,
		LogDetails: "prefix_route -> projects",
		Project:    &secondary.ProjectRecord{Name: "migrate db", Status: "active"},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	var name, status string
	if err := testDB.QueryRow("SELECT name, status FROM projects").Scan(&name, &status); err != nil {
		t.Fatalf("expected one project row: %v", err)
	}
	if name != "migrate db" || status != "active" {
		t.Errorf("project = (%q, %q)", name, status)
	}

	var inboxStatus, model string
	var confidence float64
	if err := testDB.QueryRow("SELECT status, model, confidence FROM inbox WHERE id = ?", inboxID).Scan(&inboxStatus, &model, &confidence); err != nil {
		t.Fatalf("failed to read inbox row: %v", err)
	}
	if inboxStatus != "processed" || model != "prefix" || confidence != 1.0 {
		t.Errorf("inbox = (%q, %q, %v)", inboxStatus, model, confidence)
	}

	var event string
	var loggedInboxID int64
	if err := testDB.QueryRow("SELECT event, inbox_id FROM log_events").Scan(&event, &loggedInboxID); err != nil {
		t.Fatalf("expected exactly one log event: %v", err)
	}
	if event != "processed" || loggedInboxID != inboxID {
		t.Errorf("log event = (%q, %d)", event, loggedInboxID)
	}
}

func TestCommitNeedsReviewCreatesNoRecord(t *testing.T) {
	testDB := setupTestDB(t)
	store := sqlite.NewOutcomeStore(testDB)
	ctx := context.Background()

	inboxID := seedInboxItem(t, testDB, "admin:", "unprocessed")

	err := store.Commit(ctx, &secondary.Outcome{
		InboxID:    inboxID,
		Status:     secondary.StatusNeedsReview,
		Category:   "admin",
		Confidence: 1.0,
		Model:      "prefix",
		Error:      "empty after prefix",
		LogEvent:   secondary.EventNeedsReview,
		LogDetails: "prefix admin but empty",
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	for _, table := range []string{"people", "projects", "ideas", "admin"} {
		if n := countRows(t, testDB, table); n != 0 {
			t.Errorf("table %s has %d rows, want 0", table, n)
		}
	}

	var status, errText string
	if err := testDB.QueryRow("SELECT status, error FROM inbox WHERE id = ?", inboxID).Scan(&status, &errText); err != nil {
		t.Fatalf("failed to read inbox row: %v", err)
	}
	if status != "needs_review" || errText != "empty after prefix" {
		t.Errorf("inbox = (%q, %q)", status, errText)
	}

	if n := countRows(t, testDB, "log_events"); n != 1 {
		t.Errorf("log_events has %d rows, want 1", n)
	}
}

func TestCommitTerminalItemIsRejected(t *testing.T) {
	testDB := setupTestDB(t)
	store := sqlite.NewOutcomeStore(testDB)
	ctx := context.Background()

	inboxID := seedInboxItem(t, testDB, "idea: solar shed", "processed")

	err := store.Commit(ctx, &secondary.Outcome{
		InboxID:    inboxID,
		Status:     secondary.StatusProcessed,
		Category:   "ideas",
		Confidence: 1.0,
		Model:      "prefix",
		LogEvent:   secondary.EventProcessed,
		Idea:       &secondary.IdeaRecord{Title: "solar shed"},
	})
	if err == nil {
		t.Fatal("expected error committing an item already in a terminal status")
	}

	// The whole transaction must roll back: no duplicate record, no log row.
	if n := countRows(t, testDB, "ideas"); n != 0 {
		t.Errorf("ideas has %d rows, want 0", n)
	}
	if n := countRows(t, testDB, "log_events"); n != 0 {
		t.Errorf("log_events has %d rows, want 0", n)
	}
}

func TestCommitTruncatesLogDetails(t *testing.T) {
	testDB := setupTestDB(t)
	store := sqlite.NewOutcomeStore(testDB)
	ctx := context.Background()

	inboxID := seedInboxItem(t, testDB, "noise", "unprocessed")

	err := store.Commit(ctx, &secondary.Outcome{
		InboxID:    inboxID,
		Status:     secondary.StatusNeedsReview,
		Model:      "phi4-mini:latest",
		Error:      "invalid json (attempt 2)",
		LogEvent:   secondary.EventNeedsReview,
		LogDetails: strings.Repeat("x", 5000),
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	var details string
	if err := testDB.QueryRow("SELECT details FROM log_events").Scan(&details); err != nil {
		t.Fatalf("failed to read log event: %v", err)
	}
	if len(details) != 2000 {
		t.Errorf("details length = %d, want 2000", len(details))
	}
}

func TestCommitEmptyCategoryLeavesNull(t *testing.T) {
	testDB := setupTestDB(t)
	store := sqlite.NewOutcomeStore(testDB)
	ctx := context.Background()

	inboxID := seedInboxItem(t, testDB, "noise", "unprocessed")

	err := store.Commit(ctx, &secondary.Outcome{
		InboxID:  inboxID,
		Status:   secondary.StatusNeedsReview,
		Model:    "phi4-mini:latest",
		Error:    "ollama failed: model not found",
		LogEvent: secondary.EventNeedsReview,
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	var category any
	if err := testDB.QueryRow("SELECT category FROM inbox WHERE id = ?", inboxID).Scan(&category); err != nil {
		t.Fatalf("failed to read inbox row: %v", err)
	}
	if category != nil {
		t.Errorf("category = %v, want NULL", category)
	}
}
