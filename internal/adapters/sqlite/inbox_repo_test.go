package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/secondbrain/internal/adapters/sqlite"
	"github.com/example/secondbrain/internal/ports/secondary"
)

func TestInboxAddAndGet(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewInboxRepository(testDB)
	ctx := context.Background()

	id, err := repo.Add(ctx, "call mom about dinner")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	item, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if item.RawText != "call mom about dinner" {
		t.Errorf("RawText = %q", item.RawText)
	}
	if item.Status != secondary.StatusUnprocessed {
		t.Errorf("Status = %q, want unprocessed", item.Status)
	}
}

func TestInboxGetMissing(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewInboxRepository(testDB)

	if _, err := repo.GetByID(context.Background(), 42); err == nil {
		t.Fatal("expected error for missing inbox item")
	}
}

func TestListUnprocessedOrderAndLimit(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewInboxRepository(testDB)
	ctx := context.Background()

	first := seedInboxItem(t, testDB, "first", "unprocessed")
	seedInboxItem(t, testDB, "done already", "processed")
	second := seedInboxItem(t, testDB, "second", "unprocessed")
	seedInboxItem(t, testDB, "third", "unprocessed")

	items, err := repo.ListUnprocessed(ctx, 2)
	if err != nil {
		t.Fatalf("ListUnprocessed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// Oldest-id-first, terminal items excluded.
	if items[0].ID != first || items[1].ID != second {
		t.Errorf("order = [%d, %d], want [%d, %d]", items[0].ID, items[1].ID, first, second)
	}
}

func TestInboxListByStatus(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewInboxRepository(testDB)
	ctx := context.Background()

	seedInboxItem(t, testDB, "pending", "unprocessed")
	reviewID := seedInboxItem(t, testDB, "stuck", "needs_review")

	items, err := repo.List(ctx, secondary.InboxFilters{Status: secondary.StatusNeedsReview})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(items) != 1 || items[0].ID != reviewID {
		t.Fatalf("items = %+v, want just the needs_review item", items)
	}
}
