package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/secondbrain/internal/adapters/sqlite"
	"github.com/example/secondbrain/internal/ports/secondary"
)

func TestPeopleInsertAndList(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewPeopleRepository(testDB)
	ctx := context.Background()

	_, err := repo.Insert(ctx, &secondary.PersonRecord{
		Name:     "Jane Doe",
		FollowUp: "person: mom",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	people, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(people) != 1 {
		t.Fatalf("got %d people, want 1", len(people))
	}
	if people[0].Name != "Jane Doe" {
		t.Errorf("Name = %q", people[0].Name)
	}
	if people[0].FollowUp != "person: mom" {
		t.Errorf("FollowUp = %q", people[0].FollowUp)
	}
	if people[0].UpdatedAt == "" {
		t.Error("UpdatedAt should be set on insert")
	}
}
