package route

import (
	"testing"

	"github.com/example/secondbrain/internal/core/classify"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantCategory  classify.Category
		wantRemainder string
		wantMatch     bool
	}{
		{
			name:          "admin prefix",
			raw:           "admin: renew passport",
			wantCategory:  classify.CategoryAdmin,
			wantRemainder: "renew passport",
			wantMatch:     true,
		},
		{
			name:          "project singular",
			raw:           "project: migrate db",
			wantCategory:  classify.CategoryProjects,
			wantRemainder: "migrate db",
			wantMatch:     true,
		},
		{
			name:          "project plural",
			raw:           "projects: migrate db",
			wantCategory:  classify.CategoryProjects,
			wantRemainder: "migrate db",
			wantMatch:     true,
		},
		{
			name:          "idea singular",
			raw:           "idea: app that sorts mail",
			wantCategory:  classify.CategoryIdeas,
			wantRemainder: "app that sorts mail",
			wantMatch:     true,
		},
		{
			name:          "ideas plural",
			raw:           "ideas: app that sorts mail",
			wantCategory:  classify.CategoryIdeas,
			wantRemainder: "app that sorts mail",
			wantMatch:     true,
		},
		{
			name:          "person prefix",
			raw:           "person: mom",
			wantCategory:  classify.CategoryPeople,
			wantRemainder: "mom",
			wantMatch:     true,
		},
		{
			name:          "people prefix",
			raw:           "people: Jane",
			wantCategory:  classify.CategoryPeople,
			wantRemainder: "Jane",
			wantMatch:     true,
		},
		{
			name:          "case insensitive",
			raw:           "ADMIN: renew passport",
			wantCategory:  classify.CategoryAdmin,
			wantRemainder: "renew passport",
			wantMatch:     true,
		},
		{
			name:          "leading whitespace",
			raw:           "  admin: renew passport",
			wantCategory:  classify.CategoryAdmin,
			wantRemainder: "renew passport",
			wantMatch:     true,
		},
		{
			name:          "empty remainder",
			raw:           "Admin:",
			wantCategory:  classify.CategoryAdmin,
			wantRemainder: "",
			wantMatch:     true,
		},
		{
			name:          "whitespace-only remainder",
			raw:           "idea:   ",
			wantCategory:  classify.CategoryIdeas,
			wantRemainder: "",
			wantMatch:     true,
		},
		{
			name:      "no prefix",
			raw:       "call the dentist tomorrow",
			wantMatch: false,
		},
		{
			name:      "prefix word without colon",
			raw:       "admin renew passport",
			wantMatch: false,
		},
		{
			name:      "prefix not at start",
			raw:       "talked about admin: stuff",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, remainder, ok := Route(tt.raw)
			if ok != tt.wantMatch {
				t.Fatalf("Route(%q) match = %v, want %v", tt.raw, ok, tt.wantMatch)
			}
			if !tt.wantMatch {
				return
			}
			if cat != tt.wantCategory {
				t.Errorf("Route(%q) category = %q, want %q", tt.raw, cat, tt.wantCategory)
			}
			if remainder != tt.wantRemainder {
				t.Errorf("Route(%q) remainder = %q, want %q", tt.raw, remainder, tt.wantRemainder)
			}
		})
	}
}
