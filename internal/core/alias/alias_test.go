package alias

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAliasFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write alias file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeAliasFile(t, `{"Mom": "Jane Doe", "dad": "John Doe"}`)
	table := Load(path)

	if got, _ := table.Lookup("mom"); got != "Jane Doe" {
		t.Errorf("Lookup(mom) = %q, want Jane Doe (keys lowercased on load)", got)
	}
	if got, _ := table.Lookup("DAD"); got != "John Doe" {
		t.Errorf("Lookup(DAD) = %q, want John Doe", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	table := Load(filepath.Join(t.TempDir(), "nope.json"))
	if table == nil {
		t.Fatal("Load on missing file must return an empty table, not nil")
	}
	if len(table) != 0 {
		t.Errorf("table = %v, want empty", table)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeAliasFile(t, `{"mom": `)
	table := Load(path)
	if len(table) != 0 {
		t.Errorf("malformed file should degrade to empty table, got %v", table)
	}
}

func TestInferPersonName(t *testing.T) {
	table := Table{"mom": "Jane Doe"}

	tests := []struct {
		raw  string
		want string
	}{
		{"call mom about dinner", "Jane Doe"},
		{"Call MOM about dinner", "Jane Doe"},
		{"dad needs the car back", "Dad"},
		{"talked to my father today", "Father"},
		{"momentum is building", ""}, // whole words only
		{"grandmother called", ""},
		{"no relatives here", ""},
	}

	for _, tt := range tests {
		if got := table.InferPersonName(tt.raw); got != tt.want {
			t.Errorf("InferPersonName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	table := Table{"mom": "Jane Doe", "jd": "John Doe"}

	tests := []struct {
		name string
		want string
	}{
		{"mom", "Jane Doe"},
		{"MOM", "Jane Doe"},
		{"jd", "John Doe"},
		{"dad", "Dad"}, // kinship term without alias capitalizes
		{"Alice", "Alice"},
		{"  Alice  ", "Alice"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := table.Canonicalize(tt.name); got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
