// Package alias provides the name-alias table and the kinship-term name
// inferencer. The table is loaded once at startup and treated as an
// immutable value afterwards.
package alias

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"unicode"
)

// Table maps lowercased alias keys to canonical names.
type Table map[string]string

// kinshipTerm matches whole-word occurrences of the supported kinship
// terms in lowercased text.
var kinshipTerm = regexp.MustCompile(`\b(mom|mother|dad|father)\b`)

// Load reads an alias file (a flat JSON object of name -> canonical name)
// and lowercases its keys. Any read or parse failure degrades to an empty
// table; a missing alias file is never fatal.
func Load(path string) Table {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return Table{}
	}

	t := make(Table, len(raw))
	for k, v := range raw {
		t[strings.ToLower(k)] = v
	}
	return t
}

// Lookup returns the canonical name for a key, case-insensitively.
func (t Table) Lookup(key string) (string, bool) {
	v, ok := t[strings.ToLower(key)]
	return v, ok
}

// InferPersonName scans free text for a kinship term and resolves it to a
// canonical name: the alias-table value when present, else the term
// capitalized. Returns empty when no term occurs. This is a best-effort
// fallback, never authoritative over an explicitly extracted name.
func (t Table) InferPersonName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	m := kinshipTerm.FindString(s)
	if m == "" {
		return ""
	}
	if v, ok := t[m]; ok {
		return v
	}
	return capitalize(m)
}

// Canonicalize resolves a short name token: an alias-table hit wins,
// a bare kinship term resolves through InferPersonName, anything else
// passes through unchanged.
func (t Table) Canonicalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	low := strings.ToLower(name)
	if v, ok := t[low]; ok {
		return v
	}

	switch low {
	case "mom", "mother", "dad", "father":
		if inferred := t.InferPersonName(name); inferred != "" {
			return inferred
		}
		return capitalize(low)
	}

	return name
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
