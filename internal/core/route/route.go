// Package route contains the deterministic prefix router. It is the
// zero-cost fast path tried before any external classifier call: a
// recognized literal prefix is authoritative (confidence 1.0).
package route

import (
	"strings"

	"github.com/example/secondbrain/internal/core/classify"
)

// prefixes maps recognized literal prefixes to their categories. Order
// matters only for the plural/singular pairs, which never overlap.
var prefixes = []struct {
	literal  string
	category classify.Category
}{
	{"admin:", classify.CategoryAdmin},
	{"project:", classify.CategoryProjects},
	{"projects:", classify.CategoryProjects},
	{"idea:", classify.CategoryIdeas},
	{"ideas:", classify.CategoryIdeas},
	{"person:", classify.CategoryPeople},
	{"people:", classify.CategoryPeople},
}

// Route matches raw text against the recognized prefixes,
// case-insensitively. On a match it returns the category and the trimmed
// remainder after the prefix; the remainder may be empty, which callers
// must treat as a terminal needs-review outcome. Returns false when no
// prefix matches, deferring to the fallback classifier.
func Route(raw string) (classify.Category, string, bool) {
	s := strings.TrimSpace(raw)
	low := strings.ToLower(s)

	for _, p := range prefixes {
		if strings.HasPrefix(low, p.literal) {
			return p.category, strings.TrimSpace(s[len(p.literal):]), true
		}
	}

	return "", "", false
}
