package classify

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls a single JSON object out of possibly-noisy classifier
// output. It first tries the whole trimmed text; if that is not valid JSON
// it retries on the substring from the first '{' to the last '}'. A text
// that parses directly to a non-object (e.g. a bare array) yields no
// result rather than falling through to the substring attempt.
func ExtractJSON(s string) (map[string]any, bool) {
	s = strings.TrimSpace(s)

	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		obj, ok := v.(map[string]any)
		return obj, ok
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end < start {
		return nil, false
	}

	if err := json.Unmarshal([]byte(s[start:end+1]), &v); err != nil {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}
