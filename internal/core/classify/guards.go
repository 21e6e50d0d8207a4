package classify

// Result is a classification result extracted from a parsed classifier
// object. Prefix-routed items produce an equivalent result synthetically
// with confidence 1.0.
type Result struct {
	Category   string
	Confidence float64
	Fields     map[string]string
	Title      string
	Raw        map[string]any
}

// FromObject extracts a Result from a parsed classifier object.
// Missing or falsy confidence defaults to 0.0; missing fields default to
// an empty map; non-string field values are ignored.
func FromObject(obj map[string]any) Result {
	r := Result{
		Category: "unknown",
		Fields:   map[string]string{},
		Raw:      obj,
	}

	if cat, ok := obj["category"].(string); ok {
		r.Category = cat
	}
	if conf, ok := obj["confidence"].(float64); ok {
		r.Confidence = conf
	}
	if title, ok := obj["title"].(string); ok {
		r.Title = title
	}
	if fields, ok := obj["fields"].(map[string]any); ok {
		for k, v := range fields {
			if s, ok := v.(string); ok {
				r.Fields[k] = s
			}
		}
	}

	return r
}

// Verdict is the outcome of gating a result against the category enum and
// the confidence threshold.
type Verdict struct {
	OK       bool
	Category Category // normalized: unknown when the raw category is invalid
}

// Gate validates a result. A result passes only when its category is one
// of the four destinations and its confidence meets the threshold. A
// syntactically valid but low-confidence or nonsensical result never
// reaches a destination table.
func Gate(r Result, threshold float64) Verdict {
	cat, valid := ParseCategory(r.Category)
	if !valid {
		return Verdict{OK: false, Category: CategoryUnknown}
	}
	if r.Confidence < threshold {
		return Verdict{OK: false, Category: cat}
	}
	return Verdict{OK: true, Category: cat}
}
