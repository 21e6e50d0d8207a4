package secondary

import "context"

// Classifier defines the secondary port for the external text classifier.
// Classify sends the raw note text (wrapped in the fixed instruction
// template) to the classifier and returns its raw output; a process
// failure surfaces as an error carrying the diagnostic output. The call is
// synchronous and blocks for the full duration of the external process.
type Classifier interface {
	Classify(ctx context.Context, rawText string) (string, error)

	// Model returns the identifier recorded on items this classifier
	// routed.
	Model() string
}
