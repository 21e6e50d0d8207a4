// Package ollama invokes the external classification model as a local
// subprocess. The model is a black box: prompt in on stdin, raw text out
// on stdout, non-zero exit means failure.
package ollama

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/example/secondbrain/internal/core/classify"
	"github.com/example/secondbrain/internal/ports/secondary"
)

// Classifier implements secondary.Classifier by running `ollama run
// <model>` with the instruction template plus the note text on stdin.
type Classifier struct {
	model string
	bin   string // overridable in tests
}

// NewClassifier creates a classifier for the given model identifier.
func NewClassifier(model string) *Classifier {
	return &Classifier{model: model, bin: "ollama"}
}

// Model returns the model identifier recorded on routed items.
func (c *Classifier) Model() string {
	return c.model
}

// Classify sends the note to the model and returns its trimmed stdout.
// The call blocks for the full duration of the process; cancellation is
// available through ctx. On non-zero exit the returned error carries the
// process's stderr.
func (c *Classifier) Classify(ctx context.Context, rawText string) (string, error) {
	cmd := exec.CommandContext(ctx, c.bin, "run", c.model)
	cmd.Stdin = strings.NewReader(classify.Prompt(rawText))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed: %s: %w", c.bin, strings.TrimSpace(stderr.String()), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Ensure Classifier implements the interface
var _ secondary.Classifier = (*Classifier)(nil)
