// Package llm wraps the text-completion collaborator used for query
// enhancement and narrative analysis. Every caller must treat any
// failure here as non-fatal and degrade.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when the model produced no usable text.
var ErrEmptyCompletion = errors.New("empty completion")

// CompletionContext carries the jurisdiction/language/practice-area
// hints passed alongside a prompt.
type CompletionContext struct {
	Jurisdictions []string
	LegalAreas    []string
	Language      string
}

// Completer is the text-completion collaborator interface.
// Implementations own their timeouts and retries; callers do not retry.
type Completer interface {
	// Complete returns generated text for the prompt, or an error.
	// A nil error with empty output never occurs; implementations
	// return ErrEmptyCompletion instead.
	Complete(ctx context.Context, prompt string, cctx CompletionContext) (string, error)
}

// EstimateTokens gives a rough token count for usage accounting.
// Four characters per token is close enough for cost tracking.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}
