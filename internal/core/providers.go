package core

import "context"

// CompletionOptions tunes a single completion call. A zero MaxTokens
// leaves the upstream default in place.
type CompletionOptions struct {
	Temperature float64
	MaxTokens   int
}

type AIProvider interface {
	// Complete sends the prepared messages to the upstream model and
	// returns the raw assistant text. No retries are performed here.
	Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error)
}
