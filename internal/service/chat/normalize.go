package chat

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sandevgo/recapd/internal/core"
	"github.com/sandevgo/recapd/pkg/log"
)

// Normalized is the two-branch outcome of parsing provider output:
// either a structured answer with suggestions, or the raw text as-is.
type Normalized struct {
	Answer      string
	Suggestions []string
	Structured  bool
}

// Normalize parses raw provider text as a {"answer": ..., "suggestions":
// [...]} payload. Models do not reliably honor the structured-output
// instruction, so any parse failure degrades silently to the plain
// branch: the whole text becomes the answer and suggestions are empty.
func Normalize(ctx context.Context, raw string) Normalized {
	payload, ok := extractPayload(raw)
	if !ok {
		log.FromCtx(ctx).Warn().Msg("provider output not structured, degrading to plain text")
		return Normalized{Answer: strings.TrimSpace(raw)}
	}

	suggestions := payload.Suggestions
	if len(suggestions) > core.MaxSuggestions {
		suggestions = suggestions[:core.MaxSuggestions]
	}
	for i, s := range suggestions {
		suggestions[i] = strings.TrimSpace(s)
	}

	return Normalized{
		Answer:      strings.TrimSpace(payload.Answer),
		Suggestions: suggestions,
		Structured:  true,
	}
}

type structuredPayload struct {
	Answer      string   `json:"answer"`
	Suggestions []string `json:"suggestions"`
}

// extractPayload finds the first '{' and the last '}' and tries to
// decode the span between them. Models often wrap JSON in prose or
// markdown fences; this tolerates both.
func extractPayload(text string) (structuredPayload, bool) {
	var p structuredPayload

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return p, false
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), &p); err != nil {
		return p, false
	}
	if strings.TrimSpace(p.Answer) == "" {
		// JSON that parses but carries no answer is as useless as prose.
		return p, false
	}
	return p, true
}
