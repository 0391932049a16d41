package chat

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/recapd/internal/core"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

func getTokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		tk, _ = tiktoken.GetEncoding("cl100k_base")
	})
	return tk
}

// EstimateTokens estimates the token cost of text. It uses the
// cl100k_base encoding when available and falls back to a rune-weighted
// heuristic (~4 ASCII chars per token, ~1 token per non-ASCII rune).
// The estimate is monotone: longer text never costs less.
func EstimateTokens(text string) int {
	if enc := getTokenizer(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return estimateTokensRunes(text)
}

func estimateTokensRunes(text string) int {
	weight := 0
	for _, r := range text {
		if r <= 127 {
			weight++
		} else {
			weight += 4
		}
	}
	return (weight + 3) / 4
}

// TrimToBudget drops the oldest messages until the estimated cost of
// the rest fits the budget. System-role content is not counted. The
// result is always a contiguous suffix of the input, and the newest
// message is never dropped even when it alone exceeds the budget: in
// that case the provider's own overflow handling surfaces the error.
// Input already within budget is returned unchanged.
func TrimToBudget(messages []core.Message, budget int) []core.Message {
	if len(messages) == 0 {
		return messages
	}

	costs := make([]int, len(messages))
	total := 0
	for i, m := range messages {
		if m.Role == core.RoleSystem {
			continue
		}
		costs[i] = EstimateTokens(m.Content)
		total += costs[i]
	}

	start := 0
	for total > budget && start < len(messages)-1 {
		total -= costs[start]
		start++
	}
	if start == 0 {
		return messages
	}
	return messages[start:]
}
