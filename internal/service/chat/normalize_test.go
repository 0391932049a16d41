package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Structured(t *testing.T) {
	ctx := context.Background()

	n := Normalize(ctx, `{"answer":"X","suggestions":["a","b"]}`)
	assert.True(t, n.Structured)
	assert.Equal(t, "X", n.Answer)
	assert.Equal(t, []string{"a", "b"}, n.Suggestions)
}

func TestNormalize_PlainTextDegradation(t *testing.T) {
	ctx := context.Background()

	n := Normalize(ctx, "  hello world \n")
	assert.False(t, n.Structured)
	assert.Equal(t, "hello world", n.Answer)
	assert.Empty(t, n.Suggestions)
}

func TestNormalize_JSONInsideProse(t *testing.T) {
	ctx := context.Background()

	raw := "Sure! Here is the result:\n```json\n{\"answer\":\"42\",\"suggestions\":[\"why?\"]}\n```"
	n := Normalize(ctx, raw)
	assert.True(t, n.Structured)
	assert.Equal(t, "42", n.Answer)
	assert.Equal(t, []string{"why?"}, n.Suggestions)
}

func TestNormalize_TruncatesSuggestions(t *testing.T) {
	ctx := context.Background()

	n := Normalize(ctx, `{"answer":"ok","suggestions":["1","2","3","4","5"]}`)
	assert.Equal(t, []string{"1", "2", "3"}, n.Suggestions)
}

func TestNormalize_TrimsSuggestionWhitespace(t *testing.T) {
	ctx := context.Background()

	n := Normalize(ctx, `{"answer":" padded ","suggestions":[" a ","b "]}`)
	assert.Equal(t, "padded", n.Answer)
	assert.Equal(t, []string{"a", "b"}, n.Suggestions)
}

func TestNormalize_MalformedJSON(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{"broken braces", `{"answer": "X", "suggestions": [`},
		{"wrong types", `{"answer": 42, "suggestions": "nope"}`},
		{"empty answer", `{"answer": "", "suggestions": ["a"]}`},
		{"no json at all", "just a sentence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(ctx, tt.raw)
			assert.False(t, n.Structured)
			assert.Equal(t, strings.TrimSpace(tt.raw), n.Answer)
			assert.Empty(t, n.Suggestions)
		})
	}
}
