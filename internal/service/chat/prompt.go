package chat

import (
	"fmt"

	"github.com/sandevgo/recapd/internal/core"
)

const chatSystemPrompt = "You are a helpful assistant. Use the provided context when relevant.\n\n" +
	"Respond ONLY in valid JSON with keys:\n" +
	"  'answer' (string)\n" +
	"  'suggestions' (array of exactly 3 strings)\n"

const summaryPromptFormat = "You are a helpful assistant. Read the following transcript and provide a concise, clear summary " +
	"(3-6 sentences). Highlight main points, key conclusions, and any action items if present.\n\n" +
	"Transcript:\n%s\n\nSummary:"

// userContent builds the user turn for the given action.
func userContent(action core.Action, contextText, question string) string {
	switch action {
	case core.ActionQA:
		return fmt.Sprintf("Context:\n%s\n\nQuestion:\n%s", contextText, question)
	case core.ActionSummary:
		return fmt.Sprintf("Summarize the following content:\n\n%s", contextText)
	case core.ActionExpand:
		return fmt.Sprintf("Expand and explain the following content:\n\n%s", contextText)
	default:
		return question
	}
}
