package core

import (
	"fmt"
	"strings"
)

const (
	ServiceName    = "recapd"
	ServiceVersion = "0.1.0"

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// MaxSuggestions caps the follow-up suggestions returned per answer.
	MaxSuggestions = 3

	// MinContextLen is the minimum useful context/transcript length in runes.
	MinContextLen = 20
)

type Action string

const (
	ActionQA      Action = "qa"
	ActionSummary Action = "summary"
	ActionExpand  Action = "expand"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionQA, ActionSummary, ActionExpand:
		return Action(s), nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrValidation, s)
	}
}

// Message is a single conversation turn. Immutable once appended to a session.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is one conversational turn against the service.
// When SessionID is empty a new session is created; when History is
// non-empty it overrides whatever the session store holds.
type ChatRequest struct {
	Action    Action
	Context   string
	Question  string
	SessionID string
	History   []Message
}

func (r ChatRequest) Validate() error {
	if _, err := ParseAction(string(r.Action)); err != nil {
		return err
	}
	if strings.TrimSpace(r.Context) == "" && strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("%w: context and question are both empty", ErrValidation)
	}
	switch r.Action {
	case ActionSummary, ActionExpand:
		if len([]rune(strings.TrimSpace(r.Context))) < MinContextLen {
			return fmt.Errorf("%w: context too short for %s", ErrValidation, r.Action)
		}
	}
	return nil
}

// ChatResult is the outcome of one turn.
type ChatResult struct {
	Action      Action
	Response    string
	Suggestions []string
	SessionID   string
}
