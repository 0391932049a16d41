package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sandevgo/recapd/internal/core"
	"github.com/sandevgo/recapd/pkg/log"
)

const (
	chatTemperature    = 0.7
	summaryTemperature = 0.2

	defaultSummaryMaxTokens = 300

	// Fraction of the provider token limit actually spent on history;
	// the rest is safety margin for the estimator's imprecision.
	budgetNumerator   = 9
	budgetDenominator = 10
)

// Service orchestrates one conversational turn: resolve the session,
// load and trim history, call the provider, normalize the reply, and
// persist both turns. It keeps no state between requests.
type Service struct {
	provider    core.AIProvider
	sessions    core.SessionRepository
	tokenBudget int
}

func NewService(provider core.AIProvider, sessions core.SessionRepository, tokenLimit int) *Service {
	return &Service{
		provider:    provider,
		sessions:    sessions,
		tokenBudget: tokenLimit * budgetNumerator / budgetDenominator,
	}
}

func (s *Service) Ask(ctx context.Context, req core.ChatRequest) (core.ChatResult, error) {
	if err := req.Validate(); err != nil {
		return core.ChatResult{}, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// Explicit history in the request overrides the stored session.
	history := req.History
	if len(history) == 0 {
		stored, err := s.sessions.History(ctx, sessionID)
		switch {
		case err == nil:
			history = stored
		case errors.Is(err, core.ErrSessionNotFound):
			// first contact, nothing to load
		default:
			log.FromCtx(ctx).Error().
				Str("session_id", sessionID).
				Err(err).
				Msg("history read failed, continuing with empty history")
		}
	}

	user := core.Message{
		Role:    core.RoleUser,
		Content: userContent(req.Action, req.Context, req.Question),
	}

	messages := make([]core.Message, 0, len(history)+2)
	messages = append(messages, history...)
	messages = append(messages, core.Message{Role: core.RoleSystem, Content: chatSystemPrompt})
	messages = append(messages, user)
	messages = TrimToBudget(messages, s.tokenBudget)

	// The user turn is persisted before the provider call and stays in
	// place if that call fails: the session then shows an unanswered
	// turn, which is the documented semantics, not a bug to roll back.
	if err := s.sessions.Append(ctx, sessionID, user); err != nil {
		log.FromCtx(ctx).Error().
			Str("session_id", sessionID).
			Err(err).
			Msg("failed to persist user message")
	}

	raw, err := s.provider.Complete(ctx, messages, core.CompletionOptions{Temperature: chatTemperature})
	if err != nil {
		return core.ChatResult{}, err
	}

	n := Normalize(ctx, raw)
	if n.Suggestions == nil {
		n.Suggestions = []string{}
	}

	// The answer is already computed; losing this write degrades future
	// turns but must not fail the current response.
	assistant := core.Message{Role: core.RoleAssistant, Content: n.Answer}
	if err := s.sessions.Append(ctx, sessionID, assistant); err != nil {
		log.FromCtx(ctx).Error().
			Str("session_id", sessionID).
			Err(err).
			Msg("failed to persist assistant message")
	}

	return core.ChatResult{
		Action:      req.Action,
		Response:    n.Answer,
		Suggestions: n.Suggestions,
		SessionID:   sessionID,
	}, nil
}

// Summarize is the stateless single-shot path: no session, no
// structured output, just a prose summary of the transcript.
func (s *Service) Summarize(ctx context.Context, transcript string, maxTokens int) (string, error) {
	if len([]rune(strings.TrimSpace(transcript))) < core.MinContextLen {
		return "", fmt.Errorf("%w: transcript too short", core.ErrValidation)
	}
	if maxTokens <= 0 {
		maxTokens = defaultSummaryMaxTokens
	}

	prompt := fmt.Sprintf(summaryPromptFormat, transcript)
	raw, err := s.provider.Complete(ctx,
		[]core.Message{{Role: core.RoleUser, Content: prompt}},
		core.CompletionOptions{Temperature: summaryTemperature, MaxTokens: maxTokens},
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
