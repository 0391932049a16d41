package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/recapd/internal/core"
)

type entry struct {
	messages  []core.Message
	createdAt time.Time
	expiresAt time.Time
}

// SessionStore is an in-process core.SessionRepository with the same
// sliding-window and sliding-TTL semantics as the Redis store. Used in
// tests and for running without a Redis instance.
type SessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*entry
	ttl         time.Duration
	maxMessages int

	now func() time.Time
}

func NewSessionStore(ttl time.Duration, maxMessages int) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*entry),
		ttl:         ttl,
		maxMessages: maxMessages,
		now:         time.Now,
	}
}

func (s *SessionStore) Append(ctx context.Context, sessionID string, msg core.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := s.sessions[sessionID]
	if e == nil || now.After(e.expiresAt) {
		e = &entry{createdAt: now}
		s.sessions[sessionID] = e
	}

	e.messages = append(e.messages, msg)
	if len(e.messages) > s.maxMessages {
		e.messages = e.messages[len(e.messages)-s.maxMessages:]
	}
	e.expiresAt = now.Add(s.ttl)
	return nil
}

func (s *SessionStore) History(ctx context.Context, sessionID string) ([]core.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := s.sessions[sessionID]
	if e == nil || now.After(e.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, core.ErrSessionNotFound
	}

	e.expiresAt = now.Add(s.ttl)
	out := make([]core.Message, len(e.messages))
	copy(out, e.messages)
	return out, nil
}

// SetClock replaces the time source. Test helper.
func (s *SessionStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
