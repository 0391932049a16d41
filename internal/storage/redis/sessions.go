package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sandevgo/recapd/internal/core"
	"github.com/sandevgo/recapd/pkg/log"
)

// SessionStore keeps each session as a Redis list of JSON-encoded
// messages under "<prefix><id>", with a sibling "<prefix><id>:meta"
// hash holding the creation timestamp. Both keys share a sliding TTL
// refreshed on every read and write.
type SessionStore struct {
	client      *goredis.Client
	prefix      string
	ttl         time.Duration
	maxMessages int
}

func NewSessionStore(client *goredis.Client, prefix string, ttl time.Duration, maxMessages int) *SessionStore {
	return &SessionStore{
		client:      client,
		prefix:      prefix,
		ttl:         ttl,
		maxMessages: maxMessages,
	}
}

func (s *SessionStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *SessionStore) metaKey(sessionID string) string {
	return s.key(sessionID) + ":meta"
}

// Append pushes the message and trims the list to the newest
// maxMessages entries in one pipeline, so a concurrent reader never
// observes a partially written turn or an over-long window.
func (s *SessionStore) Append(ctx context.Context, sessionID string, msg core.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	key := s.key(sessionID)
	meta := s.metaKey(sessionID)

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, int64(-s.maxMessages), -1)
	pipe.HSetNX(ctx, meta, "created_at", time.Now().UTC().Format(time.RFC3339))
	pipe.Expire(ctx, key, s.ttl)
	pipe.Expire(ctx, meta, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

// History returns the session's messages in append order. A session
// whose keys have expired is reported as not found. Entries that fail
// to decode are skipped rather than failing the whole read.
func (s *SessionStore) History(ctx context.Context, sessionID string) ([]core.Message, error) {
	key := s.key(sessionID)

	vals, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if len(vals) == 0 {
		return nil, core.ErrSessionNotFound
	}

	messages := make([]core.Message, 0, len(vals))
	for _, v := range vals {
		var msg core.Message
		if err := json.Unmarshal([]byte(v), &msg); err != nil {
			log.FromCtx(ctx).Warn().
				Str("session_id", sessionID).
				Err(err).
				Msg("skipping undecodable history entry")
			continue
		}
		messages = append(messages, msg)
	}

	// Sliding expiration: reading keeps the conversation alive.
	pipe := s.client.Pipeline()
	pipe.Expire(ctx, key, s.ttl)
	pipe.Expire(ctx, s.metaKey(sessionID), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to refresh session ttl")
	}

	return messages, nil
}
