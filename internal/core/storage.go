package core

import "context"

// SessionRepository holds the ordered message history of each session.
// Implementations must keep at most the configured number of messages
// per session (oldest dropped first) and refresh the session TTL on
// every operation so active conversations are not evicted mid-use.
type SessionRepository interface {
	// Append adds a message to the session, creating it if missing.
	// A single append is atomic: readers never observe a partial message.
	Append(ctx context.Context, sessionID string, msg Message) error

	// History returns the session's messages in append order.
	// Returns ErrSessionNotFound for a missing or expired session.
	History(ctx context.Context, sessionID string) ([]Message, error)
}
