package core

import "errors"

var (
	// ErrValidation marks malformed or insufficient input. Mapped to 400
	// at the transport boundary, never retried.
	ErrValidation = errors.New("invalid request")

	// ErrSessionNotFound is returned for a missing or expired session.
	// An expired session is indistinguishable from one that never existed.
	ErrSessionNotFound = errors.New("session not found")

	// ErrProviderUnavailable marks an unreachable upstream or a 5xx reply.
	ErrProviderUnavailable = errors.New("llm provider unavailable")

	// ErrProviderOverloaded marks a rate-limit or payload-too-large reply.
	ErrProviderOverloaded = errors.New("llm provider overloaded")
)
