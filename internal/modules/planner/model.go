// README: Planner aggregate: sessions, turns, follow-up questions, error sentinels.
package planner

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInput covers malformed or out-of-range request fields,
	// detected before any model call.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSessionNotFound is returned for unknown session ids.
	ErrSessionNotFound = errors.New("session not found")
	// ErrProviderCall wraps a failed model backend call; the underlying
	// message is preserved for diagnostics.
	ErrProviderCall = errors.New("provider call failed")
)

// Role of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a session's history. Turns are append-only and
// never mutated after creation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session holds one in-progress planning conversation. CurrentItinerary is
// always the content of the most recent assistant turn.
type Session struct {
	ID               string    `json:"id"`
	Provider         string    `json:"provider"`
	Model            string    `json:"model"`
	History          []Turn    `json:"history"`
	CurrentItinerary string    `json:"current_itinerary"`
	CreatedAt        time.Time `json:"created_at"`
}

// FollowUpQuestion is derived from itinerary text on every read; it is
// never stored, so the raw text stays the single source of truth.
type FollowUpQuestion struct {
	Text  string `json:"question"`
	Order int    `json:"order"`
}

// Input length bounds, matching the request schema.
const (
	MinDescriptionLen = 10
	MaxDescriptionLen = 1000
	MinFeedbackLen    = 5
	MaxFeedbackLen    = 1000
)
