// Package session maps cookie tokens to the login state of one browser.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired tokens
var ErrNotFound = errors.New("session not found")

// Session is the per-client login state.
// EntryID is the history entry created at login; it survives logout so the
// following rating can reach the same entry.
type Session struct {
	Token     string    `json:"token"`
	User      string    `json:"user"`
	Email     string    `json:"email"`
	EntryID   uuid.UUID `json:"entry_id"`
	LoggedIn  bool      `json:"logged_in"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions by token
type Store interface {
	// Save creates or replaces a session, assigning a token when empty
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

func newToken() string {
	return uuid.NewString()
}
