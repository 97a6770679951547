package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/terra-clan/paradigm-advisor/internal/page"
)

// ErrSessionNotFound is returned when a session id is unknown or expired
var ErrSessionNotFound = errors.New("session not found")

// Store keeps the page state of browser sessions for the length of a visit.
// Nothing outlives the session TTL.
type Store interface {
	// Load returns the state saved under id
	Load(ctx context.Context, id string) (page.State, error)

	// Save stores state under id and refreshes its expiry
	Save(ctx context.Context, id string, state page.State) error

	// Delete removes the session
	Delete(ctx context.Context, id string) error

	// Ping checks that the store is usable
	Ping(ctx context.Context) error

	Close() error
}

// NewID generates a session id
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like a session id issued by NewID
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
