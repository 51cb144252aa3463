package ports

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned by SessionStore.Get when the session id has
// no mapping (absent, expired, or cleared).
var ErrSessionNotFound = errors.New("session not found")

// SessionStore maps opaque client-held session ids to user ids. The store
// owns expiry; the core only gets, sets and clears.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, userID string) error
	Clear(ctx context.Context, sessionID string) error
}
