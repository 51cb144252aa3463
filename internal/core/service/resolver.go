package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pressroom/content-api/internal/core/domain"
	"github.com/pressroom/content-api/internal/core/ports"
)

// Resolver classifies an inbound request and produces its principal. JSON
// requests must present a valid bearer token; every failure folds into
// domain.ErrUnauthenticated so the caller cannot tell which check failed.
// HTML requests resolve the session cookie and fall back to anonymous.
//
// The clock is injected so tests control expiry; each resolution reads it
// exactly once.
type Resolver struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	tokens   ports.TokenVerifier
	clock    func() time.Time
}

func NewResolver(users ports.UserRepository, sessions ports.SessionStore, tokens ports.TokenVerifier, clock func() time.Time) *Resolver {
	if clock == nil {
		clock = time.Now
	}
	return &Resolver{users: users, sessions: sessions, tokens: tokens, clock: clock}
}

func (r *Resolver) Resolve(ctx context.Context, creds ports.Credentials) (domain.Principal, error) {
	now := r.clock().UTC()

	if creds.Format == ports.FormatJSON {
		return r.resolveBearer(ctx, creds.AuthorizationHeader, now)
	}
	return r.resolveSession(ctx, creds.SessionID)
}

func (r *Resolver) resolveBearer(ctx context.Context, header string, now time.Time) (domain.Principal, error) {
	if header == "" {
		return domain.Anonymous(), domain.ErrUnauthenticated
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return domain.Anonymous(), domain.ErrUnauthenticated
	}

	userID, err := r.tokens.Verify(parts[1], now)
	if err != nil {
		return domain.Anonymous(), domain.ErrUnauthenticated
	}

	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		// A valid token for a vanished user reads the same as a bad token.
		return domain.Anonymous(), domain.ErrUnauthenticated
	}
	return domain.AuthenticatedAs(user), nil
}

func (r *Resolver) resolveSession(ctx context.Context, sessionID string) (domain.Principal, error) {
	if sessionID == "" {
		return domain.Anonymous(), nil
	}

	userID, err := r.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return domain.Anonymous(), nil
		}
		return domain.Anonymous(), err
	}

	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Anonymous(), nil
		}
		return domain.Anonymous(), err
	}
	return domain.AuthenticatedAs(user), nil
}
