package ports

import (
	"context"

	"github.com/pressroom/content-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// AuthService implements registration and the two login modes.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token for API
	// clients. The login identifier matches email first, then name.
	Login(ctx context.Context, login, password string) (string, *domain.User, error)
	// Authenticate verifies credentials without issuing a token; used by the
	// browser session flow.
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
}

// RequestFormat is the client-declared response format, which selects the
// authentication mode: bearer token for JSON, session cookie for HTML.
type RequestFormat string

const (
	FormatHTML RequestFormat = "html"
	FormatJSON RequestFormat = "json"
)

// Credentials is the request descriptor consumed by the resolver. It carries
// everything authentication needs, decoupled from the HTTP framework.
type Credentials struct {
	Format              RequestFormat
	AuthorizationHeader string
	SessionID           string
}

// AuthenticationResolver classifies a request and produces its principal.
// JSON requests yield an authenticated principal or domain.ErrUnauthenticated;
// they never fall back to anonymous. HTML requests yield an authenticated or
// anonymous principal; only infrastructure failures surface as errors.
type AuthenticationResolver interface {
	Resolve(ctx context.Context, creds Credentials) (domain.Principal, error)
}
