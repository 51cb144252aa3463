package ports

import "time"

// TokenIssuer mints signed bearer tokens carrying a user identity claim.
// The caller supplies the clock reading so issuance is a pure function of
// input, secret and time.
type TokenIssuer interface {
	Issue(userID string, now time.Time) (string, error)
}

// TokenVerifier checks a bearer token and returns the embedded user id.
// Failure modes are the typed errors in the domain package (malformed, bad
// signature, expired); verification never consults server-side state.
type TokenVerifier interface {
	Verify(token string, now time.Time) (string, error)
}
