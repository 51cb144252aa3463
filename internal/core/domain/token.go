package domain

import "errors"

// Token verification failure modes. The authentication resolver folds all of
// them into ErrUnauthenticated before they cross the API boundary; the
// distinction exists for logging and tests.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
)
