package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pressroom/content-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies HS256-signed bearer tokens carrying a
// user identity claim. Validity is solely a function of signature and expiry;
// there is no server-side revocation state. Both operations take the clock
// reading as an argument so a request uses one consistent "now".
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue encodes {user_id, exp = now + ttl} and signs it with the server
// secret.
func (s *TokenService) Issue(userID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates token against now, returning the embedded user
// id. Failure modes: domain.ErrTokenExpired when exp <= now,
// domain.ErrTokenBadSignature on a failed signature check, and
// domain.ErrTokenMalformed for anything that does not parse as a token.
func (s *TokenService) Verify(token string, now time.Time) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", domain.ErrTokenBadSignature
		default:
			return "", domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return "", domain.ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", domain.ErrTokenMalformed
	}
	return userID, nil
}
