package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/content-api/internal/core/domain"
	"github.com/pressroom/content-api/internal/core/ports"
)

type stubAuthService struct {
	user  *domain.User
	token string
	err   error
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	return &domain.User{ID: "user-1", Email: input.Email, Name: input.Name, Role: role}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) Authenticate(_ context.Context, _, _ string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubSessions struct {
	mu       sync.Mutex
	sessions map[string]string
}

func newStubSessions() *stubSessions {
	return &stubSessions{sessions: make(map[string]string)}
}

func (s *stubSessions) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if userID, ok := s.sessions[sessionID]; ok {
		return userID, nil
	}
	return "", ports.ErrSessionNotFound
}

func (s *stubSessions) Set(_ context.Context, sessionID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = userID
	return nil
}

func (s *stubSessions) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookieConfig() SessionConfig {
	return SessionConfig{CookieName: "content_session", TTL: 720 * time.Hour}
}

func TestAuthHandler_RegisterReturnsCreatedUser(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, newStubSessions(), sessionCookieConfig())
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register", `{"email":"new@example.com","password":"longenough","name":"new"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User == nil || resp.User.Email != "new@example.com" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if resp.User.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", resp.User.Role)
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, newStubSessions(), sessionCookieConfig())

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing email", `{"password":"longenough"}`, "email"},
		{"bad email", `{"email":"nope","password":"longenough"}`, "email"},
		{"short password", `{"email":"a@b.com","password":"short"}`, "password"},
		{"bad role", `{"email":"a@b.com","password":"longenough","role":"root"}`, "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAuthTestContext(t, http.MethodPost, "/auth/register", tt.body)
			err := h.Register(c)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := ve.Fields[tt.field]; !ok {
				t.Fatalf("expected message for %q, got %v", tt.field, ve.Fields)
			}
		})
	}
}

func TestAuthHandler_TokenReturnsBearerToken(t *testing.T) {
	svc := &stubAuthService{
		user:  &domain.User{ID: "user-1", Name: "alice", Role: domain.RoleUser},
		token: "signed.jwt.token",
	}
	h := NewAuthHandler(svc, newStubSessions(), sessionCookieConfig())
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/token", `{"name":"alice","password":"secretpass"}`)

	if err := h.Token(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
}

func TestAuthHandler_TokenBadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials}, newStubSessions(), sessionCookieConfig())
	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/token", `{"name":"alice","password":"wrong"}`)

	if err := h.Token(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_LoginSetsSessionCookie(t *testing.T) {
	sessions := newStubSessions()
	svc := &stubAuthService{user: &domain.User{ID: "user-1", Name: "alice", Role: domain.RoleUser}}
	h := NewAuthHandler(svc, sessions, sessionCookieConfig())
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login", `{"name":"alice","password":"secretpass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	cookie := findCookie(rec.Result().Cookies(), "content_session")
	if cookie == nil || cookie.Value == "" {
		t.Fatal("session cookie not set")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be http-only")
	}

	userID, err := sessions.Get(context.Background(), cookie.Value)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("session maps to %q, want user-1", userID)
	}
}

func TestAuthHandler_LogoutClearsSession(t *testing.T) {
	sessions := newStubSessions()
	if err := sessions.Set(context.Background(), "sess-1", "user-1"); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	h := NewAuthHandler(&stubAuthService{}, sessions, sessionCookieConfig())
	c, rec := newAuthTestContext(t, http.MethodDelete, "/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: "content_session", Value: "sess-1"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	if _, err := sessions.Get(context.Background(), "sess-1"); err != ports.ErrSessionNotFound {
		t.Fatalf("session should be cleared, got %v", err)
	}

	cookie := findCookie(rec.Result().Cookies(), "content_session")
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatal("expected expired cookie in response")
	}
}

func TestAuthHandler_LogoutWithoutSessionIsNoOp(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, newStubSessions(), sessionCookieConfig())
	c, rec := newAuthTestContext(t, http.MethodDelete, "/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
