package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pressroom/content-api/internal/api/middleware"
	"github.com/pressroom/content-api/internal/core/domain"
	"github.com/pressroom/content-api/internal/core/ports"
)

// SessionConfig controls the browser session cookie written at login.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// AuthHandler exposes registration, token login (API clients) and session
// login/logout (browser clients).
type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionStore
	cfg         SessionConfig
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionStore, cfg SessionConfig) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, cfg: cfg}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type registerResponse struct {
	User *domain.User `json:"user"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  registerResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{User: user})
}

// Token authenticates by name or email and returns a signed bearer token.
//
// @Summary      Issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Login authenticates by name or email and establishes a browser session.
//
// @Summary      Session login
// @Tags         auth
// @Accept       json
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	if err := h.sessions.Set(c.Request().Context(), sessionID, user.ID); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.cfg.TTL),
	})

	return c.NoContent(http.StatusNoContent)
}

// Me returns the account behind the caller's session cookie.
//
// @Summary      Current session account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if !principal.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, principal.User())
}

// Logout clears the session and expires the cookie. Logging out without a
// session is a no-op.
//
// @Summary      Session logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [delete]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cfg.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Clear(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.NoContent(http.StatusNoContent)
}
