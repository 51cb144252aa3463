package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/pressroom/content-api/internal/core/domain"
	"github.com/pressroom/content-api/internal/core/ports"
	"github.com/pressroom/content-api/internal/metrics"
)

const principalKey = "principal"

// Authenticate resolves the request principal exactly once and stores it in
// the echo context; handlers read the memoized value via PrincipalFrom. The
// declared format decides the mode: JSON routes require a bearer token and
// propagate domain.ErrUnauthenticated to the error handler, HTML routes fall
// back to an anonymous principal.
func Authenticate(resolver ports.AuthenticationResolver, format ports.RequestFormat, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			creds := ports.Credentials{
				Format:              format,
				AuthorizationHeader: c.Request().Header.Get("Authorization"),
			}
			if cookie, err := c.Cookie(cookieName); err == nil {
				creds.SessionID = cookie.Value
			}

			principal, err := resolver.Resolve(c.Request().Context(), creds)
			if err != nil {
				metrics.AuthResolutionsTotal.WithLabelValues(string(format), "rejected").Inc()
				return err
			}

			result := "anonymous"
			if principal.IsAuthenticated() {
				result = "authenticated"
			}
			metrics.AuthResolutionsTotal.WithLabelValues(string(format), result).Inc()

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal resolved by Authenticate. Routes not
// behind the middleware see an anonymous principal.
func PrincipalFrom(c echo.Context) domain.Principal {
	principal, ok := c.Get(principalKey).(domain.Principal)
	if !ok {
		return domain.Anonymous()
	}
	return principal
}
