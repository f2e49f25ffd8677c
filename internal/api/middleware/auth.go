package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/claranceatgalvanize/embridge/internal/api/metrics"
	"github.com/claranceatgalvanize/embridge/internal/auth/token"
)

// Auth validates the bearer token and injects its claims into context.
// Every failure mode answers with the same generic 401 so a caller cannot
// distinguish a missing header from a bad signature or an expired token.
func Auth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set("user_id", claims.Subject)
			c.Set("email", claims.Email)
			c.Set("name", claims.Name)

			return next(c)
		}
	}
}
