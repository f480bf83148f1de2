package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/api/metrics"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

// Auth validates the bearer session token and injects the decoded
// identity into the request context. Missing and malformed headers are
// reported as "token required"; everything the codec rejects collapses
// into "invalid token".
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token required")
			}

			claims := codec.Verify(parts[1])
			if claims == nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("operator_id", claims.OperatorID)
			c.Set("username", claims.Username)
			c.Set("name", claims.Name)

			return next(c)
		}
	}
}
