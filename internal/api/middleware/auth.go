package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/companyhub/directory-api/internal/api/metrics"
	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/ports"
)

// UserKey is the echo context key holding the authenticated *domain.User.
const UserKey = "user"

// Auth resolves the caller through the gate and stores the user in the
// context. Any user role is accepted.
func Auth(gate ports.Authenticator) echo.MiddlewareFunc {
	return authenticate(gate, false)
}

func authenticate(gate ports.Authenticator, requireAdmin bool) echo.MiddlewareFunc {
	scope := "user"
	if requireAdmin {
		scope = "admin"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			user, err := gate.Authenticate(c.Request().Context(), header, requireAdmin)
			if err != nil {
				metrics.AuthDecisionsTotal.WithLabelValues(scope, decision(err)).Inc()
				return err
			}

			metrics.AuthDecisionsTotal.WithLabelValues(scope, "allowed").Inc()
			c.Set(UserKey, user)
			return next(c)
		}
	}
}

func decision(err error) string {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		return "error"
	}
	if derr.Code == domain.CodeForbidden {
		return "forbidden"
	}
	return "unauthorized"
}
