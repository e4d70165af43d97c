package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/companyhub/directory-api/internal/core/ports"
)

// AdminOnly is Auth restricted to ADMIN users. Non-admin callers get
// FORBIDDEN, while unauthenticated callers get UNAUTHORIZED as with Auth.
func AdminOnly(gate ports.Authenticator) echo.MiddlewareFunc {
	return authenticate(gate, true)
}
