package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/companyhub/directory-api/internal/api/middleware"
	"github.com/companyhub/directory-api/internal/core/domain"
)

// currentUser returns the user stored by the authentication middleware.
// Reaching a protected handler without it means the route was wired without
// the middleware.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrMissingAuthHeader
	}
	return user, nil
}
