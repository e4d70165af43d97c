package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/companyhub/directory-api/internal/api/envelope"
	"github.com/companyhub/directory-api/internal/api/metrics"
	"github.com/companyhub/directory-api/internal/core/ports"
)

// UserHandler serves the admin-only /users routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 10, max 100)"
// @Param        search     query     string  false  "Substring of full name or email"
// @Param        sortBy     query     string  false  "createdAt | fullName | email"
// @Param        sortOrder  query     string  false  "asc | desc"
// @Success      200        {object}  envelope.SuccessBody
// @Failure      401        {object}  envelope.ErrorBody
// @Failure      403        {object}  envelope.ErrorBody
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var q listUsersQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return errMalformedBody
	}

	page, err := h.service.ListUsers(c.Request().Context(), ports.ListUsersFilter{
		Search:    q.Search,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success("Users fetched successfully", page))
}

// Get handles GET /users/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  envelope.SuccessBody{data=userResponse}
// @Failure      400  {object}  envelope.ErrorBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success("User fetched successfully", userResponse{User: user}))
}

// Update handles PATCH /users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  envelope.SuccessBody{data=userResponse}
// @Failure      400   {object}  envelope.ErrorBody
// @Failure      404   {object}  envelope.ErrorBody
// @Failure      409   {object}  envelope.ErrorBody
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.empty() {
		return errNoFields
	}

	user, err := h.service.UpdateUser(c.Request().Context(), id, req.toUpdate())
	if err != nil {
		return err
	}

	metrics.WritesTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, envelope.Success("User updated successfully", userResponse{User: user}))
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  envelope.SuccessBody
// @Failure      400  {object}  envelope.ErrorBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.WritesTotal.WithLabelValues("user", "delete").Inc()
	return c.JSON(http.StatusOK, envelope.Success("User deleted successfully", nil))
}
