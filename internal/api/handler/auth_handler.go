package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/companyhub/directory-api/internal/api/envelope"
	"github.com/companyhub/directory-api/internal/api/metrics"
	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp creates a USER account and signs it in.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Account details"
// @Success      201   {object}  envelope.SuccessBody{data=authResponse}
// @Failure      400   {object}  envelope.ErrorBody
// @Failure      409   {object}  envelope.ErrorBody
// @Failure      500   {object}  envelope.ErrorBody
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.SignUpsTotal.Inc()
	return c.JSON(http.StatusCreated, envelope.Success("User created successfully", authResponse{
		Token: res.Token,
		User:  res.User,
	}))
}

// SignIn exchanges credentials for a token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  envelope.SuccessBody{data=authResponse}
// @Failure      400   {object}  envelope.ErrorBody
// @Failure      401   {object}  envelope.ErrorBody
// @Failure      500   {object}  envelope.ErrorBody
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.SignInsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, envelope.Success("User logged in successfully", authResponse{
		Token: res.Token,
		User:  res.User,
	}))
}

// SignOut acknowledges a sign out. Tokens are stateless, so clients simply
// discard theirs.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  envelope.SuccessBody
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	return c.JSON(http.StatusOK, envelope.Success("User signed out successfully", nil))
}

// Profile returns the authenticated user.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope.SuccessBody{data=userResponse}
// @Failure      401  {object}  envelope.ErrorBody
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope.Success("Profile fetched successfully", userResponse{User: user}))
}
