package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/companyhub/directory-api/internal/api/envelope"
	"github.com/companyhub/directory-api/internal/core/domain"
)

const internalMessage = "Internal server error"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders *domain.Error values with their code, message and details.
//   - Maps Echo's own errors (unknown route, wrong method, timeouts) onto the
//     nearest error code.
//   - Logs anything else and answers 500 without leaking the cause.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, envelope.ErrorBody) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return StatusFor(derr.Code), envelope.Failure(derr.Code, derr.Message, derr.Details)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return he.Code, envelope.Failure(codeForStatus(he.Code), http.StatusText(he.Code), nil)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	status := http.StatusInternalServerError
	if he != nil {
		status = he.Code
	}
	return status, envelope.Failure(domain.CodeInternal, internalMessage, nil)
}

// StatusFor returns the HTTP status of an error code.
func StatusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeUnauthorized, domain.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeEmailInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func codeForStatus(status int) domain.ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return domain.CodeUnauthorized
	case http.StatusForbidden:
		return domain.CodeForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return domain.CodeNotFound
	default:
		return domain.CodeValidation
	}
}
