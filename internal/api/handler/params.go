package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/pagination"
)

// pathID parses the :id path parameter. Anything but a positive decimal
// integer is rejected before any lookup.
func pathID(c echo.Context, entity string) (int64, error) {
	id, ok := positiveInt(c.Param("id"))
	if !ok {
		return 0, domain.NewValidationError("Invalid "+entity+" id", nil)
	}
	return id, nil
}

func positiveInt(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func pageParams(c echo.Context) pagination.Params {
	return pagination.Resolve(c.QueryParams(), pagination.DefaultLimit, pagination.MaxLimit)
}

// bindBody decodes the JSON body into req and validates it.
func bindBody(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return errMalformedBody
	}
	return c.Validate(req)
}
