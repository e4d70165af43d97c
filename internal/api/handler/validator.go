package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/companyhub/directory-api/internal/core/domain"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names are reported by their JSON name.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("maxbytes", maxBytes)
	_ = v.RegisterValidation("role", validRole)
	return &echoValidator{v: v}
}

// maxBytes limits the encoded length of a string, unlike max which counts
// runes. bcrypt rejects input longer than 72 bytes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func validRole(fl validator.FieldLevel) bool {
	return domain.Role(fl.Field().String()).Valid()
}

// Validate satisfies the echo.Validator interface. Failures are returned as
// a VALIDATION_ERROR listing every rejected field.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			details := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				details = append(details, FieldError{Field: fe.Field(), Message: fieldError(fe)})
			}
			return domain.NewValidationError("Validation error", details)
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())
	case "role":
		return fmt.Sprintf("%s must be one of: %s %s", field, domain.RoleUser, domain.RoleAdmin)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// errNoFields is returned by partial updates with an empty body.
var errNoFields = domain.NewValidationError("Validation error", []FieldError{
	{Field: "body", Message: "At least one field must be provided for update"},
})

// errMalformedBody is returned when the body cannot be decoded.
var errMalformedBody = domain.NewValidationError("Validation error", []FieldError{
	{Field: "body", Message: "must be a valid JSON object with correctly typed fields"},
})
