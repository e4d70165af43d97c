package domain

// ErrorCode is the machine-readable code carried in every error response.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeEmailInUse         ErrorCode = "EMAIL_IN_USE"
	CodeInternal           ErrorCode = "INTERNAL_SERVER_ERROR"
)

// Error is a failure that can be shown to API clients as is.
type Error struct {
	Code    ErrorCode
	Message string
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidationError builds a VALIDATION_ERROR with optional details.
func NewValidationError(message string, details any) *Error {
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

// Authentication gate.
var (
	ErrMissingAuthHeader = &Error{Code: CodeUnauthorized, Message: "Missing or invalid Authorization header"}
	ErrMissingToken      = &Error{Code: CodeUnauthorized, Message: "Missing token"}
	ErrInvalidToken      = &Error{Code: CodeUnauthorized, Message: "Invalid or expired token"}
	ErrInactiveUser      = &Error{Code: CodeUnauthorized, Message: "User not found or inactive"}
	ErrAdminRequired     = &Error{Code: CodeForbidden, Message: "Admin access required"}
)

// Accounts.
var (
	ErrInvalidCredentials = &Error{Code: CodeInvalidCredentials, Message: "Invalid email or password"}
	ErrEmailInUse         = &Error{Code: CodeEmailInUse, Message: "Email already in use"}
	ErrUserNotFound       = &Error{Code: CodeNotFound, Message: "User not found"}
)

// Directory.
var (
	ErrCompanyNotFound        = &Error{Code: CodeNotFound, Message: "Company not found"}
	ErrServiceNotFound        = &Error{Code: CodeNotFound, Message: "Service not found"}
	ErrServiceCompanyNotFound = &Error{Code: CodeNotFound, Message: "Company not found for this service"}
	ErrInvalidOwner           = &Error{Code: CodeValidation, Message: "Invalid ownerId"}
)

// InvalidCompanyIDs reports company ids that do not reference live companies.
func InvalidCompanyIDs(ids []int64) *Error {
	return NewValidationError("Invalid companyIds", map[string]any{"invalidCompanyIds": ids})
}
