// Package envelope renders the JSON body shared by every API response.
package envelope

import "github.com/companyhub/directory-api/internal/core/domain"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SuccessBody is {"status":"success","message":...,"data":...}; data is
// omitted when nil.
type SuccessBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorDetail carries the machine-readable code and optional details.
type ErrorDetail struct {
	Code    domain.ErrorCode `json:"code"`
	Details any              `json:"details,omitempty"`
}

// ErrorBody is {"status":"error","message":...,"error":{"code":...}}.
type ErrorBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}

func Success(message string, data any) SuccessBody {
	return SuccessBody{Status: StatusSuccess, Message: message, Data: data}
}

func Failure(code domain.ErrorCode, message string, details any) ErrorBody {
	return ErrorBody{
		Status:  StatusError,
		Message: message,
		Error:   ErrorDetail{Code: code, Details: details},
	}
}
