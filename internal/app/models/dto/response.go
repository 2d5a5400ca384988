package dto

import (
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_002"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_003"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_004"
	ErrorCodeForbidden          ErrorCode = "AUTH_005"
	ErrorCodeInvalidOTP         ErrorCode = "AUTH_006"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"
	ErrorCodeInvalidTransition     ErrorCode = "RES_003"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"AUTH_001"`
	Message string    `json:"message" example:"Invalid credentials"`
	Field   string    `json:"field,omitempty" example:"email"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// ErrorResponse is the standard error body. The web client checks the
// top-level `error` flag and reads `message` directly.
type ErrorResponse struct {
	Error     bool         `json:"error" example:"true"`
	Message   string       `json:"message" example:"Invalid credentials"`
	Detail    *ErrorDetail `json:"detail,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-08-30T12:01:05Z"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Error:     true,
		Message:   errorDetail.Message,
		Detail:    errorDetail,
		Timestamp: time.Now(),
	}
}

// SuccessResponse is the standard success body for state-changing endpoints
type SuccessResponse struct {
	Error   bool   `json:"error" example:"false"`
	Message string `json:"message" example:"Operation completed successfully"`
}

// NewSuccessResponse creates a standard success response
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{
		Error:   false,
		Message: message,
	}
}
