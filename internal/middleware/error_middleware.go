package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the standard error body. Every
// controller funnels its failures through here so status codes stay
// consistent across endpoints.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword):
		respond(c, err, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")

	case errors.Is(err, apperrors.ErrNotAnInstructor):
		respond(c, err, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Selected user is not an instructor")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, err, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrOTPNotFound),
		errors.Is(err, apperrors.ErrOTPInvalid):
		respond(c, err, http.StatusUnauthorized, dto.ErrorCodeInvalidOTP, "Invalid verification code")

	case errors.Is(err, apperrors.ErrOTPExpired):
		respond(c, err, http.StatusUnauthorized, dto.ErrorCodeInvalidOTP, "Verification code expired")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, err, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, err, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrUnauthorized):
		respond(c, err, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, err, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")

	case errors.Is(err, apperrors.ErrCourseNotFound):
		respond(c, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")

	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		respond(c, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Enrollment not found")

	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, err, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already registered")

	case errors.Is(err, apperrors.ErrCourseCodeAlreadyExists):
		respond(c, err, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Course code already exists")

	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		respond(c, err, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Already enrolled in this course")

	case errors.Is(err, apperrors.ErrInvalidTransition):
		respond(c, err, http.StatusConflict, dto.ErrorCodeInvalidTransition, "Enrollment is not in a state that allows this decision")

	case errors.Is(err, apperrors.ErrConflict):
		respond(c, err, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource conflict")

	default:
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// respond prefers a wrapped CustomError message over the generic text for
// the error class
func respond(c *gin.Context, err error, status int, code dto.ErrorCode, fallback string) {
	message := fallback
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
