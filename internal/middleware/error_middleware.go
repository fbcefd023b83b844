package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/logger"
)

// HandleAPIError maps a service error onto a status code and error envelope.
// Validation errors carry the offending field. Storage and unknown errors are
// logged here and reported as a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	var ce *apperrors.CustomError
	message := ""
	field := ""
	if errors.As(err, &ce) {
		message = ce.Message
		field = ce.Field
	}
	withMessage := func(fallback string) string {
		if message != "" {
			return message
		}
		return fallback
	}

	var (
		status int
		detail *dto.ErrorDetail
	)

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, withMessage("Validation failed"))
		if field != "" {
			detail = detail.WithField(field)
		}
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, withMessage(err.Error()))
		if field != "" {
			detail = detail.WithField(field)
		}
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, withMessage(err.Error()))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		status = http.StatusForbidden
		detail = dto.NewErrorDetail(dto.ErrorCodeForbidden, withMessage("Permission denied"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenRevoked, apperrors.ErrInvalidFormat):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrStorageFailure):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Storage failure")
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Storage failure").WithSeverity(dto.ErrorSeverityCritical)
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// HandleBindError reports a request body or form that failed to bind
func HandleBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
