package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/grantsphere/internal/app/models/dto"
	"github.com/yigit/grantsphere/internal/pkg/apperrors"
)

// ResolveError maps an application error to an HTTP status and error detail
func ResolveError(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrScholarshipNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Scholarship not found")
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Browse session not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrSessionLimit):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeSessionLimit, "Too many browse sessions").
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrUnknownFilterCategory):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeUnknownFilter, "Unknown filter category").
			WithField("category").
			WithDetails(err.Error())
	case apperrors.Is(err, apperrors.ErrUnknownSearchKey, apperrors.ErrUnknownCarouselAction, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeUnsupportedInput, "Unsupported input").
			WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Conflict")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Request cancelled").
			WithSeverity(dto.ErrorSeverityWarning)
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ResolveError(err)
	if status >= http.StatusInternalServerError {
		requestLogger(c).Error().Err(err).Int("status", status).Msg("Request failed")
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}
