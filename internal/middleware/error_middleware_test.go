package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/grantsphere/internal/app/models/dto"
	"github.com/yigit/grantsphere/internal/pkg/apperrors"
)

func TestResolveError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"scholarship", fmt.Errorf("lookup: %w", apperrors.ErrScholarshipNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"session", apperrors.NewCustomError(apperrors.ErrSessionNotFound, "gone"), http.StatusNotFound, dto.ErrorCodeSessionNotFound},
		{"resource", apperrors.NewResourceNotFoundError("x"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"session limit", apperrors.ErrSessionLimit, http.StatusServiceUnavailable, dto.ErrorCodeSessionLimit},
		{"filter category", fmt.Errorf("%w: %q", apperrors.ErrUnknownFilterCategory, "color"), http.StatusBadRequest, dto.ErrorCodeUnknownFilter},
		{"search key", apperrors.NewCustomError(apperrors.ErrUnknownSearchKey, "Tab"), http.StatusBadRequest, dto.ErrorCodeUnsupportedInput},
		{"carousel action", apperrors.ErrUnknownCarouselAction, http.StatusBadRequest, dto.ErrorCodeUnsupportedInput},
		{"bad request", apperrors.NewBadRequestError("nope"), http.StatusBadRequest, dto.ErrorCodeUnsupportedInput},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"conflict", apperrors.NewConflictError("dup"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable, dto.ErrorCodeInternalServer},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := ResolveError(tt.err)
			assert.Equal(t, tt.status, status)
			require.NotNil(t, detail)
			assert.Equal(t, tt.code, detail.Code)
		})
	}
}

func TestResolveErrorFilterCategoryField(t *testing.T) {
	_, detail := ResolveError(apperrors.ErrUnknownFilterCategory)
	assert.Equal(t, "category", detail.Field)
}

func TestRecoveryWritesErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(zerolog.Nop()), Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeInternalServer))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
