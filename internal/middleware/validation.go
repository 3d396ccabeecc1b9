package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/grantsphere/internal/app/models/dto"
)

// BindJSON decodes and validates a request body. On failure it writes a 400
// response and returns false. An empty body is accepted when allowEmpty is
// set.
func BindJSON(c *gin.Context, obj interface{}, allowEmpty bool) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}

	var fieldErrs validator.ValidationErrors
	var detail *dto.ErrorDetail
	if errors.As(err, &fieldErrs) {
		detail = dto.HandleValidationError(err)
	} else {
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	return false
}
