package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khasanoff/uaa_backend/internal/apperrors"
	"github.com/khasanoff/uaa_backend/internal/dto"
	"github.com/khasanoff/uaa_backend/internal/middleware"
)

// respondOK writes data wrapped in the success envelope.
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// respondError is the single exception boundary for handler errors: AppErrors
// keep their status and message; anything else becomes a 500 carrying the raw
// error message.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		logger.Warn("Request failed", slog.Int("status", appErr.Code), slog.String("error", appErr.Message))
		c.JSON(appErr.Code, dto.NewErrorResponse(appErr.Message))
		return
	}

	logger.Error("Unhandled error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
}

// bindJSON binds and validates the request body into obj. On failure it
// writes a 422 with the field-level error map and returns false.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(dto.FieldErrors(obj, err)))
		return false
	}
	return true
}
