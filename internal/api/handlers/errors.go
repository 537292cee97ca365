package handlers

import (
	"errors"
	"net/http"

	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
	Kind  string `json:"kind,omitempty" example:"conflict"`
}

// handleError translates domain errors to HTTP statuses with a stable
// machine-readable kind. Unexpected errors are logged with full context and
// surfaced only as a generic message, never leaking store internals.
func handleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "validation"})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error(), Kind: "authorization"})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Kind: "not_found"})
	case errors.Is(err, apperrors.ErrBuildNotLikeable):
		// Conflict by kind, but the like route surfaces it as 403.
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error(), Kind: "conflict"})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Kind: "conflict"})
	default:
		logger.WithContext(c).WithFields(map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
		}).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Kind: "internal"})
	}
}
