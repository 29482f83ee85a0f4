package handlers

import (
	"errors"
	"net/http"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps a service error onto its HTTP status. Role resolution
// failures map to 403, never to a default role.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Internal server error"

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		status = http.StatusUnauthorized
		msg = "Unauthorized"
	case errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrAccessDenied),
		errors.Is(err, apperrors.ErrProfileMissing),
		errors.Is(err, apperrors.ErrRoleMissing):
		status = http.StatusForbidden
		msg = "Access denied"
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrStateConflict),
		errors.Is(err, apperrors.ErrInsufficientStock):
		status = http.StatusConflict
		msg = err.Error()
	}

	c.JSON(status, ErrorResponse{Error: msg})
}
