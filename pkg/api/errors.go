package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/pkg/services"
)

// publicInvalidLink is the only authorization failure message the candidate
// surface ever emits; the specific verify reason stays in the logs.
const publicInvalidLink = "invalid or expired link"

// mapServiceError maps service-layer errors to recruiter-facing HTTP
// responses. Recruiter responses carry the specific reason; state conflicts
// include the machine-readable code.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error(), "field": validErr.Field})
		return
	}

	var stateErr *services.StateError
	if errors.As(err, &stateErr) {
		c.JSON(http.StatusConflict, gin.H{"error": stateErr.Message, "code": stateErr.Code})
		return
	}

	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		c.JSON(http.StatusConflict, gin.H{"error": "concurrent modification, retry"})
		return
	}

	slog.Error("Unexpected service error", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// mapPublicError maps errors on the candidate surface. All authorization
// failures collapse into one opaque message; window failures get the two
// generic candidate messages the portal displays. State conflicts keep their
// code so the client shell can react (e.g. ALREADY_ANSWERED), but carry no
// entity detail.
func mapPublicError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error(), "field": validErr.Field})
		return
	}

	var stateErr *services.StateError
	if errors.As(err, &stateErr) {
		switch stateErr.Code {
		case services.CodeLinkNotYetActive:
			c.JSON(http.StatusForbidden, gin.H{"error": "interview is not active yet"})
		case services.CodeLinkExpired:
			c.JSON(http.StatusForbidden, gin.H{"error": publicInvalidLink})
		default:
			c.JSON(http.StatusConflict, gin.H{"error": stateErr.Message, "code": stateErr.Code})
		}
		return
	}

	if errors.Is(err, services.ErrNotFound) {
		slog.Warn("Public endpoint authorization failure",
			"path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusForbidden, gin.H{"error": publicInvalidLink})
		return
	}

	slog.Error("Unexpected error on public endpoint", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please retry"})
}
