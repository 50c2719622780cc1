package http

import (
	"errors"
	"net/http"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"

	"github.com/gin-gonic/gin"
)

// writeError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a 500 with the upstream message.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	// A missing relay credential and a failed relay call are the same
	// failure from the caller's point of view.
	case errors.Is(err, entity.ErrUpstream), errors.Is(err, entity.ErrConfig):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
