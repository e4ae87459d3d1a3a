// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

// actor resolves the acting user from the X-Actor header, defaulting to
// "system". Authentication is out of scope; the header is an audit hint.
func actor(c *gin.Context) string {
	if a := c.GetHeader("X-Actor"); a != "" {
		return a
	}
	return "system"
}

// parseID parses a uuid path parameter, responding 400 on failure.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + param,
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain error kinds to HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, shared.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shared.ErrDuplicateKey):
		status = http.StatusConflict
	case errors.Is(err, shared.ErrInvalidTransition),
		errors.Is(err, shared.ErrInsufficientStock),
		errors.Is(err, shared.ErrOverRelease),
		errors.Is(err, shared.ErrOverPick),
		errors.Is(err, shared.ErrOverShip),
		errors.Is(err, shared.ErrCapacityExceeded),
		errors.Is(err, shared.ErrEmptyOrder):
		status = http.StatusConflict
	case errors.Is(err, shared.ErrInvalidValue),
		errors.Is(err, shared.ErrUnitMismatch),
		errors.Is(err, shared.ErrNegativeResult):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}
