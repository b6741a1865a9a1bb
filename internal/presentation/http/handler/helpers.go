package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gopidist/pharma-pos-api/internal/presentation/http/dto/response"
)

// parseIDParam reads and validates the :id path parameter. On failure it
// writes the error response and returns false.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
