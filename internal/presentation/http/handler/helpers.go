package handler

import (
	"time"

	"github.com/clubdesk/clubdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the authenticated user's ID from the context
func GetUserID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetStoreID extracts the authenticated user's store ID from the context
func GetStoreID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get("store_id"); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// parseDateQuery reads the `date` query parameter as YYYY-MM-DD. It writes
// the error response itself; callers return immediately on !ok.
func parseDateQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		response.BadRequest(c, "date query parameter is required")
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.BadRequest(c, "date must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return date, true
}
