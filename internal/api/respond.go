package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/calendara/backend/internal/service"
)

// currentUserID reads the identity the auth middleware resolved. Handlers
// pass it on explicitly; nothing below this layer reads ambient session
// state.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

// respondError maps a service failure onto the wire taxonomy:
// Unauthorized 401, Forbidden 403, NotFound 404 (resource-specific
// message), ValidationFailed 400 with per-field details, everything else a
// logged generic 500. No handler leaks internal error text.
func respondError(c *gin.Context, err error) {
	if se, ok := service.AsServiceError(err); ok {
		switch se.Kind {
		case service.KindUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{"error": se.Message})
			return
		case service.KindForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": se.Message})
			return
		case service.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": se.Message})
			return
		case service.KindValidationFailed:
			c.JSON(http.StatusBadRequest, gin.H{"error": se.Message, "details": se.Details})
			return
		case service.KindConflict:
			c.JSON(http.StatusConflict, gin.H{"error": se.Message})
			return
		}
	}
	log.Printf("Unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
