package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/calendara/backend/internal/middleware"
	"github.com/pageza/calendara/backend/internal/service"
	"github.com/pageza/calendara/backend/internal/timezone"
)

// PublicHandler serves the unauthenticated booking surface.
type PublicHandler struct {
	bookingPageService *service.BookingPageService
	pageLimiter        *middleware.RateLimiter
}

func NewPublicHandler(bookingPageService *service.BookingPageService, pageLimiter *middleware.RateLimiter) *PublicHandler {
	return &PublicHandler{
		bookingPageService: bookingPageService,
		pageLimiter:        pageLimiter,
	}
}

func (h *PublicHandler) RegisterRoutes(router *gin.Engine) {
	page := router.Group("/:username/:slug")
	if h.pageLimiter != nil {
		page.Use(h.pageLimiter.PerIPMiddleware())
	}
	page.GET("", h.BookingPage)
}

// BookingPage resolves /{username}/{slug}. The two failure states carry
// distinct titles so a missing host is never reported as a paused event.
func (h *PublicHandler) BookingPage(c *gin.Context) {
	username := c.Param("username")
	slug := c.Param("slug")

	page, state, err := h.bookingPageService.Load(c.Request.Context(), username, slug)
	if err != nil {
		respondError(c, err)
		return
	}

	switch state {
	case service.BookingPageNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Page Not Found",
			"message": "This user does not exist.",
		})
	case service.BookingEventUnavailable:
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Event Unavailable",
			"message": "This event type is not currently available for booking.",
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"data":    page,
			"message": "Calendar and time slot selection will be implemented in Phase 2",
		})
	}
}

// TimezoneOption pairs an IANA zone name with its display label.
type TimezoneOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ListTimezones backs the timezone selector. Labels carry the current UTC
// offset, so the list is rebuilt per request rather than cached.
func ListTimezones(c *gin.Context) {
	now := time.Now()
	names := timezone.Names()
	options := make([]TimezoneOption, 0, len(names))
	for _, name := range names {
		options = append(options, TimezoneOption{
			Value: name,
			Label: timezone.Label(name, now),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": options})
}
