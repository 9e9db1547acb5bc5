package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/calendara/backend/internal/middleware"
	"github.com/pageza/calendara/backend/internal/service"
	"github.com/pageza/calendara/backend/internal/types"
)

// EventTypeHandler exposes the owner-facing event type resource.
type EventTypeHandler struct {
	eventTypeService    *service.EventTypeService
	availabilityService *service.AvailabilityService
	authService         *service.AuthService
	mutationLimiter     *middleware.RateLimiter
}

func NewEventTypeHandler(eventTypeService *service.EventTypeService, availabilityService *service.AvailabilityService, authService *service.AuthService, mutationLimiter *middleware.RateLimiter) *EventTypeHandler {
	return &EventTypeHandler{
		eventTypeService:    eventTypeService,
		availabilityService: availabilityService,
		authService:         authService,
		mutationLimiter:     mutationLimiter,
	}
}

func (h *EventTypeHandler) RegisterRoutes(router *gin.RouterGroup) {
	eventTypes := router.Group("/event-types")
	eventTypes.Use(middleware.AuthMiddleware(h.authService))
	{
		eventTypes.GET("", h.ListEventTypes)
		eventTypes.GET("/:id", h.GetEventType)
		eventTypes.GET("/:id/availability", h.ListAvailability)

		mutations := eventTypes.Group("")
		if h.mutationLimiter != nil {
			mutations.Use(h.mutationLimiter.PerUserMiddleware())
		}
		mutations.POST("", h.CreateEventType)
		mutations.PUT("/:id", h.UpdateEventType)
		mutations.DELETE("/:id", h.DeleteEventType)
		mutations.PUT("/:id/availability", h.ReplaceAvailability)
	}
}

func (h *EventTypeHandler) ListEventTypes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eventTypes, err := h.eventTypeService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": eventTypes})
}

func (h *EventTypeHandler) GetEventType(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := eventTypeID(c)
	if !ok {
		return
	}

	eventType, err := h.eventTypeService.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": eventType})
}

func (h *EventTypeHandler) CreateEventType(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	eventType, err := h.eventTypeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": eventType})
}

func (h *EventTypeHandler) UpdateEventType(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := eventTypeID(c)
	if !ok {
		return
	}

	var req types.UpdateEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	eventType, err := h.eventTypeService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": eventType})
}

func (h *EventTypeHandler) DeleteEventType(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := eventTypeID(c)
	if !ok {
		return
	}

	if err := h.eventTypeService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event type deleted successfully"})
}

func (h *EventTypeHandler) ListAvailability(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := eventTypeID(c)
	if !ok {
		return
	}

	rules, err := h.availabilityService.ListRules(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rules})
}

func (h *EventTypeHandler) ReplaceAvailability(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := eventTypeID(c)
	if !ok {
		return
	}

	var req struct {
		Rules []types.AvailabilityRuleRequest `json:"rules"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	rules, err := h.availabilityService.ReplaceRules(c.Request.Context(), userID, id, req.Rules)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rules})
}

func eventTypeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event type not found"})
		return uuid.Nil, false
	}
	return id, true
}
