package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/calendara/backend/internal/forms"
	"github.com/pageza/calendara/backend/internal/middleware"
	"github.com/pageza/calendara/backend/internal/service"
)

// DashboardHandler serves the page loaders behind the signed-in dashboard.
// Each endpoint returns the data a page needs on first render; unauthenticated
// visitors are redirected to sign-in before the token is even validated.
type DashboardHandler struct {
	eventTypeService *service.EventTypeService
	profileService   *service.ProfileService
	authService      *service.AuthService
}

func NewDashboardHandler(eventTypeService *service.EventTypeService, profileService *service.ProfileService, authService *service.AuthService) *DashboardHandler {
	return &DashboardHandler{
		eventTypeService: eventTypeService,
		profileService:   profileService,
		authService:      authService,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.RequireSessionCookie())
	dashboard.Use(middleware.AuthMiddleware(h.authService))
	{
		dashboard.GET("/event-types", h.EventTypesPage)
		dashboard.GET("/event-types/new", h.NewEventTypePage)
		dashboard.GET("/event-types/:id/edit", h.EditEventTypePage)
		dashboard.GET("/profile", h.ProfilePage)
	}
}

// EventTypesPage loads the owner's event type list together with the public
// link base so each row can show its shareable URL.
func (h *DashboardHandler) EventTypesPage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	eventTypes, err := h.eventTypeService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"username":    profile.Username,
		"event_types": eventTypes,
	}})
}

// NewEventTypePage returns a blank editor session plus the picker presets.
func (h *DashboardHandler) NewEventTypePage(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	form := forms.NewEventTypeForm()
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"form":             form.Request(),
		"duration_options": forms.DurationOptions,
		"preset_colors":    forms.PresetColors,
	}})
}

// EditEventTypePage loads an existing record into an editor session. The
// loaded session starts with slug auto-derivation off, matching the editor.
func (h *DashboardHandler) EditEventTypePage(c *gin.Context) {
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

	form := forms.EditEventTypeForm(eventType)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"form":             form.Request(),
		"duration_options": forms.DurationOptions,
		"preset_colors":    forms.PresetColors,
	}})
}

// ProfilePage loads the profile settings form seeded from the stored
// profile.
func (h *DashboardHandler) ProfilePage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	form := forms.EditProfileForm(profile)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"form":       form.Request(),
		"avatar_url": profile.AvatarURL,
	}})
}
