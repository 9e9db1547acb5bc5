package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/calendara/backend/config"
	"github.com/pageza/calendara/backend/internal/middleware"
	"github.com/pageza/calendara/backend/internal/service"
)

// SetupAPI wires services, handlers and rate limiters onto the router.
// s3Config may be nil; avatar uploads then report storage as unavailable.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config, jwtSecret string) {
	// Services
	authService := service.NewAuthService(db, service.NewRedisCodeStore(redisClient), jwtSecret)
	profileService := service.NewProfileService(db)
	eventTypeService := service.NewEventTypeService(db)
	availabilityService := service.NewAvailabilityService(db, eventTypeService)
	bookingPageService := service.NewBookingPageService(db)
	var storageService *service.StorageService
	if s3Config != nil {
		storageService = service.NewStorageService(s3Config)
	}

	// Rate limiters
	mutationLimiter := middleware.NewMutationRateLimiter(redisClient)
	pageLimiter := middleware.NewPublicPageRateLimiter(redisClient)

	// Handlers
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService, storageService, authService)
	eventTypeHandler := NewEventTypeHandler(eventTypeService, availabilityService, authService, mutationLimiter)
	dashboardHandler := NewDashboardHandler(eventTypeService, profileService, authService)
	publicHandler := NewPublicHandler(bookingPageService, pageLimiter)

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		profileHandler.RegisterRoutes(v1)
		eventTypeHandler.RegisterRoutes(v1)
		v1.GET("/timezones", ListTimezones)
	}

	router.GET("/auth/callback", authHandler.Callback)
	dashboardHandler.RegisterRoutes(router)

	// Public booking page; static routes above take priority over the
	// username/slug parameters.
	publicHandler.RegisterRoutes(router)
}
