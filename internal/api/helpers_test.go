package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/calendara/backend/internal/api"
	"github.com/pageza/calendara/backend/internal/service"
	"github.com/pageza/calendara/backend/internal/testdb"
)

// memoryCodeStore is an in-process stand-in for the Redis-backed code
// store; redemption deletes, so single use holds the same way.
type memoryCodeStore struct {
	mu    sync.Mutex
	codes map[string]uuid.UUID
}

func newMemoryCodeStore() *memoryCodeStore {
	return &memoryCodeStore{codes: make(map[string]uuid.UUID)}
}

func (m *memoryCodeStore) SetCode(_ context.Context, code string, userID uuid.UUID, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[code] = userID
	return nil
}

func (m *memoryCodeStore) RedeemCode(_ context.Context, code string) (uuid.UUID, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.codes[code]
	if ok {
		delete(m.codes, code)
	}
	return userID, ok, nil
}

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

// newTestApp wires the full route surface against an in-memory database.
// Rate limiters stay off (the handlers treat a nil limiter as no limit)
// and sign-in codes live in a memory store instead of Redis.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.New(t)
	authService := service.NewAuthService(db, newMemoryCodeStore(), "test-secret")
	profileService := service.NewProfileService(db)
	eventTypeService := service.NewEventTypeService(db)
	availabilityService := service.NewAvailabilityService(db, eventTypeService)
	bookingPageService := service.NewBookingPageService(db)

	router := gin.New()
	v1 := router.Group("/api/v1")
	authHandler := api.NewAuthHandler(authService)
	authHandler.RegisterRoutes(v1)
	api.NewProfileHandler(profileService, nil, authService).RegisterRoutes(v1)
	api.NewEventTypeHandler(eventTypeService, availabilityService, authService, nil).RegisterRoutes(v1)
	v1.GET("/timezones", api.ListTimezones)
	router.GET("/auth/callback", authHandler.Callback)
	api.NewDashboardHandler(eventTypeService, profileService, authService).RegisterRoutes(router)
	api.NewPublicHandler(bookingPageService, nil).RegisterRoutes(router)

	return &testApp{router: router, db: db, auth: authService}
}

// registerHost registers an account through the API and returns its token.
func (app *testApp) registerHost(t *testing.T, email, username string) string {
	t.Helper()
	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":     email,
		"password":  "password123",
		"username":  username,
		"full_name": "Test Host",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (app *testApp) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func (app *testApp) createEventType(t *testing.T, token, title, slug string) uuid.UUID {
	t.Helper()
	w := app.request(t, http.MethodPost, "/api/v1/event-types", token, map[string]any{
		"title":            title,
		"slug":             slug,
		"duration_minutes": 30,
		"location_type":    "zoom",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}
