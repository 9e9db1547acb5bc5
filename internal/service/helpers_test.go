package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/calendara/backend/internal/models"
	"github.com/pageza/calendara/backend/internal/testdb"
)

// memoryCodeStore replaces the Redis code store in tests; redemption
// deletes, preserving the single-use behavior.
type memoryCodeStore struct {
	codes map[string]uuid.UUID
}

func newMemoryCodeStore() *memoryCodeStore {
	return &memoryCodeStore{codes: make(map[string]uuid.UUID)}
}

func (m *memoryCodeStore) SetCode(_ context.Context, code string, userID uuid.UUID, _ time.Duration) error {
	m.codes[code] = userID
	return nil
}

func (m *memoryCodeStore) RedeemCode(_ context.Context, code string) (uuid.UUID, bool, error) {
	userID, ok := m.codes[code]
	if ok {
		delete(m.codes, code)
	}
	return userID, ok, nil
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testdb.New(t)
}

func createHost(t *testing.T, db *gorm.DB, email, username string) (models.User, models.Profile) {
	t.Helper()
	user := models.User{
		Email:        email,
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
	require.NoError(t, db.Create(&user).Error)

	profile := models.Profile{
		UserID:   user.ID,
		Username: username,
		FullName: "Test Host",
		Timezone: "UTC",
		Locale:   "en",
	}
	require.NoError(t, db.Create(&profile).Error)
	return user, profile
}

func createEventType(t *testing.T, db *gorm.DB, profile models.Profile, title, slug string) models.EventType {
	t.Helper()
	et := models.EventType{
		ProfileID:       profile.ID,
		Title:           title,
		Slug:            slug,
		DurationMinutes: 30,
		LocationType:    models.LocationZoom,
		IsActive:        true,
		MinNoticeHours:  1,
	}
	require.NoError(t, db.Create(&et).Error)
	return et
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }
