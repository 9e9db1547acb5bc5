package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pageza/calendara/backend/internal/models"
)

// BookingState is the public booking page's terminal state, evaluated in
// order with first match winning. "Page not found" and "event unavailable"
// are distinct user-facing states and must never be conflated.
type BookingState int

const (
	BookingAvailable BookingState = iota
	BookingPageNotFound
	BookingEventUnavailable
)

// BookingPage is the data behind the public booking shell: host summary,
// event details, and nothing else. Slot selection arrives in phase 2.
type BookingPage struct {
	Host      models.PublicProfile `json:"host"`
	Username  string               `json:"username"`
	EventType models.EventType     `json:"event_type"`
}

// BookingPageService composes the unauthenticated profile and event type
// lookups for /{username}/{slug}.
type BookingPageService struct {
	db *gorm.DB
}

func NewBookingPageService(db *gorm.DB) *BookingPageService {
	return &BookingPageService{db: db}
}

// Load resolves the page. The returned state is meaningful whenever err is
// nil; page is non-nil only for BookingAvailable.
func (s *BookingPageService) Load(ctx context.Context, username, eventSlug string) (*BookingPage, BookingState, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, BookingPageNotFound, nil
		}
		return nil, BookingPageNotFound, unexpected("failed to load profile", err)
	}

	var eventType models.EventType
	if err := s.db.WithContext(ctx).
		Where("profile_id = ? AND slug = ?", profile.ID, eventSlug).
		First(&eventType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, BookingEventUnavailable, nil
		}
		return nil, BookingEventUnavailable, unexpected("failed to load event type", err)
	}
	if !eventType.IsActive {
		return nil, BookingEventUnavailable, nil
	}

	return &BookingPage{
		Host:      profile.Public(),
		Username:  username,
		EventType: eventType,
	}, BookingAvailable, nil
}
