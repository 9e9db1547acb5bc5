package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location types a host can pick for an event type.
const (
	LocationZoom       = "zoom"
	LocationGoogleMeet = "google_meet"
	LocationPhone      = "phone"
	LocationInPerson   = "in_person"
	LocationCustom     = "custom"
)

// EventType is a host-defined bookable meeting template. Owned by exactly
// one profile; the slug is unique per owner. Deletion is a hard delete.
type EventType struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID       uuid.UUID `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_profile_slug" json:"profile_id"`
	Title           string    `gorm:"size:100;not null" json:"title"`
	Slug            string    `gorm:"size:100;not null;uniqueIndex:idx_profile_slug" json:"slug"`
	Description     string    `gorm:"size:500" json:"description"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	LocationType    string    `gorm:"size:20;not null;default:'zoom'" json:"location_type"`
	LocationValue   string    `gorm:"size:255" json:"location_value"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	Color           string    `gorm:"size:9" json:"color"`
	BufferBefore    int       `gorm:"not null;default:0" json:"buffer_before"`
	BufferAfter     int       `gorm:"not null;default:0" json:"buffer_after"`
	MinNoticeHours  int       `gorm:"not null;default:1" json:"min_notice_hours"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (e *EventType) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// AvailabilityRule is a weekly recurring window during which an event type
// can be booked. Times are local 24-hour HH:MM strings; start must precede
// end.
type AvailabilityRule struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	EventTypeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"event_type_id"`
	DayOfWeek   int       `gorm:"not null" json:"day_of_week"`
	StartTime   string    `gorm:"size:5;not null" json:"start_time"`
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *AvailabilityRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
