// Package forms models the client-side form sessions: local field state,
// the slug auto-derivation latch and the submission snapshot handed to the
// resource layer.
package forms

import (
	"github.com/pageza/calendara/backend/internal/models"
	"github.com/pageza/calendara/backend/internal/slug"
	"github.com/pageza/calendara/backend/internal/types"
)

// Duration presets offered by the editor. The schema accepts any positive
// duration; these are only the recommended choices.
var DurationOptions = []int{15, 30, 45, 60, 90, 120}

// Preset swatches for the event color picker.
var PresetColors = []string{
	"#3B82F6", "#8B5CF6", "#EC4899", "#EF4444", "#F59E0B",
	"#10B981", "#06B6D4", "#6366F1", "#14B8A6", "#84CC16",
}

// EventTypeForm is one editing session of the event type editor. The slug
// tracks the title through slugification until the slug field is edited
// directly; that latch is one-way and only re-arms when a fresh form is
// loaded.
type EventTypeForm struct {
	Title           string
	Slug            string
	Description     string
	DurationMinutes int
	LocationType    string
	LocationValue   string
	IsActive        bool
	Color           string
	BufferBefore    int
	BufferAfter     int
	MinNoticeHours  int

	slugManuallyEdited bool
}

// NewEventTypeForm starts a blank "new event type" session with the
// editor's defaults.
func NewEventTypeForm() *EventTypeForm {
	return &EventTypeForm{
		DurationMinutes: 30,
		LocationType:    models.LocationZoom,
		IsActive:        true,
		Color:           PresetColors[0],
	}
}

// EditEventTypeForm starts an edit session from an existing record. The
// record already carries a slug, so auto-derivation starts latched off.
func EditEventTypeForm(et *models.EventType) *EventTypeForm {
	return &EventTypeForm{
		Title:              et.Title,
		Slug:               et.Slug,
		Description:        et.Description,
		DurationMinutes:    et.DurationMinutes,
		LocationType:       et.LocationType,
		LocationValue:      et.LocationValue,
		IsActive:           et.IsActive,
		Color:              et.Color,
		BufferBefore:       et.BufferBefore,
		BufferAfter:        et.BufferAfter,
		MinNoticeHours:     et.MinNoticeHours,
		slugManuallyEdited: et.Slug != "",
	}
}

// SetTitle updates the title and, while the slug has not been manually
// edited this session, keeps the slug in sync with it.
func (f *EventTypeForm) SetTitle(title string) {
	f.Title = title
	if !f.slugManuallyEdited && title != "" {
		f.Slug = slug.Make(title)
	}
}

// SetSlug records a direct edit of the slug field. The input is slugified
// and auto-derivation from the title is permanently disabled for this
// session.
func (f *EventTypeForm) SetSlug(s string) {
	f.slugManuallyEdited = true
	f.Slug = slug.Make(s)
}

// Request snapshots the session into the typed create/replace payload.
func (f *EventTypeForm) Request() types.CreateEventTypeRequest {
	active := f.IsActive
	return types.CreateEventTypeRequest{
		Title:           f.Title,
		Slug:            f.Slug,
		Description:     f.Description,
		DurationMinutes: f.DurationMinutes,
		LocationType:    f.LocationType,
		LocationValue:   f.LocationValue,
		IsActive:        &active,
		Color:           f.Color,
		BufferBefore:    f.BufferBefore,
		BufferAfter:     f.BufferAfter,
		MinNoticeHours:  f.MinNoticeHours,
	}
}
