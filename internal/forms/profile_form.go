package forms

import (
	"github.com/pageza/calendara/backend/internal/models"
	"github.com/pageza/calendara/backend/internal/timezone"
	"github.com/pageza/calendara/backend/internal/types"
)

// ProfileForm is the profile settings editing session.
type ProfileForm struct {
	Username string
	FullName string
	Timezone string
	Locale   string
}

// EditProfileForm seeds the session from the stored profile. An empty
// stored timezone falls back to the selector default.
func EditProfileForm(p *models.Profile) *ProfileForm {
	tz := p.Timezone
	if tz == "" {
		tz = timezone.Default("")
	}
	locale := p.Locale
	if locale == "" {
		locale = "en"
	}
	return &ProfileForm{
		Username: p.Username,
		FullName: p.FullName,
		Timezone: tz,
		Locale:   locale,
	}
}

// SelectTimezone applies a timezone selector change, falling back to the
// default when the choice is unusable.
func (f *ProfileForm) SelectTimezone(tz string) {
	f.Timezone = timezone.Default(tz)
}

// Request snapshots the session into the full-replace payload.
func (f *ProfileForm) Request() types.UpdateProfileRequest {
	return types.UpdateProfileRequest{
		Username: f.Username,
		FullName: f.FullName,
		Timezone: f.Timezone,
		Locale:   f.Locale,
	}
}
