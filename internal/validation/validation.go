// Package validation holds the declarative field constraints for profile
// and event type payloads. Validation runs synchronously before any
// persistence call and reports every failing field, not just the first.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pageza/calendara/backend/internal/models"
	"github.com/pageza/calendara/backend/internal/types"
)

// FieldError is one (field, message) validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full list of failures for a payload.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

var (
	slugChars   = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

	locationTypes = []string{
		models.LocationGoogleMeet,
		models.LocationZoom,
		models.LocationPhone,
		models.LocationInPerson,
		models.LocationCustom,
	}
)

// Profile validates a full profile replace.
func Profile(req *types.UpdateProfileRequest) Errors {
	var errs Errors
	errs = appendIf(errs, checkUsername(req.Username))
	errs = appendIf(errs, checkFullName(req.FullName))
	if req.Timezone == "" {
		errs = append(errs, FieldError{"timezone", "Timezone is required"})
	}
	if req.Locale == "" {
		errs = append(errs, FieldError{"locale", "Locale is required"})
	}
	return errs
}

// EventType validates a complete event type payload.
func EventType(req *types.CreateEventTypeRequest) Errors {
	var errs Errors
	errs = appendIf(errs, checkTitle(req.Title))
	errs = appendIf(errs, checkSlug(req.Slug))
	errs = appendIf(errs, checkDescription(req.Description))
	errs = appendIf(errs, checkDuration(req.DurationMinutes))
	errs = appendIf(errs, checkLocationType(req.LocationType))
	errs = appendIf(errs, checkBuffer("buffer_before", "Buffer before", req.BufferBefore))
	errs = appendIf(errs, checkBuffer("buffer_after", "Buffer after", req.BufferAfter))
	errs = appendIf(errs, checkMinNotice(req.MinNoticeHours))
	return errs
}

// EventTypePartial validates an update payload: absent fields pass, present
// fields must satisfy the full constraint for that field.
func EventTypePartial(req *types.UpdateEventTypeRequest) Errors {
	var errs Errors
	if req.Title != nil {
		errs = appendIf(errs, checkTitle(*req.Title))
	}
	if req.Slug != nil {
		errs = appendIf(errs, checkSlug(*req.Slug))
	}
	if req.Description != nil {
		errs = appendIf(errs, checkDescription(*req.Description))
	}
	if req.DurationMinutes != nil {
		errs = appendIf(errs, checkDuration(*req.DurationMinutes))
	}
	if req.LocationType != nil {
		errs = appendIf(errs, checkLocationType(*req.LocationType))
	}
	if req.BufferBefore != nil {
		errs = appendIf(errs, checkBuffer("buffer_before", "Buffer before", *req.BufferBefore))
	}
	if req.BufferAfter != nil {
		errs = appendIf(errs, checkBuffer("buffer_after", "Buffer after", *req.BufferAfter))
	}
	if req.MinNoticeHours != nil {
		errs = appendIf(errs, checkMinNotice(*req.MinNoticeHours))
	}
	return errs
}

// AvailabilityRules validates a replacement set of weekly windows.
func AvailabilityRules(rules []types.AvailabilityRuleRequest) Errors {
	var errs Errors
	for i, r := range rules {
		prefix := fmt.Sprintf("rules[%d].", i)
		if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
			errs = append(errs, FieldError{prefix + "day_of_week", "Day of week must be between 0 and 6"})
		}
		startOK := hhmmPattern.MatchString(r.StartTime)
		endOK := hhmmPattern.MatchString(r.EndTime)
		if !startOK {
			errs = append(errs, FieldError{prefix + "start_time", "Start time must be in HH:MM format"})
		}
		if !endOK {
			errs = append(errs, FieldError{prefix + "end_time", "End time must be in HH:MM format"})
		}
		if startOK && endOK && r.StartTime >= r.EndTime {
			errs = append(errs, FieldError{prefix + "start_time", "Start time must be before end time"})
		}
	}
	return errs
}

func appendIf(errs Errors, fe *FieldError) Errors {
	if fe != nil {
		errs = append(errs, *fe)
	}
	return errs
}

func checkUsername(v string) *FieldError {
	switch {
	case len(v) < 3:
		return &FieldError{"username", "Username must be at least 3 characters"}
	case len(v) > 30:
		return &FieldError{"username", "Username must be at most 30 characters"}
	case !slugChars.MatchString(v):
		return &FieldError{"username", "Username can only contain alphanumeric characters and hyphens"}
	}
	return nil
}

func checkFullName(v string) *FieldError {
	if len(v) > 100 {
		return &FieldError{"full_name", "Full name must be at most 100 characters"}
	}
	return nil
}

func checkTitle(v string) *FieldError {
	switch {
	case v == "":
		return &FieldError{"title", "Title is required"}
	case len(v) > 100:
		return &FieldError{"title", "Title must be at most 100 characters"}
	}
	return nil
}

func checkSlug(v string) *FieldError {
	switch {
	case v == "":
		return &FieldError{"slug", "Event slug is required"}
	case len(v) > 100:
		return &FieldError{"slug", "Event slug must be at most 100 characters"}
	case !slugChars.MatchString(v):
		return &FieldError{"slug", "Event slug can only contain alphanumeric characters and hyphens"}
	}
	return nil
}

func checkDescription(v string) *FieldError {
	if len(v) > 500 {
		return &FieldError{"description", "Description must be at most 500 characters"}
	}
	return nil
}

func checkDuration(v int) *FieldError {
	if v <= 0 {
		return &FieldError{"duration_minutes", "Duration must be a positive number"}
	}
	return nil
}

func checkLocationType(v string) *FieldError {
	for _, lt := range locationTypes {
		if v == lt {
			return nil
		}
	}
	return &FieldError{"location_type", "Location type must be one of: " + strings.Join(locationTypes, ", ")}
}

func checkBuffer(field, label string, v int) *FieldError {
	if v < 0 {
		return &FieldError{field, label + " must be non-negative"}
	}
	return nil
}

func checkMinNotice(v int) *FieldError {
	if v <= 0 {
		return &FieldError{"min_notice_hours", "Minimum notice must be a positive number"}
	}
	return nil
}

// FromBinding converts the validator failures surfaced by gin's request
// binding into the same per-field shape the schema validators produce.
func FromBinding(err error) Errors {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{{Field: "body", Message: "Invalid request body"}}
	}
	errs := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			msg = "Must be a valid email address"
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		errs = append(errs, FieldError{Field: field, Message: msg})
	}
	return errs
}
