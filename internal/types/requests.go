package types

// RegisterRequest creates an account together with its profile.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name"`
	Timezone string `json:"timezone"`
	Locale   string `json:"locale"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is a full replace of the owner-editable profile
// fields. It is revalidated against the profile schema before the write.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Timezone string `json:"timezone"`
	Locale   string `json:"locale"`
}

// CreateEventTypeRequest carries a complete event type payload. Slug may be
// left empty, in which case it is derived from the title.
type CreateEventTypeRequest struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	LocationType    string `json:"location_type"`
	LocationValue   string `json:"location_value"`
	IsActive        *bool  `json:"is_active"`
	Color           string `json:"color"`
	BufferBefore    int    `json:"buffer_before"`
	BufferAfter     int    `json:"buffer_after"`
	MinNoticeHours  int    `json:"min_notice_hours"`
}

// UpdateEventTypeRequest is the partial-update payload: every field is
// optional, but a present field must satisfy the full constraint for that
// field. Only non-nil fields are persisted.
type UpdateEventTypeRequest struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"duration_minutes"`
	LocationType    *string `json:"location_type"`
	LocationValue   *string `json:"location_value"`
	IsActive        *bool   `json:"is_active"`
	Color           *string `json:"color"`
	BufferBefore    *int    `json:"buffer_before"`
	BufferAfter     *int    `json:"buffer_after"`
	MinNoticeHours  *int    `json:"min_notice_hours"`
}

// AvailabilityRuleRequest is one weekly availability window.
type AvailabilityRuleRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
