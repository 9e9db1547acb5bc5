package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/calendara/backend/internal/models"
	"github.com/pageza/calendara/backend/internal/slug"
	"github.com/pageza/calendara/backend/internal/types"
	"github.com/pageza/calendara/backend/internal/validation"
)

const defaultColor = "#3B82F6"

// EventTypeService owns every event type read and write. Mutations load
// the record's owner first and refuse callers that do not match; reads are
// owner-filtered queries.
type EventTypeService struct {
	db *gorm.DB
}

func NewEventTypeService(db *gorm.DB) *EventTypeService {
	return &EventTypeService{db: db}
}

func (s *EventTypeService) profileIDFor(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Select("id").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, notFound("Profile not found")
		}
		return uuid.Nil, unexpected("failed to resolve profile", err)
	}
	return profile.ID, nil
}

// List returns the caller's event types, newest first.
func (s *EventTypeService) List(ctx context.Context, userID uuid.UUID) ([]models.EventType, error) {
	profileID, err := s.profileIDFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	var eventTypes []models.EventType
	if err := s.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&eventTypes).Error; err != nil {
		return nil, unexpected("failed to list event types", err)
	}
	return eventTypes, nil
}

// Get fetches one of the caller's event types by id. The query is
// owner-filtered, so another owner's record reads as not found.
func (s *EventTypeService) Get(ctx context.Context, userID, id uuid.UUID) (*models.EventType, error) {
	profileID, err := s.profileIDFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	var eventType models.EventType
	if err := s.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&eventType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Event type not found")
		}
		return nil, unexpected("failed to load event type", err)
	}
	return &eventType, nil
}

// Create validates a full payload and inserts it for the caller. An empty
// slug is derived from the title; a zero minimum notice falls back to the
// schema default of one hour.
func (s *EventTypeService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateEventTypeRequest) (*models.EventType, error) {
	profileID, err := s.profileIDFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Title)
	}
	if req.MinNoticeHours == 0 {
		req.MinNoticeHours = 1
	}
	if errs := validation.EventType(req); len(errs) > 0 {
		return nil, invalid(errs)
	}

	eventType := models.EventType{
		ProfileID:       profileID,
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		LocationType:    req.LocationType,
		LocationValue:   req.LocationValue,
		IsActive:        req.IsActive == nil || *req.IsActive,
		Color:           defaultString(req.Color, defaultColor),
		BufferBefore:    req.BufferBefore,
		BufferAfter:     req.BufferAfter,
		MinNoticeHours:  req.MinNoticeHours,
	}
	if err := s.db.WithContext(ctx).Create(&eventType).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("An event type with this slug already exists")
		}
		return nil, unexpected("failed to create event type", err)
	}
	return &eventType, nil
}

// Update applies a validated partial payload to an existing record. The
// owner is loaded first: a missing record is NotFound, a foreign one is
// Forbidden, regardless of payload validity.
func (s *EventTypeService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateEventTypeRequest) (*models.EventType, error) {
	eventType, err := s.loadForMutation(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if errs := validation.EventTypePartial(req); len(errs) > 0 {
		return nil, invalid(errs)
	}

	applyEventTypeUpdate(eventType, req)

	if err := s.db.WithContext(ctx).Save(eventType).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("An event type with this slug already exists")
		}
		return nil, unexpected("failed to update event type", err)
	}
	return eventType, nil
}

// Delete removes the record unconditionally after the ownership gate. No
// dependent-record check exists; bookings are a later phase.
func (s *EventTypeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	eventType, err := s.loadForMutation(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(eventType).Error; err != nil {
		return unexpected("failed to delete event type", err)
	}
	return nil
}

// loadForMutation fetches the record without an owner filter so the caller
// can be told Forbidden rather than NotFound when the record exists but
// belongs to someone else.
func (s *EventTypeService) loadForMutation(ctx context.Context, userID, id uuid.UUID) (*models.EventType, error) {
	var eventType models.EventType
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&eventType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Event type not found")
		}
		return nil, unexpected("failed to load event type", err)
	}

	profileID, err := s.profileIDFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if eventType.ProfileID != profileID {
		return nil, forbidden()
	}
	return &eventType, nil
}

func applyEventTypeUpdate(et *models.EventType, req *types.UpdateEventTypeRequest) {
	if req.Title != nil {
		et.Title = *req.Title
	}
	if req.Slug != nil {
		et.Slug = *req.Slug
	}
	if req.Description != nil {
		et.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		et.DurationMinutes = *req.DurationMinutes
	}
	if req.LocationType != nil {
		et.LocationType = *req.LocationType
	}
	if req.LocationValue != nil {
		et.LocationValue = *req.LocationValue
	}
	if req.IsActive != nil {
		et.IsActive = *req.IsActive
	}
	if req.Color != nil {
		et.Color = *req.Color
	}
	if req.BufferBefore != nil {
		et.BufferBefore = *req.BufferBefore
	}
	if req.BufferAfter != nil {
		et.BufferAfter = *req.BufferAfter
	}
	if req.MinNoticeHours != nil {
		et.MinNoticeHours = *req.MinNoticeHours
	}
}
