package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/calendara/backend/internal/models"
	"github.com/pageza/calendara/backend/internal/types"
	"github.com/pageza/calendara/backend/internal/validation"
)

// AvailabilityService manages the weekly availability windows attached to
// an event type. Ownership is inherited from the event type.
type AvailabilityService struct {
	db         *gorm.DB
	eventTypes *EventTypeService
}

func NewAvailabilityService(db *gorm.DB, eventTypes *EventTypeService) *AvailabilityService {
	return &AvailabilityService{db: db, eventTypes: eventTypes}
}

// ListRules returns the rules for one of the caller's event types, ordered
// by day then start time.
func (s *AvailabilityService) ListRules(ctx context.Context, userID, eventTypeID uuid.UUID) ([]models.AvailabilityRule, error) {
	if _, err := s.eventTypes.Get(ctx, userID, eventTypeID); err != nil {
		return nil, err
	}
	var rules []models.AvailabilityRule
	if err := s.db.WithContext(ctx).
		Where("event_type_id = ?", eventTypeID).
		Order("day_of_week, start_time").
		Find(&rules).Error; err != nil {
		return nil, unexpected("failed to list availability rules", err)
	}
	return rules, nil
}

// ReplaceRules swaps the event type's rule set atomically. The event type
// is loaded through the mutation gate, so a foreign record is Forbidden.
func (s *AvailabilityService) ReplaceRules(ctx context.Context, userID, eventTypeID uuid.UUID, reqs []types.AvailabilityRuleRequest) ([]models.AvailabilityRule, error) {
	if _, err := s.eventTypes.loadForMutation(ctx, userID, eventTypeID); err != nil {
		return nil, err
	}
	if errs := validation.AvailabilityRules(reqs); len(errs) > 0 {
		return nil, invalid(errs)
	}

	rules := make([]models.AvailabilityRule, len(reqs))
	for i, r := range reqs {
		rules[i] = models.AvailabilityRule{
			EventTypeID: eventTypeID,
			DayOfWeek:   r.DayOfWeek,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_type_id = ?", eventTypeID).Delete(&models.AvailabilityRule{}).Error; err != nil {
			return err
		}
		if len(rules) == 0 {
			return nil
		}
		return tx.Create(&rules).Error
	})
	if err != nil {
		return nil, unexpected("failed to replace availability rules", err)
	}
	return rules, nil
}
