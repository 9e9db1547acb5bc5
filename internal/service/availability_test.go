package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/calendara/backend/internal/service"
	"github.com/pageza/calendara/backend/internal/types"
)

func TestAvailabilityRules(t *testing.T) {
	db := setupDB(t)
	eventTypes := service.NewEventTypeService(db)
	svc := service.NewAvailabilityService(db, eventTypes)
	owner, ownerProfile := createHost(t, db, "owner@example.com", "owner")
	intruder, _ := createHost(t, db, "intruder@example.com", "intruder")
	et := createEventType(t, db, ownerProfile, "Office Hours", "office-hours")
	ctx := context.Background()

	t.Run("replace installs the new rule set", func(t *testing.T) {
		rules, err := svc.ReplaceRules(ctx, owner.ID, et.ID, []types.AvailabilityRuleRequest{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
			{DayOfWeek: 3, StartTime: "13:00", EndTime: "17:00"},
		})
		require.NoError(t, err)
		assert.Len(t, rules, 2)

		listed, err := svc.ListRules(ctx, owner.ID, et.ID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, 1, listed[0].DayOfWeek)
		assert.Equal(t, "09:00", listed[0].StartTime)
	})

	t.Run("replace is a full swap, not a merge", func(t *testing.T) {
		_, err := svc.ReplaceRules(ctx, owner.ID, et.ID, []types.AvailabilityRuleRequest{
			{DayOfWeek: 5, StartTime: "10:00", EndTime: "11:00"},
		})
		require.NoError(t, err)

		listed, err := svc.ListRules(ctx, owner.ID, et.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, 5, listed[0].DayOfWeek)
	})

	t.Run("empty set clears the rules", func(t *testing.T) {
		rules, err := svc.ReplaceRules(ctx, owner.ID, et.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, rules)

		listed, err := svc.ListRules(ctx, owner.ID, et.ID)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	t.Run("rejects start at or after end", func(t *testing.T) {
		_, err := svc.ReplaceRules(ctx, owner.ID, et.ID, []types.AvailabilityRuleRequest{
			{DayOfWeek: 1, StartTime: "12:00", EndTime: "09:00"},
		})
		require.Error(t, err)
		assert.Equal(t, service.KindValidationFailed, service.KindOf(err))
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		_, err := svc.ReplaceRules(ctx, owner.ID, et.ID, []types.AvailabilityRuleRequest{
			{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00"},
		})
		require.Error(t, err)
		assert.Equal(t, service.KindValidationFailed, service.KindOf(err))
	})

	t.Run("replace by another owner is forbidden", func(t *testing.T) {
		_, err := svc.ReplaceRules(ctx, intruder.ID, et.ID, []types.AvailabilityRuleRequest{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
		})
		require.Error(t, err)
		assert.Equal(t, service.KindForbidden, service.KindOf(err))
	})

	t.Run("list by another owner reads as not found", func(t *testing.T) {
		_, err := svc.ListRules(ctx, intruder.ID, et.ID)
		require.Error(t, err)
		assert.Equal(t, service.KindNotFound, service.KindOf(err))
	})
}
