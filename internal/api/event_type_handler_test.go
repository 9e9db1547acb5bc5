package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeRoutes(t *testing.T) {
	app := newTestApp(t)
	token := app.registerHost(t, "host@example.com", "host")

	t.Run("create returns 201 with the record", func(t *testing.T) {
		w := app.request(t, http.MethodPost, "/api/v1/event-types", token, map[string]any{
			"title":            "30 Minute Meeting",
			"duration_minutes": 30,
			"location_type":    "zoom",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			Data struct {
				Slug     string `json:"slug"`
				IsActive bool   `json:"is_active"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "30-minute-meeting", resp.Data.Slug)
		assert.True(t, resp.Data.IsActive)
	})

	t.Run("create with invalid payload returns 400 with details", func(t *testing.T) {
		w := app.request(t, http.MethodPost, "/api/v1/event-types", token, map[string]any{
			"title":            "",
			"duration_minutes": -1,
			"location_type":    "zoom",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error   string `json:"error"`
			Details []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid request body", resp.Error)
		assert.NotEmpty(t, resp.Details)
	})

	t.Run("list requires authentication", func(t *testing.T) {
		w := app.request(t, http.MethodGet, "/api/v1/event-types", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	})

	t.Run("update of a nonexistent id returns 404", func(t *testing.T) {
		w := app.request(t, http.MethodPut, "/api/v1/event-types/"+uuid.NewString(), token, map[string]any{
			"title": "Renamed",
		})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Event type not found"}`, w.Body.String())
	})

	t.Run("malformed id reads as 404, not 500", func(t *testing.T) {
		w := app.request(t, http.MethodGet, "/api/v1/event-types/not-a-uuid", token, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete returns a confirmation message", func(t *testing.T) {
		id := app.createEventType(t, token, "Throwaway", "throwaway")
		w := app.request(t, http.MethodDelete, "/api/v1/event-types/"+id.String(), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Event type deleted successfully"}`, w.Body.String())
	})

	t.Run("mutations by a non-owner return 403", func(t *testing.T) {
		id := app.createEventType(t, token, "Protected", "protected")
		otherToken := app.registerHost(t, "other@example.com", "other")

		w := app.request(t, http.MethodPut, "/api/v1/event-types/"+id.String(), otherToken, map[string]any{
			"title": "Hijacked",
		})
		require.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())

		w = app.request(t, http.MethodDelete, "/api/v1/event-types/"+id.String(), otherToken, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("duplicate slug returns 409", func(t *testing.T) {
		app.createEventType(t, token, "First", "taken-slug")
		w := app.request(t, http.MethodPost, "/api/v1/event-types", token, map[string]any{
			"title":            "Second",
			"slug":             "taken-slug",
			"duration_minutes": 30,
			"location_type":    "zoom",
		})
		require.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"An event type with this slug already exists"}`, w.Body.String())
	})

	t.Run("availability rules round trip", func(t *testing.T) {
		id := app.createEventType(t, token, "Office Hours", "office-hours")

		w := app.request(t, http.MethodPut, "/api/v1/event-types/"+id.String()+"/availability", token, map[string]any{
			"rules": []map[string]any{
				{"day_of_week": 1, "start_time": "09:00", "end_time": "17:00"},
			},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = app.request(t, http.MethodGet, "/api/v1/event-types/"+id.String()+"/availability", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []struct {
				DayOfWeek int    `json:"day_of_week"`
				StartTime string `json:"start_time"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "09:00", resp.Data[0].StartTime)
	})
}
