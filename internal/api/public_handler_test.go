package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicBookingPage(t *testing.T) {
	app := newTestApp(t)
	token := app.registerHost(t, "host@example.com", "host")
	id := app.createEventType(t, token, "Intro Call", "intro-call")

	t.Run("active event serves the booking shell", func(t *testing.T) {
		w := app.request(t, http.MethodGet, "/host/intro-call", "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Data struct {
				Username  string `json:"username"`
				EventType struct {
					Title string `json:"title"`
				} `json:"event_type"`
				Host struct {
					FullName string `json:"full_name"`
				} `json:"host"`
			} `json:"data"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "host", resp.Data.Username)
		assert.Equal(t, "Intro Call", resp.Data.EventType.Title)
		assert.Contains(t, resp.Message, "Phase 2")
	})

	t.Run("unknown username returns the page-not-found state", func(t *testing.T) {
		w := app.request(t, http.MethodGet, "/ghost/intro-call", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Page Not Found","message":"This user does not exist."}`, w.Body.String())
	})

	t.Run("unknown slug returns the event-unavailable state", func(t *testing.T) {
		w := app.request(t, http.MethodGet, "/host/missing", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Event Unavailable","message":"This event type is not currently available for booking."}`, w.Body.String())
	})

	t.Run("deactivated event becomes unavailable, not missing", func(t *testing.T) {
		w := app.request(t, http.MethodPut, "/api/v1/event-types/"+id.String(), token, map[string]any{
			"is_active": false,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = app.request(t, http.MethodGet, "/host/intro-call", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Event Unavailable", resp.Error)
	})

	t.Run("public page never leaks the host email", func(t *testing.T) {
		w := app.request(t, http.MethodPut, "/api/v1/event-types/"+id.String(), token, map[string]any{
			"is_active": true,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = app.request(t, http.MethodGet, "/host/intro-call", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "host@example.com")
	})
}

func TestTimezoneList(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/api/v1/timezones", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data)

	var foundUTC bool
	for _, tz := range resp.Data {
		if tz.Value == "UTC" {
			foundUTC = true
		}
	}
	assert.True(t, foundUTC)
}
