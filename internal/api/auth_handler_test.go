package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRoutes(t *testing.T) {
	app := newTestApp(t)

	t.Run("register sets the session cookie", func(t *testing.T) {
		w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
			"email":     "new@example.com",
			"password":  "password123",
			"username":  "newhost",
			"full_name": "New Host",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var sawCookie bool
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == "calendara-auth-token" && cookie.Value != "" {
				sawCookie = true
				assert.True(t, cookie.HttpOnly)
			}
		}
		assert.True(t, sawCookie)
	})

	t.Run("register with malformed email returns field details", func(t *testing.T) {
		w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
			"email":    "not-an-email",
			"password": "password123",
			"username": "another",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error   string `json:"error"`
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid request body", resp.Error)
		require.NotEmpty(t, resp.Details)
		assert.Equal(t, "email", resp.Details[0].Field)
	})

	t.Run("login with wrong password is a generic 401", func(t *testing.T) {
		w := app.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
			"email":    "new@example.com",
			"password": "wrongwrong",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	})

	t.Run("login returns a usable token", func(t *testing.T) {
		w := app.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
			"email":    "new@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		profile := app.request(t, http.MethodGet, "/api/v1/profile", resp.Token, nil)
		assert.Equal(t, http.StatusOK, profile.Code)
	})

	t.Run("issuing a code requires authentication", func(t *testing.T) {
		w := app.request(t, http.MethodPost, "/api/v1/auth/code", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout clears the session cookie", func(t *testing.T) {
		token := app.registerHost(t, "leaver@example.com", "leaver")
		w := app.request(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var cleared bool
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == "calendara-auth-token" && cookie.MaxAge < 0 {
				cleared = true
			}
		}
		assert.True(t, cleared)
	})
}

func TestAuthCallback(t *testing.T) {
	app := newTestApp(t)
	token := app.registerHost(t, "host@example.com", "host")

	issueCode := func(t *testing.T) string {
		w := app.request(t, http.MethodPost, "/api/v1/auth/code", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp struct {
			Code string `json:"code"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Code)
		return resp.Code
	}

	sessionCookie := func(w *httptest.ResponseRecorder) *http.Cookie {
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == "calendara-auth-token" && cookie.Value != "" {
				return cookie
			}
		}
		return nil
	}

	t.Run("valid code sets the session cookie and lands on the dashboard", func(t *testing.T) {
		code := issueCode(t)
		w := app.request(t, http.MethodGet, "/auth/callback?code="+code, "", nil)

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))

		cookie := sessionCookie(w)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)

		// The cookie carries a real session token.
		profile := app.request(t, http.MethodGet, "/api/v1/profile", cookie.Value, nil)
		assert.Equal(t, http.StatusOK, profile.Code)
	})

	t.Run("a code is single use", func(t *testing.T) {
		code := issueCode(t)
		w := app.request(t, http.MethodGet, "/auth/callback?code="+code, "", nil)
		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/dashboard", w.Header().Get("Location"))

		w = app.request(t, http.MethodGet, "/auth/callback?code="+code, "", nil)
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/auth/sign-in", w.Header().Get("Location"))
		assert.Nil(t, sessionCookie(w))
	})

	t.Run("an unknown code goes back to sign-in", func(t *testing.T) {
		w := app.request(t, http.MethodGet, "/auth/callback?code=not-a-code", "", nil)
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/auth/sign-in", w.Header().Get("Location"))
		assert.Nil(t, sessionCookie(w))
	})

	t.Run("no code just lands on the dashboard without a session", func(t *testing.T) {
		w := app.request(t, http.MethodGet, "/auth/callback", "", nil)
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
		assert.Nil(t, sessionCookie(w))
	})
}
