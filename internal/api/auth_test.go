package api

import (
	"net/http"
	"testing"

	"travelbook/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedConfig() config.APIConfig {
	return config.APIConfig{
		Auth: config.APIAuthConfig{
			Enabled:      true,
			HeaderAPIKey: "x-api-key",
			HeaderExtra:  "x-api-extra",
			APIKeys: []config.APIClientKey{
				{Key: "admin-key", Extra: "admin-extra", Name: "admin", Admin: true},
				{Key: "client-key", Extra: "client-extra", Name: "client"},
			},
		},
	}
}

func doAuthed(t *testing.T, method, url, key, extra string) *http.Response {
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	if key != "" {
		req.Header.Set("x-api-key", key)
	}
	if extra != "" {
		req.Header.Set("x-api-extra", extra)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestHTTPAuth(t *testing.T) {
	ts, _ := newTestServer(t, authedConfig())

	t.Run("HealthzSkipsAuth", func(t *testing.T) {
		resp := doAuthed(t, http.MethodGet, ts.URL+"/healthz", "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("MissingHeaders", func(t *testing.T) {
		resp := doAuthed(t, http.MethodGet, ts.URL+"/api/v1/hotels", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("InvalidKey", func(t *testing.T) {
		resp := doAuthed(t, http.MethodGet, ts.URL+"/api/v1/hotels", "wrong", "client-extra")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("InvalidExtra", func(t *testing.T) {
		resp := doAuthed(t, http.MethodGet, ts.URL+"/api/v1/hotels", "client-key", "wrong")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("ValidClient", func(t *testing.T) {
		resp := doAuthed(t, http.MethodGet, ts.URL+"/api/v1/hotels", "client-key", "client-extra")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("AdminOnlyForbidden", func(t *testing.T) {
		resp := doAuthed(t, http.MethodPost, ts.URL+"/api/v1/exports/bookings", "client-key", "client-extra")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp = doAuthed(t, http.MethodPost, ts.URL+"/api/v1/hotels", "client-key", "client-extra")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp = doAuthed(t, http.MethodDelete, ts.URL+"/api/v1/customers/1", "client-key", "client-extra")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("AdminAllowed", func(t *testing.T) {
		resp := doAuthed(t, http.MethodPost, ts.URL+"/api/v1/exports/bookings", "admin-key", "admin-extra")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestHTTPAuth_RateLimit(t *testing.T) {
	// Имя заголовка не задано, NewHTTPAuth подставляет дефолтное,
	// иначе клиенты слиплись бы в один лимитер по remote host
	cfg := config.APIConfig{
		RateLimit: config.APIRateLimitConfig{RPS: 1, Burst: 1},
	}
	ts, _ := newTestServer(t, cfg)

	first := doAuthed(t, http.MethodGet, ts.URL+"/api/v1/hotels", "key1", "")
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second := doAuthed(t, http.MethodGet, ts.URL+"/api/v1/hotels", "key1", "")
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)

	// У другого клиента свой лимит
	other := doAuthed(t, http.MethodGet, ts.URL+"/api/v1/hotels", "key2", "")
	assert.Equal(t, http.StatusOK, other.StatusCode)
}
