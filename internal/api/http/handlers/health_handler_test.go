package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func readiness(t *testing.T, deps ...Dependency) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/ready", NewHealthHandler("restaurant-api", "test", "5000", deps...).Ready)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ready", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestReady(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("all healthy", func(t *testing.T) {
		status, body := readiness(t, Dependency{Name: "mongo", Check: ok}, Dependency{Name: "redis", Check: ok, Optional: true})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "ready", body["status"])
	})

	t.Run("optional dependency down", func(t *testing.T) {
		status, body := readiness(t, Dependency{Name: "mongo", Check: ok}, Dependency{Name: "redis", Check: down, Optional: true})
		assert.Equal(t, http.StatusOK, status)
		deps := body["dependencies"].(map[string]any)
		assert.Equal(t, "connection refused", deps["redis"])
	})

	t.Run("required dependency down", func(t *testing.T) {
		status, body := readiness(t, Dependency{Name: "mongo", Check: down})
		assert.Equal(t, http.StatusServiceUnavailable, status)
		errBody := body["error"].(map[string]any)
		assert.Equal(t, "DEPENDENCY_UNAVAILABLE", errBody["code"])
	})
}
