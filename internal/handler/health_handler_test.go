package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/pingability/pingability-api/internal/config"
	"github.com/pingability/pingability-api/internal/handler"
)

func TestHealthCheck(t *testing.T) {
	app := fiber.New()
	app.Get("/api/health", handler.HealthCheck(config.Config{AppName: "Pingability API", AppEnv: "test"}))

	resp := send(t, app, http.MethodGet, "/api/health", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env envelope
	decodeResponse(t, resp, &env)

	var health handler.HealthResponse
	require.NoError(t, json.Unmarshal(env.Data, &health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "Pingability API", health.Service)
	require.Equal(t, "test", health.Environment)
	require.False(t, health.MailConfigured)
}
