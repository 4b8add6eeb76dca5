package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingability/pingability-api/internal/database"
)

func TestCorrelationIDGeneratedAndEchoed(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	app := fiber.New()
	app.Use(CorrelationID(logger))
	app.Get("/", func(c *fiber.Ctx) error {
		zerolog.Ctx(c.UserContext()).Info().Msg("inside")
		return c.SendString(GetCorrelationID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	header := resp.Header.Get("X-Correlation-ID")
	require.NotEmpty(t, header)
	assert.Equal(t, header, string(body))
	assert.Contains(t, buf.String(), header)
}

func TestCorrelationIDReusesIncomingHeader(t *testing.T) {
	app := fiber.New()
	app.Use(CorrelationID(zerolog.Nop()))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(GetCorrelationID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-42", resp.Header.Get("X-Correlation-ID"))
}

func TestObservabilityLogsAPIRequests(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	Register(app, Config{Logger: func() *zerolog.Logger { l := zerolog.New(&buf); return &l }()})
	app.Post("/api/contact", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	_, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/contact", nil), -1)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "/api/contact", entry["route"])
	assert.Equal(t, float64(400), entry["status"])
	assert.Equal(t, "warn", entry["level"])
}

func TestRegisterAppliesCORSOrigins(t *testing.T) {
	app := fiber.New()
	Register(app, Config{CORSOrigins: "https://pingability.co.uk"})
	app.Get("/api/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://pingability.co.uk")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "https://pingability.co.uk", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRateLimitBlocksAfterMax(t *testing.T) {
	app := fiber.New()
	app.Post("/api/contact", RateLimit(RateLimitConfig{Identifier: "contact", Max: 2, Window: time.Minute}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/contact", nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/contact", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.False(t, payload.Success)
	assert.Equal(t, RateLimitMessage, payload.Message)
}

func TestRateLimitWithRedisStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	app := fiber.New()
	app.Post("/api/custom-bats", RateLimit(RateLimitConfig{
		Identifier: "custom-bats",
		Max:        1,
		Window:     time.Minute,
		Storage:    database.NewLimiterStorage(client, "limiter"),
	}), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/custom-bats", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(t, mr.Keys())

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/custom-bats", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
