package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/pingability/pingability-api/internal/observability"
)

func TestMetricsHandlerExposesInquiryCounter(t *testing.T) {
	observability.InquirySubmissions().WithLabelValues("contact", "sent").Inc()

	app := fiber.New()
	app.Get("/metrics", observability.MetricsHandler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `inquiry_submissions_total{kind="contact",outcome="sent"}`)
}
