package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pingability/pingability-api/internal/config"
	"github.com/pingability/pingability-api/internal/handler"
	"github.com/pingability/pingability-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	InquiryHandler *handler.InquiryHandler
	PricingHandler *handler.PricingHandler
	PaymentHandler *handler.PaymentHandler
	// InquiryLimiter throttles form submissions; nil disables throttling.
	InquiryLimiter fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.InquiryHandler != nil {
		var limiters []fiber.Handler
		if deps.InquiryLimiter != nil {
			limiters = append(limiters, deps.InquiryLimiter)
		}
		deps.InquiryHandler.Register(api, limiters...)
	}

	if deps.PricingHandler != nil {
		deps.PricingHandler.Register(api)
	}

	if deps.PaymentHandler != nil {
		deps.PaymentHandler.Register(api)
	}
}
