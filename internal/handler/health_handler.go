package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pingability/pingability-api/internal/config"
	"github.com/pingability/pingability-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	// MailConfigured is false until a provider API key is set. Inquiries fail until then.
	MailConfigured bool `json:"mail_configured"`
}

// HealthCheck returns a handler that reports application health information.
func HealthCheck(cfg config.Config) fiber.Handler {
	mailConfigured := cfg.Mail.APIKey != ""

	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "service healthy", HealthResponse{
			Status:         "ok",
			Timestamp:      time.Now().UTC(),
			Service:        cfg.AppName,
			Environment:    cfg.AppEnv,
			MailConfigured: mailConfigured,
		})
	}
}
