package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/pingability/pingability-api/internal/utils"
)

// RateLimitMessage is returned to clients that exceed the submission quota.
const RateLimitMessage = "Too many requests. Please try again shortly."

// RateLimitConfig describes a per-client submission quota.
type RateLimitConfig struct {
	Identifier string
	Max        int
	Window     time.Duration
	// Storage shares counters between replicas; nil keeps them in memory.
	Storage fiber.Storage
}

// RateLimit throttles requests per client IP. It only counts requests and
// never inspects or deduplicates payloads.
func RateLimit(cfg RateLimitConfig) fiber.Handler {
	if cfg.Max <= 0 {
		cfg.Max = 5
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}

	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		Storage:    cfg.Storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return cfg.Identifier + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.SendError(c, fiber.StatusTooManyRequests, RateLimitMessage)
		},
	})
}
