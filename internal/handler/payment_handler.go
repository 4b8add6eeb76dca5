package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/pingability/pingability-api/internal/dto"
	"github.com/pingability/pingability-api/internal/utils"
)

// MessagePaymentsDisabled is returned while online checkout is switched off.
const MessagePaymentsDisabled = "Payment processing temporarily disabled. Please contact us directly to book lessons."

// PaymentHandler keeps the checkout and webhook routes answering while
// online payment is switched off. Bookings go through the contact form.
type PaymentHandler struct {
	logger zerolog.Logger
}

// NewPaymentHandler constructs a payment handler.
func NewPaymentHandler(logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{logger: logger.With().Str("component", "payment_handler").Logger()}
}

// Register wires payment routes.
func (h *PaymentHandler) Register(router fiber.Router) {
	router.Post("/create-checkout-session", h.createCheckoutSession)
	router.Post("/webhooks/stripe", h.webhook)
}

func (h *PaymentHandler) createCheckoutSession(c *fiber.Ctx) error {
	requestLogger(h.logger, c).Info().Msg("checkout requested while payment processing is disabled")
	return utils.FailWithData(c, fiber.StatusServiceUnavailable, MessagePaymentsDisabled, dto.CheckoutSessionResponse{})
}

func (h *PaymentHandler) webhook(c *fiber.Ctx) error {
	requestLogger(h.logger, c).Info().Int("bytes", len(c.Body())).Msg("payment webhook ignored while payment processing is disabled")
	return utils.SendSuccess(c, "webhook received", dto.WebhookAck{Received: true})
}
