package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/pingability/pingability-api/internal/dto"
	"github.com/pingability/pingability-api/internal/mailer"
	"github.com/pingability/pingability-api/internal/service"
	"github.com/pingability/pingability-api/internal/utils"
)

// Client-facing messages. Internal causes never reach the response body.
const (
	MessageInvalidPayload = "invalid payload"
	MessageMissingFields  = "Missing required fields"
	MessageInvalidDetails = "Invalid inquiry details"
	MessageSendFailed     = "Failed to send. Please try again."
	MessageInquirySent    = "inquiry sent"
)

// InquiryHandler serves the contact and custom bat inquiry forms.
type InquiryHandler struct {
	service service.InquiryService
	logger  zerolog.Logger
}

// NewInquiryHandler constructs an inquiry handler.
func NewInquiryHandler(service service.InquiryService, logger zerolog.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		logger:  logger.With().Str("component", "inquiry_handler").Logger(),
	}
}

// Register wires inquiry routes. Limiters, when given, run before each route.
func (h *InquiryHandler) Register(router fiber.Router, limiters ...fiber.Handler) {
	router.Post("/contact", chain(limiters, h.submitContact)...)
	router.Post("/custom-bats", chain(limiters, h.submitCustomBat)...)
}

func chain(before []fiber.Handler, final fiber.Handler) []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(before)+1)
	handlers = append(handlers, before...)
	return append(handlers, final)
}

func (h *InquiryHandler) submitContact(c *fiber.Ctx) error {
	var payload dto.ContactInquiryRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, MessageInvalidPayload)
	}

	response, err := h.service.SubmitContact(c.UserContext(), payload)
	return h.respond(c, "contact", response, err)
}

func (h *InquiryHandler) submitCustomBat(c *fiber.Ctx) error {
	var payload dto.CustomBatInquiryRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, MessageInvalidPayload)
	}

	response, err := h.service.SubmitCustomBat(c.UserContext(), payload)
	return h.respond(c, "custom_bat", response, err)
}

func (h *InquiryHandler) respond(c *fiber.Ctx, kind string, response dto.InquiryResponse, err error) error {
	if err == nil {
		return utils.SendSuccess(c, MessageInquirySent, response)
	}

	switch {
	case errors.Is(err, service.ErrInquirySpam):
		return utils.SendError(c, fiber.StatusBadRequest, MessageInvalidPayload)
	case errors.Is(err, service.ErrMissingFields):
		return utils.SendError(c, fiber.StatusBadRequest, MessageMissingFields)
	case errors.Is(err, service.ErrInvalidInquiry):
		return utils.SendError(c, fiber.StatusBadRequest, MessageInvalidDetails)
	}

	event := requestLogger(h.logger, c).Error().Err(err).Str("kind", kind)
	var providerErr *mailer.ProviderError
	if errors.As(err, &providerErr) {
		event = event.Int64("provider_code", providerErr.Code).Str("provider_message", providerErr.Message)
	}
	if errors.Is(err, mailer.ErrMissingAPIKey) {
		event = event.Bool("mail_unconfigured", true)
	}
	event.Msg("failed to send inquiry email")

	return utils.SendError(c, fiber.StatusInternalServerError, MessageSendFailed)
}
