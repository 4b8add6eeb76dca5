package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pingability/pingability-api/internal/dto"
	"github.com/pingability/pingability-api/internal/mailer"
	"github.com/pingability/pingability-api/internal/models"
	"github.com/pingability/pingability-api/internal/observability"
	"github.com/pingability/pingability-api/internal/pricing"
)

var (
	// ErrInquirySpam indicates the honeypot field was filled.
	ErrInquirySpam = errors.New("inquiry flagged as spam")
	// ErrMissingFields indicates a required field was absent or blank.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidInquiry indicates a field was present but malformed.
	ErrInvalidInquiry = errors.New("invalid inquiry details")
)

const statusSent = "sent"

// InquiryDispatcher delivers normalized inquiries as notification emails.
type InquiryDispatcher interface {
	SendContactInquiry(ctx context.Context, inquiry models.ContactInquiry) (mailer.Receipt, error)
	SendCustomBatInquiry(ctx context.Context, inquiry models.CustomBatInquiry) (mailer.Receipt, error)
}

// InquiryService validates inquiries and forwards each one as a single email.
// Submissions are not deduplicated: identical requests send identical emails.
type InquiryService interface {
	SubmitContact(ctx context.Context, req dto.ContactInquiryRequest) (dto.InquiryResponse, error)
	SubmitCustomBat(ctx context.Context, req dto.CustomBatInquiryRequest) (dto.InquiryResponse, error)
}

type inquiryService struct {
	validator  *validator.Validate
	dispatcher InquiryDispatcher
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// NewInquiryService constructs the inquiry workflow.
func NewInquiryService(validate *validator.Validate, dispatcher InquiryDispatcher, logger zerolog.Logger) InquiryService {
	return &inquiryService{
		validator:  validate,
		dispatcher: dispatcher,
		logger:     logger.With().Str("component", "inquiry_service").Logger(),
		tracer:     otel.Tracer("github.com/pingability/pingability-api/internal/service/inquiry"),
	}
}

func (s *inquiryService) SubmitContact(ctx context.Context, req dto.ContactInquiryRequest) (dto.InquiryResponse, error) {
	kind := string(models.InquiryKindContact)
	ctx, span := s.tracer.Start(ctx, "inquiry.submit_contact")
	defer span.End()

	if req.Honeypot != "" {
		return s.reject(span, kind, "spam", ErrInquirySpam)
	}

	req = dto.ContactInquiryRequest{
		Name:          cleanText(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Message:       cleanText(req.Message),
		ContactMethod: strings.TrimSpace(req.ContactMethod),
		HearAbout:     strings.TrimSpace(req.HearAbout),
		PackageType:   strings.TrimSpace(req.PackageType),
		StartDate:     strings.TrimSpace(req.StartDate),
		SkillLevel:    strings.TrimSpace(req.SkillLevel),
	}
	if err := s.validate(req); err != nil {
		return s.reject(span, kind, "invalid", err)
	}

	referenceID := uuid.NewString()
	span.SetAttributes(attribute.String("inquiry.reference_id", referenceID))
	if req.PackageType != "" {
		span.SetAttributes(attribute.String("inquiry.package", req.PackageType))
	}

	inquiry := models.ContactInquiry{
		ReferenceID:   referenceID,
		Contact:       models.Contact{Name: req.Name, Email: req.Email, Phone: req.Phone},
		Message:       req.Message,
		ContactMethod: req.ContactMethod,
		HearAbout:     req.HearAbout,
		PackageType:   pricing.PackageType(req.PackageType),
		StartDate:     req.StartDate,
		SkillLevel:    req.SkillLevel,
	}

	receipt, err := s.dispatcher.SendContactInquiry(ctx, inquiry)
	if err != nil {
		return s.fail(span, kind, referenceID, err)
	}

	return s.sent(span, kind, referenceID, req.Email, receipt), nil
}

func (s *inquiryService) SubmitCustomBat(ctx context.Context, req dto.CustomBatInquiryRequest) (dto.InquiryResponse, error) {
	kind := string(models.InquiryKindCustomBat)
	ctx, span := s.tracer.Start(ctx, "inquiry.submit_custom_bat")
	defer span.End()

	if req.Honeypot != "" {
		return s.reject(span, kind, "spam", ErrInquirySpam)
	}

	req = dto.CustomBatInquiryRequest{
		Name:             cleanText(req.Name),
		Email:            strings.TrimSpace(req.Email),
		Phone:            strings.TrimSpace(req.Phone),
		Message:          cleanText(req.Message),
		ConsultationType: strings.ToLower(strings.TrimSpace(req.ConsultationType)),
		PlayingStyle:     cleanText(req.PlayingStyle),
		Budget:           cleanText(req.Budget),
	}
	if err := s.validate(req); err != nil {
		return s.reject(span, kind, "invalid", err)
	}

	referenceID := uuid.NewString()
	span.SetAttributes(attribute.String("inquiry.reference_id", referenceID))

	inquiry := models.CustomBatInquiry{
		ReferenceID:      referenceID,
		Contact:          models.Contact{Name: req.Name, Email: req.Email, Phone: req.Phone},
		Message:          req.Message,
		ConsultationType: req.ConsultationType,
		PlayingStyle:     req.PlayingStyle,
		Budget:           req.Budget,
	}

	receipt, err := s.dispatcher.SendCustomBatInquiry(ctx, inquiry)
	if err != nil {
		return s.fail(span, kind, referenceID, err)
	}

	return s.sent(span, kind, referenceID, req.Email, receipt), nil
}

// validate maps validator output onto the two client-facing failure classes.
func (s *inquiryService) validate(payload any) error {
	err := s.validator.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			return fmt.Errorf("%w: %w", ErrMissingFields, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrInvalidInquiry, err)
}

// cleanText only trims. Free text is kept exactly as typed; the email
// templates escape it when rendering.
func cleanText(value string) string {
	return strings.TrimSpace(value)
}

func (s *inquiryService) reject(span trace.Span, kind, outcome string, err error) (dto.InquiryResponse, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	observability.InquirySubmissions().WithLabelValues(kind, outcome).Inc()
	return dto.InquiryResponse{}, err
}

func (s *inquiryService) fail(span trace.Span, kind, referenceID string, err error) (dto.InquiryResponse, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "dispatch failed")
	observability.InquirySubmissions().WithLabelValues(kind, "failed").Inc()
	return dto.InquiryResponse{}, fmt.Errorf("dispatch %s inquiry %s: %w", kind, referenceID, err)
}

func (s *inquiryService) sent(span trace.Span, kind, referenceID, email string, receipt mailer.Receipt) dto.InquiryResponse {
	observability.InquirySubmissions().WithLabelValues(kind, statusSent).Inc()
	span.SetAttributes(attribute.String("inquiry.message_id", receipt.MessageID))
	span.SetStatus(codes.Ok, statusSent)

	s.logger.Info().
		Str("kind", kind).
		Str("reference_id", referenceID).
		Str("message_id", receipt.MessageID).
		Str("email", maskEmailAddress(email)).
		Msg("inquiry email sent")

	return dto.InquiryResponse{ReferenceID: referenceID, Status: statusSent}
}
