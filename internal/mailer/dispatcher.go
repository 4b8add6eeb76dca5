package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/mrz1836/postmark"
	"github.com/rs/zerolog"

	"github.com/pingability/pingability-api/internal/models"
	"github.com/pingability/pingability-api/internal/pricing"
	"github.com/pingability/pingability-api/internal/validation"
)

// Message tags let the provider dashboard group notifications by kind.
const (
	TagContactInquiry      = "contact-inquiry"
	TagCustomBatInquiry    = "custom-bat-inquiry"
	TagBookingConfirmation = "booking-confirmation"
	TagCoachNotification   = "coach-notification"
)

// sentinel id reported when the provider accepts a message without returning an id.
const fallbackMessageID = "sent"

// Provider is the subset of the Postmark client used to deliver messages.
type Provider interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// ProviderFactory builds a provider client for an API key.
type ProviderFactory func(apiKey string, timeout time.Duration) Provider

// Message is a fully composed notification ready to hand to the provider.
type Message struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	Tag      string
}

// Receipt reports a successful hand-off to the provider.
type Receipt struct {
	MessageID string
	SentAt    time.Time
}

// Option customises a Dispatcher.
type Option func(*Dispatcher)

// WithProviderFactory replaces the Postmark client constructor.
func WithProviderFactory(factory ProviderFactory) Option {
	return func(d *Dispatcher) {
		if factory != nil {
			d.factory = factory
		}
	}
}

// WithClock overrides the time source used for timestamps in message bodies.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// Dispatcher turns inquiries and bookings into a single outbound email each.
type Dispatcher struct {
	cfg       Config
	factory   ProviderFactory
	provider  func() (Provider, error)
	templates templateSet
	location  *time.Location
	now       func() time.Time
	logger    zerolog.Logger
}

// NewDispatcher prepares a dispatcher. The provider client is not built until
// the first message is sent, so a missing API key only fails sends.
func NewDispatcher(cfg Config, logger zerolog.Logger, opts ...Option) (*Dispatcher, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	d := &Dispatcher{
		cfg:       cfg.withDefaults(),
		factory:   NewPostmarkProvider,
		templates: templates,
		location:  businessLocation(),
		now:       time.Now,
		logger:    logger.With().Str("component", "mailer").Logger(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.provider = sync.OnceValues(func() (Provider, error) {
		apiKey := strings.TrimSpace(d.cfg.APIKey)
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}
		return d.factory(apiKey, d.cfg.Timeout), nil
	})

	return d, nil
}

// NewPostmarkProvider builds a Postmark server client with a bounded HTTP timeout.
func NewPostmarkProvider(apiKey string, timeout time.Duration) Provider {
	client := postmark.NewClient(apiKey, "")
	client.HTTPClient = &http.Client{Timeout: timeout}
	return client
}

// SendContactInquiry notifies the business owner about a coaching enquiry.
func (d *Dispatcher) SendContactInquiry(ctx context.Context, inquiry models.ContactInquiry) (Receipt, error) {
	msg, err := d.ComposeContactInquiry(ctx, inquiry)
	if err != nil {
		return Receipt{}, err
	}
	return d.Send(ctx, msg)
}

// SendCustomBatInquiry notifies the business owner about a custom bat request.
func (d *Dispatcher) SendCustomBatInquiry(ctx context.Context, inquiry models.CustomBatInquiry) (Receipt, error) {
	msg, err := d.ComposeCustomBatInquiry(ctx, inquiry)
	if err != nil {
		return Receipt{}, err
	}
	return d.Send(ctx, msg)
}

// SendBookingConfirmation confirms a paid booking to the customer.
func (d *Dispatcher) SendBookingConfirmation(ctx context.Context, booking models.Booking) (Receipt, error) {
	msg, err := d.ComposeBookingConfirmation(ctx, booking)
	if err != nil {
		return Receipt{}, err
	}
	return d.Send(ctx, msg)
}

// SendCoachNotification tells the coach about a paid booking.
func (d *Dispatcher) SendCoachNotification(ctx context.Context, booking models.Booking) (Receipt, error) {
	msg, err := d.ComposeCoachNotification(ctx, booking)
	if err != nil {
		return Receipt{}, err
	}
	return d.Send(ctx, msg)
}

// ComposeContactInquiry renders the coaching enquiry notification.
func (d *Dispatcher) ComposeContactInquiry(ctx context.Context, inquiry models.ContactInquiry) (Message, error) {
	packageLabel := pricing.Label(inquiry.PackageType)
	view := coachingEnquiryView{
		Contact:       newContactView("Contact Information", inquiry.Contact),
		PackageLabel:  packageLabel,
		StartDate:     startDateLabel(inquiry.StartDate),
		SkillLevel:    titleLabel(inquiry.SkillLevel),
		Message:       inquiry.Message,
		ContactMethod: contactMethodLabel(inquiry.ContactMethod),
		HearAbout:     hearAboutLabel(inquiry.HearAbout),
		Footer:        d.inquiryFooter(inquiry.Contact.Name),
	}

	body, err := d.templates.render(ctx, tplCoachingEnquiry, view)
	if err != nil {
		return Message{}, err
	}

	subject := fmt.Sprintf("🏓 New Coaching Enquiry from %s", inquiry.Contact.Name)
	if packageLabel != "" {
		subject = fmt.Sprintf("🏓 Lesson Enquiry: %s from %s", packageLabel, inquiry.Contact.Name)
	}

	return Message{
		From:     d.sender(),
		To:       d.ownerRecipients(),
		ReplyTo:  formatAddress(inquiry.Contact.Email, inquiry.Contact.Name),
		Subject:  subject,
		HTMLBody: body,
		Tag:      TagContactInquiry,
	}, nil
}

// ComposeCustomBatInquiry renders the custom bat notification.
func (d *Dispatcher) ComposeCustomBatInquiry(ctx context.Context, inquiry models.CustomBatInquiry) (Message, error) {
	view := customBatInquiryView{
		Contact:          newContactView("Contact Information", inquiry.Contact),
		PlayingStyle:     titleLabel(inquiry.PlayingStyle),
		ConsultationType: consultationLabel(inquiry.ConsultationType),
		Budget:           strings.TrimSpace(inquiry.Budget),
		Message:          inquiry.Message,
		Footer:           d.inquiryFooter(inquiry.Contact.Name),
	}

	body, err := d.templates.render(ctx, tplCustomBatInquiry, view)
	if err != nil {
		return Message{}, err
	}

	return Message{
		From:     d.sender(),
		To:       d.ownerRecipients(),
		ReplyTo:  formatAddress(inquiry.Contact.Email, inquiry.Contact.Name),
		Subject:  fmt.Sprintf("🏓 Custom Bat Inquiry from %s", inquiry.Contact.Name),
		HTMLBody: body,
		Tag:      TagCustomBatInquiry,
	}, nil
}

// ComposeBookingConfirmation renders the customer-facing booking confirmation.
func (d *Dispatcher) ComposeBookingConfirmation(ctx context.Context, booking models.Booking) (Message, error) {
	view := bookingConfirmationView{
		CustomerName: booking.Customer.Name,
		LessonNoun:   lessonNoun(booking.SessionCount),
		LessonType:   lessonTypeLabel(booking.LessonType),
		SessionCount: booking.SessionCount,
		TotalAmount:  amountLabel(booking.TotalAmount),
		SupportEmail: d.cfg.Recipients[0].Address,
		Footer: footerView{
			Lead:      "This booking was confirmed on",
			Timestamp: d.timestamp(),
		},
	}

	body, err := d.templates.render(ctx, tplBookingConfirmation, view)
	if err != nil {
		return Message{}, err
	}

	plural := ""
	if booking.SessionCount != 1 {
		plural = "s"
	}

	return Message{
		From:     d.sender(),
		To:       []string{formatAddress(booking.Customer.Email, booking.Customer.Name)},
		Subject:  fmt.Sprintf("Booking Confirmation - %d Table Tennis Lesson%s", booking.SessionCount, plural),
		HTMLBody: body,
		Tag:      TagBookingConfirmation,
	}, nil
}

// ComposeCoachNotification renders the coach-facing booking notification.
func (d *Dispatcher) ComposeCoachNotification(ctx context.Context, booking models.Booking) (Message, error) {
	view := coachNotificationView{
		Contact:      newContactView("Customer Details", booking.Customer),
		LessonType:   lessonTypeLabel(booking.LessonType),
		SessionCount: booking.SessionCount,
		TotalAmount:  amountLabel(booking.TotalAmount),
		BookingID:    booking.ID,
		Footer: footerView{
			Lead:      "Booking received on",
			Timestamp: d.timestamp(),
			Note:      "This is an automated notification from your Pingability booking system.",
		},
	}

	body, err := d.templates.render(ctx, tplCoachNotification, view)
	if err != nil {
		return Message{}, err
	}

	return Message{
		From:     d.sender(),
		To:       d.ownerRecipients(),
		ReplyTo:  formatAddress(booking.Customer.Email, booking.Customer.Name),
		Subject:  fmt.Sprintf("🎾 New Booking - %s (%d %s)", booking.Customer.Name, booking.SessionCount, lessonNoun(booking.SessionCount)),
		HTMLBody: body,
		Tag:      TagCoachNotification,
	}, nil
}

// Send hands a composed message to the provider. Exactly one provider call is
// made; failures are never retried.
func (d *Dispatcher) Send(ctx context.Context, msg Message) (Receipt, error) {
	provider, err := d.provider()
	if err != nil {
		return Receipt{}, err
	}

	resp, err := provider.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       strings.Join(msg.To, ","),
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		Tag:      msg.Tag,
		HTMLBody: msg.HTMLBody,
	})
	if providerErr := rejection(resp, err); providerErr != nil {
		return Receipt{}, errors.Join(ErrSendFailed, providerErr)
	}
	if err != nil {
		return Receipt{}, errors.Join(ErrSendFailed, err)
	}

	messageID := strings.TrimSpace(resp.MessageID)
	if messageID == "" {
		messageID = fallbackMessageID
	}

	d.logger.Debug().Str("tag", msg.Tag).Str("message_id", messageID).Msg("email handed to provider")

	return Receipt{MessageID: messageID, SentAt: d.now().UTC()}, nil
}

// rejection extracts the provider's error code. Postmark reports it in the
// response body on 2xx replies and as an APIError on 4xx and 5xx replies.
func rejection(resp postmark.EmailResponse, err error) *ProviderError {
	if resp.ErrorCode != 0 {
		return &ProviderError{Code: int64(resp.ErrorCode), Message: resp.Message}
	}
	var apiErr postmark.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode != 0 {
		return &ProviderError{Code: apiErr.ErrorCode, Message: apiErr.Message}
	}
	return nil
}

func (d *Dispatcher) sender() string {
	return formatAddress(d.cfg.FromAddress, d.cfg.FromName)
}

func (d *Dispatcher) ownerRecipients() []string {
	out := make([]string, 0, len(d.cfg.Recipients))
	for _, recipient := range d.cfg.Recipients {
		out = append(out, formatAddress(recipient.Address, recipient.Name))
	}
	return out
}

func (d *Dispatcher) inquiryFooter(name string) footerView {
	return footerView{
		Lead:      "Submitted on",
		Timestamp: d.timestamp(),
		Note:      fmt.Sprintf("Reply directly to this email to contact %s.", name),
	}
}

func (d *Dispatcher) timestamp() string {
	return d.now().In(d.location).Format(submittedDisplay)
}

func newContactView(heading string, contact models.Contact) contactView {
	return contactView{
		Heading:   heading,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		PhoneLink: validation.NormalizePhone(contact.Phone),
	}
}

func formatAddress(address, name string) string {
	return (&mail.Address{Name: name, Address: address}).String()
}
