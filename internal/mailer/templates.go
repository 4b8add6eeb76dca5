package mailer

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	tplCoachingEnquiry     = "coaching_enquiry"
	tplCustomBatInquiry    = "custom_bat_inquiry"
	tplBookingConfirmation = "booking_confirmation"
	tplCoachNotification   = "coach_notification"
)

type templateSet map[string]*template.Template

func loadTemplates() (templateSet, error) {
	set := make(templateSet)
	for _, name := range []string{tplCoachingEnquiry, tplCustomBatInquiry, tplBookingConfirmation, tplCoachNotification} {
		tpl, err := template.ParseFS(templateFS, "templates/"+name+".html", "templates/partials.html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		set[name] = tpl
	}
	return set, nil
}

func (s templateSet) render(ctx context.Context, name string, data any) (string, error) {
	tpl, ok := s[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	return Render(ctx, templ.FromGoHTML(tpl, data))
}

// Render writes a templ component into a string.
func Render(ctx context.Context, component templ.Component) (string, error) {
	var sb strings.Builder
	if err := component.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type contactView struct {
	Heading   string
	Name      string
	Email     string
	Phone     string
	PhoneLink string
}

type footerView struct {
	Lead      string
	Timestamp string
	Note      string
}

type coachingEnquiryView struct {
	Contact       contactView
	PackageLabel  string
	StartDate     string
	SkillLevel    string
	Message       string
	ContactMethod string
	HearAbout     string
	Footer        footerView
}

type customBatInquiryView struct {
	Contact          contactView
	PlayingStyle     string
	ConsultationType string
	Budget           string
	Message          string
	Footer           footerView
}

type bookingConfirmationView struct {
	CustomerName string
	LessonNoun   string
	LessonType   string
	SessionCount int
	TotalAmount  string
	SupportEmail string
	Footer       footerView
}

type coachNotificationView struct {
	Contact      contactView
	LessonType   string
	SessionCount int
	TotalAmount  string
	BookingID    string
	Footer       footerView
}
