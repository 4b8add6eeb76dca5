package mailer

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pingability/pingability-api/internal/models"
)

const (
	startDateLayout  = "2006-01-02"
	startDateDisplay = "Monday 2 January 2006"
	submittedDisplay = "2 January 2006 at 15:04"
	businessTimezone = "Europe/London"
)

var (
	titleCaser = cases.Title(language.BritishEnglish)

	consultationLabels = map[string]string{
		"email":     "Email",
		"phone":     "Phone",
		"in-person": "In-Person",
	}

	contactMethodLabels = map[string]string{
		"email": "Email",
		"phone": "Phone Call",
		"text":  "Text Message",
		"any":   "Any method is fine",
	}

	hearAboutLabels = map[string]string{
		"google":    "Google Search",
		"social":    "Social Media",
		"referral":  "Friend/Family Referral",
		"website":   "Website/Online",
		"community": "Community Centre",
		"other":     "Other",
	}
)

func businessLocation() *time.Location {
	loc, err := time.LoadLocation(businessTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func consultationLabel(value string) string {
	return consultationLabels[strings.ToLower(strings.TrimSpace(value))]
}

func contactMethodLabel(value string) string {
	return lookupOrRaw(contactMethodLabels, value)
}

func hearAboutLabel(value string) string {
	return lookupOrRaw(hearAboutLabels, value)
}

func lookupOrRaw(labels map[string]string, value string) string {
	value = strings.TrimSpace(value)
	if label, ok := labels[strings.ToLower(value)]; ok {
		return label
	}
	return value
}

// titleLabel turns slugs such as "all-round" into "All Round".
func titleLabel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	value = strings.NewReplacer("-", " ", "_", " ").Replace(value)
	return titleCaser.String(strings.ToLower(value))
}

func startDateLabel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parsed, err := time.Parse(startDateLayout, value)
	if err != nil {
		return value
	}
	return parsed.Format(startDateDisplay)
}

func lessonTypeLabel(t models.LessonType) string {
	if t == models.LessonTypeIndividual {
		return "Individual"
	}
	return "Group"
}

func amountLabel(amount float64) string {
	return fmt.Sprintf("£%.2f", amount)
}

func lessonNoun(count int) string {
	if count == 1 {
		return "lesson"
	}
	return "lessons"
}
