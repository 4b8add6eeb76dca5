package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// TagEmail is the validator tag for the relaxed address check used by the site forms.
	TagEmail = "simpleemail"
	// TagPhone is the validator tag for UK-centric phone numbers.
	TagPhone = "ukphone"

	minFallbackPhoneLength = 10
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	ukPhonePattern = regexp.MustCompile(`^(\+44|0)\d{9,10}$`)
	phoneStripper  = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// IsEmail reports whether the value looks like an email address.
func IsEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

// IsPhone reports whether the value is an acceptable phone number.
// Spaces, dashes and parentheses are ignored. Numbers that do not follow the UK
// format are still accepted when they carry at least ten characters (not bytes).
func IsPhone(value string) bool {
	cleaned := NormalizePhone(value)
	if cleaned == "" {
		return false
	}
	return ukPhonePattern.MatchString(cleaned) || utf8.RuneCountInString(cleaned) >= minFallbackPhoneLength
}

// NormalizePhone strips the separators users commonly type into phone fields.
func NormalizePhone(value string) string {
	return phoneStripper.Replace(strings.TrimSpace(value))
}

// New returns a validator with the inquiry rules registered.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(validate); err != nil {
		panic(err)
	}
	return validate
}

// Register attaches the inquiry rules to an existing validator.
func Register(validate *validator.Validate) error {
	if err := validate.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	return validate.RegisterValidation(TagPhone, func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
}
