package validation

// Inline messages shown next to form fields.
const (
	EmailMessage    = "Please enter a valid email address"
	PhoneMessage    = "Please enter a valid UK phone number"
	RequiredMessage = "This field is required"
)

// CheckEmail returns the inline error for an email value, or "" when valid.
func CheckEmail(value string) string {
	if IsEmail(value) {
		return ""
	}
	return EmailMessage
}

// CheckPhone returns the inline error for a phone value, or "" when valid.
func CheckPhone(value string) string {
	if IsPhone(value) {
		return ""
	}
	return PhoneMessage
}
