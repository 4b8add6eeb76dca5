package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when no provider API key has been configured.
	ErrMissingAPIKey = errors.New("mail provider api key is not set: configure PINGABILITY_MAIL_API_KEY in the environment or .env file")
	// ErrSendFailed wraps every failure reported while handing a message to the provider.
	ErrSendFailed = errors.New("failed to send email")
)

// ProviderError carries the diagnostic fields returned by the provider API.
type ProviderError struct {
	Code    int64
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}
