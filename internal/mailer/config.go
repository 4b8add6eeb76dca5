package mailer

import "time"

const (
	DefaultFromAddress      = "noreply@pingability.co.uk"
	DefaultFromName         = "Pingability"
	DefaultRecipientAddress = "info@pingability.co.uk"
	DefaultRecipientName    = "Pingability Info"
	DefaultTimeout          = 10 * time.Second
)

// Recipient is a named mailbox.
type Recipient struct {
	Address string
	Name    string
}

// Config carries the provider credentials and the addresses used for notifications.
type Config struct {
	APIKey      string
	FromAddress string
	FromName    string
	Recipients  []Recipient
	Timeout     time.Duration
}

func (c Config) withDefaults() Config {
	if c.FromAddress == "" {
		c.FromAddress = DefaultFromAddress
	}
	if c.FromName == "" {
		c.FromName = DefaultFromName
	}
	if len(c.Recipients) == 0 {
		c.Recipients = []Recipient{{Address: DefaultRecipientAddress, Name: DefaultRecipientName}}
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
