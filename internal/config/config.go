package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pingability/pingability-api/internal/mailer"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName         string
	AppEnv          string
	AppPort         string
	CORSOrigins     string
	RedisURL        string
	RateLimitMax    int
	RateLimitWindow time.Duration
	Mail            mailer.Config
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
// The mail API key is not checked here; a missing key fails the first send instead.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PINGABILITY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Pingability API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("cors.origins", "*")
	v.SetDefault("rate_limit.max", 5)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("mail.from_address", mailer.DefaultFromAddress)
	v.SetDefault("mail.from_name", mailer.DefaultFromName)
	v.SetDefault("mail.to_address", mailer.DefaultRecipientAddress)
	v.SetDefault("mail.to_name", mailer.DefaultRecipientName)
	v.SetDefault("mail.timeout", "10s")

	window, err := parseDuration(v.GetString("rate_limit.window"), time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("invalid rate limit window: %w", err)
	}

	mailTimeout, err := parseDuration(v.GetString("mail.timeout"), mailer.DefaultTimeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid mail timeout: %w", err)
	}

	cfg := Config{
		AppName:         v.GetString("app.name"),
		AppEnv:          v.GetString("app.env"),
		AppPort:         v.GetString("app.port"),
		CORSOrigins:     v.GetString("cors.origins"),
		RedisURL:        v.GetString("redis.url"),
		RateLimitMax:    v.GetInt("rate_limit.max"),
		RateLimitWindow: window,
		Mail: mailer.Config{
			APIKey:      strings.TrimSpace(v.GetString("mail.api_key")),
			FromAddress: strings.TrimSpace(v.GetString("mail.from_address")),
			FromName:    strings.TrimSpace(v.GetString("mail.from_name")),
			Recipients:  recipients(v.GetString("mail.to_address"), v.GetString("mail.to_name")),
			Timeout:     mailTimeout,
		},
	}

	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 5
	}

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	return time.ParseDuration(value)
}

// recipients expands a comma separated address list. The display name only
// applies to the first address.
func recipients(addresses, name string) []mailer.Recipient {
	parts := splitAndTrim(addresses)
	out := make([]mailer.Recipient, 0, len(parts))
	for i, address := range parts {
		recipient := mailer.Recipient{Address: address}
		if i == 0 {
			recipient.Name = strings.TrimSpace(name)
		}
		out = append(out, recipient)
	}
	return out
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
