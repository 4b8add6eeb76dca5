package form

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// SubmitError reports a response the API refused or failed to process.
type SubmitError struct {
	Status  int
	Message string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("inquiry rejected with status %d: %s", e.Status, e.Message)
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HTTPSubmitter posts form fields as JSON to the inquiry API.
type HTTPSubmitter struct {
	client *resty.Client
}

// NewHTTPSubmitter targets the API at baseURL, for example https://pingability.co.uk.
func NewHTTPSubmitter(baseURL string, timeout time.Duration) *HTTPSubmitter {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPSubmitter{client: client}
}

// Submit succeeds only on a 2xx response whose envelope reports success.
func (s *HTTPSubmitter) Submit(ctx context.Context, endpoint string, fields map[string]string) error {
	var result envelope
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		SetResult(&result).
		SetError(&result).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("post %s: %w", endpoint, err)
	}

	if resp.IsError() || !result.Success {
		return &SubmitError{Status: resp.StatusCode(), Message: result.Message}
	}
	return nil
}
