package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSubmitterPostsJSON(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contact", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"inquiry sent","data":{"reference_id":"r1","status":"sent"}}`))
	}))
	defer server.Close()

	submitter := NewHTTPSubmitter(server.URL, time.Second)
	err := submitter.Submit(context.Background(), "/api/contact", map[string]string{"name": "Jo", "email": "jo@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Jo", received["name"])
}

func TestHTTPSubmitterReportsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Missing required fields"}`))
	}))
	defer server.Close()

	err := NewHTTPSubmitter(server.URL, time.Second).Submit(context.Background(), "/api/custom-bats", map[string]string{})

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, http.StatusBadRequest, submitErr.Status)
	assert.Equal(t, "Missing required fields", submitErr.Message)
}

func TestHTTPSubmitterTreatsFailedEnvelopeAsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"nope"}`))
	}))
	defer server.Close()

	err := NewHTTPSubmitter(server.URL, time.Second).Submit(context.Background(), "/api/contact", map[string]string{})
	require.Error(t, err)
}

func TestHTTPSubmitterHonoursCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewHTTPSubmitter(server.URL, 0).Submit(ctx, "/api/contact", map[string]string{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFormWithHTTPSubmitterEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Failed to send. Please try again."}`))
	}))
	defer server.Close()

	f, err := NewForm(VariantCustomBat, NewHTTPSubmitter(server.URL, time.Second), nil)
	require.NoError(t, err)
	fillValid(f)

	require.Error(t, f.OnSubmit(context.Background()))
	assert.Equal(t, StateError, f.State())
	assert.Equal(t, FailureAlert, f.Alert())
}
