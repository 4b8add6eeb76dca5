package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mrz1836/postmark"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/pingability/pingability-api/internal/handler"
)

func compileSchema(t *testing.T, name string) *jsonschema.Schema {
	t.Helper()

	schemaPath, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)

	schema, err := jsonschema.NewCompiler().Compile("file://" + filepath.ToSlash(schemaPath))
	require.NoError(t, err)
	return schema
}

func validateBody(t *testing.T, schema *jsonschema.Schema, resp *http.Response) {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var document any
	require.NoError(t, json.Unmarshal(raw, &document))
	require.NoError(t, schema.Validate(document), string(raw))
}

func send(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestInquiryContract(t *testing.T) {
	success := compileSchema(t, "inquiry_response.schema.json")
	failure := compileSchema(t, "error_response.schema.json")

	provider := &recordingProvider{response: postmark.EmailResponse{MessageID: "pm-1"}}
	app := newInquiryApp(t, provider, "pm-key", io.Discard)

	resp := send(t, app, http.MethodPost, "/api/contact", validContactPayload())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	validateBody(t, success, resp)

	resp = send(t, app, http.MethodPost, "/api/custom-bats", map[string]string{"name": "Sam"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	validateBody(t, failure, resp)

	provider.err = io.ErrUnexpectedEOF
	resp = send(t, app, http.MethodPost, "/api/contact", validContactPayload())
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	validateBody(t, failure, resp)
}

func TestPricingContract(t *testing.T) {
	schema := compileSchema(t, "pricing_response.schema.json")

	app := fiber.New()
	handler.NewPricingHandler().Register(app.Group("/api"))

	resp := send(t, app, http.MethodGet, "/api/pricing", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	validateBody(t, schema, resp)
}
