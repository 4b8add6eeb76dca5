// Package form models the inquiry forms shown on the site: field state,
// inline validation and the submission state machine.
package form

import (
	"context"
	"errors"
	"maps"
	"strings"
	"sync"

	"github.com/pingability/pingability-api/internal/validation"
)

// Variant selects which inquiry form is being filled in.
type Variant string

const (
	VariantContact   Variant = "contact"
	VariantCustomBat Variant = "custom_bat"
)

// State is the submission state of a form.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
	StateError      State = "error"
)

// FailureAlert is shown for every failed submission regardless of the cause.
const FailureAlert = "Sorry, there was an error sending your message. Please try again or contact us directly."

var (
	// ErrValidation is returned by OnSubmit when inline validation blocks the request.
	ErrValidation = errors.New("form has validation errors")
	// ErrBusy is returned by OnSubmit while a submission is in flight.
	ErrBusy = errors.New("form submission already in progress")
)

type variantLayout struct {
	endpoint string
	fields   []string
	// preselect names the field a one-shot preselection may fill.
	preselect string
}

var variants = map[Variant]variantLayout{
	VariantContact: {
		endpoint:  "/api/contact",
		fields:    []string{"name", "email", "phone", "message", "contactMethod", "hearAbout", "packageType", "startDate", "skillLevel"},
		preselect: "packageType",
	},
	VariantCustomBat: {
		endpoint:  "/api/custom-bats",
		fields:    []string{"name", "email", "phone", "message", "consultationType", "playingStyle", "budget"},
		preselect: "budget",
	},
}

var requiredFields = []string{"name", "email", "phone", "message"}

// Submitter delivers a form's fields to the inquiry API.
type Submitter interface {
	Submit(ctx context.Context, endpoint string, fields map[string]string) error
}

// Form holds the state of one inquiry form. It is safe for concurrent use.
type Form struct {
	mu        sync.Mutex
	variant   Variant
	layout    variantLayout
	submitter Submitter
	fields    map[string]string
	errors    map[string]string
	state     State
	alert     string
}

// NewForm builds an idle form. A pending preselection in session is consumed
// and applied when it targets this variant's preselectable field.
func NewForm(variant Variant, submitter Submitter, session *Session) (*Form, error) {
	if submitter == nil {
		return nil, errors.New("form submitter must not be nil")
	}

	layout, ok := variants[variant]
	if !ok {
		return nil, errors.New("unknown form variant: " + string(variant))
	}

	f := &Form{
		variant:   variant,
		layout:    layout,
		submitter: submitter,
		fields:    emptyFields(layout),
		errors:    map[string]string{},
		state:     StateIdle,
	}

	if session != nil {
		if field, value, ok := session.TakePreselection(); ok && field == layout.preselect {
			f.fields[field] = value
		}
	}

	return f, nil
}

func emptyFields(layout variantLayout) map[string]string {
	fields := make(map[string]string, len(layout.fields))
	for _, name := range layout.fields {
		fields[name] = ""
	}
	return fields
}

// Variant reports which form this is.
func (f *Form) Variant() Variant {
	return f.variant
}

// Endpoint is the API path the form posts to.
func (f *Form) Endpoint() string {
	return f.layout.endpoint
}

// State returns the current submission state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Alert returns the failure alert, empty unless the form is in StateError.
func (f *Form) Alert() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.alert
}

// Value returns the current value of a field.
func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[field]
}

// Fields returns a copy of all field values.
func (f *Form) Fields() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.fields)
}

// Error returns the inline error for a field, or "".
func (f *Form) Error(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[field]
}

// Errors returns a copy of the inline errors keyed by field.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errors)
}

// OnFieldChange stores a value. Editing email or phone clears its inline error.
// Unknown fields are ignored.
func (f *Form) OnFieldChange(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.fields[field]; !ok {
		return
	}
	f.fields[field] = value
	if field == "email" || field == "phone" {
		delete(f.errors, field)
	}
}

// OnBlur validates email and phone as soon as the user leaves the field.
func (f *Form) OnBlur(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.setError(field, checkFormat(field, f.fields[field]))
}

// OnSubmit validates the form and, when it is clean, posts every field through
// the submitter. On success the fields are cleared and the form moves to
// StateSubmitted; any failure moves it to StateError with FailureAlert.
func (f *Form) OnSubmit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrBusy
	}

	if !f.validateLocked() {
		f.mu.Unlock()
		return ErrValidation
	}

	f.state = StateSubmitting
	f.alert = ""
	payload := maps.Clone(f.fields)
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, f.layout.endpoint, payload)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = StateError
		f.alert = FailureAlert
		return err
	}

	f.fields = emptyFields(f.layout)
	f.errors = map[string]string{}
	f.state = StateSubmitted
	return nil
}

// Reset clears the form back to StateIdle. It is a no-op while submitting.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return
	}
	f.fields = emptyFields(f.layout)
	f.errors = map[string]string{}
	f.alert = ""
	f.state = StateIdle
}

func (f *Form) validateLocked() bool {
	for _, field := range requiredFields {
		if strings.TrimSpace(f.fields[field]) == "" {
			f.errors[field] = validation.RequiredMessage
			continue
		}
		f.setError(field, checkFormat(field, f.fields[field]))
	}
	return len(f.errors) == 0
}

func (f *Form) setError(field, message string) {
	if message == "" {
		delete(f.errors, field)
		return
	}
	f.errors[field] = message
}

func checkFormat(field, value string) string {
	value = strings.TrimSpace(value)
	switch field {
	case "email":
		return validation.CheckEmail(value)
	case "phone":
		return validation.CheckPhone(value)
	default:
		return ""
	}
}
