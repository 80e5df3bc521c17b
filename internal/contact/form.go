package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"sync"
)

// Status is the lifecycle state of a contact form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Fields are the values a visitor enters in the contact form.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (f Fields) Normalize() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// FieldError codes.
const (
	CodeRequired     = "required"
	CodeInvalidEmail = "invalidEmail"
)

// ValidationError maps field names to a failure code.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, name := range []string{"name", "email", "subject", "message"} {
		if code, ok := e.Fields[name]; ok {
			names = append(names, name+" "+code)
		}
	}
	return "invalid contact form: " + strings.Join(names, ", ")
}

// Validate checks that every field is present and the email parses as an
// address. It returns a *ValidationError or nil.
func (f Fields) Validate() error {
	f = f.Normalize()
	errs := map[string]string{}

	if f.Name == "" {
		errs["name"] = CodeRequired
	}
	if f.Email == "" {
		errs["email"] = CodeRequired
	} else if addr, err := mail.ParseAddress(f.Email); err != nil || addr.Address != f.Email {
		errs["email"] = CodeInvalidEmail
	}
	if f.Subject == "" {
		errs["subject"] = CodeRequired
	}
	if f.Message == "" {
		errs["message"] = CodeRequired
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// SubmitFunc performs the actual delivery of the form values.
type SubmitFunc func(ctx context.Context, fields Fields) error

// Form holds the state of one contact form: its current status and field
// values. Fields are cleared only after a successful submit so a failed
// attempt can be retried by hand.
type Form struct {
	mu     sync.Mutex
	status Status
	fields Fields

	// OnTransition, when set, is called for every status change while the
	// form is locked.
	OnTransition func(from, to Status)
}

// NewForm returns an idle form holding fields.
func NewForm(fields Fields) *Form {
	return &Form{status: StatusIdle, fields: fields}
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Submit moves the form through submitting to success or error. A submit
// while another is in flight is rejected.
func (f *Form) Submit(ctx context.Context, submit SubmitFunc) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return fmt.Errorf("contact form is already submitting")
	}
	fields := f.fields
	f.transition(StatusSubmitting)
	f.mu.Unlock()

	err := submit(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.transition(StatusError)
		return err
	}
	f.fields = Fields{}
	f.transition(StatusSuccess)
	return nil
}

func (f *Form) transition(to Status) {
	from := f.status
	f.status = to
	if f.OnTransition != nil && from != to {
		f.OnTransition(from, to)
	}
}
