package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/openautomate/website/internal/apiclient"
	"github.com/openautomate/website/internal/config"
)

func testSubmission() Submission {
	return NewSubmission(validFields(), "en", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
}

func TestNewSubmission(t *testing.T) {
	sub := NewSubmission(Fields{Name: " Ada ", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}, "vi",
		time.Date(2025, 3, 1, 17, 0, 0, 0, time.FixedZone("ICT", 7*3600)))

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "Ada", sub.Name)
	assert.Equal(t, "vi", sub.Locale)
	assert.Equal(t, time.UTC, sub.SubmittedAt.Location())
	assert.Equal(t, 10, sub.SubmittedAt.Hour())
	assert.NotEqual(t, sub.ID, NewSubmission(validFields(), "en", time.Now()).ID)
}

func TestLogSender(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sender := NewLogSender(zap.New(core))

	require.NoError(t, sender.Send(context.Background(), testSubmission()))

	entries := logs.FilterMessage("contact form submitted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ada@example.com", entries[0].ContextMap()["email"])
	assert.Equal(t, "contact.log", entries[0].ContextMap()["scope"])
}

func TestAPISender(t *testing.T) {
	var received Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contact", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	sender := NewAPISender(apiclient.New(srv.URL, zap.NewNop()), "")
	sub := testSubmission()

	require.NoError(t, sender.Send(context.Background(), sub))
	assert.Equal(t, sub.ID, received.ID)
	assert.Equal(t, "Pricing", received.Subject)
}

func TestAPISender_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := NewAPISender(apiclient.New(srv.URL, zap.NewNop()), "/api/contact")

	err := sender.Send(context.Background(), testSubmission())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apiclient.StatusCode(err))
}

type fakeMailgun struct {
	impl    *mailgun.MailgunImpl
	from    string
	subject string
	text    string
	to      []string
	err     error
}

func (f *fakeMailgun) NewMessage(from, subject, text string, to ...string) *mailgun.Message {
	f.from, f.subject, f.text, f.to = from, subject, text, to
	return f.impl.NewMessage(from, subject, text, to...)
}

func (f *fakeMailgun) Send(context.Context, *mailgun.Message) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "Queued. Thank you.", "<id@mg.example.com>", nil
}

func newTestMailgunSender(fake *fakeMailgun) *MailgunSender {
	s := NewMailgunSender(config.MailgunConfig{
		Domain:    "mg.example.com",
		APIKey:    "key",
		FromEmail: "noreply@openautomate.io",
		FromName:  "OpenAutomate Website",
	}, "contact@openautomate.io", zap.NewNop())
	fake.impl = mailgun.NewMailgun("mg.example.com", "key")
	s.client = fake
	return s
}

func TestMailgunSender(t *testing.T) {
	fake := &fakeMailgun{}
	sender := newTestMailgunSender(fake)

	require.NoError(t, sender.Send(context.Background(), testSubmission()))

	assert.Equal(t, "OpenAutomate Website <noreply@openautomate.io>", fake.from)
	assert.Equal(t, "[Contact] Pricing", fake.subject)
	assert.Equal(t, []string{"contact@openautomate.io"}, fake.to)
	assert.Contains(t, fake.text, "Do you offer discounts for universities?")
	assert.Contains(t, fake.text, "Email:   ada@example.com")
}

func TestMailgunSender_Error(t *testing.T) {
	fake := &fakeMailgun{err: errors.New("unauthorized")}
	sender := newTestMailgunSender(fake)

	err := sender.Send(context.Background(), testSubmission())
	assert.ErrorContains(t, err, "unauthorized")
}

func TestRenderEmail_DoesNotEscape(t *testing.T) {
	sub := testSubmission()
	sub.Message = "Tom & Jerry <3"

	body, err := RenderEmail(sub)
	require.NoError(t, err)
	assert.Contains(t, body, "Tom & Jerry <3")
}

func TestNewSender(t *testing.T) {
	client := apiclient.New("http://localhost", zap.NewNop())

	tests := []struct {
		name     string
		contact  config.ContactConfig
		wantType Sender
		wantErr  bool
	}{
		{"log", config.ContactConfig{Delivery: "log"}, &LogSender{}, false},
		{"api", config.ContactConfig{Delivery: "api"}, &APISender{}, false},
		{"mailgun", config.ContactConfig{Delivery: "mailgun", Mailgun: config.MailgunConfig{Domain: "d", APIKey: "k"}}, &MailgunSender{}, false},
		{"mailgun unconfigured", config.ContactConfig{Delivery: "mailgun"}, nil, true},
		{"unknown", config.ContactConfig{Delivery: "fax"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := NewSender(&config.Config{Contact: tt.contact}, client, zap.NewNop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, sender)
		})
	}
}
