package contact

import (
	"context"
	_ "embed"
	"fmt"
	"net/mail"
	"time"

	"github.com/aymerick/raymond"
	"github.com/google/uuid"
	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"

	"github.com/openautomate/website/internal/apiclient"
	"github.com/openautomate/website/internal/config"
	"github.com/openautomate/website/internal/logger"
)

// Submission is one contact form post, forwarded once and never stored.
type Submission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Locale      string    `json:"locale"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// NewSubmission stamps fields with a fresh ID and the current time.
func NewSubmission(fields Fields, locale string, now time.Time) Submission {
	fields = fields.Normalize()
	return Submission{
		ID:          uuid.NewString(),
		Name:        fields.Name,
		Email:       fields.Email,
		Subject:     fields.Subject,
		Message:     fields.Message,
		Locale:      locale,
		SubmittedAt: now.UTC(),
	}
}

// Sender delivers a submission. Implementations make one attempt.
type Sender interface {
	Send(ctx context.Context, s Submission) error
}

// NewSender picks the sender named by cfg.Contact.Delivery.
func NewSender(cfg *config.Config, client *apiclient.Client, log *zap.Logger) (Sender, error) {
	switch cfg.Contact.Delivery {
	case "", "log":
		return NewLogSender(log), nil
	case "api":
		return NewAPISender(client, cfg.Contact.Endpoint), nil
	case "mailgun":
		if !cfg.Contact.Mailgun.IsConfigured() {
			return nil, fmt.Errorf("CONTACT_DELIVERY=mailgun requires MAILGUN_DOMAIN and MAILGUN_API_KEY")
		}
		return NewMailgunSender(cfg.Contact.Mailgun, cfg.Contact.Inbox, log), nil
	default:
		return nil, fmt.Errorf("unknown contact delivery %q", cfg.Contact.Delivery)
	}
}

// LogSender only logs submissions. It is the development default.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(logger.Scope("contact.log"))}
}

func (s *LogSender) Send(_ context.Context, sub Submission) error {
	s.log.Info("contact form submitted",
		zap.String("id", sub.ID),
		zap.String("email", sub.Email),
		zap.String("subject", sub.Subject),
		zap.String("locale", sub.Locale),
		zap.Int("message_length", len(sub.Message)))
	return nil
}

// APISender posts submissions as JSON to the backend API.
type APISender struct {
	client   *apiclient.Client
	endpoint string
}

func NewAPISender(client *apiclient.Client, endpoint string) *APISender {
	if endpoint == "" {
		endpoint = "/api/contact"
	}
	return &APISender{client: client, endpoint: endpoint}
}

func (s *APISender) Send(ctx context.Context, sub Submission) error {
	if _, err := apiclient.Post[map[string]any](ctx, s.client, s.endpoint, sub); err != nil {
		return fmt.Errorf("post contact submission: %w", err)
	}
	return nil
}

//go:embed templates/email.txt.hbs
var emailSource string

var emailTemplate = raymond.MustParse(emailSource)

// mailgunClient is the part of the Mailgun SDK the sender uses.
type mailgunClient interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunSender emails submissions to the contact inbox via Mailgun.
type MailgunSender struct {
	cfg    config.MailgunConfig
	inbox  string
	log    *zap.Logger
	client mailgunClient
}

func NewMailgunSender(cfg config.MailgunConfig, inbox string, log *zap.Logger) *MailgunSender {
	return &MailgunSender{
		cfg:    cfg,
		inbox:  inbox,
		log:    log.With(logger.Scope("contact.mailgun")),
		client: mailgun.NewMailgun(cfg.Domain, cfg.APIKey),
	}
}

func (s *MailgunSender) Send(ctx context.Context, sub Submission) error {
	body, err := RenderEmail(sub)
	if err != nil {
		return err
	}

	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	subject := fmt.Sprintf("[Contact] %s", sub.Subject)

	message := s.client.NewMessage(from, subject, body, s.inbox)
	message.SetReplyTo((&mail.Address{Name: sub.Name, Address: sub.Email}).String())

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, messageID, err := s.client.Send(sendCtx, message)
	if err != nil {
		s.log.Error("failed to send contact email",
			zap.String("id", sub.ID),
			zap.Error(err))
		return fmt.Errorf("send contact email: %w", err)
	}

	s.log.Info("contact email sent",
		zap.String("id", sub.ID),
		zap.String("message_id", messageID))
	return nil
}

// RenderEmail renders the plain-text body of a contact email.
func RenderEmail(sub Submission) (string, error) {
	out, err := emailTemplate.Exec(map[string]any{
		"site":        "OpenAutomate",
		"id":          sub.ID,
		"name":        sub.Name,
		"email":       sub.Email,
		"subject":     sub.Subject,
		"message":     sub.Message,
		"locale":      sub.Locale,
		"submittedAt": sub.SubmittedAt.Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}
	return out, nil
}
