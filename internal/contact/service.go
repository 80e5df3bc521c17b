package contact

import (
	"context"
	"errors"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/openautomate/website/internal/config"
	"github.com/openautomate/website/internal/logger"
	"github.com/openautomate/website/internal/metrics"
)

var Module = fx.Module("contact",
	fx.Provide(
		NewSender,
		NewServiceFromConfig,
	),
)

// ErrRateLimited is returned when a client submits too often.
var ErrRateLimited = errors.New("too many contact submissions")

// Service validates, rate limits and delivers contact form posts.
type Service struct {
	sender  Sender
	limiter *ClientLimiter
	log     *zap.Logger
	now     func() time.Time
}

func NewService(sender Sender, limiter *ClientLimiter, log *zap.Logger) *Service {
	return &Service{
		sender:  sender,
		limiter: limiter,
		log:     log.With(logger.Scope("contact")),
		now:     time.Now,
	}
}

func NewServiceFromConfig(cfg *config.Config, sender Sender, log *zap.Logger) *Service {
	return NewService(sender, NewClientLimiter(cfg.Contact.RequestsPerMinute, cfg.Contact.Burst), log)
}

// Submit runs one submission for clientKey and returns the finished form.
// The form is in StatusSuccess with cleared fields, or in StatusError with
// the visitor's fields intact and the cause in the returned error.
func (s *Service) Submit(ctx context.Context, clientKey, locale string, fields Fields) (*Form, error) {
	form := NewForm(fields)
	form.OnTransition = func(from, to Status) {
		s.log.Debug("contact form transition",
			zap.String("client", clientKey),
			zap.String("from", string(from)),
			zap.String("to", string(to)))
	}

	err := form.Submit(ctx, func(ctx context.Context, fields Fields) error {
		if err := fields.Validate(); err != nil {
			return err
		}
		if s.limiter != nil && !s.limiter.Allow(clientKey) {
			return ErrRateLimited
		}
		return s.sender.Send(ctx, NewSubmission(fields, locale, s.now()))
	})

	metrics.ContactSubmissions.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			s.log.Warn("contact submission failed",
				zap.String("client", clientKey),
				zap.Error(err))
		}
	}

	return form, err
}

func resultLabel(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return metrics.ResultSent
	case errors.As(err, &verr):
		return metrics.ResultInvalid
	case errors.Is(err, ErrRateLimited):
		return metrics.ResultRateLimited
	default:
		return metrics.ResultFailed
	}
}
