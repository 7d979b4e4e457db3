package alert

import (
	"context"
	"log/slog"

	"emergency-alert/internal/model"
	"emergency-alert/internal/provider"
	"emergency-alert/pkg/tracing"
)

// Sender dispatches the fixed alert to the configured recipient.
// It holds no mutable state; concurrent SendAlert calls are independent.
type Sender struct {
	creds    *model.Credentials
	provider provider.Provider
	logger   *slog.Logger
	events   *eventPublisher
}

type Option func(*Sender)

// WithEvents publishes an alert.sent event to exchange after each successful send.
func WithEvents(p Publisher, exchange string) Option {
	return func(s *Sender) {
		if p == nil || exchange == "" {
			return
		}
		s.events = &eventPublisher{publisher: p, exchange: exchange}
	}
}

func NewSender(creds *model.Credentials, p provider.Provider, logger *slog.Logger, opts ...Option) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sender{creds: creds, provider: p, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sender) SendAlert(ctx context.Context) (model.Receipt, error) {
	ctx, span := tracing.Start(ctx, "alert.send")
	defer span.End()

	if err := s.creds.Validate(); err != nil {
		sendErr := provider.ConfigError(err)
		tracing.Fail(span, sendErr)
		return model.Receipt{}, sendErr
	}

	receipt, err := s.provider.Send(ctx, *s.creds, model.AlertMessage(*s.creds))
	if err != nil {
		tracing.Fail(span, err)
		return model.Receipt{}, err
	}

	s.logger.Info("message sent successfully", "sid", receipt.SID, "status", receipt.Status)

	if s.events != nil {
		if err := s.events.sent(ctx, receipt); err != nil {
			s.logger.Error("publish alert.sent event", "sid", receipt.SID, "err", err)
		}
	}

	return receipt, nil
}
