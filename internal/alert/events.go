package alert

import (
	"context"
	"encoding/json"
	"time"

	"emergency-alert/internal/model"
	amqp "emergency-alert/pkg/queue"
)

const SentRoutingKey = "alert.sent"

type Publisher interface {
	PublishContext(ctx context.Context, req amqp.PublishRequest) (string, error)
}

type SentEvent struct {
	SID    string    `json:"sid"`
	Status string    `json:"status,omitempty"`
	SentAt time.Time `json:"sent_at"`
}

type eventPublisher struct {
	publisher Publisher
	exchange  string
	now       func() time.Time
}

func (p *eventPublisher) sent(ctx context.Context, r model.Receipt) error {
	now := time.Now
	if p.now != nil {
		now = p.now
	}
	body, err := json.Marshal(SentEvent{SID: r.SID, Status: r.Status, SentAt: now().UTC()})
	if err != nil {
		return err
	}
	_, err = p.publisher.PublishContext(ctx, amqp.PublishRequest{
		Exchange: p.exchange,
		Key:      SentRoutingKey,
		Msg:      body,
	})
	return err
}
