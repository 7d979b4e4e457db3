package amqp

import (
	"context"
	"log/slog"
	"time"

	"emergency-alert/pkg/metrics"
	"emergency-alert/pkg/tracing"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

type RabbitConnection struct {
	Conn *amqp091.Connection
}

func NewRabbitConnection(rabbitURI string) (*RabbitConnection, error) {
	cfg := amqp091.Config{
		Properties: amqp091.NewConnectionProperties(),
	}

	conn, err := amqp091.DialConfig(rabbitURI, cfg)
	if err != nil {
		slog.Error("cannot connect to rabbit", "err", err)
		return nil, err
	}

	return &RabbitConnection{Conn: conn}, nil
}

type PublishRequest struct {
	Exchange string
	Key      string
	Msg      []byte
}

// PublishContext sends one persistent JSON message and returns its message id.
func (rp *RabbitConnection) PublishContext(ctx context.Context, req PublishRequest) (string, error) {
	ctx, span := tracing.Start(ctx, "rabbit.publish",
		tracing.Attr("exchange", req.Exchange),
		tracing.Attr("routing_key", req.Key),
		tracing.Attr("request_id", tracing.RequestIDFromContext(ctx)),
	)
	defer span.End()

	ch, err := rp.Conn.Channel()
	if err != nil {
		slog.Error("cannot create channel from rabbit mq connection", "err", err)
		tracing.Fail(span, err)
		return "", err
	}
	defer func() {
		err := ch.Close()
		if err != nil {
			slog.Error("cannot close channel from rabbit mq connection", "err", err)
		}
	}()

	id := uuid.NewString()
	err = ch.PublishWithContext(ctx, req.Exchange, req.Key, false, false, amqp091.Publishing{
		MessageId:    id,
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         req.Msg,
	})
	metrics.EventPublished(req.Exchange, err)
	if err != nil {
		tracing.Fail(span, err)
		return "", err
	}
	return id, nil
}

func (rp *RabbitConnection) Close() error {
	if rp == nil || rp.Conn == nil {
		return nil
	}
	return rp.Conn.Close()
}
