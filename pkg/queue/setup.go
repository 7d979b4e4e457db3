package amqp

import (
	"context"

	"github.com/rabbitmq/amqp091-go"
)

type QueueBinding struct {
	Queue      string
	RoutingKey string
}

type ExchangeSetup struct {
	Exchange string
	Bindings []QueueBinding
}

// Setup declares a durable topic exchange and any bound queues.
func (rp *RabbitConnection) Setup(ctx context.Context, cfg ExchangeSetup) (err error) {
	ch, err := rp.Conn.Channel()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ch.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err = ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, amqp091.Table{}); err != nil {
		return err
	}

	for _, b := range cfg.Bindings {
		if err = ctx.Err(); err != nil {
			return err
		}
		if _, err = ch.QueueDeclare(b.Queue, true, false, false, false, amqp091.Table{}); err != nil {
			return err
		}
		if err = ch.QueueBind(b.Queue, b.RoutingKey, cfg.Exchange, false, amqp091.Table{}); err != nil {
			return err
		}
	}

	return nil
}
