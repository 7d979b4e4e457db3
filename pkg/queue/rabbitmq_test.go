package amqp

import (
	"context"
	"fmt"
	"testing"
	"time"

	"emergency-alert/testutil"
)

func TestPublishContext_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, host, port := testutil.Rabbit(ctx, t)

	uri := fmt.Sprintf("amqp://%s:%s@%s:%d/", testutil.RabbitUser, testutil.RabbitPassword, host, port)
	conn, err := NewRabbitConnection(uri)
	if err != nil {
		t.Fatalf("rabbit connect: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	err = conn.Setup(ctx, ExchangeSetup{
		Exchange: "alerts-test",
		Bindings: []QueueBinding{{Queue: "alerts-test-sent", RoutingKey: "alert.#"}},
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	id, err := conn.PublishContext(ctx, PublishRequest{
		Exchange: "alerts-test",
		Key:      "alert.sent",
		Msg:      []byte(`{"sid":"SM123"}`),
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if id == "" {
		t.Fatalf("expected message id")
	}

	ch, err := conn.Conn.Channel()
	if err != nil {
		t.Fatalf("channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		d, ok, err := ch.Get("alerts-test-sent", true)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !ok {
			time.Sleep(100 * time.Millisecond)
			continue
		}
		if d.MessageId != id || string(d.Body) != `{"sid":"SM123"}` || d.ContentType != "application/json" {
			t.Fatalf("unexpected delivery id=%q body=%q type=%q", d.MessageId, d.Body, d.ContentType)
		}
		return
	}
	t.Fatalf("message never arrived")
}

func TestClose_Nil(t *testing.T) {
	var rp *RabbitConnection
	if err := rp.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}
