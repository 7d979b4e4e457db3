package alert

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"emergency-alert/internal/model"
	amqp "emergency-alert/pkg/queue"
)

type sendCall struct {
	creds model.Credentials
	msg   model.Message
}

type fakeProvider struct {
	mu    sync.Mutex
	calls []sendCall
	sid   string
	err   error
}

func (f *fakeProvider) Send(_ context.Context, creds model.Credentials, msg model.Message) (model.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, sendCall{creds: creds, msg: msg})
	if f.err != nil {
		return model.Receipt{}, f.err
	}
	return model.Receipt{SID: f.sid, Body: msg.Body, To: msg.To, From: msg.From, Status: "queued"}, nil
}

type fakePublisher struct {
	mu   sync.Mutex
	reqs []amqp.PublishRequest
	err  error
}

func (f *fakePublisher) PublishContext(_ context.Context, req amqp.PublishRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return "", f.err
	}
	return "msg-1", nil
}

func initTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := bytes.NewBuffer(nil)
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func testCredentials() *model.Credentials {
	return &model.Credentials{
		AccountSID: "AC00000000000000000000000000000000",
		AuthToken:  "token",
		FromNumber: "+15550000001",
		Recipient:  "+15550000002",
	}
}
