package provider

import (
	"context"
	"errors"
	"testing"

	"emergency-alert/internal/model"
)

var testCreds = model.Credentials{
	AccountSID: "AC00000000000000000000000000000000",
	AuthToken:  "token",
	FromNumber: "+15550000001",
	Recipient:  "+15550000002",
}

func TestTwilioSend_Success(t *testing.T) {
	fake := &fakeTwilio{sid: "SM123"}
	p := NewTwilio(fake.factory())

	receipt, err := p.Send(context.Background(), testCreds, model.AlertMessage(testCreds))
	if err != nil {
		t.Fatalf("send err: %v", err)
	}
	if receipt.SID != "SM123" || receipt.Body != model.AlertBody {
		t.Fatalf("unexpected receipt %+v", receipt)
	}
	if receipt.To != testCreds.Recipient || receipt.From != testCreds.FromNumber {
		t.Fatalf("unexpected numbers %+v", receipt)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(fake.calls))
	}
	call := fake.calls[0]
	if call.creds != testCreds {
		t.Fatalf("client built with wrong credentials %+v", call.creds)
	}
	if call.body != model.AlertBody || call.to != testCreds.Recipient || call.from != testCreds.FromNumber {
		t.Fatalf("unexpected params %+v", call)
	}
}

func TestTwilioSend_ErrorClassified(t *testing.T) {
	fake := &fakeTwilio{err: errors.New("provider exploded")}
	p := NewTwilio(fake.factory())

	_, err := p.Send(context.Background(), testCreds, model.AlertMessage(testCreds))
	var se *SendError
	if !errors.As(err, &se) {
		t.Fatalf("expected SendError, got %T", err)
	}
	if se.Kind != KindProvider || se.Error() != "provider exploded" {
		t.Fatalf("unexpected error %q kind %s", se.Error(), se.Kind)
	}
}

func TestNewTwilio_DefaultFactory(t *testing.T) {
	p := NewTwilio(nil)
	if p.newClient == nil {
		t.Fatalf("expected default client factory")
	}
	if p.newClient(testCreds) == nil {
		t.Fatalf("expected twilio api client")
	}
}
