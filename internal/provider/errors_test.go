package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	twclient "github.com/twilio/twilio-go/client"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"unauthorized status", &twclient.TwilioRestError{Status: 401, Code: 20003, Message: "Authenticate"}, KindAuth},
		{"forbidden status", &twclient.TwilioRestError{Status: 403, Code: 20005}, KindAuth},
		{"invalid to", &twclient.TwilioRestError{Status: 400, Code: 21211, Message: "Invalid 'To' Phone Number"}, KindInvalidRecipient},
		{"not mobile", &twclient.TwilioRestError{Status: 400, Code: 21614}, KindInvalidRecipient},
		{"rate limited", &twclient.TwilioRestError{Status: 429, Code: 20429}, KindProvider},
		{"wrapped rest error", fmt.Errorf("create: %w", &twclient.TwilioRestError{Status: 400, Code: 21610}), KindInvalidRecipient},
		{"url error", &url.Error{Op: "Post", URL: "https://api.twilio.com", Err: errors.New("connection refused")}, KindNetwork},
		{"deadline", context.DeadlineExceeded, KindNetwork},
		{"other", errors.New("something else"), KindProvider},
		{"already classified", ConfigError(errors.New("missing")), KindConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if got.Kind != tt.want {
				t.Fatalf("classify(%v) = %s, want %s", tt.err, got.Kind, tt.want)
			}
			if got.Error() != tt.err.Error() {
				t.Fatalf("message changed: %q vs %q", got.Error(), tt.err.Error())
			}
			if !errors.Is(got, tt.err) && got != tt.err {
				t.Fatalf("original error not reachable through %v", got)
			}
		})
	}
}

func TestSendError_MetricKind(t *testing.T) {
	e := &SendError{Kind: KindNetwork}
	if e.MetricKind() != "network" {
		t.Fatalf("unexpected metric kind %q", e.MetricKind())
	}
	if e.Error() != "network error" {
		t.Fatalf("unexpected message %q", e.Error())
	}
}
