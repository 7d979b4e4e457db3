package provider

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	twclient "github.com/twilio/twilio-go/client"
)

type Kind string

const (
	KindConfig           Kind = "config"
	KindAuth             Kind = "auth"
	KindInvalidRecipient Kind = "invalid_recipient"
	KindNetwork          Kind = "network"
	KindProvider         Kind = "provider"
)

// Twilio error codes that mean the destination number cannot receive the alert.
var invalidRecipientCodes = map[int]bool{
	21211: true, // invalid To number
	21214: true, // To number cannot be reached
	21217: true, // phone number does not appear to be valid
	21421: true, // phone number is invalid
	21610: true, // recipient unsubscribed
	21614: true, // not a mobile number
}

const codeAuthenticate = 20003

// SendError is the single failure a send can return. Kind is informational;
// callers treat every SendError the same way.
type SendError struct {
	Kind Kind
	Err  error
}

func (e *SendError) Error() string {
	if e.Err == nil {
		return string(e.Kind) + " error"
	}
	return e.Err.Error()
}

func (e *SendError) Unwrap() error {
	return e.Err
}

func (e *SendError) MetricKind() string {
	return string(e.Kind)
}

func ConfigError(err error) *SendError {
	return &SendError{Kind: KindConfig, Err: err}
}

func classify(err error) *SendError {
	var se *SendError
	if errors.As(err, &se) {
		return se
	}

	var rest *twclient.TwilioRestError
	if errors.As(err, &rest) {
		switch {
		case rest.Status == http.StatusUnauthorized || rest.Status == http.StatusForbidden || rest.Code == codeAuthenticate:
			return &SendError{Kind: KindAuth, Err: err}
		case invalidRecipientCodes[rest.Code]:
			return &SendError{Kind: KindInvalidRecipient, Err: err}
		default:
			return &SendError{Kind: KindProvider, Err: err}
		}
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &SendError{Kind: KindNetwork, Err: err}
	}

	return &SendError{Kind: KindProvider, Err: err}
}
