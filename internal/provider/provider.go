package provider

import (
	"context"

	"emergency-alert/internal/model"
	"emergency-alert/pkg/metrics"
	"emergency-alert/pkg/tracing"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const Name = "twilio"

type Provider interface {
	Send(ctx context.Context, creds model.Credentials, msg model.Message) (model.Receipt, error)
}

// MessageCreator is the slice of the Twilio REST API this service calls.
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type ClientFactory func(creds model.Credentials) MessageCreator

func NewTwilioClient(creds model.Credentials) MessageCreator {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: creds.AccountSID,
		Password: creds.AuthToken,
	})
	return client.Api
}

type Twilio struct {
	newClient ClientFactory
}

// NewTwilio returns a provider that builds a fresh client on every Send.
// A nil factory uses the real Twilio REST client.
func NewTwilio(newClient ClientFactory) *Twilio {
	if newClient == nil {
		newClient = NewTwilioClient
	}
	return &Twilio{newClient: newClient}
}

func (t *Twilio) Send(ctx context.Context, creds model.Credentials, msg model.Message) (model.Receipt, error) {
	ctx, span := tracing.Start(ctx, "provider.create_message", tracing.Attr("provider", Name))
	defer span.End()

	client := t.newClient(creds)

	params := &openapi.CreateMessageParams{}
	params.SetBody(msg.Body)
	params.SetFrom(msg.From)
	params.SetTo(msg.To)

	var resp *openapi.ApiV2010Message
	err := metrics.ProviderObserver(Name, func(context.Context) error {
		var err error
		resp, err = client.CreateMessage(params)
		if err != nil {
			return classify(err)
		}
		return nil
	})(ctx)
	if err != nil {
		tracing.Fail(span, err)
		return model.Receipt{}, err
	}

	receipt := model.Receipt{Body: msg.Body}
	if resp != nil {
		receipt.SID = deref(resp.Sid)
		receipt.Status = deref(resp.Status)
		receipt.From = deref(resp.From)
		receipt.To = deref(resp.To)
	}
	span.SetAttributes(tracing.Attr("sid", receipt.SID))

	return receipt, nil
}

func deref[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}
