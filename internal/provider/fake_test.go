package provider

import (
	"sync"

	"emergency-alert/internal/model"

	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type createCall struct {
	creds model.Credentials
	to    string
	from  string
	body  string
}

type fakeTwilio struct {
	mu    sync.Mutex
	calls []createCall
	sid   string
	err   error
}

func (f *fakeTwilio) factory() ClientFactory {
	return func(creds model.Credentials) MessageCreator {
		return &fakeClient{parent: f, creds: creds}
	}
}

type fakeClient struct {
	parent *fakeTwilio
	creds  model.Credentials
}

func (c *fakeClient) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f := c.parent
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, createCall{
		creds: c.creds,
		to:    *params.To,
		from:  *params.From,
		body:  *params.Body,
	})
	if f.err != nil {
		return nil, f.err
	}
	sid := f.sid
	return &openapi.ApiV2010Message{Sid: &sid, To: params.To, From: params.From, Body: params.Body}, nil
}
