package config

import (
	"emergency-alert/internal/model"
	"emergency-alert/pkg/env"
)

type Config struct {
	AppName    string
	ListenAddr string
	Debug      bool

	Twilio model.Credentials

	// Events are published only when RabbitURI is set.
	RabbitURI      string
	EventsExchange string

	// Tracing is enabled only when OTLPEndpoint is set.
	OTLPEndpoint string
	OTLPInsecure bool
}

// Load reads the process configuration once. Twilio values are not checked
// here; an incomplete set fails the send, not the startup.
func Load() Config {
	return Config{
		AppName:    env.Default("APP_NAME", "emergency-alert"),
		ListenAddr: env.Default("LISTEN_ADDR", ":5000"),
		Debug:      env.DefaultBool("APP_DEBUG", true),
		Twilio: model.Credentials{
			AccountSID: env.Get("TWILIO_ACCOUNT_SID"),
			AuthToken:  env.Get("TWILIO_AUTH_TOKEN"),
			FromNumber: env.Get("TWILIO_PHONE_NUMBER"),
			Recipient:  env.Get("ALERT_RECIPIENT_NUMBER"),
		},
		RabbitURI:      env.Get("RABBIT_URI"),
		EventsExchange: env.Default("ALERT_EVENTS_EXCHANGE", "alerts"),
		OTLPEndpoint:   env.Get("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure:   env.DefaultBool("OTEL_EXPORTER_OTLP_INSECURE", true),
	}
}
