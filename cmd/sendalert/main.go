package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"emergency-alert/config"
	"emergency-alert/internal/alert"
	"emergency-alert/internal/provider"
	"emergency-alert/pkg/tracing"
)

// sendalert sends the alert once and prints the body that was sent.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, tracing.Options{
		ServiceName: cfg.AppName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		panic(err)
	}
	defer func() { _ = shutdownTracing(ctx) }()

	// stdout carries only the message body
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	sender := alert.NewSender(&cfg.Twilio, provider.NewTwilio(nil), logger)

	if err := run(ctx, sender, os.Stdout); err != nil {
		panic(err)
	}
}

func run(ctx context.Context, sender *alert.Sender, out io.Writer) error {
	receipt, err := sender.SendAlert(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, receipt.Body)
	return err
}
