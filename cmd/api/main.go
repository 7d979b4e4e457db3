package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emergency-alert/app"
	"emergency-alert/config"
	_ "emergency-alert/docs"
	amqp "emergency-alert/pkg/queue"
	"emergency-alert/pkg/tracing"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title           Emergency Alert API
// @version         1.0
// @description     Sends a fixed emergency SMS alert through Twilio.
// @host            localhost:5000
// @BasePath        /
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Options{
		ServiceName: cfg.AppName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		panic(err)
	}

	var opts []app.Option
	if cfg.RabbitURI != "" {
		conn, err := amqp.NewRabbitConnection(cfg.RabbitURI)
		if err != nil {
			panic(err)
		}
		if err := conn.Setup(ctx, amqp.ExchangeSetup{Exchange: cfg.EventsExchange}); err != nil {
			panic(err)
		}
		opts = append(opts, app.WithRabbit(conn))
	}

	a := app.New(&cfg, opts...)

	// swagger
	a.Echo.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		a.Logger.Info("listening", "addr", cfg.ListenAddr, "debug", cfg.Debug)
		if err := a.Echo.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("shutdown", "err", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		a.Logger.Error("tracing shutdown", "err", err)
	}
}
