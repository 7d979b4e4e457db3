package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"emergency-alert/config"
	"emergency-alert/internal/alert"
	"emergency-alert/internal/provider"
	"emergency-alert/pkg/metrics"
	amqp "emergency-alert/pkg/queue"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	Echo   *echo.Echo
	Sender *alert.Sender
	Rabbit *amqp.RabbitConnection
}

type Option func(*options)

type options struct {
	provider provider.Provider
	rabbit   *amqp.RabbitConnection
	logOut   io.Writer
}

// WithProvider replaces the Twilio provider.
func WithProvider(p provider.Provider) Option {
	return func(o *options) { o.provider = p }
}

// WithRabbit enables alert.sent events over an open connection.
func WithRabbit(conn *amqp.RabbitConnection) Option {
	return func(o *options) { o.rabbit = conn }
}

func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOut = w }
}

func New(cfg *config.Config, opts ...Option) *App {
	o := options{logOut: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.provider == nil {
		o.provider = provider.NewTwilio(nil)
	}

	a := &App{Config: cfg, Rabbit: o.rabbit}
	a.initLogger(o.logOut)
	a.initSender(o.provider)
	a.initEcho()
	return a
}

func (a *App) initLogger(w io.Writer) {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{})
	a.Logger = slog.New(handler).With("app", a.Config.AppName)
}

func (a *App) initSender(p provider.Provider) {
	var senderOpts []alert.Option
	if a.Rabbit != nil {
		senderOpts = append(senderOpts, alert.WithEvents(a.Rabbit, a.Config.EventsExchange))
	}
	a.Sender = alert.NewSender(&a.Config.Twilio, p, a.Logger, senderOpts...)
}

func (a *App) initEcho() {
	a.Echo = echo.New()
	a.Echo.HideBanner = true
	a.Echo.Debug = a.Config.Debug

	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.RequestID())
	a.Echo.Use(middleware.CORS())
	a.Echo.Use(metrics.EchoMiddleware())

	alert.RegisterRoutes(a.Echo, alert.NewHandler(a.Sender, a.Logger))
	a.Echo.GET("/metrics", metrics.Handler())
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if closeErr := a.Rabbit.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
