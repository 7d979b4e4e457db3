package metrics

import (
	"context"
	"errors"

	prom "github.com/prometheus/client_golang/prometheus"
)

var (
	providerCalls = prom.NewCounterVec(
		prom.CounterOpts{
			Name: "provider_calls_total",
			Help: "Count of SMS provider message-create calls",
		},
		[]string{"provider", "result"},
	)
	providerDuration = prom.NewHistogramVec(
		prom.HistogramOpts{
			Name:    "provider_duration_seconds",
			Help:    "Duration of SMS provider message-create calls",
			Buckets: prom.DefBuckets,
		},
		[]string{"provider"},
	)
)

func init() {
	prom.MustRegister(providerCalls, providerDuration)
}

// Kinded errors report their own result label instead of the generic "error".
type Kinded interface {
	MetricKind() string
}

func ProviderObserver(name string, fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		timer := prom.NewTimer(providerDuration.WithLabelValues(name))
		err := fn(ctx)
		timer.ObserveDuration()
		providerCalls.WithLabelValues(name, resultLabel(err)).Inc()
		return err
	}
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	var k Kinded
	if errors.As(err, &k) {
		return k.MetricKind()
	}
	return "error"
}
