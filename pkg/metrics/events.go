package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

var eventsPublished = prom.NewCounterVec(
	prom.CounterOpts{
		Name: "alert_events_published_total",
		Help: "Total alert events handed to the broker",
	},
	[]string{"exchange", "result"},
)

func init() {
	prom.MustRegister(eventsPublished)
}

func EventPublished(exchange string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	eventsPublished.WithLabelValues(exchange, result).Inc()
}
