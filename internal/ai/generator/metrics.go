package generator

import "github.com/prometheus/client_golang/prometheus"

var fallbackCounter = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "ai_service",
	Subsystem: "generator",
	Name:      "fallback_recommendations_total",
	Help:      "Number of recommendations built from placeholder content because the AI reply could not be parsed.",
})

func init() {
	prometheus.MustRegister(fallbackCounter)
}

func recordFallback() {
	fallbackCounter.Inc()
}
