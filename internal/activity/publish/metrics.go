package publish

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "publisher",
		Name:      "events_published_total",
		Help:      "Number of activity events delivered to Kafka.",
	}, []string{"topic"})

	failedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "publisher",
		Name:      "events_failed_total",
		Help:      "Number of activity events lost because the broker write failed.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(publishedCounter, failedCounter)
}

func recordPublished(topic string) {
	publishedCounter.WithLabelValues(topic).Inc()
}

func recordPublishFailed(topic string) {
	failedCounter.WithLabelValues(topic).Inc()
}
