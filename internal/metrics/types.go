package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Searches            prometheus.Counter
	PlayersLoaded       prometheus.Gauge
	EvaluationsRecorded *prometheus.CounterVec
	EvaluationsFailed   *prometheus.CounterVec
	ForwardOutcomes     *prometheus.CounterVec
	ForwardDuration     prometheus.Histogram
	SlackNotifSent      prometheus.Counter
	SlackNotifFailed    prometheus.Counter
	PubSubPublished     prometheus.Counter
	PubSubFailed        prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
