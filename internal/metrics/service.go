package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_searches_total",
			Help: "The total number of player directory searches.",
		}),
		PlayersLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "directory_players_loaded",
			Help: "The number of players in the loaded directory snapshot.",
		}),
		EvaluationsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_evaluations_recorded_total",
			Help: "The total number of evaluations handed to a recorder.",
		}, []string{"sink"}),
		EvaluationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_evaluations_failed_total",
			Help: "The total number of evaluations a recorder failed to handle.",
		}, []string{"sink"}),
		ForwardOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_forward_requests_total",
			Help: "Requests seen by the evaluation forwarder, by outcome.",
		}, []string{"outcome"}),
		ForwardDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "directory_forward_duration_seconds",
			Help:    "The duration of the upstream evaluation submission.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		PubSubPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_pubsub_published_total",
			Help: "The total number of evaluation events published.",
		}),
		PubSubFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_pubsub_failed_total",
			Help: "The total number of evaluation events that failed to publish.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "directory_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Searches,
		s.PlayersLoaded,
		s.EvaluationsRecorded,
		s.EvaluationsFailed,
		s.ForwardOutcomes,
		s.ForwardDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.PubSubPublished,
		s.PubSubFailed,
		s.StartupTimeSeconds,
	)
	return s
}

func (s *Service) IncSearches() {
	s.Searches.Inc()
}

func (s *Service) SetPlayersLoaded(count int) {
	s.PlayersLoaded.Set(float64(count))
}

func (s *Service) IncEvaluationsRecorded(sink string) {
	s.EvaluationsRecorded.WithLabelValues(sink).Inc()
}

func (s *Service) IncEvaluationsFailed(sink string) {
	s.EvaluationsFailed.WithLabelValues(sink).Inc()
}

func (s *Service) IncForwardOutcome(outcome string) {
	s.ForwardOutcomes.WithLabelValues(outcome).Inc()
}

func (s *Service) ObserveForwardDuration(duration float64) {
	s.ForwardDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) IncPubSubPublished() {
	s.PubSubPublished.Inc()
}

func (s *Service) IncPubSubFailed() {
	s.PubSubFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
