package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncSearches()
	SetPlayersLoaded(count int)
	IncEvaluationsRecorded(sink string)
	IncEvaluationsFailed(sink string)
	IncForwardOutcome(outcome string)
	ObserveForwardDuration(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	IncPubSubPublished()
	IncPubSubFailed()
	SetStartupTime(duration float64)
}

// Forward outcomes used as label values.
const (
	OutcomeRelayed   = "relayed"
	OutcomePreflight = "preflight"
	OutcomeBadInput  = "bad_input"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "method_not_allowed"
)
