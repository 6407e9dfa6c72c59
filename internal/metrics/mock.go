package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	searches            int
	playersLoaded       int
	evaluationsRecorded map[string]int
	evaluationsFailed   map[string]int
	forwardOutcomes     map[string]int
	forwardDurations    []float64
	slackNotifSent      int
	slackNotifFailed    int
	pubSubPublished     int
	pubSubFailed        int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		evaluationsRecorded: make(map[string]int),
		evaluationsFailed:   make(map[string]int),
		forwardOutcomes:     make(map[string]int),
		forwardDurations:    make([]float64, 0),
	}
}

func (m *Mock) IncSearches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches++
}

func (m *Mock) SetPlayersLoaded(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersLoaded = count
}

func (m *Mock) IncEvaluationsRecorded(sink string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluationsRecorded[sink]++
}

func (m *Mock) IncEvaluationsFailed(sink string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluationsFailed[sink]++
}

func (m *Mock) IncForwardOutcome(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forwardOutcomes[outcome]++
}

func (m *Mock) ObserveForwardDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forwardDurations = append(m.forwardDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) IncPubSubPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pubSubPublished++
}

func (m *Mock) IncPubSubFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pubSubFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Searches returns the number of times IncSearches was called.
func (m *Mock) Searches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.searches
}

// PlayersLoaded returns the last value passed to SetPlayersLoaded.
func (m *Mock) PlayersLoaded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersLoaded
}

// EvaluationsRecorded returns how many evaluations sink accepted.
func (m *Mock) EvaluationsRecorded(sink string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evaluationsRecorded[sink]
}

// EvaluationsFailed returns how many evaluations sink rejected.
func (m *Mock) EvaluationsFailed(sink string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evaluationsFailed[sink]
}

// ForwardOutcomes returns the count recorded for outcome.
func (m *Mock) ForwardOutcomes(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forwardOutcomes[outcome]
}

// ForwardDurations returns every observed forward duration.
func (m *Mock) ForwardDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.forwardDurations...)
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// PubSubPublished returns the number of times IncPubSubPublished was called.
func (m *Mock) PubSubPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pubSubPublished
}

// PubSubFailed returns the number of times IncPubSubFailed was called.
func (m *Mock) PubSubFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pubSubFailed
}
