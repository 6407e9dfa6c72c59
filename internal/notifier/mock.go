package notifier

import (
	"sync"

	"github.com/mauv0809/tennis-directory/internal/evaluation"
	"github.com/mauv0809/tennis-directory/internal/player"
)

// SendEvaluationCall holds the arguments for a call to SendEvaluation.
type SendEvaluationCall struct {
	Evaluation evaluation.Evaluation
	Player     *player.Player
	DryRun     bool
}

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendEvaluationFunc func(e evaluation.Evaluation, p *player.Player, dryRun bool) error

	SendEvaluationCalls []SendEvaluationCall
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendEvaluationCalls = nil
}

func (m *Mock) SendEvaluation(e evaluation.Evaluation, p *player.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendEvaluationCalls = append(m.SendEvaluationCalls, SendEvaluationCall{Evaluation: e, Player: p, DryRun: dryRun})
	if m.SendEvaluationFunc != nil {
		return m.SendEvaluationFunc(e, p, dryRun)
	}
	return nil
}
