package evaluation

import (
	"context"
	"sync"
)

// MockRecorder is a mock implementation of the Recorder interface for testing.
// It is safe for concurrent use.
type MockRecorder struct {
	mu sync.Mutex

	RecordFunc func(ctx context.Context, e Evaluation) error

	RecordCalls []Evaluation
}

func NewMockRecorder() *MockRecorder {
	return &MockRecorder{}
}

func (m *MockRecorder) Record(ctx context.Context, e Evaluation) error {
	m.mu.Lock()
	m.RecordCalls = append(m.RecordCalls, e)
	fn := m.RecordFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, e)
	}
	return nil
}

// Calls returns a copy of the recorded evaluations.
func (m *MockRecorder) Calls() []Evaluation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Evaluation(nil), m.RecordCalls...)
}
