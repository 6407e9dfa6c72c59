package upstream

import (
	"context"
	"net/http"
	"sync"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	SubmitFunc func(ctx context.Context, payload []byte) (*Response, error)

	SubmitCalls [][]byte
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubmitCalls = nil
}

func (m *MockClient) Submit(ctx context.Context, payload []byte) (*Response, error) {
	m.mu.Lock()
	m.SubmitCalls = append(m.SubmitCalls, append([]byte(nil), payload...))
	fn := m.SubmitFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, payload)
	}
	return &Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil
}
