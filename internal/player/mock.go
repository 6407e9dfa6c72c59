package player

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	Players []Player

	// Spies for method calls
	GetAllPlayersFunc func() ([]Player, error)
	UpsertPlayersFunc func(players []Player) error

	// Call records
	GetAllPlayersCalls int
	UpsertPlayersCalls [][]Player
}

// NewMock creates a new mock store pre-filled with players.
func NewMock(players ...Player) *MockStore {
	return &MockStore{Players: players}
}

func (m *MockStore) GetAllPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAllPlayersCalls++
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return m.Players, nil
}

func (m *MockStore) UpsertPlayers(players []Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayersCalls = append(m.UpsertPlayersCalls, players)
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	m.Players = append(m.Players, players...)
	return nil
}

func (m *MockStore) Count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Players), nil
}
