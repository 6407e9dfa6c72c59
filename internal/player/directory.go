package player

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-directory/internal/metrics"
)

// Directory is the immutable, in-memory roster served to clients. It is
// loaded once and never written afterwards, so concurrent readers need no
// locking.
type Directory struct {
	players []Player
	byID    map[string]int
	metrics metrics.Metrics
}

// NewDirectory loads every player from src exactly once.
func NewDirectory(src Source, m metrics.Metrics) (*Directory, error) {
	players, err := src.GetAllPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	d := &Directory{
		players: slices.Clone(players),
		byID:    make(map[string]int, len(players)),
		metrics: m,
	}
	for i, p := range d.players {
		if _, dup := d.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate player id %q", p.ID)
		}
		d.byID[p.ID] = i
	}
	m.SetPlayersLoaded(len(d.players))
	log.Info("Player directory loaded", "count", len(d.players))
	return d, nil
}

// All returns a copy of the roster in directory order.
func (d *Directory) All() []Player {
	return slices.Clone(d.players)
}

// Get looks a player up by id.
func (d *Directory) Get(id string) (Player, error) {
	i, ok := d.byID[id]
	if !ok {
		return Player{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return d.players[i], nil
}

// Search applies Filter to the roster. The result never aliases the
// directory's own storage.
func (d *Directory) Search(query string) []Player {
	d.metrics.IncSearches()
	matches := Filter(query, d.players)
	return append(make([]Player, 0, len(matches)), matches...)
}

// Len reports how many players were loaded.
func (d *Directory) Len() int {
	return len(d.players)
}
