package player

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// RosterLoader produces the players used to seed an empty store.
type RosterLoader func() ([]Player, error)

// RosterFrom returns a loader for the YAML roster at path, or the embedded
// roster when path is empty.
func RosterFrom(path string) RosterLoader {
	if path == "" {
		return DefaultRoster
	}
	return func() ([]Player, error) {
		return LoadRoster(path)
	}
}

// EnsureSeeded fills store from load when it holds no players yet. It
// returns how many players were written.
func EnsureSeeded(store Store, load RosterLoader) (int, error) {
	count, err := store.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	if count > 0 {
		log.Debug("Player store already seeded", "count", count)
		return 0, nil
	}

	roster, err := load()
	if err != nil {
		return 0, fmt.Errorf("failed to load roster: %w", err)
	}
	if err := store.UpsertPlayers(roster); err != nil {
		return 0, fmt.Errorf("failed to seed players: %w", err)
	}
	log.Info("Seeded player store", "count", len(roster))
	return len(roster), nil
}
