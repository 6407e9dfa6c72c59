package player

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new Store backed by db.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// UpsertPlayers inserts the roster or refreshes existing rows in a single transaction.
func (s *store) UpsertPlayers(players []Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO players (id, name, location, membership_type, ranking, win_rate, matches_played, profile_image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			location = excluded.location,
			membership_type = excluded.membership_type,
			ranking = excluded.ranking,
			win_rate = excluded.win_rate,
			matches_played = excluded.matches_played,
			profile_image = excluded.profile_image;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		if p.ID == "" {
			tx.Rollback()
			return fmt.Errorf("player %q has no id", p.Name)
		}
		_, err = stmt.Exec(p.ID, p.Name, p.Location, string(p.MembershipType), p.Ranking, p.WinRate, p.MatchesPlayed, p.ProfileImage)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Upserted players", "count", len(players))
	return nil
}

// GetAllPlayers returns every player ordered by ranking.
func (s *store) GetAllPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, location, membership_type, ranking, win_rate, matches_played, profile_image
		FROM players ORDER BY ranking, id
	`)
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		var membership string
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &membership, &p.Ranking, &p.WinRate, &p.MatchesPlayed, &p.ProfileImage); err != nil {
			log.Error("Failed to scan player row", "error", err)
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		p.MembershipType = MembershipType(membership)
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM players").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
