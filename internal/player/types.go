package player

import (
	"database/sql"
	"errors"
	"sync"
)

// MembershipType is the category of a player's club membership. It only
// affects display; the set is open-ended.
type MembershipType string

const (
	MembershipStandard MembershipType = "Standard"
	MembershipPremium  MembershipType = "Premium"
	MembershipJunior   MembershipType = "Junior"
)

// ErrNotFound is returned when no player has the requested id.
var ErrNotFound = errors.New("player not found")

// Player is a read-only directory entry.
type Player struct {
	ID             string         `json:"id" koanf:"id"`
	Name           string         `json:"name" koanf:"name"`
	Location       string         `json:"location" koanf:"location"`
	MembershipType MembershipType `json:"membershipType" koanf:"membership_type"`
	Ranking        int            `json:"ranking" koanf:"ranking"`
	WinRate        float64        `json:"winRate" koanf:"win_rate"`
	MatchesPlayed  int            `json:"matchesPlayed" koanf:"matches_played"`
	ProfileImage   string         `json:"profileImage" koanf:"profile_image"`
}

// store handles all database operations for the player roster.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
