package player

import (
	_ "embed"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed roster.yaml
var defaultRoster []byte

// LoadRoster reads a YAML roster file of the form
//
//	players:
//	  - id: "1"
//	    name: ...
func LoadRoster(path string) ([]Player, error) {
	return loadRoster(file.Provider(path))
}

// DefaultRoster returns the roster compiled into the binary.
func DefaultRoster() ([]Player, error) {
	return loadRoster(rawbytes.Provider(defaultRoster))
}

func loadRoster(p koanf.Provider) ([]Player, error) {
	k := koanf.New(".")
	if err := k.Load(p, yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	var roster []Player
	if err := k.UnmarshalWithConf("players", &roster, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	if err := ValidateRoster(roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// ValidateRoster checks the invariants every seeded player must hold.
func ValidateRoster(roster []Player) error {
	seen := make(map[string]struct{}, len(roster))
	for i, p := range roster {
		switch {
		case p.ID == "":
			return fmt.Errorf("roster entry %d: missing id", i)
		case p.Name == "":
			return fmt.Errorf("player %s: missing name", p.ID)
		case p.Ranking < 1:
			return fmt.Errorf("player %s: ranking must be positive, got %d", p.ID, p.Ranking)
		case p.WinRate < 0 || p.WinRate > 100:
			return fmt.Errorf("player %s: win rate %.1f outside 0-100", p.ID, p.WinRate)
		case p.MatchesPlayed < 0:
			return fmt.Errorf("player %s: negative matches played", p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("player %s: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
