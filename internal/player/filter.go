package player

import "strings"

// Filter returns the players whose name, location or membership type contains
// query, ignoring case. Relative order is preserved. A blank query matches
// everyone and the input slice is returned as is.
func Filter(query string, players []Player) []Player {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return players
	}

	matches := make([]Player, 0, len(players))
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Location), q) ||
			strings.Contains(strings.ToLower(string(p.MembershipType)), q) {
			matches = append(matches, p)
		}
	}
	return matches
}
