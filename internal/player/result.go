package player

import "fmt"

// SearchResult is the list view payload: the matches plus a count summary.
type SearchResult struct {
	Count   int      `json:"count"`
	Summary string   `json:"summary"`
	Players []Player `json:"players"`
}

// NewSearchResult wraps players for display. A nil slice is reported as empty.
func NewSearchResult(players []Player) SearchResult {
	if players == nil {
		players = []Player{}
	}
	return SearchResult{
		Count:   len(players),
		Summary: Summary(len(players)),
		Players: players,
	}
}

// Summary renders "n players found", singular when n is 1.
func Summary(n int) string {
	if n == 1 {
		return "1 player found"
	}
	return fmt.Sprintf("%d players found", n)
}
