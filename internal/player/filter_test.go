package player

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayers() []Player {
	return []Player{
		{ID: "1", Name: "Andy Murray", Location: "Dunblane", MembershipType: MembershipPremium, Ranking: 1},
		{ID: "2", Name: "Maia Lumsden", Location: "Glasgow", MembershipType: MembershipStandard, Ranking: 2},
		{ID: "3", Name: "Isla Campbell", Location: "Stirling", MembershipType: MembershipJunior, Ranking: 3},
		{ID: "4", Name: "Aidan McHugh", Location: "Glasgow", MembershipType: MembershipStandard, Ranking: 4},
		{ID: "5", Name: "Euan Stewart", Location: "Edinburgh", MembershipType: MembershipJunior, Ranking: 5},
	}
}

func ids(players []Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_BlankQueryReturnsInput(t *testing.T) {
	players := testPlayers()
	for _, q := range []string{"", " ", "\t\n  "} {
		got := Filter(q, players)
		require.Len(t, got, len(players))
		assert.Equal(t, players, got, "query %q should match everyone in order", q)
		assert.Same(t, &players[0], &got[0], "blank query should return the input slice itself")
	}
}

func TestFilter_MatchesFields(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name substring", "murr", []string{"1"}},
		{"case insensitive name", "ISLA", []string{"3"}},
		{"location", "glasgow", []string{"2", "4"}},
		{"membership", "junior", []string{"3", "5"}},
		{"membership partial", "STAND", []string{"2", "4"}},
		{"surrounding whitespace ignored", "  edinburgh ", []string{"5"}},
		{"matches across fields keeps order", "an", []string{"1", "2", "4", "5"}},
		{"no match", "wimbledon", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.query, testPlayers())
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter("andy", nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_EveryResultMatchesAndNothingIsMissed(t *testing.T) {
	players := testPlayers()
	for _, q := range []string{"a", "gl", "ium", "e", "x"} {
		got := Filter(q, players)
		matched := make(map[string]bool)
		for _, p := range got {
			matched[p.ID] = true
		}
		for _, p := range players {
			hit := strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Location), q) ||
				strings.Contains(strings.ToLower(string(p.MembershipType)), q)
			assert.Equal(t, hit, matched[p.ID], "query %q player %s", q, p.ID)
		}
	}
}
