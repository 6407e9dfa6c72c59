package player

import (
	"errors"
	"testing"

	"github.com/mauv0809/tennis-directory/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectory_LoadsOnce(t *testing.T) {
	src := NewMock(testPlayers()...)
	m := metrics.NewMock()

	dir, err := NewDirectory(src, m)
	require.NoError(t, err)

	assert.Equal(t, 5, dir.Len())
	assert.Equal(t, 5, m.PlayersLoaded())

	dir.All()
	dir.Search("glasgow")
	_, _ = dir.Get("1")
	assert.Equal(t, 1, src.GetAllPlayersCalls, "the source should only be read at load time")
}

func TestNewDirectory_SourceError(t *testing.T) {
	src := NewMock()
	src.GetAllPlayersFunc = func() ([]Player, error) {
		return nil, errors.New("db down")
	}

	_, err := NewDirectory(src, metrics.NewMock())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestNewDirectory_RejectsDuplicateIDs(t *testing.T) {
	src := NewMock(Player{ID: "1", Name: "A"}, Player{ID: "1", Name: "B"})

	_, err := NewDirectory(src, metrics.NewMock())
	require.Error(t, err)
}

func TestDirectory_Get(t *testing.T) {
	dir, err := NewDirectory(NewMock(testPlayers()...), metrics.NewMock())
	require.NoError(t, err)

	p, err := dir.Get("3")
	require.NoError(t, err)
	assert.Equal(t, "Isla Campbell", p.Name)

	_, err = dir.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirectory_SnapshotIsNotMutatedByCallers(t *testing.T) {
	dir, err := NewDirectory(NewMock(testPlayers()...), metrics.NewMock())
	require.NoError(t, err)

	all := dir.All()
	all[0].Name = "changed"
	found := dir.Search("")
	found[1].Name = "changed too"

	p, err := dir.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Andy Murray", p.Name)
	p, err = dir.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Maia Lumsden", p.Name)
}

func TestDirectory_SearchCountsAndNeverReturnsNil(t *testing.T) {
	m := metrics.NewMock()
	dir, err := NewDirectory(NewMock(), m)
	require.NoError(t, err)

	got := dir.Search("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 1, m.Searches())
}
