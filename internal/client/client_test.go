package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mauv0809/tennis-directory/internal/evaluation"
	"github.com/mauv0809/tennis-directory/internal/player"
	"github.com/mauv0809/tennis-directory/internal/score"
	"github.com/mauv0809/tennis-directory/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayers(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/players", r.URL.Path)
		assert.Equal(t, "murray", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=60")
		json.NewEncoder(w).Encode(player.NewSearchResult([]player.Player{{ID: "1", Name: "Andy Murray"}}))
	}))
	defer server.Close()

	c := New(server.URL)

	res, err := c.Players(context.Background(), "murray")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "1 player found", res.Summary)
	require.Len(t, res.Players, 1)
	assert.Equal(t, "Andy Murray", res.Players[0].Name)

	_, err = c.Players(context.Background(), "murray")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load(), "second search should be served from cache")

	resp, err := c.Get(context.Background(), "/players?q=murray")
	require.NoError(t, err)
	assert.True(t, resp.Cached)
}

func TestPlayer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/players/1":
			json.NewEncoder(w).Encode(player.Player{ID: "1", Name: "Andy Murray"})
		default:
			http.Error(w, "player not found", http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := New(server.URL + "/")

	p, err := c.Player(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Andy Murray", p.Name)

	_, err = c.Player(context.Background(), "99")
	assert.ErrorIs(t, err, player.ErrNotFound)
}

func TestSettings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(settings.ComingSoon())
	}))
	defer server.Close()

	page, err := New(server.URL).Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.ComingSoon(), page)
}

func TestRecord(t *testing.T) {
	e := evaluation.Evaluation{PlayerID: "2", TennisScore: score.MustNew(8), FitnessScore: score.MustNew(4)}

	t.Run("posts evaluation json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/evaluation", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"playerId":"2","tennisScore":8,"fitnessScore":4}`, string(body))
			w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		require.NoError(t, New(server.URL).Record(context.Background(), e))
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"Failed to submit evaluation"}`))
		}))
		defer server.Close()

		err := New(server.URL).Record(context.Background(), e)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "Failed to submit evaluation")
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		assert.Error(t, New(server.URL).Record(context.Background(), e))
	})
}

func TestWithCacheDir_SharedAcrossClients(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Cache-Control", "public, max-age=60")
		json.NewEncoder(w).Encode(settings.ComingSoon())
	}))
	defer server.Close()

	dir := t.TempDir()

	_, err := New(server.URL, WithCacheDir(dir)).Settings(context.Background())
	require.NoError(t, err)

	resp, err := New(server.URL, WithCacheDir(dir)).Get(context.Background(), "/settings")
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Equal(t, int32(1), hits.Load(), "a fresh client should reuse the reply cached on disk")
}
