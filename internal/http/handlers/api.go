package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-directory/internal/player"
	"github.com/mauv0809/tennis-directory/internal/settings"
)

// ListPlayersHandler serves the filtered player list for the 'q' query parameter.
func ListPlayersHandler(directory *player.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		players := directory.Search(query)
		log.FromContext(r.Context()).Debug("Player search", "query", query, "matches", len(players))

		setCacheable(w)
		writeJSON(w, http.StatusOK, player.NewSearchResult(players))
	}
}

func GetPlayerHandler(directory *player.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		p, err := directory.Get(id)
		if errors.Is(err, player.ErrNotFound) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to get player", "error", err, "id", id)
			http.Error(w, "Failed to get player", http.StatusInternalServerError)
			return
		}

		setCacheable(w)
		writeJSON(w, http.StatusOK, p)
	}
}

func SettingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, settings.ComingSoon())
	}
}
