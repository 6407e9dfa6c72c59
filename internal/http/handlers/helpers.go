package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
)

// The directory never changes after startup, so clients may cache reads.
const directoryCacheControl = "public, max-age=60"

func setCacheable(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", directoryCacheControl)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
