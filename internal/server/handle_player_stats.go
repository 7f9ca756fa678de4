package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func handlePlayerStats(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		if playerID == "" {
			writeError(w, http.StatusNotFound, "player not found")
			return
		}

		stats, err := store.PlayerStats(r.Context(), roomID(r), playerID)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "player not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
