package server

import (
	"net/http"
	"strconv"
)

const maxListLimit = 50

func handleLeaderboard(store Store, defaultLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := listLimit(r, defaultLimit)

		standings, err := store.TopPlayers(r.Context(), roomID(r), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, standings)
	}
}

// listLimit reads the limit query parameter, falling back to def and
// clamping to maxListLimit.
func listLimit(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	if n > maxListLimit {
		return maxListLimit
	}
	return n
}
