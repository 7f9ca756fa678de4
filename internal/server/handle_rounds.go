package server

import (
	"net/http"
)

func handleRounds(store Store, defaultLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := listLimit(r, defaultLimit)

		rounds, err := store.RecentRounds(r.Context(), roomID(r), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, rounds)
	}
}
