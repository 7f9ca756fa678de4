package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/slovogames/wordwheel/internal/game"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeGameError maps session errors to HTTP statuses. Unknown errors
// become opaque 500s so internal details never reach clients.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidText):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, game.ErrNotHost):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, game.ErrNotInGame),
		errors.Is(err, game.ErrNoActiveRound),
		errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrAlreadyGuessed):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
