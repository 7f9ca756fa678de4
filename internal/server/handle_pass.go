package server

import (
	"net/http"
	"strings"
)

type PassRequest struct {
	PlayerID string `json:"playerId"`
}

type PassResponse struct {
	NextPlayer *PlayerView `json:"nextPlayer,omitempty"`
}

func handlePass(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PassRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.PlayerID = strings.TrimSpace(req.PlayerID)
		if req.PlayerID == "" {
			writeError(w, http.StatusBadRequest, "playerId is required")
			return
		}

		sess := session(r)
		next, err := sess.PassTurn(req.PlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		resp := PassResponse{}
		if next != nil {
			np := playerView(*next)
			resp.NextPlayer = &np
		}
		broker.Publish(roomID(r), RoomEvent{Type: "turn_passed", PlayerID: req.PlayerID})

		writeJSON(w, http.StatusOK, resp)
	}
}
