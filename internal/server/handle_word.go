package server

import (
	"net/http"
	"strings"
)

type WordRequest struct {
	PlayerID string `json:"playerId"`
	Word     string `json:"word"`
}

type WordResponse struct {
	MaskedWord string `json:"maskedWord"`
}

func handleWord(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WordRequest
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
		if err := sess.SetWord(req.PlayerID, req.Word); err != nil {
			writeGameError(w, err)
			return
		}

		view := sess.Status()
		broker.Publish(roomID(r), RoomEvent{
			Type:       "round_started",
			MaskedWord: view.MaskedWord,
		})

		writeJSON(w, http.StatusOK, WordResponse{MaskedWord: view.MaskedWord})
	}
}
