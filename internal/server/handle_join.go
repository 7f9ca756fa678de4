package server

import (
	"net/http"
	"strings"
)

type JoinRequest struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

func handleJoin(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req JoinRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.PlayerID = strings.TrimSpace(req.PlayerID)
		req.PlayerName = strings.TrimSpace(req.PlayerName)
		if req.PlayerID == "" {
			writeError(w, http.StatusBadRequest, "playerId is required")
			return
		}

		sess := session(r)
		if err := sess.Join(req.PlayerID, req.PlayerName); err != nil {
			writeGameError(w, err)
			return
		}

		broker.Publish(roomID(r), RoomEvent{
			Type:       "player_joined",
			PlayerID:   req.PlayerID,
			PlayerName: req.PlayerName,
		})

		writeJSON(w, http.StatusOK, statusResponse(sess.Status()))
	}
}
