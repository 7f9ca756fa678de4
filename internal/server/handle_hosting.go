package server

import (
	"net/http"
	"strings"
)

type HostingRequest struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	RoomTitle  string `json:"roomTitle"`
}

func handleHosting(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HostingRequest
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
		sess.StartHosting(req.PlayerID, req.PlayerName, strings.TrimSpace(req.RoomTitle))

		broker.Publish(roomID(r), RoomEvent{
			Type:       "hosting_started",
			PlayerID:   req.PlayerID,
			PlayerName: req.PlayerName,
		})

		writeJSON(w, http.StatusOK, statusResponse(sess.Status()))
	}
}
