package server

import (
	"log/slog"
	"net/http"
	"strings"
)

type EndRequest struct {
	PlayerID string `json:"playerId"`
}

type EndResponse struct {
	Summary *SummaryView `json:"summary"`
}

func handleEnd(logger *slog.Logger, store Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EndRequest
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
		sum, err := sess.EndRound(req.PlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		id := roomID(r)
		persistRound(r.Context(), logger, store, id, &sum)
		broker.Publish(id, RoomEvent{
			Type:     "round_ended",
			PlayerID: req.PlayerID,
		})

		writeJSON(w, http.StatusOK, EndResponse{Summary: summaryView(&sum)})
	}
}
