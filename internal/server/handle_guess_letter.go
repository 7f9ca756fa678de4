package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/slovogames/wordwheel/internal/game"
)

type LetterGuessRequest struct {
	PlayerID string `json:"playerId"`
	Letter   string `json:"letter"`
}

type LetterGuessResponse struct {
	Correct    bool         `json:"correct"`
	Letter     string       `json:"letter"`
	BasePoints int          `json:"basePoints,omitempty"`
	Count      int          `json:"count,omitempty"`
	Points     int          `json:"points,omitempty"`
	TotalScore int          `json:"totalScore"`
	Repeated   bool         `json:"repeated,omitempty"`
	MaskedWord string       `json:"maskedWord,omitempty"`
	NextPlayer *PlayerView  `json:"nextPlayer,omitempty"`
	Completed  bool         `json:"completed"`
	Summary    *SummaryView `json:"summary,omitempty"`
}

func handleGuessLetter(logger *slog.Logger, store Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LetterGuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.PlayerID = strings.TrimSpace(req.PlayerID)
		if req.PlayerID == "" {
			writeError(w, http.StatusBadRequest, "playerId is required")
			return
		}

		letter, ok := game.ParseLetter(req.Letter)
		if !ok {
			writeError(w, http.StatusBadRequest, "letter must be a single Russian or Latin letter")
			return
		}

		sess := session(r)
		res, err := sess.GuessLetter(letter, req.PlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		resp := LetterGuessResponse{
			Correct:    res.Correct,
			Letter:     res.Letter,
			BasePoints: res.BasePoints,
			Count:      res.Count,
			Points:     res.Points,
			TotalScore: res.TotalScore,
			Repeated:   res.Repeated,
			Completed:  res.Completed,
			Summary:    summaryView(res.Summary),
		}
		if res.NextPlayer != nil {
			np := playerView(*res.NextPlayer)
			resp.NextPlayer = &np
		}
		if !res.Completed {
			resp.MaskedWord = sess.Status().MaskedWord
		}

		id := roomID(r)
		switch {
		case res.Completed:
			persistRound(r.Context(), logger, store, id, res.Summary)
			ev := RoomEvent{
				Type:      "round_completed",
				PlayerID:  req.PlayerID,
				Letter:    res.Letter,
				Points:    res.Points,
				HasWinner: res.Summary.HasWinner,
			}
			if res.Summary.Winner != nil {
				ev.WinnerName = res.Summary.Winner.Name
			}
			broker.Publish(id, ev)
		case res.Correct:
			broker.Publish(id, RoomEvent{
				Type:       "letter_guessed",
				PlayerID:   req.PlayerID,
				Letter:     res.Letter,
				Points:     res.Points,
				MaskedWord: resp.MaskedWord,
			})
		default:
			broker.Publish(id, RoomEvent{
				Type:     "wrong_letter",
				PlayerID: req.PlayerID,
				Letter:   res.Letter,
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
