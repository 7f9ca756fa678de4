package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/slovogames/wordwheel/internal/game"
)

type PhraseGuessRequest struct {
	PlayerID string `json:"playerId"`
	Phrase   string `json:"phrase"`
}

type PhraseGuessResponse struct {
	Correct      bool              `json:"correct"`
	LetterPoints int               `json:"letterPoints,omitempty"`
	Bonus        int               `json:"bonus,omitempty"`
	Points       int               `json:"points,omitempty"`
	TotalScore   int               `json:"totalScore"`
	Breakdown    []LetterAwardView `json:"breakdown,omitempty"`
	Eliminated   bool              `json:"eliminated,omitempty"`
	RoundOver    bool              `json:"roundOver,omitempty"`
	NextPlayer   *PlayerView       `json:"nextPlayer,omitempty"`
	Completed    bool              `json:"completed"`
	Summary      *SummaryView      `json:"summary,omitempty"`
}

func handleGuessPhrase(logger *slog.Logger, store Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PhraseGuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.PlayerID = strings.TrimSpace(req.PlayerID)
		if req.PlayerID == "" {
			writeError(w, http.StatusBadRequest, "playerId is required")
			return
		}

		// Malformed input is a validation error, never a failed guess:
		// it must not cost the guesser an elimination.
		if !game.ValidText(req.Phrase) {
			writeError(w, http.StatusBadRequest, "phrase must contain only letters and spaces")
			return
		}

		sess := session(r)
		res, err := sess.GuessPhrase(req.Phrase, req.PlayerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		resp := PhraseGuessResponse{
			Correct:      res.Correct,
			LetterPoints: res.LetterPoints,
			Bonus:        res.Bonus,
			Points:       res.Points,
			TotalScore:   res.TotalScore,
			Breakdown:    letterAwardViews(res.Breakdown),
			Eliminated:   res.Eliminated,
			RoundOver:    res.RoundOver,
			Completed:    res.Completed,
			Summary:      summaryView(res.Summary),
		}
		if res.NextPlayer != nil {
			np := playerView(*res.NextPlayer)
			resp.NextPlayer = &np
		}

		id := roomID(r)
		switch {
		case res.Completed:
			persistRound(r.Context(), logger, store, id, res.Summary)
			ev := RoomEvent{
				Type:      "round_completed",
				PlayerID:  req.PlayerID,
				Points:    res.Points,
				HasWinner: res.Summary.HasWinner,
			}
			if res.Summary.Winner != nil {
				ev.WinnerName = res.Summary.Winner.Name
			}
			broker.Publish(id, ev)
		case res.RoundOver:
			persistRound(r.Context(), logger, store, id, res.Summary)
			broker.Publish(id, RoomEvent{
				Type:     "round_over",
				PlayerID: req.PlayerID,
			})
		default:
			broker.Publish(id, RoomEvent{
				Type:     "player_eliminated",
				PlayerID: req.PlayerID,
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
