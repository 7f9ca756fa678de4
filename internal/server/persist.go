package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/slovogames/wordwheel/internal/game"
)

// persistRound records a concluded round. Rounds ended before a word was
// ever set carry no result and are skipped. Persistence failures are
// logged, never surfaced to the player.
func persistRound(ctx context.Context, logger *slog.Logger, store Store, roomID string, sum *game.Summary) {
	if sum == nil || sum.Word == "" {
		return
	}

	rec := RoundRecord{
		RoomID:    roomID,
		RoomTitle: sum.RoomTitle,
		Word:      sum.Word,
		HostID:    sum.HostID,
		HostName:  sum.HostName,
		Completed: sum.Completed,
		HasWinner: sum.HasWinner,
	}
	if sum.HasWinner && sum.Winner != nil {
		rec.WinnerID = sum.Winner.PlayerID
		rec.WinnerName = sum.Winner.Name
	}
	for _, row := range sum.Scores {
		rec.Players = append(rec.Players, RoundPlayer{
			PlayerID: row.PlayerID,
			Name:     row.Name,
			Score:    row.Score,
			Won:      sum.HasWinner && sum.Winner != nil && row.PlayerID == sum.Winner.PlayerID,
		})
	}

	// Outlive the request: the round is already concluded in memory,
	// a client disconnect must not lose the record.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := store.SaveRound(ctx, rec); err != nil {
		logger.Error("saving round failed", "room_id", roomID, "error", err)
	}
}
