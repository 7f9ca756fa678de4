package server

import (
	"context"
	"errors"
	"testing"

	"github.com/slovogames/wordwheel/internal/database"
	"github.com/slovogames/wordwheel/internal/migrations"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return NewSQLiteStore(db)
}

func sampleRound(hasWinner bool, scores map[string]int) RoundRecord {
	rec := RoundRecord{
		RoomID:    "chat1",
		RoomTitle: "Test Room",
		Word:      "МОРЕ",
		HostID:    "host",
		HostName:  "Host",
		Completed: hasWinner,
		HasWinner: hasWinner,
	}
	best := ""
	for id, score := range scores {
		if best == "" || score > scores[best] {
			best = id
		}
	}
	for id, score := range scores {
		rec.Players = append(rec.Players, RoundPlayer{
			PlayerID: id,
			Name:     "Player " + id,
			Score:    score,
			Won:      hasWinner && id == best,
		})
	}
	if hasWinner {
		rec.WinnerID = best
		rec.WinnerName = "Player " + best
	}
	return rec
}

func TestSaveRoundAccumulates(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.SaveRound(ctx, sampleRound(true, map[string]int{"a": 500, "b": 200})); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.SaveRound(ctx, sampleRound(false, map[string]int{"a": 100, "b": 300})); err != nil {
		t.Fatalf("second save: %v", err)
	}

	board, err := s.TopPlayers(ctx, "chat1", 10)
	if err != nil {
		t.Fatalf("top players: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("got %d standings, want 2", len(board))
	}
	if board[0].PlayerID != "a" || board[0].TotalPoints != 600 || board[0].GamesWon != 1 || board[0].GamesPlayed != 2 {
		t.Errorf("a = %+v, want 600 points, 1 win, 2 games", board[0])
	}
	if board[1].PlayerID != "b" || board[1].TotalPoints != 500 || board[1].GamesWon != 0 {
		t.Errorf("b = %+v, want 500 points, no wins", board[1])
	}

	rounds, err := s.RecentRounds(ctx, "chat1", 10)
	if err != nil {
		t.Fatalf("recent rounds: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("got %d rounds, want 2", len(rounds))
	}
	winners := 0
	for _, rd := range rounds {
		if rd.HasWinner {
			winners++
			if rd.WinnerName != "Player a" {
				t.Errorf("winner = %q, want Player a", rd.WinnerName)
			}
		}
	}
	if winners != 1 {
		t.Errorf("got %d winning rounds, want 1", winners)
	}

	stats, err := s.PlayerStats(ctx, "chat1", "b")
	if err != nil {
		t.Fatalf("player stats: %v", err)
	}
	if stats.TotalPoints != 500 || stats.GamesPlayed != 2 {
		t.Errorf("b stats = %+v, want 500 points over 2 games", stats)
	}
}

func TestTopPlayersLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.SaveRound(ctx, sampleRound(true, map[string]int{"a": 500, "b": 200, "c": 100})); err != nil {
		t.Fatalf("save: %v", err)
	}

	board, err := s.TopPlayers(ctx, "chat1", 2)
	if err != nil {
		t.Fatalf("top players: %v", err)
	}
	if len(board) != 2 || board[0].PlayerID != "a" {
		t.Errorf("board = %+v, want a and b only", board)
	}
}

func TestRoomIsolation(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	rec := sampleRound(true, map[string]int{"a": 500})
	if err := s.SaveRound(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	rec.RoomID = "chat2"
	if err := s.SaveRound(ctx, rec); err != nil {
		t.Fatalf("save chat2: %v", err)
	}

	board, err := s.TopPlayers(ctx, "chat2", 10)
	if err != nil {
		t.Fatalf("top players: %v", err)
	}
	if len(board) != 1 || board[0].GamesPlayed != 1 {
		t.Errorf("chat2 board = %+v, want single game for a", board)
	}

	all, err := s.ListRoomStats(ctx)
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d rooms, want 2", len(all))
	}
}

func TestResetRoomStats(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.ResetRoomStats(ctx, "chat1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("reset unknown room: got %v, want ErrNotFound", err)
	}

	if err := s.SaveRound(ctx, sampleRound(true, map[string]int{"a": 500})); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.ResetRoomStats(ctx, "chat1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, err := s.PlayerStats(ctx, "chat1", "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("player stats after reset: got %v, want ErrNotFound", err)
	}
	rounds, err := s.RecentRounds(ctx, "chat1", 10)
	if err != nil {
		t.Fatalf("recent rounds: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("rounds after reset = %+v, want none", rounds)
	}
}
