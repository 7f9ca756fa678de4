package server

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// RoundRecord is a finished round ready to be persisted.
type RoundRecord struct {
	RoomID     string
	RoomTitle  string
	Word       string
	HostID     string
	HostName   string
	Completed  bool
	HasWinner  bool
	WinnerID   string
	WinnerName string
	Players    []RoundPlayer
}

type RoundPlayer struct {
	PlayerID string
	Name     string
	Score    int
	Won      bool
}

// PlayerStanding is a player's accumulated record within one room.
type PlayerStanding struct {
	PlayerID    string `json:"playerId"`
	Name        string `json:"name"`
	GamesPlayed int    `json:"gamesPlayed"`
	GamesWon    int    `json:"gamesWon"`
	TotalPoints int    `json:"totalPoints"`
}

// RoundSummary is one row of a room's round history.
type RoundSummary struct {
	ID         string `json:"id"`
	Word       string `json:"word"`
	HostName   string `json:"hostName"`
	Completed  bool   `json:"completed"`
	HasWinner  bool   `json:"hasWinner"`
	WinnerName string `json:"winnerName,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// RoomStats is the per-room aggregate shown in the admin panel.
type RoomStats struct {
	RoomID      string `json:"roomId"`
	RoomTitle   string `json:"roomTitle"`
	GamesPlayed int    `json:"gamesPlayed"`
	Players     int    `json:"players"`
	UpdatedAt   string `json:"updatedAt"`
}

type Store interface {
	SaveRound(ctx context.Context, rec RoundRecord) error
	TopPlayers(ctx context.Context, roomID string, limit int) ([]PlayerStanding, error)
	RecentRounds(ctx context.Context, roomID string, limit int) ([]RoundSummary, error)
	PlayerStats(ctx context.Context, roomID, playerID string) (PlayerStanding, error)
	ListRoomStats(ctx context.Context) ([]RoomStats, error)
	ResetRoomStats(ctx context.Context, roomID string) error
}
