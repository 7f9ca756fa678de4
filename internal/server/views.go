package server

import (
	"github.com/slovogames/wordwheel/internal/game"
)

// Wire representations of the game package's domain types.

type PlayerView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type ScoreView struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

type LetterStatView struct {
	Letter     string `json:"letter"`
	BasePoints int    `json:"basePoints"`
	Count      int    `json:"count"`
	Points     int    `json:"points"`
}

type LetterAwardView struct {
	Letter         string `json:"letter"`
	BasePoints     int    `json:"basePoints"`
	Count          int    `json:"count"`
	Points         int    `json:"points"`
	AlreadyGuessed bool   `json:"alreadyGuessed"`
}

type SummaryView struct {
	Word      string           `json:"word"`
	RoomTitle string           `json:"roomTitle"`
	HostID    string           `json:"hostId"`
	HostName  string           `json:"hostName"`
	Completed bool             `json:"completed"`
	HasWinner bool             `json:"hasWinner"`
	Winner    *ScoreView       `json:"winner,omitempty"`
	Scores    []ScoreView      `json:"scores"`
	Letters   []LetterStatView `json:"letters"`
}

type StatusResponse struct {
	RoomTitle      string       `json:"roomTitle"`
	Active         bool         `json:"active"`
	MaskedWord     string       `json:"maskedWord"`
	HostID         string       `json:"hostId,omitempty"`
	HostName       string       `json:"hostName,omitempty"`
	Players        []PlayerView `json:"players"`
	CurrentPlayer  *PlayerView  `json:"currentPlayer,omitempty"`
	GuessedLetters []string     `json:"guessedLetters"`
	WrongLetters   []string     `json:"wrongLetters"`
	Scores         []ScoreView  `json:"scores"`
}

func playerView(p game.Player) PlayerView {
	return PlayerView{ID: p.ID, Name: p.Name, Active: p.Active}
}

func scoreViews(rows []game.ScoreRow) []ScoreView {
	out := make([]ScoreView, len(rows))
	for i, r := range rows {
		out[i] = ScoreView{PlayerID: r.PlayerID, Name: r.Name, Score: r.Score}
	}
	return out
}

func letterStatViews(stats []game.LetterStat) []LetterStatView {
	out := make([]LetterStatView, len(stats))
	for i, s := range stats {
		out[i] = LetterStatView{
			Letter:     s.Letter,
			BasePoints: s.BasePoints,
			Count:      s.Count,
			Points:     s.Points,
		}
	}
	return out
}

func letterAwardViews(awards []game.LetterAward) []LetterAwardView {
	out := make([]LetterAwardView, len(awards))
	for i, a := range awards {
		out[i] = LetterAwardView{
			Letter:         a.Letter,
			BasePoints:     a.BasePoints,
			Count:          a.Count,
			Points:         a.Points,
			AlreadyGuessed: a.AlreadyGuessed,
		}
	}
	return out
}

func summaryView(s *game.Summary) *SummaryView {
	if s == nil {
		return nil
	}
	v := &SummaryView{
		Word:      s.Word,
		RoomTitle: s.RoomTitle,
		HostID:    s.HostID,
		HostName:  s.HostName,
		Completed: s.Completed,
		HasWinner: s.HasWinner,
		Scores:    scoreViews(s.Scores),
		Letters:   letterStatViews(s.Letters),
	}
	if s.Winner != nil {
		w := ScoreView{PlayerID: s.Winner.PlayerID, Name: s.Winner.Name, Score: s.Winner.Score}
		v.Winner = &w
	}
	return v
}

func statusResponse(v game.SessionView) StatusResponse {
	resp := StatusResponse{
		RoomTitle:      v.RoomTitle,
		Active:         v.Active,
		MaskedWord:     v.MaskedWord,
		HostID:         v.HostID,
		HostName:       v.HostName,
		Players:        make([]PlayerView, len(v.Players)),
		GuessedLetters: v.GuessedLetters,
		WrongLetters:   v.WrongLetters,
		Scores:         scoreViews(v.Scores),
	}
	for i, p := range v.Players {
		resp.Players[i] = playerView(p)
	}
	if v.Current != nil {
		cp := playerView(*v.Current)
		resp.CurrentPlayer = &cp
	}
	return resp
}
