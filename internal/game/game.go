// Package game implements the word-guessing game core: per-room sessions,
// turn rotation with elimination, letter and phrase guessing, and the
// randomized scoring scheme. The package has no external dependencies;
// transport, persistence and message formatting live in internal/server.
package game

import "errors"

// Errors reported by session operations. They are returned synchronously as
// part of an action's result and never leave the session in a partially
// mutated state.
var (
	ErrNotHost        = errors.New("host only")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrNotInGame      = errors.New("player not in game")
	ErrAlreadyGuessed = errors.New("letter already guessed")
	ErrNoActiveRound  = errors.New("no active round")
	ErrInvalidText    = errors.New("word must contain only letters and spaces")
)

// Player is one participant of a room's game. Join order defines turn
// rotation. Active=false marks a player eliminated from rotation; eliminated
// players keep their scores and stay on the roster.
type Player struct {
	ID     string
	Name   string
	Active bool
}

// ScoreRow is one line of the ranked score table.
type ScoreRow struct {
	PlayerID string
	Name     string
	Score    int
}

// LetterStat is the recorded scoring detail for one distinct letter of the
// secret word: the base points drawn for it, how many times it occurs, and
// the resulting total.
type LetterStat struct {
	Letter     string
	BasePoints int
	Count      int
	Points     int
}

// LetterAward is one line of a phrase guess breakdown. AlreadyGuessed lines
// carry the previously recorded base points and contribute nothing to the
// award.
type LetterAward struct {
	Letter         string
	BasePoints     int
	Count          int
	Points         int
	AlreadyGuessed bool
}

// LetterResult describes the outcome of a single-letter guess.
type LetterResult struct {
	Correct    bool
	Letter     string // normalized form
	BasePoints int
	Count      int
	Points     int
	TotalScore int
	Repeated   bool    // the same wrong letter was already tried before
	NextPlayer *Player // set when the turn advanced
	Completed  bool
	Summary    *Summary // set when Completed
}

// PhraseResult describes the outcome of a full word/phrase guess.
type PhraseResult struct {
	Correct      bool
	LetterPoints int // sum over newly resolved letters, pre-bonus
	Bonus        int
	Points       int // LetterPoints + Bonus
	TotalScore   int
	Breakdown    []LetterAward
	Eliminated   bool
	RoundOver    bool    // elimination left no active players
	NextPlayer   *Player // set when the turn moved to another player
	Completed    bool
	Summary      *Summary
}

// Summary is the conclusion record of a round, captured before the session
// is torn down. It carries everything the caller needs to render the final
// message and hand off to the persistence sink.
type Summary struct {
	Word      string
	RoomTitle string
	HostID    string
	HostName  string
	Completed bool // word fully revealed (as opposed to a host-initiated end)
	HasWinner bool
	Winner    *ScoreRow
	Scores    []ScoreRow
	Letters   []LetterStat
}

// SessionView is a read-only snapshot of a session for status display.
type SessionView struct {
	RoomTitle      string
	MaskedWord     string
	Active         bool
	HostID         string
	HostName       string
	Players        []Player
	Current        *Player
	GuessedLetters []string
	WrongLetters   []string
	Scores         []ScoreRow
}
