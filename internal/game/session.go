package game

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// placeholder hides unrevealed letters in the masked word.
const placeholder = '█'

// Session is the full mutable game state for one room. It spans multiple
// rounds: a round runs from "word set" to completion or termination, after
// which the session is reset and a new one can be hosted.
//
// Exported methods serialize access per room; everything below the lock is
// plain single-threaded logic. Sessions of different rooms are fully
// independent.
type Session struct {
	mu sync.Mutex

	roomTitle string
	word      string
	hostID    string
	hostName  string

	players   []*Player
	turnIndex int // -1 until the first actor claims the turn

	guessedLetters   map[rune]struct{}
	attemptedLetters map[rune]struct{}
	scores           map[string]int
	letterPoints     map[rune]int // highest base ever drawn per letter

	active    bool
	hasWinner bool

	points PointSource
}

// NewSession returns an empty session drawing base points from src.
func NewSession(src PointSource) *Session {
	s := &Session{points: src}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.word = ""
	s.hostID = ""
	s.hostName = ""
	s.players = nil
	s.turnIndex = -1
	s.guessedLetters = make(map[rune]struct{})
	s.attemptedLetters = make(map[rune]struct{})
	s.scores = make(map[string]int)
	s.letterPoints = make(map[rune]int)
	s.active = false
	s.hasWinner = true
}

// StartHosting makes hostID the host of a fresh game, clearing any previous
// players, scores and guess state. The host is not added as a player.
func (s *Session) StartHosting(hostID, hostName, roomTitle string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.hostID = hostID
	s.hostName = hostName
	if roomTitle != "" {
		s.roomTitle = roomTitle
	}
}

// SetWord sets the secret word or phrase and activates the round. Guess
// state and scores are cleared; players joined earlier stay on the roster
// and are restored to the rotation.
func (s *Session) SetWord(hostID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hostID == "" {
		return ErrNoActiveRound
	}
	if hostID != s.hostID {
		return ErrNotHost
	}
	if !ValidText(text) {
		return ErrInvalidText
	}

	s.word = strings.TrimSpace(text)
	s.turnIndex = -1
	s.guessedLetters = make(map[rune]struct{})
	s.attemptedLetters = make(map[rune]struct{})
	s.scores = make(map[string]int)
	s.letterPoints = make(map[rune]int)
	s.active = true
	s.hasWinner = true
	for _, p := range s.players {
		p.Active = true
		s.scores[p.ID] = 0
	}
	return nil
}

// Join adds a player to the roster. Joining the same id twice is a no-op.
// New players start active with a zero score.
func (s *Session) Join(playerID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hostID == "" && s.word == "" {
		return ErrNoActiveRound
	}
	if _, p := s.findPlayer(playerID); p != nil {
		return nil
	}
	if name == "" {
		name = fmt.Sprintf("Player %d", len(s.players)+1)
	}
	s.players = append(s.players, &Player{ID: playerID, Name: name, Active: true})
	if _, ok := s.scores[playerID]; !ok {
		s.scores[playerID] = 0
	}
	return nil
}

// CurrentPlayer returns the player holding the turn, if any.
func (s *Session) CurrentPlayer() (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.currentPlayer(); p != nil {
		return *p, true
	}
	return Player{}, false
}

// GuessLetter resolves a single-letter guess from playerID. The turn is
// claimed if unclaimed, otherwise the guesser must hold it. A brand-new
// wrong letter advances the turn; repeating an already-failed letter does
// not. A correct guess that reveals the last letter concludes the round and
// attaches the Summary.
func (s *Session) GuessLetter(letter rune, playerID string) (LetterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.word == "" {
		return LetterResult{}, ErrNoActiveRound
	}
	if err := s.takeTurn(playerID); err != nil {
		return LetterResult{}, err
	}

	n := normalizeLetter(letter)
	if _, ok := s.guessedLetters[n]; ok {
		return LetterResult{}, ErrAlreadyGuessed
	}

	_, repeated := s.attemptedLetters[n]
	s.attemptedLetters[n] = struct{}{}

	res := LetterResult{Letter: string(n), Count: countLetter(s.word, n)}

	if res.Count == 0 {
		res.Repeated = repeated
		if !repeated {
			if next := s.advanceTurn(); next != nil {
				np := *next
				res.NextPlayer = &np
			}
		}
		return res, nil
	}

	res.Correct = true
	res.BasePoints = s.points.NextBasePoints()
	res.Points = res.BasePoints * res.Count
	if res.BasePoints > s.letterPoints[n] {
		s.letterPoints[n] = res.BasePoints
	}
	s.guessedLetters[n] = struct{}{}
	s.scores[playerID] += res.Points
	res.TotalScore = s.scores[playerID]

	if s.isComplete() {
		res.Completed = true
		sum := s.conclude(true)
		res.Summary = &sum
	}
	return res, nil
}

// GuessPhrase resolves a full word/phrase guess from playerID. The guess
// must match the whole secret phrase after normalization; guessing a single
// component word of a multi-word phrase does not count. Success awards base
// points for every not-yet-guessed letter plus a third of that sum as bonus
// and concludes the round. Failure eliminates the guesser from rotation and,
// if nobody active remains, ends the round with no winner.
func (s *Session) GuessPhrase(text, playerID string) (PhraseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.word == "" {
		return PhraseResult{}, ErrNoActiveRound
	}
	if err := s.takeTurn(playerID); err != nil {
		return PhraseResult{}, err
	}

	if normalizePhrase(text) != normalizePhrase(s.word) {
		res := PhraseResult{Eliminated: true}
		s.eliminate(playerID)
		if !s.anyActive() {
			s.hasWinner = false
			res.RoundOver = true
			sum := s.conclude(false)
			res.Summary = &sum
			return res, nil
		}
		if cur := s.currentPlayer(); cur != nil {
			np := *cur
			res.NextPlayer = &np
		}
		return res, nil
	}

	res := PhraseResult{Correct: true}
	seen := make(map[rune]struct{})
	for _, r := range s.word {
		if unicode.IsSpace(r) {
			continue
		}
		n := normalizeLetter(r)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}

		count := countLetter(s.word, n)
		if _, ok := s.guessedLetters[n]; ok {
			base := s.letterPoints[n]
			res.Breakdown = append(res.Breakdown, LetterAward{
				Letter:         string(n),
				BasePoints:     base,
				Count:          count,
				Points:         base * count,
				AlreadyGuessed: true,
			})
			continue
		}

		base := s.points.NextBasePoints()
		pts := base * count
		res.LetterPoints += pts
		if base > s.letterPoints[n] {
			s.letterPoints[n] = base
		}
		s.guessedLetters[n] = struct{}{}
		s.attemptedLetters[n] = struct{}{}
		res.Breakdown = append(res.Breakdown, LetterAward{
			Letter:     string(n),
			BasePoints: base,
			Count:      count,
			Points:     pts,
		})
	}

	res.Bonus = res.LetterPoints / 3
	res.Points = res.LetterPoints + res.Bonus
	s.scores[playerID] += res.Points
	res.TotalScore = s.scores[playerID]

	if s.isComplete() {
		res.Completed = true
		sum := s.conclude(true)
		res.Summary = &sum
	}
	return res, nil
}

// PassTurn hands the turn to the next active player. Only the current turn
// holder may pass.
func (s *Session) PassTurn(playerID string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.word == "" {
		return nil, ErrNoActiveRound
	}
	if _, p := s.findPlayer(playerID); p == nil {
		return nil, ErrNotInGame
	}
	cur := s.currentPlayer()
	if cur == nil || cur.ID != playerID {
		return nil, ErrNotYourTurn
	}
	if next := s.advanceTurn(); next != nil {
		np := *next
		return &np, nil
	}
	return nil, nil
}

// EndRound tears the session down on behalf of the host and returns the
// conclusion summary. Word, players and host are all cleared.
func (s *Session) EndRound(actorID string) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hostID == "" {
		return Summary{}, ErrNoActiveRound
	}
	if actorID != s.hostID {
		return Summary{}, ErrNotHost
	}
	return s.conclude(false), nil
}

// Status returns a display snapshot of the session.
func (s *Session) Status() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		RoomTitle:      s.roomTitle,
		MaskedWord:     s.maskedWord(),
		Active:         s.active,
		HostID:         s.hostID,
		HostName:       s.hostName,
		GuessedLetters: sortedLetters(s.guessedLetters),
		WrongLetters:   wrongLetters(s.word, s.attemptedLetters),
		Scores:         scoreTable(s.players, s.scores),
	}
	for _, p := range s.players {
		view.Players = append(view.Players, *p)
	}
	if cur := s.currentPlayer(); cur != nil {
		cp := *cur
		view.Current = &cp
	}
	return view
}

// ScoreTable returns all scored players by descending score, ties keeping
// join order.
func (s *Session) ScoreTable() []ScoreRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scoreTable(s.players, s.scores)
}

// LetterBreakdown returns per-letter scoring details for the secret word in
// first-appearance order.
func (s *Session) LetterBreakdown() []LetterStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return letterBreakdown(s.word, s.letterPoints)
}

// WrongLetters returns the attempted letters absent from the word, sorted.
func (s *Session) WrongLetters() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return wrongLetters(s.word, s.attemptedLetters)
}

/* ----------------------------- internals ------------------------------- */

func (s *Session) findPlayer(id string) (int, *Player) {
	for i, p := range s.players {
		if p.ID == id {
			return i, p
		}
	}
	return -1, nil
}

func (s *Session) currentPlayer() *Player {
	if s.turnIndex < 0 || s.turnIndex >= len(s.players) {
		return nil
	}
	return s.players[s.turnIndex]
}

// takeTurn claims the turn for playerID when unclaimed, otherwise verifies
// the player holds it.
func (s *Session) takeTurn(playerID string) error {
	idx, p := s.findPlayer(playerID)
	if p == nil {
		return ErrNotInGame
	}
	if s.turnIndex == -1 {
		if !p.Active {
			return ErrNotYourTurn
		}
		s.turnIndex = idx
		return nil
	}
	if s.players[s.turnIndex].ID != playerID {
		return ErrNotYourTurn
	}
	return nil
}

// advanceTurn moves the turn to the next active player, scanning circularly
// from turnIndex+1 for at most len(players) steps. With no active player
// left the turn becomes unresolved.
func (s *Session) advanceTurn() *Player {
	if len(s.players) == 0 || s.turnIndex == -1 {
		return nil
	}
	for step := 1; step <= len(s.players); step++ {
		i := (s.turnIndex + step) % len(s.players)
		if s.players[i].Active {
			s.turnIndex = i
			return s.players[i]
		}
	}
	s.turnIndex = -1
	return nil
}

// eliminate removes playerID from future rotation, advancing the turn if
// they hold it. Scores and roster membership are untouched.
func (s *Session) eliminate(playerID string) {
	idx, p := s.findPlayer(playerID)
	if p == nil {
		return
	}
	p.Active = false
	if s.turnIndex == idx {
		s.advanceTurn()
	}
}

func (s *Session) anyActive() bool {
	for _, p := range s.players {
		if p.Active {
			return true
		}
	}
	return false
}

// maskedWord mirrors the secret word with unrevealed letters replaced by the
// placeholder. Spaces pass through; revealed letters keep their literal form.
func (s *Session) maskedWord() string {
	var b strings.Builder
	for _, r := range s.word {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		if _, ok := s.guessedLetters[normalizeLetter(r)]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(placeholder)
		}
	}
	return b.String()
}

func (s *Session) isComplete() bool {
	if s.word == "" {
		return false
	}
	for _, r := range s.word {
		if unicode.IsSpace(r) {
			continue
		}
		if _, ok := s.guessedLetters[normalizeLetter(r)]; !ok {
			return false
		}
	}
	return true
}

// conclude captures the round's final state and tears the session down.
func (s *Session) conclude(completed bool) Summary {
	sum := Summary{
		Word:      s.word,
		RoomTitle: s.roomTitle,
		HostID:    s.hostID,
		HostName:  s.hostName,
		Completed: completed,
		HasWinner: s.hasWinner,
		Scores:    scoreTable(s.players, s.scores),
		Letters:   letterBreakdown(s.word, s.letterPoints),
	}
	if sum.HasWinner && len(sum.Scores) > 0 {
		w := sum.Scores[0]
		sum.Winner = &w
	}
	title := s.roomTitle
	s.reset()
	s.roomTitle = title
	return sum
}
