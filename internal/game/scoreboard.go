package game

import (
	"sort"
	"unicode"
)

// scoreTable ranks every rostered player by descending score. The sort is
// stable, so ties keep join order.
func scoreTable(players []*Player, scores map[string]int) []ScoreRow {
	rows := make([]ScoreRow, 0, len(players))
	for _, p := range players {
		rows = append(rows, ScoreRow{PlayerID: p.ID, Name: p.Name, Score: scores[p.ID]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Score > rows[j].Score })
	return rows
}

// letterBreakdown lists each distinct letter of word in first-appearance
// order with its recorded base points, occurrence count and total. Letters
// never resolved carry zero base points.
func letterBreakdown(word string, letterPoints map[rune]int) []LetterStat {
	seen := make(map[rune]struct{})
	var stats []LetterStat
	for _, r := range word {
		if unicode.IsSpace(r) {
			continue
		}
		n := normalizeLetter(r)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		base := letterPoints[n]
		count := countLetter(word, n)
		stats = append(stats, LetterStat{
			Letter:     string(n),
			BasePoints: base,
			Count:      count,
			Points:     base * count,
		})
	}
	return stats
}

// wrongLetters returns the attempted letters that occur nowhere in word,
// sorted for stable display.
func wrongLetters(word string, attempted map[rune]struct{}) []string {
	inWord := make(map[rune]struct{})
	for _, r := range word {
		if !unicode.IsSpace(r) {
			inWord[normalizeLetter(r)] = struct{}{}
		}
	}
	var wrong []string
	for r := range attempted {
		if _, ok := inWord[r]; !ok {
			wrong = append(wrong, string(r))
		}
	}
	sort.Strings(wrong)
	return wrong
}

// sortedLetters flattens a letter set into a sorted slice of one-rune strings.
func sortedLetters(set map[rune]struct{}) []string {
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}
