package game

import (
	"regexp"
	"strings"
	"unicode"
)

// normalizeLetter maps a rune to its comparison form: uppercase, with Й
// folded to И and Ё folded to Е. Every set membership and occurrence count
// goes through this one function; display always keeps the literal rune of
// the secret word.
func normalizeLetter(r rune) rune {
	r = unicode.ToUpper(r)
	switch r {
	case 'Й':
		return 'И'
	case 'Ё':
		return 'Е'
	}
	return r
}

// normalizePhrase trims, collapses internal whitespace and normalizes every
// letter, so two phrases compare equal iff they match under the letter
// equivalence rules.
func normalizePhrase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.Map(normalizeLetter, f)
	}
	return strings.Join(fields, " ")
}

var textPattern = regexp.MustCompile(`^[А-Яа-яЁёA-Za-z\s]+$`)

// ValidText reports whether s is non-empty and contains only letters of the
// game alphabet and whitespace. Callers reject anything else before it
// reaches a session.
func ValidText(s string) bool {
	return strings.TrimSpace(s) != "" && textPattern.MatchString(s)
}

// ParseLetter extracts the single alphabetic rune from s, which may carry
// surrounding whitespace. ok is false for anything that is not exactly one
// letter of the game alphabet.
func ParseLetter(s string) (letter rune, ok bool) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 1 || unicode.IsSpace(runes[0]) {
		return 0, false
	}
	if !textPattern.MatchString(string(runes[0])) {
		return 0, false
	}
	return runes[0], true
}

// countLetter counts occurrences of the normalized target among the
// non-space runes of word.
func countLetter(word string, target rune) int {
	n := 0
	for _, r := range word {
		if unicode.IsSpace(r) {
			continue
		}
		if normalizeLetter(r) == target {
			n++
		}
	}
	return n
}
