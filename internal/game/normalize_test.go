package game

import "testing"

func TestNormalizeLetter(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'а', 'А'},
		{'Я', 'Я'},
		{'й', 'И'},
		{'Й', 'И'},
		{'ё', 'Е'},
		{'Ё', 'Е'},
		{'и', 'И'},
		{'е', 'Е'},
		{'z', 'Z'},
	}
	for _, tt := range tests {
		if got := normalizeLetter(tt.in); got != tt.want {
			t.Errorf("normalizeLetter(%q) = %q, want %q", string(tt.in), string(got), string(tt.want))
		}
	}
}

func TestNormalizePhrase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims and uppercases", "  море ", "МОРЕ"},
		{"collapses whitespace", "кот \t кит", "КОТ КИТ"},
		{"folds equivalents", "ёжик", "ЕЖИК"},
		{"latin", "hello world", "HELLO WORLD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePhrase(tt.in); got != tt.want {
				t.Errorf("normalizePhrase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"МОРЕ", true},
		{"КОТ КИТ", true},
		{"ёлка", true},
		{"word", true},
		{"", false},
		{"   ", false},
		{"МОРЕ-2", false},
		{"кот!", false},
		{"42", false},
	}
	for _, tt := range tests {
		if got := ValidText(tt.in); got != tt.want {
			t.Errorf("ValidText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLetter(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"а", 'а', true},
		{" Ж ", 'Ж', true},
		{"q", 'q', true},
		{"", 0, false},
		{"аб", 0, false},
		{"5", 0, false},
		{"!", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLetter(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseLetter(%q) = %q, %v; want %q, %v", tt.in, string(got), ok, string(tt.want), tt.ok)
		}
	}
}

func TestCountLetter(t *testing.T) {
	if got := countLetter("МОЛОКО", 'О'); got != 3 {
		t.Errorf("countLetter(МОЛОКО, О) = %d, want 3", got)
	}
	if got := countLetter("КОТ КИТ", 'К'); got != 2 {
		t.Errorf("countLetter(КОТ КИТ, К) = %d, want 2", got)
	}
	// Equivalence applies to counting too.
	if got := countLetter("ЙОД", 'И'); got != 1 {
		t.Errorf("countLetter(ЙОД, И) = %d, want 1", got)
	}
}
