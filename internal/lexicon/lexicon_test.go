package lexicon

import (
	"strings"
	"testing"
)

func TestEnglishStopwords(t *testing.T) {
	lex := English()

	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"The", true},
		{"IS", true},
		{"also", true},
		{"great", false},
		{"cats", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := lex.IsStopword(tt.word); got != tt.want {
				t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestIsPunctuation(t *testing.T) {
	lex := English()

	tests := []struct {
		token string
		want  bool
	}{
		{".", true},
		{"...", true},
		{"--", true},
		{"—", true},
		{"“", true},
		{"", true},
		{"a", false},
		{"a.", false},
		{"42", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := lex.IsPunctuation(tt.token); got != tt.want {
				t.Errorf("IsPunctuation(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestScorable(t *testing.T) {
	lex := English()
	if lex.Scorable("the") {
		t.Error("stopword should not be scorable")
	}
	if lex.Scorable(",") {
		t.Error("punctuation should not be scorable")
	}
	if !lex.Scorable("Dogs") {
		t.Error("content word should be scorable")
	}
}

func TestCustomLexicon(t *testing.T) {
	lex := New([]string{" Foo ", "BAR", ""}, "!")

	if lex.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", lex.Len())
	}
	if !lex.IsStopword("foo") || !lex.IsStopword("bar") {
		t.Error("custom stopwords should be lowercased and trimmed")
	}
	if lex.IsStopword("the") {
		t.Error("custom lexicon should not include English stopwords")
	}
	if !lex.IsPunctuation("!!") || lex.IsPunctuation(".") {
		t.Error("custom punctuation set not respected")
	}
}

func TestWithDoesNotMutate(t *testing.T) {
	base := English()
	extended := base.With("um", "uh")

	if base.IsStopword("um") {
		t.Error("With mutated the original lexicon")
	}
	if !extended.IsStopword("um") || !extended.IsStopword("uh") {
		t.Error("extended lexicon missing extra stopwords")
	}
	if !extended.IsStopword("the") || !extended.IsPunctuation(".") {
		t.Error("extended lexicon lost base entries")
	}
}

func TestZeroValue(t *testing.T) {
	var lex Lexicon
	if lex.IsStopword("the") {
		t.Error("zero lexicon should have no stopwords")
	}
	if lex.IsPunctuation(".") {
		t.Error("zero lexicon should have no punctuation")
	}
}

func TestReadStopwords(t *testing.T) {
	input := "# filler words\num\n\n  uh  \nlike\n"
	words, err := ReadStopwords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadStopwords() error: %v", err)
	}
	expected := []string{"um", "uh", "like"}
	if len(words) != len(expected) {
		t.Fatalf("Expected %d words, got %d: %v", len(expected), len(words), words)
	}
	for i, w := range words {
		if w != expected[i] {
			t.Errorf("words[%d] = %q, want %q", i, w, expected[i])
		}
	}
}
