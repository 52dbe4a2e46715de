// Package lexicon holds the fixed word tables used to decide which tokens
// carry meaning: stopwords and punctuation.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Lexicon is an immutable stopword and punctuation configuration.
// The zero value excludes nothing.
type Lexicon struct {
	stopwords   map[string]struct{}
	punctuation map[rune]struct{}
}

// New builds a lexicon from a stopword list and a string of punctuation runes.
// Stopwords are matched case-insensitively.
func New(stopwords []string, punctuation string) Lexicon {
	l := Lexicon{
		stopwords:   make(map[string]struct{}, len(stopwords)),
		punctuation: make(map[rune]struct{}, len(punctuation)),
	}
	for _, w := range stopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		l.stopwords[w] = struct{}{}
	}
	for _, r := range punctuation {
		l.punctuation[r] = struct{}{}
	}
	return l
}

// English returns the default English lexicon.
func English() Lexicon {
	return New(englishStopwords, asciiPunctuation+typographicPunctuation)
}

// With returns a copy of l with extra stopwords added.
func (l Lexicon) With(extra ...string) Lexicon {
	words := make([]string, 0, len(l.stopwords)+len(extra))
	for w := range l.stopwords {
		words = append(words, w)
	}
	words = append(words, extra...)
	var punct strings.Builder
	for r := range l.punctuation {
		punct.WriteRune(r)
	}
	return New(words, punct.String())
}

// IsStopword reports whether word is a stopword, ignoring case.
func (l Lexicon) IsStopword(word string) bool {
	_, ok := l.stopwords[strings.ToLower(word)]
	return ok
}

// IsPunctuation reports whether every rune of token is punctuation.
// The empty string counts as punctuation so it is never scored.
func (l Lexicon) IsPunctuation(token string) bool {
	for _, r := range token {
		if _, ok := l.punctuation[r]; !ok {
			return false
		}
	}
	return true
}

// Scorable reports whether a token may contribute to word importance.
func (l Lexicon) Scorable(token string) bool {
	return !l.IsPunctuation(token) && !l.IsStopword(token)
}

// Len returns the number of stopwords.
func (l Lexicon) Len() int { return len(l.stopwords) }

// ReadStopwords reads one stopword per line. Blank lines and lines starting
// with '#' are skipped.
func ReadStopwords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return words, nil
}
