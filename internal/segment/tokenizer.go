package segment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball"

	"tsum/internal/domain"
)

// WordTokenizer splits text into words (letters and digits with internal
// apostrophes) and single-rune symbol tokens. English clitics ('s, 'm, 're,
// 've, 'd, 'll and n't) are split off into tokens of their own, so "Don't"
// yields "Do" and "n't".
type WordTokenizer struct {
	tokenPattern *regexp.Regexp
	stemLanguage string
}

// NewWordTokenizer creates a tokenizer that only lowercases.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}\p{M}]+(?:['’][\p{L}\p{N}\p{M}]+)*|[^\s\p{L}\p{N}\p{M}]`),
	}
}

// NewStemmingTokenizer creates a tokenizer that also fills Token.Stem using
// the Snowball stemmer for language (e.g. "english").
func NewStemmingTokenizer(language string) *WordTokenizer {
	t := NewWordTokenizer()
	t.stemLanguage = language
	return t
}

func (t *WordTokenizer) Tokens(text string) []domain.Token {
	raw := t.tokenPattern.FindAllString(text, -1)
	if len(raw) == 0 {
		return nil
	}
	tokens := make([]domain.Token, 0, len(raw))
	for _, word := range raw {
		head, clitic := splitClitic(word)
		tokens = append(tokens, t.token(head))
		if clitic != "" {
			// clitics are closed-class words, never stemmed
			tokens = append(tokens, domain.Token{Text: clitic, Norm: strings.ToLower(clitic)})
		}
	}
	return tokens
}

func (t *WordTokenizer) token(word string) domain.Token {
	tok := domain.Token{Text: word, Norm: strings.ToLower(word)}
	if t.stemLanguage != "" && isWord(word) {
		stemmed, err := snowball.Stem(tok.Norm, t.stemLanguage, true)
		if err == nil && stemmed != "" {
			tok.Stem = stemmed
		}
	}
	return tok
}

// splitClitic cuts a trailing English clitic off word. It returns word
// unchanged and an empty clitic when there is none.
func splitClitic(word string) (head, clitic string) {
	i := strings.LastIndexAny(word, "'’‘")
	if i <= 0 {
		return word, ""
	}
	_, size := utf8.DecodeRuneInString(word[i:])
	switch strings.ToLower(word[i+size:]) {
	case "s", "m", "re", "ve", "d", "ll":
		return word[:i], word[i:]
	case "t":
		if i > 1 && (word[i-1] == 'n' || word[i-1] == 'N') {
			return word[:i-1], word[i-1:]
		}
	}
	return word, ""
}

func isWord(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
