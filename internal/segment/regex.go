package segment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"tsum/internal/domain"
)

// RegexSegmenter splits text on sentence-final punctuation followed by
// whitespace. Known abbreviations and single-letter initials do not end a
// sentence, and trailing text without a terminator forms the last sentence.
type RegexSegmenter struct {
	boundary      *regexp.Regexp
	abbreviations map[string]struct{}
}

func NewRegexSegmenter() *RegexSegmenter {
	abbr := make(map[string]struct{}, len(defaultAbbreviations))
	for _, a := range defaultAbbreviations {
		abbr[a] = struct{}{}
	}
	return &RegexSegmenter{
		boundary:      regexp.MustCompile(`[.!?]+["'”’)\]]*\s+`),
		abbreviations: abbr,
	}
}

func (s *RegexSegmenter) Name() string { return "regex" }

func (s *RegexSegmenter) Sentences(text string) []domain.Sentence {
	var sentences []domain.Sentence
	start := 0
	for _, loc := range s.boundary.FindAllStringIndex(text, -1) {
		if s.continuesAfter(text[start:loc[0]], text[loc[0]:loc[1]]) {
			continue
		}
		sentences = appendSpan(sentences, text, start, loc[1])
		start = loc[1]
	}
	return appendSpan(sentences, text, start, len(text))
}

// continuesAfter reports whether a single period after the last word of
// head is an abbreviation or initial rather than a sentence end.
func (s *RegexSegmenter) continuesAfter(head, terminator string) bool {
	if strings.TrimRightFunc(terminator, unicode.IsSpace) != "." {
		return false
	}
	word := lastWord(head)
	if word == "" {
		return false
	}
	if utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		return unicode.IsUpper(r)
	}
	_, ok := s.abbreviations[strings.ToLower(word)]
	return ok
}

func lastWord(head string) string {
	i := len(head)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(head[:i])
		if !unicode.IsLetter(r) && r != '.' {
			break
		}
		i -= size
	}
	return strings.Trim(head[i:], ".")
}

// appendSpan trims text[start:end] and appends it as the next sentence.
func appendSpan(sentences []domain.Sentence, text string, start, end int) []domain.Sentence {
	span := text[start:end]
	trimmed := strings.TrimSpace(span)
	if trimmed == "" {
		return sentences
	}
	offset := start + strings.Index(span, trimmed)
	return append(sentences, domain.Sentence{
		Index: len(sentences),
		Text:  trimmed,
		Start: offset,
		End:   offset + len(trimmed),
	})
}

var defaultAbbreviations = []string{
	"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "mt", "vs", "etc", "e.g", "i.e",
	"approx", "inc", "ltd", "co", "corp", "dept", "est", "fig", "vol", "jan", "feb",
	"mar", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec", "u.s", "u.k",
	"a.m", "p.m", "ph.d",
}
