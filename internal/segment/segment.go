// Package segment turns raw transcript text into sentences and word tokens.
package segment

import (
	"fmt"

	"tsum/internal/domain"
)

// Pipeline pairs a sentence segmenter with a word tokenizer.
type Pipeline struct {
	Segmenter domain.Segmenter
	Tokenizer domain.Tokenizer
}

// Segment splits text into ordered sentences and, independently, into the
// ordered tokens of the whole text.
func (p Pipeline) Segment(text string) ([]domain.Sentence, []domain.Token) {
	return p.Segmenter.Sentences(text), p.Tokenizer.Tokens(text)
}

// NewSegmenter returns the segmenter registered under name.
// An empty name selects punkt.
func NewSegmenter(name string) (domain.Segmenter, error) {
	switch name {
	case "punkt", "":
		return NewPunktSegmenter()
	case "regex":
		return NewRegexSegmenter(), nil
	default:
		return nil, fmt.Errorf("unknown segmenter: %s", name)
	}
}
