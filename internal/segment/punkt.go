package segment

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"

	"tsum/internal/domain"
)

// PunktSegmenter uses the pretrained English Punkt model, which knows
// common abbreviations, initials and ordinal numbers.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewPunktSegmenter() (*PunktSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &PunktSegmenter{tokenizer: tokenizer}, nil
}

func (s *PunktSegmenter) Name() string { return "punkt" }

func (s *PunktSegmenter) Sentences(text string) []domain.Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []domain.Sentence
	cursor := 0
	for _, sent := range s.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		// Offsets are recovered from the source so spans never overlap.
		start := cursor
		if i := strings.Index(text[cursor:], trimmed); i >= 0 {
			start = cursor + i
		}
		end := start + len(trimmed)
		if end > len(text) {
			end = len(text)
		}
		out = append(out, domain.Sentence{Index: len(out), Text: trimmed, Start: start, End: end})
		cursor = end
	}
	return out
}
