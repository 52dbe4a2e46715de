package summarizer

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"tsum/internal/domain"
	"tsum/internal/lexicon"
	"tsum/internal/segment"
)

var (
	// ErrInvalidRatio is returned when the compression ratio is outside (0,1].
	ErrInvalidRatio = errors.New("ratio must be in (0,1]")
	// ErrNoScorableContent is returned when every token is a stopword or punctuation.
	ErrNoScorableContent = errors.New("cannot summarize: no scorable words")
)

// Order controls how selected sentences are emitted.
type Order int

const (
	// OrderDocument emits selected sentences in their original order.
	OrderDocument Order = iota
	// OrderScore emits selected sentences from highest to lowest score.
	OrderScore
)

// ParseOrder maps a config value to an Order. An empty value means document order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "document", "":
		return OrderDocument, nil
	case "score":
		return OrderScore, nil
	default:
		return OrderDocument, fmt.Errorf("unknown order: %s", s)
	}
}

func (o Order) String() string {
	if o == OrderScore {
		return "score"
	}
	return "document"
}

// FrequencySummarizer ranks sentences by the normalized frequency of their
// significant words.
type FrequencySummarizer struct {
	pipeline segment.Pipeline
	lexicon  lexicon.Lexicon
	order    Order
}

// NewFrequencySummarizer creates a frequency-based sentence ranker.
func NewFrequencySummarizer(pipeline segment.Pipeline, lex lexicon.Lexicon, order Order) *FrequencySummarizer {
	return &FrequencySummarizer{pipeline: pipeline, lexicon: lex, order: order}
}

// Analysis holds the intermediate results of one summarization.
type Analysis struct {
	Sentences []domain.Sentence
	Table     FrequencyTable
	// Scores maps sentence index to score. Sentences without any table word
	// have no entry.
	Scores   map[int]float64
	Selected []domain.Sentence
	// Tokenizer produced the table keys. Callers matching surface words
	// against Table must key them through it.
	Tokenizer domain.Tokenizer
}

// Summarize returns the selected sentences for text.
func (s *FrequencySummarizer) Summarize(text string, ratio float64) ([]domain.Sentence, error) {
	a, err := s.Analyze(text, ratio)
	if err != nil {
		return nil, err
	}
	return a.Selected, nil
}

// Analyze runs the full algorithm and keeps every intermediate result.
func (s *FrequencySummarizer) Analyze(text string, ratio float64) (*Analysis, error) {
	if err := ValidateRatio(ratio); err != nil {
		return nil, err
	}
	sentences, tokens := s.pipeline.Segment(text)
	if len(sentences) == 0 {
		return &Analysis{Table: FrequencyTable{}, Scores: map[int]float64{}, Tokenizer: s.pipeline.Tokenizer}, nil
	}
	table, err := BuildFrequencyTable(tokens, s.lexicon)
	if err != nil {
		return nil, err
	}
	scores := s.score(sentences, table)
	return &Analysis{
		Sentences: sentences,
		Table:     table,
		Scores:    scores,
		Selected:  selectTop(sentences, scores, TargetCount(len(sentences), ratio), s.order),
		Tokenizer: s.pipeline.Tokenizer,
	}, nil
}

// score re-tokenizes each sentence and sums the weights of its words.
func (s *FrequencySummarizer) score(sentences []domain.Sentence, table FrequencyTable) map[int]float64 {
	scores := make(map[int]float64)
	for _, sent := range sentences {
		for _, tok := range s.pipeline.Tokenizer.Tokens(sent.Text) {
			if w, ok := table[tok.Key()]; ok {
				scores[sent.Index] += w
			}
		}
	}
	return scores
}

// ValidateRatio rejects ratios outside (0,1].
func ValidateRatio(ratio float64) error {
	if math.IsNaN(ratio) || ratio <= 0 || ratio > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	return nil
}

// TargetCount returns floor(n * ratio).
func TargetCount(n int, ratio float64) int {
	return int(math.Floor(float64(n) * ratio))
}

// selectTop picks k sentences by descending score. The sort is stable over
// document order, so equal scores favor the earlier sentence and unscored
// sentences only fill remaining slots.
func selectTop(sentences []domain.Sentence, scores map[int]float64, k int, order Order) []domain.Sentence {
	if k <= 0 {
		return nil
	}
	if k > len(sentences) {
		k = len(sentences)
	}
	ranked := make([]domain.Sentence, len(sentences))
	copy(ranked, sentences)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].Index] > scores[ranked[j].Index]
	})
	selected := ranked[:k]
	if order == OrderDocument {
		sort.Slice(selected, func(i, j int) bool { return selected[i].Index < selected[j].Index })
	}
	return selected
}
