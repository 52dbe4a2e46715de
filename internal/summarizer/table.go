package summarizer

import (
	"sort"

	"tsum/internal/domain"
	"tsum/internal/lexicon"
)

// FrequencyTable maps a word key to its weight in [0,1]. The most frequent
// word has weight 1.
type FrequencyTable map[string]float64

// BuildFrequencyTable counts scorable tokens and normalizes each count by
// the largest one.
func BuildFrequencyTable(tokens []domain.Token, lex lexicon.Lexicon) (FrequencyTable, error) {
	counts := make(map[string]int)
	maxCount := 0
	for _, tok := range tokens {
		if !lex.Scorable(tok.Text) {
			continue
		}
		key := tok.Key()
		counts[key]++
		if counts[key] > maxCount {
			maxCount = counts[key]
		}
	}
	if maxCount == 0 {
		return nil, ErrNoScorableContent
	}
	table := make(FrequencyTable, len(counts))
	for word, c := range counts {
		table[word] = float64(c) / float64(maxCount)
	}
	return table, nil
}

// WeightedWord is a table entry.
type WeightedWord struct {
	Word   string
	Weight float64
}

// Top returns the n heaviest words, ties broken alphabetically.
func (t FrequencyTable) Top(n int) []WeightedWord {
	words := make([]WeightedWord, 0, len(t))
	for w, weight := range t {
		words = append(words, WeightedWord{Word: w, Weight: weight})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Weight != words[j].Weight {
			return words[i].Weight > words[j].Weight
		}
		return words[i].Word < words[j].Word
	})
	if n >= 0 && n < len(words) {
		words = words[:n]
	}
	return words
}
