package domain

// Document represents a single transcript loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Sentence is a contiguous span of a document in segmentation order.
// Start and End are byte offsets into the source text.
type Sentence struct {
	Index int
	Text  string
	Start int
	End   int
}

// Token is a single word-like unit with its surface form and normalized forms.
type Token struct {
	Text string
	Norm string
	Stem string
}

// Key returns the form used for frequency counting and scoring.
func (t Token) Key() string {
	if t.Stem != "" {
		return t.Stem
	}
	return t.Norm
}

// Segmenter splits text into ordered, non-overlapping sentences.
type Segmenter interface {
	Name() string
	Sentences(text string) []Sentence
}

// Tokenizer splits text into ordered word tokens.
type Tokenizer interface {
	Tokens(text string) []Token
}

// Summarizer selects the most important sentences of a text.
// ratio is the fraction of sentences to keep, in (0,1].
type Summarizer interface {
	Summarize(text string, ratio float64) ([]Sentence, error)
}
