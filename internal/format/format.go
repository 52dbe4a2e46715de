// Package format renders selected sentences as output lines.
package format

import (
	"encoding/json"
	"strings"
	"time"

	"tsum/internal/domain"
)

// DefaultLayout matches the [HH:MM:SS] prefix of generated summaries.
const DefaultLayout = "15:04:05"

// Annotator turns sentences into lines, optionally prefixed with the time
// the summary was generated.
type Annotator struct {
	Clock      func() time.Time
	Layout     string
	Timestamps bool
}

func NewAnnotator(timestamps bool, layout string) Annotator {
	if layout == "" {
		layout = DefaultLayout
	}
	return Annotator{Clock: time.Now, Layout: layout, Timestamps: timestamps}
}

// Lines renders one line per sentence. The clock is read once so every line
// of a summary carries the same stamp.
func (a Annotator) Lines(sentences []domain.Sentence) []string {
	lines := make([]string, len(sentences))
	prefix := ""
	if a.Timestamps {
		prefix = "[" + a.now().Format(a.layout()) + "] "
	}
	for i, s := range sentences {
		lines[i] = prefix + s.Text
	}
	return lines
}

// Render joins Lines with newlines.
func (a Annotator) Render(sentences []domain.Sentence) string {
	return strings.Join(a.Lines(sentences), "\n")
}

func (a Annotator) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock()
}

func (a Annotator) layout() string {
	if a.Layout == "" {
		return DefaultLayout
	}
	return a.Layout
}

// Report is the JSON shape of a summarization run.
type Report struct {
	RunID     string           `json:"run_id"`
	Documents []DocumentReport `json:"documents"`
}

// DocumentReport describes the summary of one document.
type DocumentReport struct {
	ID          string           `json:"id"`
	Path        string           `json:"path,omitempty"`
	Ratio       float64          `json:"ratio"`
	GeneratedAt time.Time        `json:"generated_at"`
	Sentences   []SentenceReport `json:"sentences"`
	Error       string           `json:"error,omitempty"`
}

// SentenceReport is one selected sentence and its original position.
type SentenceReport struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// NewDocumentReport builds the report entry for a summary, stamped with the
// annotator's clock.
func (a Annotator) NewDocumentReport(doc domain.Document, ratio float64, sentences []domain.Sentence, err error) DocumentReport {
	r := DocumentReport{
		ID:          doc.ID,
		Path:        doc.Path,
		Ratio:       ratio,
		GeneratedAt: a.now(),
		Sentences:   make([]SentenceReport, 0, len(sentences)),
	}
	for _, s := range sentences {
		r.Sentences = append(r.Sentences, SentenceReport{Index: s.Index, Text: s.Text})
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// JSON renders the report with indentation.
func JSON(r Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
