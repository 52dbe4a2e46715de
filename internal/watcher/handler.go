package watcher

import (
	"context"
	"fmt"
	"os"

	"tsum/internal/domain"
	"tsum/internal/format"
	"tsum/internal/transcript"
)

// TextSummarizer is the service surface used by the summary handler.
type TextSummarizer interface {
	SummarizeText(ctx context.Context, text string, ratio float64) ([]domain.Sentence, error)
}

// SummaryHandler returns a handler that summarizes a transcript and writes
// the rendered lines next to it in outputDir.
func SummaryHandler(s TextSummarizer, annotator format.Annotator, outputDir string, ratio float64) EventHandler {
	return func(ctx context.Context, path string) error {
		text, err := transcript.Load(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		sentences, err := s.SummarizeText(ctx, text, ratio)
		if err != nil {
			return fmt.Errorf("summarize %s: %w", path, err)
		}
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		out := SummaryPath(outputDir, path)
		body := annotator.Render(sentences)
		if body != "" {
			body += "\n"
		}
		if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		return nil
	}
}
