package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tsum/internal/config"
	"tsum/internal/domain"
	"tsum/internal/format"
	"tsum/internal/service"
	"tsum/internal/summarizer"
)

var explain bool

var summarizeCmd = &cobra.Command{
	Use:   "summarize [files...]",
	Short: "Summarize transcripts",
	Long: `Summarize one or more transcript files (.txt, .srt, caption .json).
Glob patterns are expanded. With no arguments the transcript is read from stdin.`,
	Example: `  tsum summarize talk.txt
  tsum summarize --ratio 0.2 --format json captions/*.srt
  cat transcript.txt | tsum summarize --no-timestamps`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := service.NewFromConfig(cfg, newLogger(cfg))
		if err != nil {
			return err
		}
		return runSummarize(cmd.Context(), svc, cfg, args, explain, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	summarizeCmd.Flags().String("format", "", "output format: text or json")
	summarizeCmd.Flags().BoolVar(&explain, "explain", false, "print keyword weights and sentence scores")
	_ = viper.BindPFlag("format", summarizeCmd.Flags().Lookup("format"))
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(ctx context.Context, svc *service.SummaryService, cfg *config.AppConfig, args []string, explain bool, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	annotator := format.NewAnnotator(cfg.Output.Timestamps, cfg.Output.TimeLayout)
	ratio := cfg.Summarizer.Ratio

	var batch *service.Batch
	if len(args) == 0 {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		doc := domain.Document{ID: "stdin", Content: string(data)}
		sentences, err := svc.SummarizeText(ctx, doc.Content, ratio)
		if err != nil {
			return err
		}
		batch = &service.Batch{
			RunID:   uuid.NewString(),
			Ratio:   ratio,
			Results: []service.DocumentResult{{Document: doc, Sentences: sentences}},
		}
	} else {
		var err error
		batch, err = svc.SummarizeFiles(ctx, args, ratio)
		if err != nil {
			return err
		}
	}

	if cfg.Output.Format == "json" {
		if err := writeJSON(out, annotator, batch); err != nil {
			return err
		}
	} else {
		writeText(out, annotator, batch)
	}

	if explain {
		for _, r := range batch.Results {
			if r.Err != nil {
				continue
			}
			a, err := svc.Analyze(ctx, r.Document.Content, ratio)
			if err != nil {
				return err
			}
			writeExplanation(out, r.Document, a)
		}
	}

	if failed := batch.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d transcript(s) could not be summarized", failed, len(batch.Results))
	}
	return nil
}

func writeText(out io.Writer, annotator format.Annotator, batch *service.Batch) {
	multi := len(batch.Results) > 1
	for i, r := range batch.Results {
		if multi {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s ==\n", r.Document.Path)
		}
		if r.Err != nil {
			fmt.Fprintf(out, "error: %v\n", r.Err)
			continue
		}
		for _, line := range annotator.Lines(r.Sentences) {
			fmt.Fprintln(out, line)
		}
	}
}

func writeJSON(out io.Writer, annotator format.Annotator, batch *service.Batch) error {
	report := format.Report{RunID: batch.RunID}
	for _, r := range batch.Results {
		report.Documents = append(report.Documents, annotator.NewDocumentReport(r.Document, batch.Ratio, r.Sentences, r.Err))
	}
	data, err := format.JSON(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func writeExplanation(out io.Writer, doc domain.Document, a *summarizer.Analysis) {
	name := doc.Path
	if name == "" {
		name = doc.ID
	}
	fmt.Fprintf(out, "\n-- %s: %d sentence(s), %d kept --\n", name, len(a.Sentences), len(a.Selected))
	fmt.Fprint(out, "keywords:")
	for _, w := range a.Table.Top(10) {
		fmt.Fprintf(out, " %s(%.2f)", w.Word, w.Weight)
	}
	fmt.Fprintln(out)

	selected := make(map[int]bool, len(a.Selected))
	for _, s := range a.Selected {
		selected[s.Index] = true
	}
	for _, sent := range a.Sentences {
		mark := " "
		if selected[sent.Index] {
			mark = "*"
		}
		fmt.Fprintf(out, "%s #%-3d %6.3f  %s\n", mark, sent.Index, a.Scores[sent.Index], sent.Text)
	}
}
