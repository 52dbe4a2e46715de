package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tsum/internal/format"
	"tsum/internal/service"
	"tsum/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Summarize transcripts dropped into a directory",
	Long: `Watch the configured input directory (watch.input) and write a summary for
every new or updated transcript to watch.output/<name>.summary.txt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)
		svc, err := service.NewFromConfig(cfg, log)
		if err != nil {
			return err
		}

		handler := watcher.SummaryHandler(
			svc,
			format.NewAnnotator(cfg.Output.Timestamps, cfg.Output.TimeLayout),
			cfg.Watch.Output,
			cfg.Summarizer.Ratio,
		)
		w, err := watcher.New(watcher.Config{
			InputDir:      cfg.Watch.Input,
			MaxConcurrent: cfg.Watch.MaxConcurrent,
			Settle:        time.Duration(cfg.Watch.SettleMillis) * time.Millisecond,
		}, handler, log)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
