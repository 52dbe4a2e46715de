package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tsum/internal/format"
	"tsum/internal/service"
	"tsum/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui files...",
	Short: "Browse summaries interactively",
	Long:  `Open an interactive viewer over the given transcripts. The ratio can be changed live.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := service.NewFromConfig(cfg, newLogger(cfg))
		if err != nil {
			return err
		}
		docs, err := svc.LoadDocuments(cmd.Context(), args)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			return errors.New("no transcripts to show")
		}
		m := tui.New(svc, docs, cfg.Summarizer.Ratio, format.NewAnnotator(cfg.Output.Timestamps, cfg.Output.TimeLayout))
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
