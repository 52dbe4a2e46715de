package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tsum/internal/config"
	"tsum/internal/logger"
)

const version = "tsum v0.3.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tsum",
	Short: "tsum - extractive summaries of transcripts",
	Long: `tsum shortens transcripts by keeping their most important sentences.

Sentences are scored by how often their significant words occur in the whole
transcript and the best ones are printed in their original order.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (TSUM_*)
3. Config file (./tsum.yaml, then ~/.config/tsum/config.yaml)
4. Defaults`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./tsum.yaml or $HOME/.config/tsum/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.Float64P("ratio", "r", 0, "fraction of sentences to keep, in (0,1]")
	flags.String("order", "", "output order: document or score")
	flags.String("segmenter", "", "sentence segmenter: punkt or regex")
	flags.Bool("stem", false, "match words by their Snowball stem")
	flags.Bool("no-timestamps", false, "do not prefix lines with the generation time")

	for _, name := range []string{"verbose", "ratio", "order", "segmenter", "stem", "no-timestamps"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in ENV variables that match TSUM_*
func initConfig() {
	viper.SetEnvPrefix("TSUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the config file and applies flag and env overrides.
func loadConfig() (*config.AppConfig, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, _, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(viper.GetViper(), cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyOverrides(v *viper.Viper, cfg *config.AppConfig) {
	if v.IsSet("ratio") {
		cfg.Summarizer.Ratio = v.GetFloat64("ratio")
	}
	if val := v.GetString("order"); val != "" {
		cfg.Summarizer.Order = val
	}
	if val := v.GetString("segmenter"); val != "" {
		cfg.Segmenter.Type = val
	}
	if v.GetBool("stem") {
		cfg.Segmenter.Stem = true
	}
	if v.GetBool("no-timestamps") {
		cfg.Output.Timestamps = false
	}
	if val := v.GetString("format"); val != "" {
		cfg.Output.Format = val
	}
	if v.GetBool("verbose") {
		cfg.Logging.Level = "debug"
	}
}

func newLogger(cfg *config.AppConfig) logger.Logger {
	return logger.New(cfg.Logging.Level)
}
