package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SummarizerConfig controls sentence selection.
type SummarizerConfig struct {
	Ratio float64 `yaml:"ratio"`
	Order string  `yaml:"order"`
}

// SegmenterConfig selects the sentence segmenter and tokenizer options.
type SegmenterConfig struct {
	Type         string `yaml:"type"`
	Stem         bool   `yaml:"stem"`
	StemLanguage string `yaml:"stem_language"`
}

// LexiconConfig extends the built-in English stopword list.
type LexiconConfig struct {
	ExtraStopwords []string `yaml:"extra_stopwords,omitempty"`
	StopwordsFile  string   `yaml:"stopwords_file,omitempty"`
}

// OutputConfig controls how summaries are rendered.
type OutputConfig struct {
	Format     string `yaml:"format"`
	Timestamps bool   `yaml:"timestamps"`
	TimeLayout string `yaml:"time_layout"`
}

// CacheConfig configures the in-memory summary cache.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	TTLSecs int  `yaml:"ttl_secs"`
}

// WatchConfig configures the directory watch mode.
type WatchConfig struct {
	Input         string `yaml:"input"`
	Output        string `yaml:"output"`
	MaxConcurrent int    `yaml:"max_concurrent"`
	SettleMillis  int    `yaml:"settle_ms"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	Workers int `yaml:"workers"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Segmenter   SegmenterConfig   `yaml:"segmenter"`
	Lexicon     LexiconConfig     `yaml:"lexicon"`
	Output      OutputConfig      `yaml:"output"`
	Cache       CacheConfig       `yaml:"cache"`
	Watch       WatchConfig       `yaml:"watch"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./tsum.yaml first, then ~/.config/tsum/config.yaml.
// If neither exists, it writes defaults to ~/.config/tsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "tsum.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := DefaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func DefaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tsum", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Summarizer: SummarizerConfig{Ratio: 0.3, Order: "document"},
		Segmenter:  SegmenterConfig{Type: "punkt", StemLanguage: "english"},
		Output:     OutputConfig{Format: "text", Timestamps: true, TimeLayout: "15:04:05"},
		Cache:      CacheConfig{Enabled: true, TTLSecs: 600},
		Watch: WatchConfig{
			Input:         "data/inbox",
			Output:        "data/summaries",
			MaxConcurrent: 2,
			SettleMillis:  500,
		},
		Logging:     LoggingConfig{Level: "info"},
		Performance: PerformanceConfig{Workers: 4},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summarizer.Order == "" {
		cfg.Summarizer.Order = "document"
	}
	if cfg.Segmenter.Type == "" {
		cfg.Segmenter.Type = "punkt"
	}
	if cfg.Segmenter.StemLanguage == "" {
		cfg.Segmenter.StemLanguage = "english"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Output.TimeLayout == "" {
		cfg.Output.TimeLayout = "15:04:05"
	}
	if cfg.Cache.TTLSecs == 0 {
		cfg.Cache.TTLSecs = 600
	}
	if cfg.Watch.MaxConcurrent == 0 {
		cfg.Watch.MaxConcurrent = 2
	}
	if cfg.Watch.SettleMillis == 0 {
		cfg.Watch.SettleMillis = 500
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Performance.Workers == 0 {
		cfg.Performance.Workers = 4
	}
}

// Validate checks values that cannot be defaulted.
func (c *AppConfig) Validate() error {
	if c.Summarizer.Ratio <= 0 || c.Summarizer.Ratio > 1 {
		return fmt.Errorf("summarizer.ratio must be in (0,1], got %v", c.Summarizer.Ratio)
	}
	switch c.Summarizer.Order {
	case "document", "score":
	default:
		return fmt.Errorf("summarizer.order must be document or score, got %q", c.Summarizer.Order)
	}
	switch c.Segmenter.Type {
	case "punkt", "regex":
	default:
		return fmt.Errorf("segmenter.type must be punkt or regex, got %q", c.Segmenter.Type)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	if c.Performance.Workers < 0 {
		return fmt.Errorf("performance.workers must not be negative")
	}
	if c.Watch.MaxConcurrent < 0 {
		return fmt.Errorf("watch.max_concurrent must not be negative")
	}
	return nil
}
