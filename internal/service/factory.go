package service

import (
	"fmt"
	"os"
	"strings"
	"time"

	"tsum/internal/cache"
	"tsum/internal/config"
	"tsum/internal/domain"
	"tsum/internal/lexicon"
	"tsum/internal/logger"
	"tsum/internal/segment"
	"tsum/internal/summarizer"
)

// NewFromConfig assembles the summarizer and service described by cfg.
func NewFromConfig(cfg *config.AppConfig, log logger.Logger) (*SummaryService, error) {
	sum, err := NewSummarizer(cfg)
	if err != nil {
		return nil, err
	}
	var c cache.Cache = cache.Nop{}
	if cfg.Cache.Enabled {
		ttl := time.Duration(cfg.Cache.TTLSecs) * time.Second
		c = cache.NewMemoryCache(ttl, 2*ttl)
	}
	return NewSummaryService(sum, Options{
		Cache:      c,
		CacheScope: cacheScope(cfg),
		Logger:     log,
		Workers:    cfg.Performance.Workers,
	}), nil
}

// NewSummarizer builds the frequency summarizer for cfg.
func NewSummarizer(cfg *config.AppConfig) (*summarizer.FrequencySummarizer, error) {
	seg, err := segment.NewSegmenter(cfg.Segmenter.Type)
	if err != nil {
		return nil, err
	}
	var tok domain.Tokenizer = segment.NewWordTokenizer()
	if cfg.Segmenter.Stem {
		tok = segment.NewStemmingTokenizer(cfg.Segmenter.StemLanguage)
	}
	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return nil, err
	}
	order, err := summarizer.ParseOrder(cfg.Summarizer.Order)
	if err != nil {
		return nil, err
	}
	return summarizer.NewFrequencySummarizer(segment.Pipeline{Segmenter: seg, Tokenizer: tok}, lex, order), nil
}

func loadLexicon(cfg config.LexiconConfig) (lexicon.Lexicon, error) {
	extra := append([]string(nil), cfg.ExtraStopwords...)
	if cfg.StopwordsFile != "" {
		f, err := os.Open(cfg.StopwordsFile)
		if err != nil {
			return lexicon.Lexicon{}, fmt.Errorf("open stopwords file: %w", err)
		}
		defer f.Close()
		words, err := lexicon.ReadStopwords(f)
		if err != nil {
			return lexicon.Lexicon{}, err
		}
		extra = append(extra, words...)
	}
	if len(extra) == 0 {
		return lexicon.English(), nil
	}
	return lexicon.English().With(extra...), nil
}

func cacheScope(cfg *config.AppConfig) string {
	return strings.Join([]string{
		cfg.Segmenter.Type,
		fmt.Sprint(cfg.Segmenter.Stem),
		cfg.Segmenter.StemLanguage,
		cfg.Summarizer.Order,
		strings.Join(cfg.Lexicon.ExtraStopwords, ","),
		cfg.Lexicon.StopwordsFile,
	}, "|")
}
