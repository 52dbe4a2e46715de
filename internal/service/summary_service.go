package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tsum/internal/cache"
	"tsum/internal/domain"
	"tsum/internal/logger"
	"tsum/internal/summarizer"
	"tsum/internal/transcript"
)

// Analyzer is the summarizer surface the service needs.
type Analyzer interface {
	domain.Summarizer
	Analyze(text string, ratio float64) (*summarizer.Analysis, error)
}

// DocumentResult is the outcome of summarizing one file.
type DocumentResult struct {
	Document  domain.Document
	Sentences []domain.Sentence
	Err       error
}

// Batch is the outcome of one SummarizeFiles call, in input order.
type Batch struct {
	RunID   string
	Ratio   float64
	Results []DocumentResult
}

// Failed returns the number of documents that could not be summarized.
func (b *Batch) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// SummaryService loads transcripts and summarizes them, memoizing results.
type SummaryService struct {
	summarizer Analyzer
	cache      cache.Cache
	cacheScope string
	logger     logger.Logger
	workers    int
	summarized atomic.Int64
}

// Options configures a SummaryService. Zero values select no cache, a
// discarding logger and one worker.
type Options struct {
	Cache      cache.Cache
	CacheScope string
	Logger     logger.Logger
	Workers    int
}

func NewSummaryService(s Analyzer, opts Options) *SummaryService {
	if opts.Cache == nil {
		opts.Cache = cache.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDiscard()
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &SummaryService{
		summarizer: s,
		cache:      opts.Cache,
		cacheScope: opts.CacheScope,
		logger:     opts.Logger,
		workers:    opts.Workers,
	}
}

// SummarizeText summarizes one text, serving repeated requests from the cache.
func (s *SummaryService) SummarizeText(ctx context.Context, text string, ratio float64) ([]domain.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := cache.Key(s.cacheScope, ratio, text)
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug(ctx, "cache hit %s", key)
		return cached, nil
	}
	sentences, err := s.summarizer.Summarize(text, ratio)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, sentences)
	s.summarized.Add(1)
	return sentences, nil
}

// Analyze runs the summarizer without caching and returns every intermediate result.
func (s *SummaryService) Analyze(ctx context.Context, text string, ratio float64) (*summarizer.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.summarizer.Analyze(text, ratio)
}

// Summarized reports how many summaries were computed rather than served from cache.
func (s *SummaryService) Summarized() int64 {
	return s.summarized.Load()
}

// LoadDocuments expands glob patterns and loads every supported transcript.
func (s *SummaryService) LoadDocuments(ctx context.Context, patterns []string) ([]domain.Document, error) {
	paths := ExpandPaths(patterns)
	if len(paths) == 0 {
		return nil, errors.New("no transcript files found (.txt, .srt, .json)")
	}
	documents := make([]domain.Document, 0, len(paths))
	for _, p := range paths {
		text, err := transcript.Load(p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		documents = append(documents, domain.Document{ID: hashString(p), Path: p, Content: text})
		s.logger.Debug(ctx, "loaded %s (%d bytes)", p, len(text))
	}
	return documents, nil
}

// SummarizeFiles loads and summarizes every supported transcript matched by
// patterns. A document that fails to load or summarize is reported on its
// result and does not stop the batch.
func (s *SummaryService) SummarizeFiles(ctx context.Context, patterns []string, ratio float64) (*Batch, error) {
	if err := summarizer.ValidateRatio(ratio); err != nil {
		return nil, err
	}
	paths := ExpandPaths(patterns)
	if len(paths) == 0 {
		return nil, errors.New("no transcript files found (.txt, .srt, .json)")
	}

	batch := &Batch{
		RunID:   uuid.NewString(),
		Ratio:   ratio,
		Results: make([]DocumentResult, len(paths)),
	}
	ctx = logger.WithRunID(ctx, batch.RunID)
	s.logger.Info(ctx, "summarizing %d transcript(s) at ratio %.2f", len(paths), ratio)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			batch.Results[i] = s.summarizeFile(gctx, p, ratio)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if failed := batch.Failed(); failed > 0 {
		s.logger.Warn(ctx, "%d of %d transcript(s) failed", failed, len(paths))
	}
	return batch, nil
}

func (s *SummaryService) summarizeFile(ctx context.Context, path string, ratio float64) DocumentResult {
	doc := domain.Document{ID: hashString(path), Path: path}
	text, err := transcript.Load(path)
	if err != nil {
		s.logger.Error(ctx, "Failed to read %s: %v", path, err)
		return DocumentResult{Document: doc, Err: fmt.Errorf("load %s: %w", path, err)}
	}
	doc.Content = text
	sentences, err := s.SummarizeText(ctx, text, ratio)
	if err != nil {
		s.logger.Error(ctx, "Failed to summarize %s: %v", path, err)
		return DocumentResult{Document: doc, Err: fmt.Errorf("summarize %s: %w", path, err)}
	}
	s.logger.Debug(ctx, "summarized %s: %d sentence(s)", path, len(sentences))
	return DocumentResult{Document: doc, Sentences: sentences}
}

// ExpandPaths resolves glob patterns, keeping supported transcript files once
// each in first-seen order.
func ExpandPaths(patterns []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range patterns {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !transcript.Supported(m) {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
