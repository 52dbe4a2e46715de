package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tsum/internal/logger"
	"tsum/internal/transcript"
)

// EventHandler processes one transcript file.
type EventHandler func(ctx context.Context, path string) error

// Watcher monitors a directory and hands new or rewritten transcripts to a handler.
type Watcher struct {
	inputDir  string
	handler   EventHandler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	settle    time.Duration
	semaphore chan struct{}
	wg        sync.WaitGroup

	mu      sync.Mutex
	pending map[string]*pendingFile
}

// Config configures a Watcher.
type Config struct {
	InputDir      string
	MaxConcurrent int
	Settle        time.Duration
}

// New creates the input directory if needed and starts watching it.
func New(cfg Config, handler EventHandler, log logger.Logger) (*Watcher, error) {
	if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create input dir: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(cfg.InputDir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", cfg.InputDir, err)
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	return &Watcher{
		inputDir:  cfg.InputDir,
		handler:   handler,
		logger:    log,
		watcher:   fw,
		settle:    cfg.Settle,
		semaphore: make(chan struct{}, cfg.MaxConcurrent),
		pending:   make(map[string]*pendingFile),
	}, nil
}

// Start blocks until ctx is cancelled, then waits for in-flight handlers.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for transcripts (max concurrent: %d)", w.inputDir, cap(w.semaphore))

	for {
		select {
		case <-ctx.Done():
			w.stopPending()
			w.logger.Info(ctx, "Waiting for ongoing summaries to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !transcript.Supported(event.Name) || IsSummaryFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring %s", event.Name)
				continue
			}
			w.schedule(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

type pendingFile struct {
	timer *time.Timer
}

// schedule debounces bursts of events for the same file: the handler runs
// once the file has been quiet for the settle duration.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.pending[path]; ok && p.timer.Stop() {
		p.timer.Reset(w.settle)
		return
	}
	p := &pendingFile{}
	w.wg.Add(1)
	p.timer = time.AfterFunc(w.settle, func() { w.fire(ctx, path, p) })
	w.pending[path] = p
}

func (w *Watcher) fire(ctx context.Context, path string, p *pendingFile) {
	defer w.wg.Done()
	w.mu.Lock()
	if w.pending[path] == p {
		delete(w.pending, path)
	}
	w.mu.Unlock()

	// Acquire semaphore slot (blocks if max concurrent reached)
	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		return
	}
	defer func() { <-w.semaphore }()

	w.logger.Info(ctx, "Transcript detected: %s", path)
	if err := w.handler(ctx, path); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", path, err)
	}
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, p := range w.pending {
		if p.timer.Stop() {
			w.wg.Done()
		}
		delete(w.pending, path)
	}
}

// Stop closes the file watcher
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

const summarySuffix = ".summary.txt"

// IsSummaryFile reports whether path is an output written by this package.
func IsSummaryFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), summarySuffix)
}

// SummaryPath returns where the summary of input is written inside outputDir.
func SummaryPath(outputDir, input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outputDir, base+summarySuffix)
}
