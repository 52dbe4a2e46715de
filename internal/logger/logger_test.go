package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"warn logs at info level", "info", "warn", true},
		{"info doesn't log at error level", "error", "info", false},
		{"error always logs", "debug", "error", true},
		{"unknown config level falls back to info", "loud", "debug", false},
		{"uppercase config level", "DEBUG", "debug", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			result := log.shouldLog(tt.logLevel)
			if result != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", result, tt.shouldLog)
			}
		})
	}
}

func TestWriterOutput(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	log.Debug(ctx, "hidden %d", 1)
	log.Info(ctx, "summarized %s", "talk.txt")
	log.Error(ctx, "failed: %v", "boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message written at info level")
	}
	if !strings.Contains(out, "[INFO] summarized talk.txt") {
		t.Errorf("missing info line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] failed: boom") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestRunIDPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	ctx := WithRunID(context.Background(), "3f2a")
	if got := RunID(ctx); got != "3f2a" {
		t.Fatalf("RunID() = %q, want 3f2a", got)
	}
	log.Info(ctx, "summarizing %d transcript(s)", 2)
	log.Debug(context.Background(), "untagged")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.Contains(lines[0], "[INFO] run=3f2a summarizing 2 transcript(s)") {
		t.Errorf("run id missing from %q", lines[0])
	}
	if strings.Contains(lines[1], "run=") || !strings.Contains(lines[1], "[DEBUG] untagged") {
		t.Errorf("unexpected untagged line %q", lines[1])
	}
	if RunID(context.Background()) != "" {
		t.Error("RunID() of a bare context should be empty")
	}
}

func TestDiscard(t *testing.T) {
	ctx := context.Background()
	log := NewDiscard()

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
}
