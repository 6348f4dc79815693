package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tmux_read/pkg/config"
)

func TestInitCreatesLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "logs", "tmux_read.log")

	cfg := config.Default()
	cfg.LogFile = logPath
	cfg.LogFormat = "json"
	cfg.LogLevel = "info"

	logger, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	logger.Info("hello", slog.String("component", "test"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Expected log file to have content")
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("Expected log to contain message, got: %s", string(data))
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Fatalf("Expected JSON attributes, got: %s", string(data))
	}
}

func TestInitTextFormat(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "tmux_read.log")

	cfg := config.Default()
	cfg.LogFile = logPath
	cfg.LogFormat = "text"

	logger, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	logger.Info("boundary found", slog.Int("boundary", 3))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "boundary=3") {
		t.Fatalf("Expected text attributes, got: %s", string(data))
	}
}

func TestInitWithoutLogFileDiscards(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "debug"

	logger, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if logger == nil {
		t.Fatal("Expected a logger")
	}

	// Must not panic or write anywhere visible.
	logger.Debug("discarded")
}

func TestInitRespectsLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "tmux_read.log")

	cfg := config.Default()
	cfg.LogFile = logPath
	cfg.LogLevel = "warn"

	logger, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Expected info to be disabled at warn level")
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Expected warn to be enabled")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}

	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
