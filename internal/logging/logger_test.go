package logging_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plagcheck/internal/config"
	"plagcheck/internal/logging"
)

func newFileLogger(t *testing.T, format, level string) (*slog.Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "logs", "plagcheck.log")
	logger, err := logging.New(logging.Options{
		Format:      format,
		Level:       level,
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	if _, err := logging.NewFromConfig(nil); err != nil {
		t.Fatalf("NewFromConfig(nil) returned error: %v", err)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logger, path := newFileLogger(t, "console", "info")
	logger.Info("message without caller", slog.Float64("score", 0.25))

	content := readLog(t, path)
	if strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
	if !strings.Contains(content, "INFO message without caller score=0.25") {
		t.Fatalf("unexpected console line %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logger, path := newFileLogger(t, "console", "debug")
	logger.Debug("message with caller")

	if content := readLog(t, path); !strings.Contains(content, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerComponentAndGroups(t *testing.T) {
	logger, path := newFileLogger(t, "console", "info")
	logger = logging.NewComponentLogger(logger, "compare")
	logger.WithGroup("doc").Info("read", slog.String("path", "a b.txt"))

	content := readLog(t, path)
	if !strings.Contains(content, "compare: read") {
		t.Fatalf("expected component prefix, got %q", content)
	}
	if !strings.Contains(content, `doc.path="a b.txt"`) {
		t.Fatalf("expected grouped, quoted attribute, got %q", content)
	}
}

func TestConsoleLoggerFiltersLevel(t *testing.T) {
	logger, path := newFileLogger(t, "console", "warn")
	logger.Info("hidden")
	logger.Warn("shown")

	content := readLog(t, path)
	if strings.Contains(content, "hidden") || !strings.Contains(content, "WARN shown") {
		t.Fatalf("unexpected level filtering: %q", content)
	}
}

func TestJSONLogger(t *testing.T) {
	logger, path := newFileLogger(t, "json", "info")
	ctx := logging.WithCorrelationID(context.Background(), "run-1")
	logging.WithContext(ctx, logger).Info("documents compared", slog.Float64("score", 0.5))

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, path))), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["level"] != "info" || entry["msg"] != "documents compared" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry[logging.FieldCorrelationID] != "run-1" {
		t.Fatalf("missing correlation id: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key: %v", entry)
	}
}

func TestCorrelationIDGenerated(t *testing.T) {
	ctx := logging.WithCorrelationID(context.Background(), "")
	id, ok := logging.CorrelationID(ctx)
	if !ok || len(id) != 36 {
		t.Fatalf("expected generated UUID, got %q", id)
	}
	if _, ok := logging.CorrelationID(context.Background()); ok {
		t.Fatal("expected no id on bare context")
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should be disabled")
	}
	logging.ErrorWithContext(logger, "ignored", "test", logging.Error(nil))
	logging.ErrorWithContext(nil, "ignored", "test")
	if logging.WithContext(context.Background(), nil) == nil {
		t.Fatal("expected fallback logger")
	}
}
