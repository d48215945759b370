package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"markmymedia/internal/logging"
	"markmymedia/internal/services"
)

func TestNewConsoleLoggerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("marked", "output", "clip_marked.mp4")
	line := buf.String()
	if !strings.Contains(line, "marked") || !strings.Contains(line, "output=clip_marked.mp4") {
		t.Fatalf("unexpected log line: %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Fatalf("level filtering broken: %q", out)
	}
}

func TestWithContextAddsFileAndModality(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := services.WithFile(context.Background(), "clip.mp4")
	ctx = services.WithModality(ctx, "video")
	logging.WithContext(ctx, logger).Info("processing")

	out := buf.String()
	if !strings.Contains(out, "file=clip.mp4") || !strings.Contains(out, "modality=video") {
		t.Fatalf("context fields missing: %q", out)
	}
}
