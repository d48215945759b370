package main

import (
	"context"
	"strings"
	"testing"

	"markmymedia/internal/history"
	"markmymedia/internal/testsupport"
)

func TestHistoryCommandShowsRecentEntries(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.History.Enabled = true
	writeTestConfig(t, env.configPath, env.cfg)

	// Seed and release the store before the command opens the same
	// database; Open holds the lock until Close.
	store := testsupport.MustOpenStore(t, env.cfg.History.Path)
	runID, err := store.BeginRun(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Record(context.Background(), history.Entry{
		RunID:    runID,
		Modality: "video",
		Input:    "/media/clip.mp4",
		Output:   "/out/clip_marked.mp4",
		OK:       true,
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(context.Background(), history.Entry{
		RunID:    runID,
		Modality: "photo",
		Input:    "/media/broken.png",
		OK:       false,
		Error:    "unsupported file type",
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "--config", env.configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	for _, want := range []string{"clip.mp4", "broken.png", "failed", "unsupported file type"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestHistoryCommandDisabled(t *testing.T) {
	env := setupCLITestEnv(t)

	_, err := runCommand(t, "--config", env.configPath, "history")
	if err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Fatalf("err = %v", err)
	}
}

func TestHistoryCommandEmptyStore(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.History.Enabled = true
	writeTestConfig(t, env.configPath, env.cfg)

	out, err := runCommand(t, "--config", env.configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No history recorded yet") {
		t.Fatalf("output = %q", out)
	}
}
