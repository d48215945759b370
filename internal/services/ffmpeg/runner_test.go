package ffmpeg_test

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"markmymedia/internal/services/ffmpeg"
)

func TestRunnerCapturesStderrOnFailure(t *testing.T) {
	runner := ffmpeg.NewRunner()
	err := runner.Run(context.Background(), "sh", []string{"-c", "echo boom >&2; exit 3"})
	if err == nil {
		t.Fatal("expected failure")
	}
	var cmdErr *ffmpeg.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cmdErr.Output != "boom" {
		t.Fatalf("captured output = %q", cmdErr.Output)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Fatalf("expected exit status 3, got %v", err)
	}
}

func TestRunnerSuccess(t *testing.T) {
	runner := ffmpeg.NewRunner()
	if err := runner.Run(context.Background(), "sh", []string{"-c", "exit 0"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunnerMissingBinary(t *testing.T) {
	runner := ffmpeg.NewRunner()
	err := runner.Run(context.Background(), "definitely-not-a-real-binary-9e1c", nil)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !ffmpeg.IsNotFound(err) {
		t.Fatalf("expected not-found classification, got %v", err)
	}
}

func TestCommandErrorQuotesSpacedArgs(t *testing.T) {
	cmdErr := &ffmpeg.CommandError{
		Binary: "ffmpeg",
		Args:   []string{"-i", "my file.mp4"},
		Err:    errors.New("exit status 1"),
	}
	if got := cmdErr.Command(); !strings.Contains(got, "'my file.mp4'") {
		t.Fatalf("Command() = %q", got)
	}
}
