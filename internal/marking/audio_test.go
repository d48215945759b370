package marking

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMarkAudioBuildsSingleInvocation(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(input, []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{}
	marker := NewAudioMarker(WithAudioRunner(runner))

	output, err := marker.Mark(context.Background(), Request{InputPath: input})
	if err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if output != filepath.Join(dir, "song.mp4") {
		t.Fatalf("output = %s", output)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(runner.calls))
	}
	call := runner.calls[0]
	for _, want := range []string{"libx264", "-crf\x0020", "yuv420p", "-c:a\x00copy", "-map\x000:v:0", "-map\x001:a:0", "s=1280x256"} {
		if !argsContain(call, want) {
			t.Errorf("args missing %q: %v", want, call)
		}
	}
}

func TestMarkAudioOutputMustBeMP4(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "song.flac")
	if err := os.WriteFile(input, []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	marker := NewAudioMarker(WithAudioRunner(&fakeRunner{}))

	_, err := marker.Mark(context.Background(), Request{InputPath: input, OutputPath: filepath.Join(dir, "out.mkv")})
	if !errors.Is(err, ErrInvalidOutputPath) {
		t.Fatalf("err = %v", err)
	}
}

func TestMarkAudioRejectsNonAudioInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(input, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	marker := NewAudioMarker(WithAudioRunner(&fakeRunner{}))

	_, err := marker.Mark(context.Background(), Request{InputPath: input})
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("err = %v", err)
	}
}

func TestMarkAudioProcessFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "voice.m4a")
	if err := os.WriteFile(input, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	marker := NewAudioMarker(WithAudioRunner(&fakeRunner{failAt: 1}))

	_, err := marker.Mark(context.Background(), Request{InputPath: input})
	if !errors.Is(err, ErrProcessFailure) {
		t.Fatalf("err = %v", err)
	}
}
