package batch_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"markmymedia/internal/batch"
	"markmymedia/internal/history"
	"markmymedia/internal/marking"
	"markmymedia/internal/media"
)

// fakeMarker records requests and fails inputs listed in failInputs.
type fakeMarker struct {
	mu         sync.Mutex
	requests   []marking.Request
	failInputs map[string]error
}

func (f *fakeMarker) Mark(_ context.Context, req marking.Request) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if err, ok := f.failInputs[req.InputPath]; ok {
		return "", err
	}
	return req.OutputPath, nil
}

func TestRunProcessesAllBucketsInOrder(t *testing.T) {
	photo := &fakeMarker{}
	audio := &fakeMarker{}
	video := &fakeMarker{}
	markers := map[media.Modality]marking.Marker{
		media.ModalityPhoto: photo,
		media.ModalityAudio: audio,
		media.ModalityVideo: video,
	}
	runner := batch.New(2, "/out", false, "Filename: ", markers)

	buckets := map[media.Modality][]string{
		media.ModalityPhoto:   {"/in/a.jpg", "/in/b.png"},
		media.ModalityAudio:   {"/in/c.mp3"},
		media.ModalityVideo:   {"/in/d.mp4"},
		media.ModalityUnknown: {"/in/e.bin"},
	}
	summary, err := runner.Run(context.Background(), buckets)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(summary.Results) != 4 {
		t.Fatalf("results = %d", len(summary.Results))
	}
	if summary.SkippedUnknown != 1 {
		t.Fatalf("skipped = %d", summary.SkippedUnknown)
	}
	if got := summary.CountByModality(media.ModalityPhoto); got != 2 {
		t.Fatalf("photo count = %d", got)
	}
	if len(summary.Timings) != 3 {
		t.Fatalf("timings = %+v", summary.Timings)
	}
	// Stages run photos, audio, videos in that order.
	order := []media.Modality{summary.Timings[0].Modality, summary.Timings[1].Modality, summary.Timings[2].Modality}
	want := []media.Modality{media.ModalityPhoto, media.ModalityAudio, media.ModalityVideo}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("stage order = %v", order)
		}
	}
}

func TestRunDerivesOutputPathsAndOverlay(t *testing.T) {
	audio := &fakeMarker{}
	runner := batch.New(1, "/out", false, "Filename: ", map[media.Modality]marking.Marker{
		media.ModalityAudio: audio,
	})

	if _, err := runner.Run(context.Background(), map[media.Modality][]string{
		media.ModalityAudio: {"/in/song.flac"},
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(audio.requests) != 1 {
		t.Fatalf("requests = %d", len(audio.requests))
	}
	req := audio.requests[0]
	if req.OutputPath != filepath.Join("/out", "song.mp4") {
		t.Fatalf("output = %q", req.OutputPath)
	}
	if req.OverlayText != "Filename: song.flac" {
		t.Fatalf("overlay = %q", req.OverlayText)
	}
}

func TestRunOneFailureDoesNotAbortBatch(t *testing.T) {
	video := &fakeMarker{failInputs: map[string]error{
		"/in/bad.mp4": marking.ErrUnsupportedVideoCodec,
	}}
	runner := batch.New(3, "/out", false, "", map[media.Modality]marking.Marker{
		media.ModalityVideo: video,
	})

	summary, err := runner.Run(context.Background(), map[media.Modality][]string{
		media.ModalityVideo: {"/in/bad.mp4", "/in/good1.mp4", "/in/good2.mp4"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Results) != 3 {
		t.Fatalf("results = %d", len(summary.Results))
	}
	failures := summary.Failures()
	if len(failures) != 1 || !errors.Is(failures[0].Err, marking.ErrUnsupportedVideoCodec) {
		t.Fatalf("failures = %+v", failures)
	}
}

func TestRunRecordsHistory(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	photo := &fakeMarker{failInputs: map[string]error{
		"/in/broken.png": marking.ErrProcessing,
	}}
	runner := batch.New(2, "/out", false, "", map[media.Modality]marking.Marker{
		media.ModalityPhoto: photo,
	}, batch.WithHistory(store))

	if _, err := runner.Run(context.Background(), map[media.Modality][]string{
		media.ModalityPhoto: {"/in/ok.png", "/in/broken.png"},
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	entries, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	var failed int
	for _, entry := range entries {
		if !entry.OK {
			failed++
			if !strings.Contains(entry.Error, "processing failure") {
				t.Fatalf("entry error = %q", entry.Error)
			}
		}
	}
	if failed != 1 {
		t.Fatalf("failed entries = %d", failed)
	}
}
