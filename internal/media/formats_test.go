package media_test

import (
	"testing"

	"markmymedia/internal/media"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want media.Modality
	}{
		{"holiday.JPG", media.ModalityPhoto},
		{"/some/dir/shot.tiff", media.ModalityPhoto},
		{"song.flac", media.ModalityAudio},
		{"voice.Opus", media.ModalityAudio},
		{"clip.mp4", media.ModalityVideo},
		{"movie.MKV", media.ModalityVideo},
		{"notes.txt", media.ModalityUnknown},
		{"noextension", media.ModalityUnknown},
	}
	for _, tt := range tests {
		if got := media.Detect(tt.path); got != tt.want {
			t.Errorf("Detect(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestCategorizePreservesOrder(t *testing.T) {
	buckets := media.Categorize([]string{"b.mp4", "a.jpg", "c.mp3", "a.mp4", "x.bin"})
	videos := buckets[media.ModalityVideo]
	if len(videos) != 2 || videos[0] != "b.mp4" || videos[1] != "a.mp4" {
		t.Fatalf("unexpected video bucket: %v", videos)
	}
	if got := len(buckets[media.ModalityUnknown]); got != 1 {
		t.Fatalf("expected 1 unknown file, got %d", got)
	}
}

func TestExtensionListSorted(t *testing.T) {
	got := media.ExtensionList(map[string]struct{}{".mov": {}, ".avi": {}, ".mp4": {}})
	if got != ".avi, .mov, .mp4" {
		t.Fatalf("ExtensionList = %q", got)
	}
}
