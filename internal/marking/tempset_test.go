package marking

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArtifactSetUniqueNames(t *testing.T) {
	dir := t.TempDir()
	a := newArtifactSet(dir)
	b := newArtifactSet(dir)
	for i, pair := range [][2]string{
		{a.markerContainer, b.markerContainer},
		{a.markerTS, b.markerTS},
		{a.mainTS, b.mainTS},
	} {
		if pair[0] == pair[1] {
			t.Fatalf("artifact %d collides: %s", i, pair[0])
		}
	}
	if filepath.Ext(a.markerContainer) != ".mp4" || filepath.Ext(a.markerTS) != ".ts" || filepath.Ext(a.mainTS) != ".ts" {
		t.Fatalf("unexpected extensions: %+v", a)
	}
	if !strings.HasPrefix(filepath.Base(a.mainTS), "main_") {
		t.Fatalf("main segment name = %s", a.mainTS)
	}
}

func TestArtifactSetCleanupIdempotent(t *testing.T) {
	dir := t.TempDir()
	set := newArtifactSet(dir)
	for _, p := range set.paths() {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	set.Cleanup()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("cleanup left %d files", len(entries))
	}

	// Second cleanup on already-absent paths is a no-op.
	set.Cleanup()
}

func TestArtifactSetDefaultsToSystemTempDir(t *testing.T) {
	set := newArtifactSet("")
	if filepath.Dir(set.markerTS) != filepath.Clean(os.TempDir()) {
		t.Fatalf("expected system temp dir, got %s", filepath.Dir(set.markerTS))
	}
}
