package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"markmymedia/internal/fileutil"
)

func TestEnsureDirCreatesNestedDirectories(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "a", "b", "c")
	if err := fileutil.EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if !fileutil.IsDir(nested) {
		t.Fatalf("expected directory at %s", nested)
	}
	// idempotent
	if err := fileutil.EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir second call: %v", err)
	}
}

func TestFileChecks(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.Exists(file) || !fileutil.IsRegularFile(file) {
		t.Fatal("expected regular file")
	}
	if fileutil.IsDir(file) {
		t.Fatal("file reported as directory")
	}
	if fileutil.Exists(filepath.Join(base, "missing")) {
		t.Fatal("missing path reported as existing")
	}
}
