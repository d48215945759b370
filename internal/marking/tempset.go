package marking

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// artifactSet holds the three temporary paths one video marking invocation
// writes: the marker container, the marker transport segment, and the main
// transport segment. Names carry a random identifier so concurrently running
// pipelines sharing one temp directory never collide.
type artifactSet struct {
	markerContainer string
	markerTS        string
	mainTS          string
}

func newArtifactSet(dir string) artifactSet {
	if dir == "" {
		dir = os.TempDir()
	}
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return artifactSet{
		markerContainer: filepath.Join(dir, "marker_"+id+".mp4"),
		markerTS:        filepath.Join(dir, "marker_"+id+".ts"),
		mainTS:          filepath.Join(dir, "main_"+id+".ts"),
	}
}

func (a artifactSet) paths() []string {
	return []string{a.markerContainer, a.markerTS, a.mainTS}
}

// Cleanup removes every artifact path. Removal failures and already-missing
// files are swallowed; rerunning Cleanup is a no-op.
func (a artifactSet) Cleanup() {
	for _, p := range a.paths() {
		if p == "" {
			continue
		}
		_ = os.Remove(p)
	}
}
