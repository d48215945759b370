package discover

import (
	"os"
	"path/filepath"
	"strings"

	"markmymedia/internal/media"
)

// OutputPath derives the destination for one input file under outputBase.
// Photos and videos keep their extension with a "_marked" stem suffix; audio
// becomes an .mp4 of the same stem. With preserveStructure the directory
// layout relative to sourceBase is recreated under outputBase; inputs outside
// sourceBase land in the output root.
func OutputPath(inputPath, outputBase string, modality media.Modality, preserveStructure bool, sourceBase string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), ext)

	targetDir := outputBase
	if preserveStructure {
		base := sourceBase
		if base == "" {
			base, _ = os.Getwd()
		}
		if rel, err := filepath.Rel(base, filepath.Dir(inputPath)); err == nil && !strings.HasPrefix(rel, "..") {
			targetDir = filepath.Join(outputBase, rel)
		}
	}

	var name string
	switch modality {
	case media.ModalityAudio:
		name = stem + ".mp4"
	default:
		name = stem + "_marked" + ext
	}
	return filepath.Join(targetDir, name)
}
