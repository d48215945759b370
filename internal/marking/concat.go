package marking

import (
	"context"
	"path/filepath"
	"strings"
)

// concatenate joins the two transport-stream fragments, marker first, with
// stream copy into the final container. When the destination is an .mp4 the
// ADTS-to-ASC audio bitstream filter is appended so framed AAC packs into
// the box container; the flag is applied regardless of audio presence, which
// is harmless.
func (m *VideoMarker) concatenate(ctx context.Context, markerTS, mainTS, outputPath string) error {
	args := []string{
		"-y",
		"-i", "concat:" + markerTS + "|" + mainTS,
		"-c", "copy",
	}
	if strings.EqualFold(filepath.Ext(outputPath), ".mp4") {
		args = append(args, "-bsf:a", "aac_adtstoasc")
	}
	args = append(args, outputPath)

	if err := m.runner.Run(ctx, m.ffmpegBin, args); err != nil {
		return classifyRunError("video", "concatenate", "final concatenation failed", err)
	}
	return nil
}
