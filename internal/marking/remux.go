package marking

import "context"

// remux stream-copies src into an MPEG transport stream at dst, applying the
// annex-B bitstream filter for the source video codec. Run twice per
// pipeline: once for the marker clip, once for the original input.
func (m *VideoMarker) remux(ctx context.Context, src, dst, videoCodec string) error {
	support := videoCodecs[videoCodec]
	args := []string{
		"-y",
		"-i", src,
		"-c", "copy",
		"-bsf:v", support.AnnexBFilter,
		"-f", "mpegts",
		dst,
	}
	if err := m.runner.Run(ctx, m.ffmpegBin, args); err != nil {
		return classifyRunError("video", "remux", "transport-stream remux failed", err)
	}
	return nil
}
