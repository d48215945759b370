package marking

import "context"

// silentStereoSource synthesizes silent stereo audio so the concatenated
// file carries an audio stream whenever the original does.
const silentStereoSource = "anullsrc=channel_layout=stereo:sample_rate=44100"

// synthesizeMarker encodes the short marker clip: a drawn-text frame source
// over black plus silent stereo audio, using the encoder matching the source
// codec so the segments can later be stream-copied together.
func (m *VideoMarker) synthesizeMarker(ctx context.Context, overlay string, params streamParams, outPath string) error {
	support := videoCodecs[params.VideoCodec]
	args := []string{
		"-y",
		"-f", "lavfi", "-i", drawtextSource(overlay, params.Width, params.Height, m.markerSeconds),
		"-f", "lavfi", "-i", silentStereoSource,
		"-shortest",
		"-c:v", support.Encoder,
		"-pix_fmt", "yuv420p",
		"-r", params.FrameRate,
		"-c:a", "aac", "-ar", "44100",
		outPath,
	}
	if err := m.runner.Run(ctx, m.ffmpegBin, args); err != nil {
		return classifyRunError("video", "synthesize", "marker encode failed", err)
	}
	return nil
}
