package marking

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"markmymedia/internal/logging"
	"markmymedia/internal/media"
	"markmymedia/internal/services/ffmpeg"
)

// Audio markers render the overlay onto a fixed still canvas.
const (
	defaultAudioCanvasWidth  = 1280
	defaultAudioCanvasHeight = 256
)

var audioOutputExtensions = map[string]struct{}{".mp4": {}}

// AudioMarker turns an audio file into an .mp4 video: a drawn-text still
// frame combined with the original audio stream copied as-is.
type AudioMarker struct {
	ffmpegBin string
	runner    ffmpeg.Runner
	width     int
	height    int
	logger    *slog.Logger
}

// AudioOption configures an AudioMarker.
type AudioOption func(*AudioMarker)

// WithAudioFFmpegBinary overrides the ffmpeg binary name.
func WithAudioFFmpegBinary(binary string) AudioOption {
	return func(m *AudioMarker) {
		if binary != "" {
			m.ffmpegBin = binary
		}
	}
}

// WithAudioRunner injects a custom process runner (primarily for tests).
func WithAudioRunner(runner ffmpeg.Runner) AudioOption {
	return func(m *AudioMarker) {
		if runner != nil {
			m.runner = runner
		}
	}
}

// WithAudioCanvas overrides the still-frame dimensions. Non-positive
// values keep the defaults.
func WithAudioCanvas(width, height int) AudioOption {
	return func(m *AudioMarker) {
		if width > 0 && height > 0 {
			m.width = width
			m.height = height
		}
	}
}

// WithAudioLogger attaches a logger; a nop logger is used otherwise.
func WithAudioLogger(logger *slog.Logger) AudioOption {
	return func(m *AudioMarker) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewAudioMarker constructs an AudioMarker with exec-backed defaults.
func NewAudioMarker(opts ...AudioOption) *AudioMarker {
	m := &AudioMarker{
		ffmpegBin: "ffmpeg",
		runner:    ffmpeg.NewRunner(),
		width:     defaultAudioCanvasWidth,
		height:    defaultAudioCanvasHeight,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mark produces the marked .mp4 for one audio file via a single ffmpeg
// invocation: lavfi still source mapped as video, original audio copied.
func (m *AudioMarker) Mark(ctx context.Context, req Request) (string, error) {
	if err := checkInput("audio", req.InputPath, media.AudioExtensions); err != nil {
		return "", err
	}

	outputPath := req.OutputPath
	if outputPath == "" {
		ext := filepath.Ext(req.InputPath)
		outputPath = strings.TrimSuffix(req.InputPath, ext) + ".mp4"
	} else if err := checkOutput("audio", outputPath, audioOutputExtensions); err != nil {
		return "", err
	}
	if err := ensureParent("audio", outputPath); err != nil {
		return "", err
	}

	overlay := req.OverlayText
	if overlay == "" {
		overlay = DefaultOverlay(req.InputPath)
	}
	width, height := m.width, m.height
	if req.resolutionOverride() {
		width, height = req.Width, req.Height
	}

	args := []string{
		"-y",
		"-f", "lavfi", "-i", drawtextSource(overlay, width, height, 0),
		"-i", req.InputPath,
		"-framerate", "1",
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", "libx264",
		"-crf", "20",
		"-pix_fmt", "yuv420p",
		"-c:a", "copy",
		"-shortest",
		outputPath,
	}
	if err := m.runner.Run(ctx, m.ffmpegBin, args); err != nil {
		return "", classifyRunError("audio", "encode", "audio marking failed", err)
	}

	logging.WithContext(ctx, m.logger).Info("audio marked", "input", req.InputPath, "output", outputPath)
	return outputPath, nil
}

var _ Marker = (*AudioMarker)(nil)
