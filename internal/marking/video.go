package marking

import (
	"context"
	"fmt"
	"log/slog"

	"markmymedia/internal/logging"
	"markmymedia/internal/media"
	"markmymedia/internal/media/ffprobe"
	"markmymedia/internal/services"
	"markmymedia/internal/services/ffmpeg"
)

// defaultMarkerSeconds is the duration of the synthesized marker clip.
const defaultMarkerSeconds = 0.5

// probeFunc abstracts the prober so tests can substitute canned results.
type probeFunc func(ctx context.Context, path string) (ffprobe.Result, error)

// VideoMarker prepends a marker clip to a video without re-encoding the
// original streams.
type VideoMarker struct {
	ffmpegBin     string
	ffprobeBin    string
	runner        ffmpeg.Runner
	probe         probeFunc
	tempDir       string
	markerSeconds float64
	logger        *slog.Logger
}

// VideoOption configures a VideoMarker.
type VideoOption func(*VideoMarker)

// WithFFmpegBinary overrides the ffmpeg binary name.
func WithFFmpegBinary(binary string) VideoOption {
	return func(m *VideoMarker) {
		if binary != "" {
			m.ffmpegBin = binary
		}
	}
}

// WithFFprobeBinary overrides the ffprobe binary name.
func WithFFprobeBinary(binary string) VideoOption {
	return func(m *VideoMarker) {
		if binary != "" {
			m.ffprobeBin = binary
		}
	}
}

// WithRunner injects a custom process runner (primarily for tests).
func WithRunner(runner ffmpeg.Runner) VideoOption {
	return func(m *VideoMarker) {
		if runner != nil {
			m.runner = runner
		}
	}
}

// WithProber injects a custom probe function (primarily for tests).
func WithProber(probe probeFunc) VideoOption {
	return func(m *VideoMarker) {
		if probe != nil {
			m.probe = probe
		}
	}
}

// WithTempDir places temporary segments somewhere other than os.TempDir().
func WithTempDir(dir string) VideoOption {
	return func(m *VideoMarker) {
		if dir != "" {
			m.tempDir = dir
		}
	}
}

// WithMarkerDuration overrides the marker clip length in seconds.
func WithMarkerDuration(seconds float64) VideoOption {
	return func(m *VideoMarker) {
		if seconds > 0 {
			m.markerSeconds = seconds
		}
	}
}

// WithVideoLogger attaches a logger; a nop logger is used otherwise.
func WithVideoLogger(logger *slog.Logger) VideoOption {
	return func(m *VideoMarker) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewVideoMarker constructs a VideoMarker with exec-backed defaults.
func NewVideoMarker(opts ...VideoOption) *VideoMarker {
	m := &VideoMarker{
		ffmpegBin:     "ffmpeg",
		ffprobeBin:    "ffprobe",
		runner:        ffmpeg.NewRunner(),
		markerSeconds: defaultMarkerSeconds,
		logger:        logging.NewNop(),
	}
	m.probe = func(ctx context.Context, path string) (ffprobe.Result, error) {
		return ffprobe.Inspect(ctx, m.ffprobeBin, path)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mark runs the full pipeline for one file: path validation, probe, codec
// validation, marker synthesis, two transport-stream remuxes, and the final
// concatenation. Temporary segments are removed on every exit path. The
// first failing step terminates the pipeline; no step is retried.
func (m *VideoMarker) Mark(ctx context.Context, req Request) (string, error) {
	outputPath, err := m.resolvePaths(req)
	if err != nil {
		return "", err
	}

	artifacts := newArtifactSet(m.tempDir)
	defer artifacts.Cleanup()

	probeResult, err := m.probe(ctx, req.InputPath)
	if err != nil {
		if ffmpeg.IsNotFound(err) {
			return "", services.Wrap(ErrToolNotFound, "video", "probe", m.ffprobeBin, err)
		}
		return "", services.Wrap(ErrProcessing, "video", "probe", "failed to probe video parameters", err)
	}

	params, err := resolveStreamParams(probeResult, req)
	if err != nil {
		return "", err
	}

	overlay := req.OverlayText
	if overlay == "" {
		overlay = DefaultOverlay(req.InputPath)
	}

	logger := logging.WithContext(ctx, m.logger)
	logger.Debug("marking video",
		"input", req.InputPath,
		"output", outputPath,
		"codec", params.VideoCodec,
		"resolution", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"frame_rate", params.FrameRate,
	)

	if err := m.synthesizeMarker(ctx, overlay, params, artifacts.markerContainer); err != nil {
		return "", err
	}
	if err := m.remux(ctx, artifacts.markerContainer, artifacts.markerTS, params.VideoCodec); err != nil {
		return "", err
	}
	if err := m.remux(ctx, req.InputPath, artifacts.mainTS, params.VideoCodec); err != nil {
		return "", err
	}
	if err := m.concatenate(ctx, artifacts.markerTS, artifacts.mainTS, outputPath); err != nil {
		return "", err
	}

	logger.Info("video marked", "input", req.InputPath, "output", outputPath)
	return outputPath, nil
}

// resolvePaths validates the input file and resolves the final output path,
// creating its parent directory when needed.
func (m *VideoMarker) resolvePaths(req Request) (string, error) {
	if err := checkInput("video", req.InputPath, media.VideoExtensions); err != nil {
		return "", err
	}

	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = markedStem(req.InputPath)
	} else if err := checkOutput("video", outputPath, media.VideoExtensions); err != nil {
		return "", err
	}

	if err := ensureParent("video", outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

var _ Marker = (*VideoMarker)(nil)
