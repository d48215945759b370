package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"markmymedia/internal/batch"
	"markmymedia/internal/config"
	"markmymedia/internal/deps"
	"markmymedia/internal/discover"
	"markmymedia/internal/history"
	"markmymedia/internal/marking"
	"markmymedia/internal/media"
)

type markFlags struct {
	recursive bool
	outputDir string
	jobs      int
	preserve  bool
}

// runMark is the root command body: discover inputs, bucket them by
// modality, and drive the batch across the configured worker pool.
func runMark(cmd *cobra.Command, ctx *commandContext, flags *markFlags, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger := ctx.ensureLogger()

	outputDir := cfg.OutputDir
	if flags.outputDir != "" {
		outputDir = flags.outputDir
	}
	workers := cfg.Workers
	if flags.jobs > 0 {
		workers = flags.jobs
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	recursive := cfg.Recursive || flags.recursive
	preserve := cfg.PreserveStructure || flags.preserve

	if err := deps.Verify(deps.Requirements(cfg)); err != nil {
		return err
	}

	files, missing, err := discover.Gather(args, recursive, outputDir)
	if err != nil {
		return err
	}
	for _, path := range missing {
		logger.Warn("input path not found", "path", path)
	}
	if len(files) == 0 {
		return fmt.Errorf("no media files found under the given paths")
	}

	buckets := media.Categorize(files)
	markers, err := buildMarkers(ctx, cfg)
	if err != nil {
		return err
	}

	sourceBase := resolveSourceBase(args)
	opts := []batch.Option{
		batch.WithLogger(logger),
		batch.WithProgress(isatty.IsTerminal(os.Stdout.Fd())),
		batch.WithSourceBase(sourceBase),
	}
	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			logger.Warn("history disabled", "error", err)
		} else {
			defer store.Close()
			opts = append(opts, batch.WithHistory(store))
		}
	}

	runner := batch.New(workers, outputDir, preserve, cfg.Marker.Prefix, markers, opts...)
	summary, err := runner.Run(cmd.Context(), buckets)
	if err != nil {
		return err
	}

	renderSummary(cmd.OutOrStdout(), summary)
	if failed := len(summary.Failures()); failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(summary.Results))
	}
	return nil
}

func buildMarkers(ctx *commandContext, cfg *config.Config) (map[media.Modality]marking.Marker, error) {
	logger := ctx.ensureLogger()

	image, err := marking.NewImageMarker(marking.WithImageLogger(logger))
	if err != nil {
		return nil, err
	}
	audio := marking.NewAudioMarker(
		marking.WithAudioFFmpegBinary(cfg.Tools.FFmpeg),
		marking.WithAudioCanvas(cfg.Marker.AudioCanvasWidth, cfg.Marker.AudioCanvasHeight),
		marking.WithAudioLogger(logger),
	)
	video := marking.NewVideoMarker(
		marking.WithFFmpegBinary(cfg.Tools.FFmpeg),
		marking.WithFFprobeBinary(cfg.Tools.FFprobe),
		marking.WithMarkerDuration(cfg.Marker.VideoSeconds),
		marking.WithVideoLogger(logger),
	)
	return map[media.Modality]marking.Marker{
		media.ModalityPhoto: image,
		media.ModalityAudio: audio,
		media.ModalityVideo: video,
	}, nil
}

// resolveSourceBase picks the root used to mirror the input layout when
// --preserve-structure is set. A single directory argument becomes the base;
// anything else falls back to the working directory.
func resolveSourceBase(args []string) string {
	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(args[0]); err == nil {
				return abs
			}
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
