package config

import (
	"fmt"
	"runtime"
	"strings"
)

func (c *Config) normalize() error {
	var err error

	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = defaultOutputDir
	}
	if c.OutputDir, err = expandPath(c.OutputDir); err != nil {
		return fmt.Errorf("output_dir: %w", err)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	if strings.TrimSpace(c.Tools.FFmpeg) == "" {
		c.Tools.FFmpeg = defaultFFmpegBinary
	}
	if strings.TrimSpace(c.Tools.FFprobe) == "" {
		c.Tools.FFprobe = defaultFFprobeBinary
	}

	if c.Marker.Prefix == "" {
		c.Marker.Prefix = defaultMarkerPrefix
	}
	if c.Marker.VideoSeconds <= 0 {
		c.Marker.VideoSeconds = defaultMarkerSeconds
	}
	if c.Marker.AudioCanvasWidth <= 0 {
		c.Marker.AudioCanvasWidth = defaultAudioCanvasWidth
	}
	if c.Marker.AudioCanvasHeight <= 0 {
		c.Marker.AudioCanvasHeight = defaultAudioCanvasHeight
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}
