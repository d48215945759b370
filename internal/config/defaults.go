package config

import "runtime"

const (
	defaultOutputDir         = "markered_modals"
	defaultFFmpegBinary      = "ffmpeg"
	defaultFFprobeBinary     = "ffprobe"
	defaultMarkerPrefix      = "Filename: "
	defaultMarkerSeconds     = 0.5
	defaultAudioCanvasWidth  = 1280
	defaultAudioCanvasHeight = 256
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"
	defaultHistoryPath       = "~/.local/share/markmymedia/history.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		OutputDir: defaultOutputDir,
		Workers:   runtime.NumCPU(),
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Marker: Marker{
			Prefix:            defaultMarkerPrefix,
			VideoSeconds:      defaultMarkerSeconds,
			AudioCanvasWidth:  defaultAudioCanvasWidth,
			AudioCanvasHeight: defaultAudioCanvasHeight,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
	}
}
