package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools names the external binaries the module drives.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// Marker controls overlay rendering.
type Marker struct {
	// Prefix is prepended to the filename when no custom text is given.
	Prefix string `toml:"prefix"`
	// VideoSeconds is the duration of the synthesized marker clip.
	VideoSeconds float64 `toml:"video_seconds"`
	// AudioCanvasWidth and AudioCanvasHeight size the still frame rendered
	// for audio files.
	AudioCanvasWidth  int `toml:"audio_canvas_width"`
	AudioCanvasHeight int `toml:"audio_canvas_height"`
}

// Logging controls log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// History controls the SQLite run history.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config is the root configuration document.
type Config struct {
	OutputDir         string  `toml:"output_dir"`
	Workers           int     `toml:"workers"`
	Recursive         bool    `toml:"recursive"`
	PreserveStructure bool    `toml:"preserve_structure"`
	Tools             Tools   `toml:"tools"`
	Marker            Marker  `toml:"marker"`
	Logging           Logging `toml:"logging"`
	History           History `toml:"history"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "markmymedia", "config.toml")
}

// Load reads the config at path, or the default location when path is empty.
// A missing file is not an error; defaults apply. The resolved path is
// returned for diagnostics.
func Load(path string) (*Config, string, error) {
	resolved := path
	if resolved == "" {
		resolved = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == "" {
			if err := cfg.finalize(); err != nil {
				return nil, resolved, err
			}
			return &cfg, resolved, nil
		}
		return nil, resolved, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, resolved, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	if err := cfg.finalize(); err != nil {
		return nil, resolved, err
	}
	return &cfg, resolved, nil
}

// WriteSample writes the embedded sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

func (c *Config) finalize() error {
	if err := c.normalize(); err != nil {
		return err
	}
	return c.validate()
}

func expandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	if len(path) > 1 && (path[1] == '/' || path[1] == filepath.Separator) {
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
