package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index      int    `json:"index"`
	CodecName  string `json:"codec_name"`
	CodecType  string `json:"codec_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// stream description. A non-zero exit or unparsable output is a hard failure.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := commandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// IsVideo reports whether the stream carries video.
func (s Stream) IsVideo() bool {
	return strings.EqualFold(s.CodecType, "video")
}

// IsAudio reports whether the stream carries audio.
func (s Stream) IsAudio() bool {
	return strings.EqualFold(s.CodecType, "audio")
}

// FirstVideo returns the first video stream in probe order, if any.
func (r Result) FirstVideo() (Stream, bool) {
	for _, stream := range r.Streams {
		if stream.IsVideo() {
			return stream, true
		}
	}
	return Stream{}, false
}

// FirstAudio returns the first audio stream in probe order, if any.
func (r Result) FirstAudio() (Stream, bool) {
	for _, stream := range r.Streams {
		if stream.IsAudio() {
			return stream, true
		}
	}
	return Stream{}, false
}

// NormalizeFrameRate reduces a rational frame-rate string ("30000/1001",
// "25/1") to its canonical form. When the value does not parse as a rational
// the raw string is passed through unmodified; downstream ffmpeg tolerates
// both forms.
func NormalizeFrameRate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	rat, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return raw
	}
	return rat.RatString()
}
