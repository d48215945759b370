// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Result: parsed stream descriptions for one input file
//   - Stream: individual audio/video stream properties
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns a parsed Result
//
// Helper methods on Result select the authoritative first video and first
// audio stream; later streams of the same kind are ignored.
package ffprobe
