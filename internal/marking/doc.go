// Package marking implements the three marking routines: overlaying a
// readable marker (the source filename, or custom text) onto images, audio,
// and video files.
//
// The video path is the involved one. It prepends a short synthesized marker
// clip to the original without re-encoding the original streams: probe the
// input, validate codecs against a closed whitelist, encode a marker segment
// in a matching codec, remux both pieces into MPEG-TS with the codec's
// annex-B bitstream filter, and concatenate with stream copy into the final
// container. Temporary segments live in the system temp directory under
// collision-resistant names and are removed on every exit path.
//
// Failures are tagged with the sentinel errors in errors.go so callers can
// classify them with errors.Is.
package marking
