// Package media defines the modality model shared by discovery, marking,
// and batch execution: which file extensions count as images, audio, or
// video, and how a set of input files is split into per-modality buckets.
package media
