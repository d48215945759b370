package marking

import (
	"errors"

	"markmymedia/internal/services"
	"markmymedia/internal/services/ffmpeg"
)

// Sentinel markers for failure classification. Every error returned by a
// marking routine matches exactly one of these under errors.Is.
var (
	ErrInputNotFound         = errors.New("input file not found")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrInvalidOutputPath     = errors.New("invalid output path")
	ErrNoMediaStreams        = errors.New("no media streams")
	ErrNoVideoStream         = errors.New("no video stream")
	ErrInvalidResolution     = errors.New("invalid resolution")
	ErrUnsupportedVideoCodec = errors.New("unsupported video codec")
	ErrUnsupportedAudioCodec = errors.New("unsupported audio codec")
	ErrToolNotFound          = errors.New("external tool not found")
	ErrProcessFailure        = errors.New("external process failure")
	ErrProcessing            = errors.New("unexpected processing failure")
)

// classifyRunError maps a Runner failure onto the taxonomy: a missing binary
// becomes ErrToolNotFound, a non-zero exit becomes ErrProcessFailure carrying
// the command and captured diagnostics, anything else is wrapped as
// ErrProcessing rather than propagated raw.
func classifyRunError(modality, operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if ffmpeg.IsNotFound(err) {
		return services.Wrap(ErrToolNotFound, modality, operation, message, err)
	}
	var cmdErr *ffmpeg.CommandError
	if errors.As(err, &cmdErr) {
		return services.Wrap(ErrProcessFailure, modality, operation, message, err)
	}
	return services.Wrap(ErrProcessing, modality, operation, message, err)
}
