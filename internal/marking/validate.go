package marking

import (
	"fmt"
	"strings"

	"markmymedia/internal/media/ffprobe"
	"markmymedia/internal/services"
)

// streamParams holds the validated parameters driving marker synthesis.
type streamParams struct {
	Width      int
	Height     int
	FrameRate  string
	VideoCodec string
}

// defaultFrameRate is assumed when the probe reports no rate at all.
const defaultFrameRate = "30"

// resolveStreamParams validates the probe result against the codec whitelist
// and resolves the marker resolution and frame rate. It runs before any
// external encode process is spawned.
//
// Only the first video and first audio stream in probe order are considered;
// later streams of the same kind are silently ignored, matching the original
// single-stream behaviour.
func resolveStreamParams(result ffprobe.Result, req Request) (streamParams, error) {
	if len(result.Streams) == 0 {
		return streamParams{}, services.Wrap(ErrNoMediaStreams, "video", "validate", "no media streams found in the input file", nil)
	}

	video, ok := result.FirstVideo()
	if !ok {
		return streamParams{}, services.Wrap(ErrNoVideoStream, "video", "validate", "no video stream found in the input file", nil)
	}

	width, height := video.Width, video.Height
	if req.resolutionOverride() {
		width, height = req.Width, req.Height
	}
	if width <= 0 || height <= 0 {
		return streamParams{}, services.Wrap(ErrInvalidResolution, "video", "validate",
			fmt.Sprintf("invalid video resolution %dx%d", width, height), nil)
	}

	rate := video.RFrameRate
	if strings.TrimSpace(rate) == "" {
		rate = defaultFrameRate
	} else {
		rate = ffprobe.NormalizeFrameRate(rate)
	}

	videoCodec := strings.ToLower(video.CodecName)
	if _, supported := videoCodecs[videoCodec]; !supported {
		return streamParams{}, services.Wrap(ErrUnsupportedVideoCodec, "video", "validate",
			fmt.Sprintf("codec %q is not supported for stream copying (h264/hevc only)", videoCodec), nil)
	}

	if audio, ok := result.FirstAudio(); ok {
		audioCodec := strings.ToLower(audio.CodecName)
		if !audioCodecSupported(audioCodec) {
			return streamParams{}, services.Wrap(ErrUnsupportedAudioCodec, "video", "validate",
				fmt.Sprintf("codec %q is not supported for stream copying (aac or no audio only)", audioCodec), nil)
		}
	}

	return streamParams{
		Width:      width,
		Height:     height,
		FrameRate:  rate,
		VideoCodec: videoCodec,
	}, nil
}
