package marking

// codecSupport binds a whitelisted video codec to the encoder used for marker
// synthesis and the bitstream filter that converts its length-prefixed NAL
// units to annex-B framing for MPEG-TS concatenation.
type codecSupport struct {
	Encoder      string
	AnnexBFilter string
}

// videoCodecs is the closed whitelist of stream-copyable video codecs.
var videoCodecs = map[string]codecSupport{
	"h264": {Encoder: "libx264", AnnexBFilter: "h264_mp4toannexb"},
	"hevc": {Encoder: "libx265", AnnexBFilter: "hevc_mp4toannexb"},
}

// audioCodecSupported reports whether the first audio stream's codec permits
// stream copying. An absent or empty codec means no audio constraint applies.
func audioCodecSupported(codec string) bool {
	return codec == "" || codec == "aac"
}
