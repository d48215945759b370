package media

import (
	"path/filepath"
	"sort"
	"strings"
)

// Modality identifies the kind of media a file holds.
type Modality string

const (
	ModalityPhoto   Modality = "photo"
	ModalityAudio   Modality = "audio"
	ModalityVideo   Modality = "video"
	ModalityUnknown Modality = "unknown"
)

// Extension whitelists per modality. Lookups are lowercase with the dot.
var (
	ImageExtensions = map[string]struct{}{
		".jpg": {}, ".jpeg": {}, ".png": {}, ".bmp": {},
		".gif": {}, ".tiff": {}, ".tif": {}, ".webp": {},
	}
	AudioExtensions = map[string]struct{}{
		".mp3": {}, ".flac": {}, ".aac": {}, ".m4a": {}, ".ogg": {}, ".opus": {},
	}
	VideoExtensions = map[string]struct{}{
		".mp4": {}, ".mov": {}, ".avi": {}, ".mkv": {},
		".webm": {}, ".mpg": {}, ".mpeg": {},
	}
)

// Detect returns the modality for a path based on its extension.
func Detect(path string) Modality {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case HasImageExtension(ext):
		return ModalityPhoto
	case HasAudioExtension(ext):
		return ModalityAudio
	case HasVideoExtension(ext):
		return ModalityVideo
	default:
		return ModalityUnknown
	}
}

// HasImageExtension reports whether ext (with leading dot) is a supported image extension.
func HasImageExtension(ext string) bool {
	_, ok := ImageExtensions[strings.ToLower(ext)]
	return ok
}

// HasAudioExtension reports whether ext (with leading dot) is a supported audio extension.
func HasAudioExtension(ext string) bool {
	_, ok := AudioExtensions[strings.ToLower(ext)]
	return ok
}

// HasVideoExtension reports whether ext (with leading dot) is a supported video extension.
func HasVideoExtension(ext string) bool {
	_, ok := VideoExtensions[strings.ToLower(ext)]
	return ok
}

// Categorize splits files into modality buckets, preserving input order.
func Categorize(files []string) map[Modality][]string {
	buckets := make(map[Modality][]string, 4)
	for _, f := range files {
		m := Detect(f)
		buckets[m] = append(buckets[m], f)
	}
	return buckets
}

// ExtensionList renders an extension set as a sorted, comma-separated string
// suitable for error messages.
func ExtensionList(set map[string]struct{}) string {
	exts := make([]string, 0, len(set))
	for ext := range set {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}

// Label returns the human-readable plural label used in progress output.
func (m Modality) Label() string {
	switch m {
	case ModalityPhoto:
		return "photos"
	case ModalityAudio:
		return "audio files"
	case ModalityVideo:
		return "videos"
	default:
		return "files"
	}
}
