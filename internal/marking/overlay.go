package marking

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultOverlay returns the overlay text used when the request carries none.
func DefaultOverlay(inputPath string) string {
	return "Filename: " + filepath.Base(inputPath)
}

// WrapText greedily wraps text at word boundaries so no line exceeds
// maxChars. Words longer than the limit are split hard.
func WrapText(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	var current strings.Builder
	for _, word := range words {
		for len(word) > maxChars {
			if current.Len() > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
			lines = append(lines, word[:maxChars])
			word = word[maxChars:]
		}
		switch {
		case current.Len() == 0:
			current.WriteString(word)
		case current.Len()+1+len(word) <= maxChars:
			current.WriteString(" ")
			current.WriteString(word)
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return strings.Join(lines, "\n")
}

// drawtextSource builds the lavfi source rendering overlay text centered on a
// black canvas. A positive duration bounds the source; zero leaves it
// unbounded for use with -shortest.
func drawtextSource(text string, width, height int, durationSeconds float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "color=c=black:s=%dx%d", width, height)
	if durationSeconds > 0 {
		b.WriteString(":d=")
		b.WriteString(strconv.FormatFloat(durationSeconds, 'f', -1, 64))
	}
	fmt.Fprintf(&b,
		",drawtext=text='%s':fontcolor=white:fontsize=h/20:x=(w-text_w)/2:y=(h-text_h)/2",
		escapeDrawtext(text))
	return b.String()
}

// escapeDrawtext escapes the characters the drawtext filter treats specially
// inside a quoted text value.
func escapeDrawtext(text string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
	)
	return replacer.Replace(text)
}
