package marking

import (
	"context"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // decode-only

	"markmymedia/internal/logging"
	"markmymedia/internal/media"
	"markmymedia/internal/services"
)

const (
	minImageFontSize  = 10
	imageStrokeRadius = 3
)

// ImageMarker draws the overlay text onto a raster image in a single pass:
// white fill with a black outline, font size proportional to image height,
// wrapped to fit the width.
type ImageMarker struct {
	font   *opentype.Font
	logger *slog.Logger
}

// ImageOption configures an ImageMarker.
type ImageOption func(*ImageMarker)

// WithImageLogger attaches a logger; a nop logger is used otherwise.
func WithImageLogger(logger *slog.Logger) ImageOption {
	return func(m *ImageMarker) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewImageMarker constructs an ImageMarker with the bundled font.
func NewImageMarker(opts ...ImageOption) (*ImageMarker, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, services.Wrap(ErrProcessing, "photo", "font", "parse bundled font", err)
	}
	m := &ImageMarker{font: parsed, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Mark overlays the text onto one image and writes the marked copy.
func (m *ImageMarker) Mark(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", services.Wrap(ErrProcessing, "photo", "mark", "cancelled", err)
	}
	if err := checkInput("photo", req.InputPath, media.ImageExtensions); err != nil {
		return "", err
	}

	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = markedStem(req.InputPath)
	} else if err := checkOutput("photo", outputPath, media.ImageExtensions); err != nil {
		return "", err
	}
	if err := ensureParent("photo", outputPath); err != nil {
		return "", err
	}

	src, err := loadImage(req.InputPath)
	if err != nil {
		return "", services.Wrap(ErrProcessing, "photo", "decode", req.InputPath, err)
	}

	overlay := req.OverlayText
	if overlay == "" {
		overlay = DefaultOverlay(req.InputPath)
	}

	marked, err := m.draw(src, overlay)
	if err != nil {
		return "", err
	}
	if err := saveImage(outputPath, marked); err != nil {
		return "", err
	}

	logging.WithContext(ctx, m.logger).Info("image marked", "input", req.InputPath, "output", outputPath)
	return outputPath, nil
}

func (m *ImageMarker) draw(src image.Image, overlay string) (image.Image, error) {
	dc := gg.NewContextForImage(src)
	width := float64(dc.Width())
	height := float64(dc.Height())

	fontSize := height / 30
	if fontSize < minImageFontSize {
		fontSize = minImageFontSize
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, services.Wrap(ErrProcessing, "photo", "font", "build face", err)
	}
	dc.SetFontFace(face)

	avgCharWidth, _ := dc.MeasureString("abcdefghijklmnopqrstuvwxyz")
	avgCharWidth /= 26
	margin := width * 0.05
	maxChars := 20
	if avgCharWidth > 0 {
		maxChars = int((width - 2*margin) / avgCharWidth)
	}
	wrapped := WrapText(overlay, maxChars)

	textMargin := fontSize * 0.4
	lineHeight := fontSize * 1.3
	lines := strings.Split(wrapped, "\n")

	for i, line := range lines {
		x := textMargin
		y := textMargin + fontSize + float64(i)*lineHeight
		// Outline first, then the fill over it.
		dc.SetRGB(0, 0, 0)
		for dx := -imageStrokeRadius; dx <= imageStrokeRadius; dx++ {
			for dy := -imageStrokeRadius; dy <= imageStrokeRadius; dy++ {
				if dx*dx+dy*dy > imageStrokeRadius*imageStrokeRadius {
					continue
				}
				dc.DrawString(line, x+float64(dx), y+float64(dy))
			}
		}
		dc.SetRGB(1, 1, 1)
		dc.DrawString(line, x, y)
	}
	return dc.Image(), nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func saveImage(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return services.Wrap(ErrInvalidOutputPath, "photo", "encode", path, err)
	}
	defer out.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		err = png.Encode(out, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: 90})
	case ".gif":
		err = gif.Encode(out, img, nil)
	case ".bmp":
		err = bmp.Encode(out, img)
	case ".tiff", ".tif":
		err = tiff.Encode(out, img, nil)
	default:
		// webp has no encoder in the maintained Go image packages.
		return services.Wrap(ErrInvalidOutputPath, "photo", "encode", "no encoder for "+ext+" output", nil)
	}
	if err != nil {
		return services.Wrap(ErrProcessing, "photo", "encode", path, err)
	}
	return out.Close()
}

var _ Marker = (*ImageMarker)(nil)
