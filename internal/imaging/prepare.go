package imaging

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

const (
	// DefaultMinHeight is the capture height below which Prepare upscales.
	// A single line of 11pt UI text is roughly 20px tall; Tesseract works
	// best with glyphs around 30px.
	DefaultMinHeight = 120

	// DefaultScale is the upscale factor for short captures.
	DefaultScale = 2.0

	// darkThreshold is the mean L* below which an image counts as dark.
	darkThreshold = 50.0
)

// Options controls Prepare. The zero value upscales short captures by
// DefaultScale, converts to grayscale, and does not invert or threshold.
type Options struct {
	// MinHeight is the height in pixels below which the image is upscaled.
	// Zero means DefaultMinHeight; a negative value disables upscaling.
	MinHeight int

	// Scale is the upscale factor. Values <= 1 mean DefaultScale.
	Scale float64

	// AutoInvert inverts images whose mean lightness is below 50.
	AutoInvert bool

	// Threshold binarizes the image at this gray level (1-255). Zero
	// disables binarization.
	Threshold uint8
}

// Result reports what Prepare did.
type Result struct {
	Width    int
	Height   int
	Scaled   bool
	Inverted bool
}

// Prepare reads the image at src, conditions it for OCR, and writes the
// result to dst. The output format follows dst's extension.
func Prepare(src, dst string, opts Options) (*Result, error) {
	img, info, err := Load(src)
	if err != nil {
		return nil, err
	}

	out, res := Condition(img, opts)

	if err := imaging.Save(out, dst); err != nil {
		return nil, fmt.Errorf("failed to save prepared image: %w", err)
	}

	slog.Debug("capture prepared",
		"src_width", info.Width, "src_height", info.Height,
		"width", res.Width, "height", res.Height,
		"scaled", res.Scaled, "inverted", res.Inverted, "threshold", opts.Threshold)
	return res, nil
}

// Condition applies the Prepare steps to an in-memory image.
func Condition(img image.Image, opts Options) (image.Image, *Result) {
	minHeight := opts.MinHeight
	if minHeight == 0 {
		minHeight = DefaultMinHeight
	}
	scale := opts.Scale
	if scale <= 1 {
		scale = DefaultScale
	}

	res := &Result{}
	bounds := img.Bounds()

	if minHeight > 0 && bounds.Dy() < minHeight {
		newWidth := int(float64(bounds.Dx()) * scale)
		img = imaging.Resize(img, newWidth, 0, imaging.Lanczos)
		res.Scaled = true
	}

	gray := imaging.Grayscale(img)

	if opts.AutoInvert && MeanLightness(gray) < darkThreshold {
		gray = imaging.Invert(gray)
		res.Inverted = true
	}

	var out image.Image = gray
	if opts.Threshold > 0 {
		out = segment.Threshold(gray, opts.Threshold)
	}

	res.Width = out.Bounds().Dx()
	res.Height = out.Bounds().Dy()
	return out, res
}
