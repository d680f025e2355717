package imaging

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxLightnessSamples bounds the work MeanLightness does on large captures.
const maxLightnessSamples = 16384

// MeanLightness returns the average CIE L* lightness of img on a 0-100 scale.
//
// Large images are sampled on a regular grid. Fully transparent pixels are
// skipped; an image with no opaque pixels reports 100 (treated as light).
func MeanLightness(img image.Image) float64 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return 100
	}

	step := 1
	for (w/step)*(h/step) > maxLightnessSamples {
		step++
	}

	var sum float64
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			n++
		}
	}

	if n == 0 {
		return 100
	}
	// Lab can round a hair below 0 for pure black.
	return min(max(sum/float64(n)*100, 0), 100)
}
