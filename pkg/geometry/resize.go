package geometry

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ResizeMax downscales an image whose longer side exceeds maxSide,
// preserving aspect ratio. Images already within the limit are returned
// unchanged; this never upscales.
func ResizeMax(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}
	var newW, newH int
	if h > w {
		newH = maxSide
		newW = int(math.Round(float64(newH) * float64(w) / float64(h)))
	} else {
		newW = maxSide
		newH = int(math.Round(float64(newW) * float64(h) / float64(w)))
	}
	return imaging.Resize(img, newW, newH, imaging.Lanczos)
}

// ResizeTo resizes an image to exact dimensions. Normalized boxes are
// scale invariant; pixel boxes must be rescaled with ScaleBoxes.
func ResizeTo(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
