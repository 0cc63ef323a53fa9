// Package geometry provides the bounding-box and image geometry helpers
// used to prepare variable-sized images for a convolutional network.
package geometry

import "math"

// NormBox is a fractional bounding box in [y1, x1, y2, x2] order with
// values in the [0,1] range, the convention used by dataset pipelines.
type NormBox [4]float64

// PixelBox is an absolute bounding box in [x1, y1, x2, y2] order, the
// convention used by VOC annotations.
type PixelBox [4]int

// Width returns the pixel width of the box.
func (b PixelBox) Width() int { return b[2] - b[0] }

// Height returns the pixel height of the box.
func (b PixelBox) Height() int { return b[3] - b[1] }

// Shift translates the box by (dx, dy).
func (b PixelBox) Shift(dx, dy int) PixelBox {
	return PixelBox{b[0] + dx, b[1] + dy, b[2] + dx, b[3] + dy}
}

// DenormalizeBox converts a fractional [y1, x1, y2, x2] box into an
// absolute pixel [x1, y1, x2, y2] box for an image of the given size,
// rounding to the nearest pixel. Fractions are clamped to [0,1] so that
// out-of-range inputs cannot produce coordinates outside the image.
func DenormalizeBox(b NormBox, width, height int) PixelBox {
	return PixelBox{
		roundFrac(b[1], width),
		roundFrac(b[0], height),
		roundFrac(b[3], width),
		roundFrac(b[2], height),
	}
}

// DenormalizeBoxes converts a slice of fractional boxes; see DenormalizeBox.
func DenormalizeBoxes(boxes []NormBox, width, height int) []PixelBox {
	out := make([]PixelBox, len(boxes))
	for i, b := range boxes {
		out[i] = DenormalizeBox(b, width, height)
	}
	return out
}

// NormalizeBox is the inverse of DenormalizeBox.
func NormalizeBox(b PixelBox, width, height int) NormBox {
	return NormBox{
		float64(b[1]) / float64(height),
		float64(b[0]) / float64(width),
		float64(b[3]) / float64(height),
		float64(b[2]) / float64(width),
	}
}

// NormalizeBoxes converts a slice of pixel boxes; see NormalizeBox.
func NormalizeBoxes(boxes []PixelBox, width, height int) []NormBox {
	out := make([]NormBox, len(boxes))
	for i, b := range boxes {
		out[i] = NormalizeBox(b, width, height)
	}
	return out
}

// ShiftBoxes translates every box by (dx, dy).
func ShiftBoxes(boxes []PixelBox, dx, dy int) []PixelBox {
	out := make([]PixelBox, len(boxes))
	for i, b := range boxes {
		out[i] = b.Shift(dx, dy)
	}
	return out
}

// ScaleBoxes rescales pixel boxes by independent horizontal and vertical
// factors, rounding to the nearest pixel. Used when the underlying image
// is resized.
func ScaleBoxes(boxes []PixelBox, sx, sy float64) []PixelBox {
	out := make([]PixelBox, len(boxes))
	for i, b := range boxes {
		out[i] = PixelBox{
			int(math.Round(float64(b[0]) * sx)),
			int(math.Round(float64(b[1]) * sy)),
			int(math.Round(float64(b[2]) * sx)),
			int(math.Round(float64(b[3]) * sy)),
		}
	}
	return out
}

func roundFrac(frac float64, size int) int {
	return int(math.Round(clamp(frac, 0, 1) * float64(size)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
