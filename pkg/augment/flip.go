// Package augment holds the training-time augmentations applied to
// images and their ground-truth boxes.
package augment

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/ekinp/vocprep/pkg/geometry"
)

// FlipHorizontal mirrors the image and rewrites its normalized
// [y1, x1, y2, x2] boxes to match: x coordinates are reflected and
// swapped so the box stays well formed.
func FlipHorizontal(img image.Image, boxes []geometry.NormBox) (*image.NRGBA, []geometry.NormBox) {
	flipped := make([]geometry.NormBox, len(boxes))
	for i, b := range boxes {
		flipped[i] = geometry.NormBox{b[0], 1 - b[3], b[2], 1 - b[1]}
	}
	return imaging.FlipH(img), flipped
}

// MaybeFlipHorizontal applies FlipHorizontal with probability 0.5 using
// the supplied source of randomness. It reports whether the flip was
// applied.
func MaybeFlipHorizontal(rng *rand.Rand, img image.Image, boxes []geometry.NormBox) (image.Image, []geometry.NormBox, bool) {
	if rng.Float64() < 0.5 {
		flippedImg, flippedBoxes := FlipHorizontal(img, boxes)
		return flippedImg, flippedBoxes, true
	}
	return img, boxes, false
}
