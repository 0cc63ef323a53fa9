package geometry

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Boundary records the pixel extents of an image placed on a canvas.
type Boundary struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// BoundsOf returns the boundary of an image before any padding.
func BoundsOf(img image.Image) Boundary {
	b := img.Bounds()
	return Boundary{Top: 0, Left: 0, Right: b.Dx(), Bottom: b.Dy()}
}

// Shift moves the boundary to account for padding added around the image.
func (b Boundary) Shift(p Padding) Boundary {
	return Boundary{
		Top:    p.Top,
		Left:   p.Left,
		Right:  b.Right + p.Left,
		Bottom: b.Bottom + p.Top,
	}
}

// Padding holds the pixel counts added on each side of an image to reach
// a target canvas size.
type Padding struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Pad places the image on a black canvas enlarged by the given padding.
func Pad(img image.Image, p Padding) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(b.Dx()+p.Left+p.Right, b.Dy()+p.Top+p.Bottom, color.NRGBA{0, 0, 0, 255})
	return imaging.Paste(canvas, img, image.Pt(p.Left, p.Top))
}

// PadToCanvas centers the image on a maxWidth x maxHeight black canvas
// and reports the padding that was applied. The image must fit the canvas.
func PadToCanvas(img image.Image, maxWidth, maxHeight int) (*image.NRGBA, Padding, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if h > maxHeight || w > maxWidth {
		return nil, Padding{}, fmt.Errorf("image %dx%d exceeds canvas %dx%d", w, h, maxWidth, maxHeight)
	}
	padH := maxHeight - h
	padW := maxWidth - w
	p := Padding{
		Top:    padH / 2,
		Bottom: padH - padH/2,
		Left:   padW / 2,
		Right:  padW - padW/2,
	}
	return Pad(img, p), p, nil
}

// Crop extracts the boundary region from an image. Cropping a padded
// image with its shifted boundary recovers the original pixels.
func Crop(img image.Image, b Boundary) *image.NRGBA {
	return imaging.Crop(img, image.Rect(b.Left, b.Top, b.Right, b.Bottom))
}

// MaxDims returns the maximum height and maximum width over a batch of
// images. The maxima are taken per dimension and may come from
// different images.
func MaxDims(imgs []image.Image) (maxHeight, maxWidth int) {
	for _, img := range imgs {
		b := img.Bounds()
		if h := b.Dy(); h > maxHeight {
			maxHeight = h
		}
		if w := b.Dx(); w > maxWidth {
			maxWidth = w
		}
	}
	return maxHeight, maxWidth
}
