// Package overlay draws diagnostic rectangles over images: ground-truth
// or anchor boxes, and the stride grid of a feature map. Output is a new
// image; callers decide where to write it.
package overlay

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ekinp/vocprep/pkg/geometry"
)

var (
	anchorColor = color.NRGBA{255, 0, 0, 255}
	gridColor   = color.NRGBA{255, 255, 255, 255}
	boxColor    = color.NRGBA{0, 255, 0, 255}
)

// DrawAnchors pads the image by pad pixels on every side, shifts the
// anchor boxes accordingly and outlines them in red. The padding keeps
// anchors that extend past the image edges visible.
func DrawAnchors(img image.Image, anchors []geometry.PixelBox, pad int) *image.NRGBA {
	padded := geometry.Pad(img, geometry.Padding{Top: pad, Bottom: pad, Left: pad, Right: pad})
	for _, a := range anchors {
		drawRect(padded, a.Shift(pad, pad), anchorColor, 1)
	}
	return padded
}

// DrawBoxes outlines ground-truth boxes in green on a copy of the image.
func DrawBoxes(img image.Image, boxes []geometry.PixelBox) *image.NRGBA {
	out := imaging.Clone(img)
	for _, b := range boxes {
		drawRect(out, b, boxColor, 2)
	}
	return out
}

// DrawGridMap marks each feature-map cell of the grid with a small white
// square centered on the cell's projection into image space.
func DrawGridMap(img image.Image, grid []geometry.PixelBox, stride int) *image.NRGBA {
	out := imaging.Clone(img)
	for _, g := range grid {
		cell := geometry.PixelBox{
			g[0] + stride/2 - 2,
			g[1] + stride/2 - 2,
			g[2] + stride/2 + 2,
			g[3] + stride/2 + 2,
		}
		drawRect(out, cell, gridColor, 1)
	}
	return out
}

func drawRect(img *image.NRGBA, b geometry.PixelBox, c color.NRGBA, stroke int) {
	x0, y0, x1, y1 := b[0], b[1], b[2], b[3]
	for s := 0; s < stroke; s++ {
		drawHLine(img, y0+s, x0, x1, c)
		drawHLine(img, y1-1-s, x0, x1, c)
		drawVLine(img, x0+s, y0, y1, c)
		drawVLine(img, x1-1-s, y0, y1, c)
	}
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 <= 0 || x0 >= img.Bounds().Dx() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > img.Bounds().Dx() {
		x1 = img.Bounds().Dx()
	}
	i := y*img.Stride + x0*4
	for x := x0; x < x1; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += 4
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y1 <= 0 || y0 >= img.Bounds().Dy() {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > img.Bounds().Dy() {
		y1 = img.Bounds().Dy()
	}
	i := y0*img.Stride + x*4
	for y := y0; y < y1; y++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += img.Stride
	}
}
