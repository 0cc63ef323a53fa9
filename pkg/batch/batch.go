// Package batch assembles variable-sized samples into a uniform padded
// batch so a convolutional network can consume them together.
package batch

import (
	"fmt"
	"image"

	"github.com/ekinp/vocprep/pkg/geometry"
)

// PadLabel marks padded ground-truth slots; real class IDs start at 0.
const PadLabel = -1

// Sample is one image with its ground-truth boxes and class labels.
type Sample struct {
	Image  image.Image
	Boxes  []geometry.PixelBox
	Labels []int
}

// Options controls batch assembly.
type Options struct {
	// MaxHeight and MaxWidth bound the canvas. Zero means no bound;
	// otherwise a sample exceeding the bound is an error.
	MaxHeight int
	MaxWidth  int
	// PadLabel fills unused label slots.
	PadLabel int
}

// DefaultOptions bounds the canvas at the VOC 500x500 limit and pads
// labels with -1.
func DefaultOptions() Options {
	return Options{MaxHeight: 500, MaxWidth: 500, PadLabel: PadLabel}
}

// Item is one batch entry after padding.
type Item struct {
	Image    *image.NRGBA
	Boxes    []geometry.PixelBox
	Labels   []int
	Padding  geometry.Padding
	Boundary geometry.Boundary
}

// Build pads every sample to the batch-wide maximum height and width,
// shifts its boxes by the padding offset, and pads the box and label
// slices to the largest per-sample count. Box slots are zero-filled and
// label slots take opts.PadLabel.
func Build(samples []Sample, opts Options) ([]Item, error) {
	if len(samples) == 0 {
		return nil, nil
	}

	imgs := make([]image.Image, len(samples))
	maxBoxes := 0
	for i, s := range samples {
		if len(s.Boxes) != len(s.Labels) {
			return nil, fmt.Errorf("sample %d: %d boxes but %d labels", i, len(s.Boxes), len(s.Labels))
		}
		imgs[i] = s.Image
		if len(s.Boxes) > maxBoxes {
			maxBoxes = len(s.Boxes)
		}
	}

	maxH, maxW := geometry.MaxDims(imgs)
	if opts.MaxHeight > 0 && maxH > opts.MaxHeight {
		return nil, fmt.Errorf("batch height %d exceeds limit %d", maxH, opts.MaxHeight)
	}
	if opts.MaxWidth > 0 && maxW > opts.MaxWidth {
		return nil, fmt.Errorf("batch width %d exceeds limit %d", maxW, opts.MaxWidth)
	}

	items := make([]Item, len(samples))
	for i, s := range samples {
		padded, padding, err := geometry.PadToCanvas(s.Image, maxW, maxH)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}

		boxes := geometry.ShiftBoxes(s.Boxes, padding.Left, padding.Top)
		labels := append([]int(nil), s.Labels...)
		for len(boxes) < maxBoxes {
			boxes = append(boxes, geometry.PixelBox{})
			labels = append(labels, opts.PadLabel)
		}

		items[i] = Item{
			Image:    padded,
			Boxes:    boxes,
			Labels:   labels,
			Padding:  padding,
			Boundary: geometry.BoundsOf(s.Image).Shift(padding),
		}
	}
	return items, nil
}
