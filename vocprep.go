// Package vocprep prepares the Pascal VOC 2007 dataset for Region
// Proposal Network training: it indexes image sets, parses annotations,
// and normalizes image and bounding-box geometry so variable-sized
// images can be batched for a convolutional network.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/ekinp/vocprep"
//		"github.com/ekinp/vocprep/pkg/voc"
//	)
//
//	func main() {
//		pipeline := vocprep.New(voc.DefaultRoot)
//
//		anns, err := pipeline.LoadSplit("trainval", []string{"cat", "dog"})
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("%d annotated images\n", len(anns))
//
//		items, err := pipeline.BuildBatch(anns)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("%d padded batch items\n", len(items))
//	}
//
// The package consists of four main components:
//
// 1. voc (pkg/voc): dataset indexing and annotation parsing
// 2. geometry (pkg/geometry): box conversion, padding and resizing
// 3. batch (pkg/batch): uniform padded-batch assembly
// 4. overlay/report (pkg/overlay, pkg/report): diagnostics
package vocprep

import (
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/ekinp/vocprep/internal/utils"
	"github.com/ekinp/vocprep/pkg/augment"
	"github.com/ekinp/vocprep/pkg/batch"
	"github.com/ekinp/vocprep/pkg/geometry"
	"github.com/ekinp/vocprep/pkg/imgio"
	"github.com/ekinp/vocprep/pkg/voc"
)

// Version of the vocprep library
const Version = "1.0.0"

// Pipeline ties dataset loading and geometric preprocessing together.
type Pipeline struct {
	root    string
	maxSide int
	opts    batch.Options
	rng     *rand.Rand
}

// New creates a Pipeline rooted at a VOC devkit directory with default
// geometry bounds.
func New(root string) *Pipeline {
	return &Pipeline{
		root:    root,
		maxSide: 500,
		opts:    batch.DefaultOptions(),
	}
}

// NewWithOptions creates a Pipeline with custom resize and batch bounds.
func NewWithOptions(root string, maxSide int, opts batch.Options) *Pipeline {
	return &Pipeline{root: root, maxSide: maxSide, opts: opts}
}

// EnableAugmentation turns on random horizontal flips during batch
// assembly, driven by the supplied source of randomness.
func (p *Pipeline) EnableAugmentation(rng *rand.Rand) {
	p.rng = rng
}

// LoadSplit indexes one split for the given classes.
func (p *Pipeline) LoadSplit(split string, classes []string) ([]*voc.Annotation, error) {
	return voc.LoadDataset(p.root, split, classes)
}

// LoadImages decodes the image of every annotation, in order.
func (p *Pipeline) LoadImages(anns []*voc.Annotation) ([]image.Image, error) {
	imgs := make([]image.Image, len(anns))
	for i, ann := range anns {
		img, err := imgio.Load(ann.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", ann.ImagePath, err)
		}
		imgs[i] = img
	}
	return imgs, nil
}

// LoadCustomImages loads every image file directly inside dir and
// resizes each to exactly width x height, the shape an inference feed
// expects for unannotated images. The images are returned together
// with their source paths.
func (p *Pipeline) LoadCustomImages(dir string, width, height int) ([]image.Image, []string, error) {
	paths, err := utils.ListImageFiles(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	imgs := make([]image.Image, len(paths))
	for i, path := range paths {
		img, err := imgio.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		imgs[i] = geometry.ResizeTo(img, width, height)
	}
	return imgs, paths, nil
}

// BuildBatch loads every annotated image, shrinks any image whose longer
// side exceeds the pipeline bound (rescaling its boxes to match), and
// assembles the result into one uniform padded batch. When augmentation
// is enabled, each image is flipped horizontally with probability 0.5
// before padding.
func (p *Pipeline) BuildBatch(anns []*voc.Annotation) ([]batch.Item, error) {
	imgs, err := p.LoadImages(anns)
	if err != nil {
		return nil, err
	}

	samples := make([]batch.Sample, len(anns))
	for i, ann := range anns {
		img := imgs[i]
		boxes := make([]geometry.PixelBox, len(ann.GTBoxes))
		labels := make([]int, len(ann.GTBoxes))
		for j, gt := range ann.GTBoxes {
			boxes[j] = geometry.PixelBox{gt.XMin, gt.YMin, gt.XMax, gt.YMax}
			labels[j] = gt.ClassID
		}

		if p.maxSide > 0 {
			resized := geometry.ResizeMax(img, p.maxSide)
			if resized != img {
				ob, rb := img.Bounds(), resized.Bounds()
				sx := float64(rb.Dx()) / float64(ob.Dx())
				sy := float64(rb.Dy()) / float64(ob.Dy())
				boxes = geometry.ScaleBoxes(boxes, sx, sy)
				img = resized
			}
		}

		if p.rng != nil {
			b := img.Bounds()
			norm := geometry.NormalizeBoxes(boxes, b.Dx(), b.Dy())
			flippedImg, flippedBoxes, did := augment.MaybeFlipHorizontal(p.rng, img, norm)
			if did {
				img = flippedImg
				boxes = geometry.DenormalizeBoxes(flippedBoxes, b.Dx(), b.Dy())
			}
		}

		samples[i] = batch.Sample{Image: img, Boxes: boxes, Labels: labels}
	}
	return batch.Build(samples, p.opts)
}

// ModelWeightsPath returns the conventional weights file location,
// models/stride_<n>_rpn_model_weights.h5, creating the models directory
// if needed. A stride of 0 drops the stride prefix.
func ModelWeightsPath(stride int) (string, error) {
	dir := "models"
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create models directory: %w", err)
	}
	name := "rpn_model_weights.h5"
	if stride > 0 {
		name = fmt.Sprintf("stride_%d_%s", stride, name)
	}
	return filepath.Join(dir, name), nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
