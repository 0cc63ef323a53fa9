// Package imgio loads and saves the image files consumed by the
// preparation pipeline.
package imgio

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Load reads an image from a file path. JPEG, PNG, GIF, BMP, TIFF and
// WebP are supported.
func Load(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	if strings.Contains(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// Decode reads an image from a reader.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Save writes an image to a file. The format is chosen by extension:
// jpg/jpeg (with the given quality), png, or webp (quality, and lossless
// when requested).
func Save(img image.Image, path string, quality int, lossless bool) error {
	ext := strings.ToLower(strings.TrimPrefix(pathExt(path), "."))
	switch ext {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		opts := &webp.Options{Lossless: lossless, Quality: float32(quality)}
		return webp.Encode(f, img, opts)
	case "png":
		return imaging.Save(img, path)
	case "jpg", "jpeg":
		return imaging.Save(img, path, imaging.JPEGQuality(quality))
	default:
		return fmt.Errorf("unsupported output format: %s", ext)
	}
}

// ToNRGBA returns a mutable NRGBA copy of an image.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Info contains basic image metadata.
type Info struct {
	Width       int
	Height      int
	AspectRatio float64
	Area        int
}

// GetInfo returns basic information about an image.
func GetInfo(img image.Image) Info {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return Info{
		Width:       w,
		Height:      h,
		AspectRatio: float64(w) / float64(h),
		Area:        w * h,
	}
}

func pathExt(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			return path[i:]
		case '/', '\\':
			return ""
		}
	}
	return ""
}
