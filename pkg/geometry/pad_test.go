package geometry

import (
	"image"
	"image/color"
	"testing"
)

// createTestImage creates an image with a unique color per pixel
func createTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x*16 + 1), uint8(y*16 + 1), 200, 255})
		}
	}
	return img
}

func TestPadToCanvas(t *testing.T) {
	img := createTestImage(4, 3)

	padded, padding, err := PadToCanvas(img, 10, 7)
	if err != nil {
		t.Fatalf("PadToCanvas failed: %v", err)
	}

	want := Padding{Top: 2, Bottom: 2, Left: 3, Right: 3}
	if padding != want {
		t.Errorf("padding = %+v, want %+v", padding, want)
	}

	b := padded.Bounds()
	if b.Dx() != 10 || b.Dy() != 7 {
		t.Fatalf("canvas = %dx%d, want 10x7", b.Dx(), b.Dy())
	}

	// Original pixels preserved at the offset
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			got := padded.NRGBAAt(x+padding.Left, y+padding.Top)
			if got != img.NRGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, img.NRGBAAt(x, y))
			}
		}
	}

	// Padding area is zero-filled (black)
	black := color.NRGBA{0, 0, 0, 255}
	if got := padded.NRGBAAt(0, 0); got != black {
		t.Errorf("corner pixel = %v, want black", got)
	}
	if got := padded.NRGBAAt(9, 6); got != black {
		t.Errorf("corner pixel = %v, want black", got)
	}
}

func TestPadCropRoundTrip(t *testing.T) {
	img := createTestImage(5, 8)

	padded, padding, err := PadToCanvas(img, 12, 12)
	if err != nil {
		t.Fatalf("PadToCanvas failed: %v", err)
	}

	boundary := BoundsOf(img).Shift(padding)
	restored := Crop(padded, boundary)

	if restored.Bounds().Dx() != 5 || restored.Bounds().Dy() != 8 {
		t.Fatalf("restored = %dx%d, want 5x8", restored.Bounds().Dx(), restored.Bounds().Dy())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 5; x++ {
			if restored.NRGBAAt(x, y) != img.NRGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) changed after round trip", x, y)
			}
		}
	}
}

func TestPadToCanvasTooLarge(t *testing.T) {
	img := createTestImage(20, 10)

	if _, _, err := PadToCanvas(img, 10, 10); err == nil {
		t.Error("expected error when image exceeds canvas")
	}
}

func TestPadAsymmetric(t *testing.T) {
	img := createTestImage(2, 2)
	padded := Pad(img, Padding{Top: 1, Bottom: 2, Left: 3, Right: 4})

	b := padded.Bounds()
	if b.Dx() != 9 || b.Dy() != 5 {
		t.Errorf("padded = %dx%d, want 9x5", b.Dx(), b.Dy())
	}
	if padded.NRGBAAt(3, 1) != img.NRGBAAt(0, 0) {
		t.Error("image content not at expected offset")
	}
}

func TestBoundaryShift(t *testing.T) {
	b := Boundary{Top: 0, Left: 0, Right: 40, Bottom: 30}
	got := b.Shift(Padding{Top: 5, Bottom: 5, Left: 10, Right: 10})

	want := Boundary{Top: 5, Left: 10, Right: 50, Bottom: 35}
	if got != want {
		t.Errorf("Shift = %+v, want %+v", got, want)
	}
}

func TestResizeMaxLandscape(t *testing.T) {
	img := createTestImage(400, 300)
	out := ResizeMax(img, 200)

	b := out.Bounds()
	if b.Dx() != 200 || b.Dy() != 150 {
		t.Errorf("resized = %dx%d, want 200x150", b.Dx(), b.Dy())
	}
}

func TestResizeMaxPortrait(t *testing.T) {
	img := createTestImage(300, 400)
	out := ResizeMax(img, 200)

	b := out.Bounds()
	if b.Dx() != 150 || b.Dy() != 200 {
		t.Errorf("resized = %dx%d, want 150x200", b.Dx(), b.Dy())
	}
}

func TestResizeMaxNeverUpscales(t *testing.T) {
	img := createTestImage(100, 50)
	out := ResizeMax(img, 200)

	if out != image.Image(img) {
		t.Error("image within the limit should be returned unchanged")
	}
}

func TestResizeMaxPreservesAspectRatio(t *testing.T) {
	img := createTestImage(467, 313)
	out := ResizeMax(img, 250)

	b := out.Bounds()
	if b.Dx() != 250 {
		t.Fatalf("long side = %d, want 250", b.Dx())
	}
	// 313 * 250/467 = 167.55 -> 168 within integer rounding
	if b.Dy() != 168 {
		t.Errorf("short side = %d, want 168", b.Dy())
	}
}

func TestMaxDims(t *testing.T) {
	imgs := []image.Image{
		createTestImage(100, 50),
		createTestImage(30, 200),
	}

	maxH, maxW := MaxDims(imgs)
	if maxH != 200 || maxW != 100 {
		t.Errorf("MaxDims = (%d, %d), want (200, 100)", maxH, maxW)
	}
}

func TestMaxDimsEmpty(t *testing.T) {
	maxH, maxW := MaxDims(nil)
	if maxH != 0 || maxW != 0 {
		t.Errorf("MaxDims(nil) = (%d, %d), want (0, 0)", maxH, maxW)
	}
}
