package imgio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
)

func createTestImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 8), uint8(y * 8), 100, 255})
		}
	}
	return img
}

func TestSaveLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	img := createTestImage(24, 16)

	if err := Save(img, path, 90, false); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	b := loaded.Bounds()
	if b.Dx() != 24 || b.Dy() != 16 {
		t.Errorf("loaded = %dx%d, want 24x16", b.Dx(), b.Dy())
	}
}

func TestSaveLoadJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.jpg")
	img := createTestImage(32, 20)

	if err := Save(img, path, 90, false); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	b := loaded.Bounds()
	if b.Dx() != 32 || b.Dy() != 20 {
		t.Errorf("loaded = %dx%d, want 32x20", b.Dx(), b.Dy())
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.xyz")

	if err := Save(createTestImage(4, 4), path, 90, false); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.jpg")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, createTestImage(12, 8)); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 12 || b.Dy() != 8 {
		t.Errorf("decoded = %dx%d, want 12x8", b.Dx(), b.Dy())
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("not an image")); err == nil {
		t.Error("expected error for undecodable data")
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo(createTestImage(400, 300))

	if info.Width != 400 || info.Height != 300 {
		t.Errorf("info = %dx%d, want 400x300", info.Width, info.Height)
	}
	if info.AspectRatio < 1.32 || info.AspectRatio > 1.34 {
		t.Errorf("aspect ratio = %f, want ~1.33", info.AspectRatio)
	}
	if info.Area != 120000 {
		t.Errorf("area = %d, want 120000", info.Area)
	}
}

func TestToNRGBA(t *testing.T) {
	img := createTestImage(10, 10)
	nrgba := ToNRGBA(img)

	if nrgba.Bounds() != img.Bounds() {
		t.Error("ToNRGBA changed bounds")
	}

	// The copy must be independent of the original
	nrgba.SetNRGBA(0, 0, color.NRGBA{1, 2, 3, 255})
	if img.(*image.NRGBA).NRGBAAt(0, 0) == nrgba.NRGBAAt(0, 0) {
		t.Error("ToNRGBA should return a copy")
	}
}
