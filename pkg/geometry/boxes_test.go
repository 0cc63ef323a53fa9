package geometry

import "testing"

func TestDenormalizeBox(t *testing.T) {
	// [y1, x1, y2, x2] fractions on a 200x100 image
	b := NormBox{0.1, 0.25, 0.9, 0.75}
	got := DenormalizeBox(b, 200, 100)

	want := PixelBox{50, 10, 150, 90}
	if got != want {
		t.Errorf("DenormalizeBox = %v, want %v", got, want)
	}
}

func TestDenormalizeBoxRounding(t *testing.T) {
	b := NormBox{0, 1.0 / 3.0, 1, 2.0 / 3.0}
	got := DenormalizeBox(b, 200, 100)

	// 200/3 = 66.67 and 400/3 = 133.33 round to nearest
	if got[0] != 67 || got[2] != 133 {
		t.Errorf("expected x coords 67 and 133, got %d and %d", got[0], got[2])
	}
}

func TestDenormalizeBoxClampsFractions(t *testing.T) {
	b := NormBox{-0.2, -0.1, 1.3, 1.5}
	got := DenormalizeBox(b, 200, 100)

	want := PixelBox{0, 0, 200, 100}
	if got != want {
		t.Errorf("out-of-range fractions should clamp to image: got %v, want %v", got, want)
	}
}

func TestDenormalizeBoxes(t *testing.T) {
	boxes := []NormBox{
		{0, 0, 1, 1},
		{0.5, 0.5, 1, 1},
	}
	got := DenormalizeBoxes(boxes, 100, 50)

	if len(got) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(got))
	}
	if got[0] != (PixelBox{0, 0, 100, 50}) {
		t.Errorf("full box = %v", got[0])
	}
	if got[1] != (PixelBox{50, 25, 100, 50}) {
		t.Errorf("quarter box = %v", got[1])
	}
}

func TestNormalizeBoxRoundTrip(t *testing.T) {
	orig := PixelBox{20, 10, 80, 40}
	norm := NormalizeBox(orig, 100, 50)
	back := DenormalizeBox(norm, 100, 50)

	if back != orig {
		t.Errorf("round trip changed box: %v -> %v -> %v", orig, norm, back)
	}
}

func TestShiftBoxes(t *testing.T) {
	boxes := []PixelBox{{1, 2, 3, 4}}
	got := ShiftBoxes(boxes, 10, 20)

	if got[0] != (PixelBox{11, 22, 13, 24}) {
		t.Errorf("ShiftBoxes = %v", got[0])
	}
	if boxes[0] != (PixelBox{1, 2, 3, 4}) {
		t.Error("ShiftBoxes must not mutate its input")
	}
}

func TestScaleBoxes(t *testing.T) {
	boxes := []PixelBox{{10, 20, 30, 40}}
	got := ScaleBoxes(boxes, 0.5, 2)

	if got[0] != (PixelBox{5, 40, 15, 80}) {
		t.Errorf("ScaleBoxes = %v", got[0])
	}
}

func TestPixelBoxAccessors(t *testing.T) {
	b := PixelBox{10, 20, 35, 50}
	if b.Width() != 25 {
		t.Errorf("Width = %d, want 25", b.Width())
	}
	if b.Height() != 30 {
		t.Errorf("Height = %d, want 30", b.Height())
	}
}
