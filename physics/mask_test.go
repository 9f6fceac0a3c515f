package physics

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskSetGet(t *testing.T) {
	m := NewMask(70, 3)

	m.Set(0, 0, true)
	m.Set(65, 2, true)
	m.Set(-1, 0, true) // ignored
	m.Set(70, 0, true) // ignored

	if !m.Get(0, 0) || !m.Get(65, 2) {
		t.Error("Expected set pixels to be opaque")
	}
	if m.Get(1, 0) || m.Get(64, 2) {
		t.Error("Expected neighbours to stay transparent")
	}
	if m.Get(-1, 0) || m.Get(0, 3) {
		t.Error("Expected out of range reads to be transparent")
	}
	if got := m.Count(); got != 2 {
		t.Errorf("Expected 2 opaque pixels, got %d", got)
	}

	m.Set(0, 0, false)
	if m.Get(0, 0) {
		t.Error("Expected cleared pixel to be transparent")
	}
}

func TestNewMaskFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.SetRGBA(1, 0, color.RGBA{A: 255})
	img.SetRGBA(2, 1, color.RGBA{A: 200})
	img.SetRGBA(3, 1, color.RGBA{A: 100})

	m := NewMaskFromImage(img, 127)

	if w, h := m.Size(); w != 4 || h != 2 {
		t.Fatalf("Expected 4x2 mask, got %dx%d", w, h)
	}
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, 1, true},
		{3, 1, false}, // below threshold
	}
	for _, c := range cases {
		if got := m.Get(c.x, c.y); got != c.want {
			t.Errorf("Get(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestMaskFlipVertical(t *testing.T) {
	m := NewMask(3, 4)
	m.Set(2, 0, true)
	m.Set(0, 1, true)

	f := m.FlipVertical()

	if !f.Get(2, 3) || !f.Get(0, 2) {
		t.Error("Expected rows mirrored top to bottom")
	}
	if f.Count() != m.Count() {
		t.Errorf("Expected %d opaque pixels after flip, got %d", m.Count(), f.Count())
	}
	if m.Get(2, 3) {
		t.Error("Expected original mask untouched")
	}
}

func TestMaskOverlap(t *testing.T) {
	// Single opaque pixel at (4,4) in a 5x5 mask
	corner := NewMask(5, 5)
	corner.Set(4, 4, true)
	solid := NewSolidMask(5, 5)

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"coincident", 0, 0, true},
		{"touching corner pixel", 4, 4, true},
		{"just past corner", 5, 5, false},
		{"shifted left past corner", -1, 0, false},
		{"far away", 100, -100, false},
		{"above corner row", 0, -5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := corner.Overlap(solid, tt.dx, tt.dy); got != tt.want {
				t.Errorf("Overlap(%d,%d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestMaskOverlapTransparentRegions(t *testing.T) {
	// Two L shapes whose boxes overlap but whose opaque pixels do not
	a := NewMask(4, 4)
	b := NewMask(4, 4)
	for i := 0; i < 4; i++ {
		a.Set(0, i, true)
		b.Set(3, i, true)
	}
	if a.Overlap(b, 0, 0) {
		t.Error("Expected disjoint columns not to overlap")
	}
	if !a.Overlap(b, -3, 0) {
		t.Error("Expected columns aligned by offset to overlap")
	}
}
