package physics

import (
	"image"
	"math/bits"
)

// Mask is a per-pixel opacity bitset, row-major, one bit per pixel
type Mask struct {
	w, h   int
	stride int // uint64 words per row
	bits   []uint64
}

// NewMask creates an empty (fully transparent) mask
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Mask{w: w, h: h, stride: stride, bits: make([]uint64, stride*h)}
}

// NewMaskFromImage marks every pixel whose alpha exceeds threshold as opaque
func NewMaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if uint8(a>>8) > threshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// NewSolidMask creates a fully opaque mask
func NewSolidMask(w, h int) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

// Size returns mask dimensions
func (m *Mask) Size() (w, h int) {
	return m.w, m.h
}

// Get reports whether pixel (x, y) is opaque, out of range is transparent
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Set updates pixel (x, y), out of range is ignored
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	idx := y*m.stride + x/64
	bit := uint64(1) << uint(x%64)
	if opaque {
		m.bits[idx] |= bit
	} else {
		m.bits[idx] &^= bit
	}
}

// Count returns the number of opaque pixels
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// FlipVertical returns a copy mirrored top-to-bottom
func (m *Mask) FlipVertical() *Mask {
	out := NewMask(m.w, m.h)
	for y := 0; y < m.h; y++ {
		copy(out.bits[(m.h-1-y)*m.stride:(m.h-y)*m.stride], m.bits[y*m.stride:(y+1)*m.stride])
	}
	return out
}

// Overlap reports whether any opaque pixel of m coincides with an opaque pixel
// of other, where other's origin sits at (dx, dy) in m's coordinates
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, dx+other.w)
	y1 := min(m.h, dy+other.h)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
