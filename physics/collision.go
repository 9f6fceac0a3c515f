package physics

import "image"

// Body is anything with a screen-space bounding box and an opacity mask
// The mask is aligned to Bounds().Min
type Body interface {
	Bounds() image.Rectangle
	Mask() *Mask
}

// Collides reports pixel-accurate overlap between two bodies
// Bounding boxes are rejected first, masks decide the rest
func Collides(a, b Body) bool {
	ra, rb := a.Bounds(), b.Bounds()
	if !ra.Overlaps(rb) {
		return false
	}
	ma, mb := a.Mask(), b.Mask()
	if ma == nil || mb == nil {
		// Maskless bodies fall back to their boxes
		return true
	}
	return ma.Overlap(mb, rb.Min.X-ra.Min.X, rb.Min.Y-ra.Min.Y)
}

// CollidesAny returns the first body in others that collides with a
func CollidesAny[T Body](a Body, others []T) (T, bool) {
	for _, o := range others {
		if Collides(a, o) {
			return o, true
		}
	}
	var zero T
	return zero, false
}
