package system

import (
	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/entity"
	"github.com/lixenwraith/tof-flappy/physics"
)

// GroundStrip keeps a fixed number of floor segments covering the screen width
type GroundStrip struct {
	sprite   *asset.Sprite
	params   *physics.Params
	y        int
	segments []*entity.Ground
}

// NewGroundStrip lays count segments edge to edge from x = 0 on the band at y
func NewGroundStrip(count, y int, sprite *asset.Sprite, params *physics.Params) *GroundStrip {
	g := &GroundStrip{
		sprite:   sprite,
		params:   params,
		y:        y,
		segments: make([]*entity.Ground, 0, count),
	}
	for i := 0; i < count; i++ {
		g.segments = append(g.segments, entity.NewGround(i*sprite.Width(), y, sprite, params))
	}
	return g
}

// Advance scrolls every segment one tick
func (g *GroundStrip) Advance() {
	for _, s := range g.segments {
		s.Advance()
	}
}

// Recycle moves each off-screen segment to immediately after the trailing one
// Returns the number of segments recycled
func (g *GroundStrip) Recycle() int {
	n := 0
	for len(g.segments) > 0 && entity.OffScreen(g.segments[0]) {
		trailing := g.segments[len(g.segments)-1]
		seg := g.segments[0]
		copy(g.segments, g.segments[1:])
		seg.X = trailing.Bounds().Max.X
		g.segments[len(g.segments)-1] = seg
		n++
	}
	return n
}

// Segments returns the live segments, leading first
func (g *GroundStrip) Segments() []*entity.Ground {
	return g.segments
}

// Covers reports whether the strip spans [0, width) without gaps
func (g *GroundStrip) Covers(width int) bool {
	x := 0
	for _, s := range g.segments {
		if x >= width {
			return true
		}
		b := s.Bounds()
		if b.Min.X > x {
			return false
		}
		if b.Max.X > x {
			x = b.Max.X
		}
	}
	return x >= width
}
