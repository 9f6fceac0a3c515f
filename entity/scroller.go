package entity

import (
	"image"

	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/physics"
)

// scroller is the shared leftward motion of pipes and ground
type scroller struct {
	X, Y   int
	carry  float64
	sprite *asset.Sprite
	params *physics.Params
}

// Advance moves left by ScrollSpeed, no vertical motion
func (s *scroller) Advance() {
	physics.Scroll(&s.X, &s.carry, s.params.ScrollSpeed)
}

func (s *scroller) Sprite() *asset.Sprite { return s.sprite }

func (s *scroller) Position() image.Point { return image.Pt(s.X, s.Y) }

func (s *scroller) Bounds() image.Rectangle { return spriteBounds(s.sprite, s.X, s.Y) }

func (s *scroller) Mask() *physics.Mask { return s.sprite.Mask }

// Pipe is one half of an obstacle pair
type Pipe struct {
	scroller
	Inverted bool
	// Exposed is the visible pipe length measured from its screen edge
	Exposed int
}

// NewPipe places a pipe with the given exposed length at x. A bottom pipe rises
// from the screen bottom, an inverted pipe hangs from the top
func NewPipe(inverted bool, x, exposed, screenHeight int, sprite *asset.Sprite, params *physics.Params) *Pipe {
	y := screenHeight - exposed
	if inverted {
		y = exposed - sprite.Height()
	}
	return &Pipe{
		scroller: scroller{X: x, Y: y, sprite: sprite, params: params},
		Inverted: inverted,
		Exposed:  exposed,
	}
}

// Kind implements Entity
func (p *Pipe) Kind() Kind { return KindPipe }

// Ground is one segment of the scrolling floor strip
type Ground struct {
	scroller
}

// NewGround places a ground segment at x on the floor band starting at y
func NewGround(x, y int, sprite *asset.Sprite, params *physics.Params) *Ground {
	return &Ground{scroller: scroller{X: x, Y: y, sprite: sprite, params: params}}
}

// Kind implements Entity
func (g *Ground) Kind() Kind { return KindGround }
