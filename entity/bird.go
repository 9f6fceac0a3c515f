package entity

import (
	"image"
	"math"

	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/physics"
)

// Bird is the player body: fixed x, gravity-driven y
type Bird struct {
	X int
	physics.Kinetic

	params *physics.Params
	frames [constant.BirdFrames]*asset.Sprite
	frame  int
}

// NewBird places the bird at (x, y) at rest
func NewBird(x int, y float64, frames [constant.BirdFrames]*asset.Sprite, params *physics.Params) *Bird {
	return &Bird{
		X:       x,
		Kinetic: physics.Kinetic{Y: y},
		params:  params,
		frames:  frames,
	}
}

// Kind implements Entity
func (b *Bird) Kind() Kind { return KindBird }

// Flap sets velocity to exactly -FlapSpeed regardless of prior motion
func (b *Bird) Flap() {
	physics.SetImpulse(&b.Kinetic, -b.params.FlapSpeed)
}

// Animate steps the wing frame, used alone while waiting to start
func (b *Bird) Animate() {
	b.frame = (b.frame + 1) % len(b.frames)
}

// Advance animates and applies one tick of gravity
func (b *Bird) Advance() {
	b.Animate()
	physics.Integrate(&b.Kinetic, b.params.Gravity)
}

// Frame returns the current wing frame index
func (b *Bird) Frame() int {
	return b.frame
}

// Sprite implements Entity
func (b *Bird) Sprite() *asset.Sprite {
	return b.frames[b.frame]
}

// Position implements Entity
func (b *Bird) Position() image.Point {
	return image.Pt(b.X, int(math.Floor(b.Y)))
}

// Bounds implements physics.Body
func (b *Bird) Bounds() image.Rectangle {
	p := b.Position()
	return spriteBounds(b.Sprite(), p.X, p.Y)
}

// Mask implements physics.Body using the current frame's silhouette
func (b *Bird) Mask() *physics.Mask {
	return b.Sprite().Mask
}
