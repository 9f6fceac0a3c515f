// Package entity defines the simulated bodies of the game world: the bird,
// pipes and ground segments. Each variant advances itself by one tick and
// exposes the geometry the collision detector needs.
package entity

import (
	"image"

	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/physics"
)

// Kind tags an entity variant for explicit dispatch
type Kind uint8

const (
	KindBird Kind = iota
	KindPipe
	KindGround
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindBird:
		return "Bird"
	case KindPipe:
		return "Pipe"
	case KindGround:
		return "Ground"
	default:
		return "Unknown"
	}
}

// Entity is the capability set shared by all simulated bodies
type Entity interface {
	physics.Body
	Kind() Kind
	Advance()
	Sprite() *asset.Sprite
	Position() image.Point
}

// OffScreen reports whether an entity's right edge has passed the left screen boundary
func OffScreen(e Entity) bool {
	return e.Bounds().Max.X < 0
}

// spriteBounds places a sprite's rectangle at (x, y)
func spriteBounds(s *asset.Sprite, x, y int) image.Rectangle {
	return image.Rect(x, y, x+s.Width(), y+s.Height())
}
