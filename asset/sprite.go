// Package asset provides the game's sprite set: pixel images paired with the
// opacity masks used for collision.
package asset

import (
	"image"
	"image/draw"

	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/physics"
)

// Sprite is an RGBA image with its precomputed opacity mask
type Sprite struct {
	Name  string
	Image *image.RGBA
	Mask  *physics.Mask
}

// NewSprite copies img into an origin-aligned RGBA and derives its mask
func NewSprite(name string, img image.Image) *Sprite {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Sprite{
		Name:  name,
		Image: rgba,
		Mask:  physics.NewMaskFromImage(rgba, constant.OpaqueAlpha),
	}
}

// Width returns the sprite width in pixels
func (s *Sprite) Width() int {
	return s.Image.Rect.Dx()
}

// Height returns the sprite height in pixels
func (s *Sprite) Height() int {
	return s.Image.Rect.Dy()
}

// FlipVertical returns a new sprite mirrored top-to-bottom
func (s *Sprite) FlipVertical(name string) *Sprite {
	w, h := s.Width(), s.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := s.Image.Pix[y*s.Image.Stride : y*s.Image.Stride+w*4]
		dst := out.Pix[(h-1-y)*out.Stride : (h-1-y)*out.Stride+w*4]
		copy(dst, src)
	}
	return &Sprite{Name: name, Image: out, Mask: s.Mask.FlipVertical()}
}

// Layout fixes the on-screen size of every sprite in a Set
type Layout struct {
	ScreenWidth, ScreenHeight   int
	BirdWidth, BirdHeight       int
	PipeWidth, PipeHeight       int
	GroundWidth, GroundHeight   int
	MessageWidth, MessageHeight int
}

// DefaultLayout returns sprite sizes matching the stock asset set
func DefaultLayout() Layout {
	return Layout{
		ScreenWidth:   constant.ScreenWidth,
		ScreenHeight:  constant.ScreenHeight,
		BirdWidth:     constant.BirdWidth,
		BirdHeight:    constant.BirdHeight,
		PipeWidth:     constant.PipeWidth,
		PipeHeight:    constant.PipeHeight,
		GroundWidth:   constant.GroundWidth,
		GroundHeight:  constant.GroundHeight,
		MessageWidth:  constant.MessageWidth,
		MessageHeight: constant.MessageHeight,
	}
}

// Set is the complete sprite set the game renders and collides with
type Set struct {
	Background   *Sprite
	Message      *Sprite
	Bird         [constant.BirdFrames]*Sprite
	Pipe         *Sprite
	PipeInverted *Sprite
	Ground       *Sprite
}
