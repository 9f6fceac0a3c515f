package render

import (
	"image"
	"image/color"

	"github.com/lixenwraith/tof-flappy/asset"
	xdraw "golang.org/x/image/draw"
)

// Framebuffer composites sprites into a logical-resolution RGBA image
type Framebuffer struct {
	img *image.RGBA
	bg  color.RGBA
}

// NewFramebuffer creates a framebuffer of the logical screen size
func NewFramebuffer(w, h int) *Framebuffer {
	f := &Framebuffer{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		bg:  color.RGBA{A: 0xFF},
	}
	f.Clear()
	return f
}

// Blit alpha-composites s at (x, y), clipped to the screen
func (f *Framebuffer) Blit(s *asset.Sprite, x, y int) {
	r := image.Rect(x, y, x+s.Width(), y+s.Height())
	xdraw.Draw(f.img, r, s.Image, image.Point{}, xdraw.Over)
}

// Clear fills the frame with the background color
func (f *Framebuffer) Clear() {
	xdraw.Draw(f.img, f.img.Rect, image.NewUniform(f.bg), image.Point{}, xdraw.Src)
}

// Present clears for the next frame; in-memory framebuffers have no device
func (f *Framebuffer) Present() error {
	f.Clear()
	return nil
}

// Image returns the composited frame
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}
