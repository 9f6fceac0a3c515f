// Package window draws frames into an ebiten window. It is kept apart from
// render so the terminal build never links ebiten's GLFW backend.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/render"
)

var _ render.Renderer = (*Renderer)(nil)

// Renderer draws sprites onto an ebiten screen image
// ebiten presents the frame itself after Draw returns, so Present is a no-op
type Renderer struct {
	screen *ebiten.Image
	cache  map[*asset.Sprite]*ebiten.Image
}

// NewRenderer creates a renderer with an empty texture cache
func NewRenderer() *Renderer {
	return &Renderer{cache: make(map[*asset.Sprite]*ebiten.Image)}
}

// Begin targets the screen passed to ebiten's Draw
func (w *Renderer) Begin(screen *ebiten.Image) {
	w.screen = screen
}

// Blit implements render.Renderer; textures upload once per sprite
func (w *Renderer) Blit(s *asset.Sprite, x, y int) {
	if w.screen == nil {
		return
	}
	img, ok := w.cache[s]
	if !ok {
		img = ebiten.NewImageFromImage(s.Image)
		w.cache[s] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	w.screen.DrawImage(img, op)
}

// Present implements render.Renderer
func (w *Renderer) Present() error {
	w.screen = nil
	return nil
}
