package render

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/constant"
	xdraw "golang.org/x/image/draw"
)

// TerminalRenderer draws the logical frame onto a tcell screen using
// upper-half-block cells, two vertical pixels per cell, letterboxed to fit
type TerminalRenderer struct {
	screen tcell.Screen
	fb     *Framebuffer
	cells  *image.RGBA
	border tcell.Style
}

// NewTerminalRenderer creates a renderer for a logical screen of w by h pixels
func NewTerminalRenderer(screen tcell.Screen, w, h int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		fb:     NewFramebuffer(w, h),
		border: tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// Blit implements Renderer
func (r *TerminalRenderer) Blit(s *asset.Sprite, x, y int) {
	r.fb.Blit(s, x, y)
}

// Viewport returns the cell rectangle the frame occupies for a terminal of
// cols by rows cells, in half-block pixel units (rows doubled)
func Viewport(logicalW, logicalH, cols, rows int) image.Rectangle {
	pw, ph := cols, rows*2
	if pw <= 0 || ph <= 0 {
		return image.Rectangle{}
	}
	// Fit preserving aspect ratio
	w, h := pw, pw*logicalH/logicalW
	if h > ph {
		w, h = ph*logicalW/logicalH, ph
	}
	// Keep the top edge on a cell boundary
	ox := (pw - w) / 2
	oy := ((ph - h) / 2) &^ 1
	return image.Rect(ox, oy, ox+w, oy+h)
}

// Present implements Renderer: downsample, write cells, show
func (r *TerminalRenderer) Present() error {
	cols, rows := r.screen.Size()
	src := r.fb.Image()
	view := Viewport(src.Rect.Dx(), src.Rect.Dy(), cols, rows)

	if r.cells == nil || r.cells.Rect.Dx() != cols || r.cells.Rect.Dy() != rows*2 {
		r.cells = image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	}
	xdraw.Draw(r.cells, r.cells.Rect, image.Black, image.Point{}, xdraw.Src)
	if !view.Empty() {
		xdraw.ApproxBiLinear.Scale(r.cells, view, src, src.Rect, xdraw.Src, nil)
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := r.cells.RGBAAt(cx, cy*2)
			bot := r.cells.RGBAAt(cx, cy*2+1)
			if !(image.Point{X: cx, Y: cy * 2}).In(view) {
				r.screen.SetContent(cx, cy, ' ', nil, r.border)
				continue
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			r.screen.SetContent(cx, cy, constant.HalfBlock, nil, style)
		}
	}
	r.screen.Show()
	r.fb.Clear()
	return nil
}
