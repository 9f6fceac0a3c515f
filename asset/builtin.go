package asset

import (
	"image"
	"image/color"
)

// Built-in palette
var (
	colorSkyTop     = color.RGBA{R: 78, G: 192, B: 202, A: 0xFF}
	colorSkyBottom  = color.RGBA{R: 200, G: 236, B: 240, A: 0xFF}
	colorPanel      = color.RGBA{R: 250, G: 240, B: 200, A: 0xFF}
	colorPanelEdge  = color.RGBA{R: 84, G: 56, B: 71, A: 0xFF}
	colorBirdBody   = color.RGBA{R: 74, G: 144, B: 226, A: 0xFF}
	colorBirdBelly  = color.RGBA{R: 220, G: 236, B: 250, A: 0xFF}
	colorBirdWing   = color.RGBA{R: 40, G: 96, B: 176, A: 0xFF}
	colorEye        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorPupil      = color.RGBA{A: 0xFF}
	colorBeak       = color.RGBA{R: 250, G: 120, B: 40, A: 0xFF}
	colorPipe       = color.RGBA{R: 115, G: 191, B: 46, A: 0xFF}
	colorPipeShade  = color.RGBA{R: 84, G: 128, B: 36, A: 0xFF}
	colorPipeLight  = color.RGBA{R: 160, G: 226, B: 90, A: 0xFF}
	colorGroundTop  = color.RGBA{R: 115, G: 191, B: 46, A: 0xFF}
	colorGround     = color.RGBA{R: 222, G: 216, B: 149, A: 0xFF}
	colorGroundDark = color.RGBA{R: 208, G: 196, B: 120, A: 0xFF}
)

// wingOffsets places the wing for up, mid and down frames as a fraction of height
var wingOffsets = [3]float64{0.30, 0.50, 0.68}

// Builtin draws the default sprite set procedurally at the layout's sizes
func Builtin(l Layout) *Set {
	set := &Set{
		Background: NewSprite("background", drawBackground(l.ScreenWidth, l.ScreenHeight)),
		Message:    NewSprite("message", drawMessage(l.MessageWidth, l.MessageHeight)),
		Pipe:       NewSprite("pipe", drawPipe(l.PipeWidth, l.PipeHeight)),
		Ground:     NewSprite("ground", drawGround(l.GroundWidth, l.GroundHeight)),
	}
	set.PipeInverted = set.Pipe.FlipVertical("pipe-inverted")
	for i := range set.Bird {
		set.Bird[i] = NewSprite(birdFrameNames[i], drawBird(l.BirdWidth, l.BirdHeight, wingOffsets[i]))
	}
	return set
}

func drawBackground(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := lerpColor(colorSkyTop, colorSkyBottom, float64(y)/float64(max(h-1, 1)))
		fillRect(img, 0, y, w, y+1, c)
	}
	return img
}

func drawMessage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, colorPanelEdge)
	fillRect(img, 3, 3, w-3, h-3, colorPanel)

	// Hand-over-sensor hint: a bird above an upward arrow
	cx, cy := w/2, h/3
	fillEllipse(img, cx, cy, w/8, h/12, colorBirdBody)
	fillEllipse(img, cx+w/16, cy-h/48, w/32+1, h/48+1, colorEye)
	shaft := w / 16
	fillRect(img, cx-shaft/2, h/2, cx+shaft/2+1, h*5/6, colorPanelEdge)
	for i := 0; i < w/6; i++ {
		y := h/2 - w/6 + i
		fillRect(img, cx-i, y, cx+i+1, y+1, colorPanelEdge)
	}
	return img
}

func drawBird(w, h int, wing float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := w/2-1, h/2
	rx, ry := w/2-3, h/2-1

	fillEllipse(img, cx, cy, rx, ry, colorBirdBody)
	fillEllipse(img, cx, cy+ry/2, rx*2/3, ry/3, colorBirdBelly)

	// Eye
	ex, ey := cx+rx/2, cy-ry/3
	fillEllipse(img, ex, ey, max(rx/4, 1), max(ry/3, 1), colorEye)
	fillEllipse(img, ex+1, ey, max(rx/10, 1), max(ry/8, 1), colorPupil)

	// Beak
	fillRect(img, cx+rx-1, cy, w, cy+max(h/6, 1), colorBeak)

	// Wing
	wy := int(float64(h) * wing)
	fillEllipse(img, cx-rx/2, wy, max(rx/3, 1), max(ry/4, 1), colorBirdWing)
	return img
}

func drawPipe(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	inset := max(w/16, 1)
	lip := max(h/20, 2)

	// Body
	fillRect(img, inset, lip, w-inset, h, colorPipe)
	fillRect(img, inset, lip, inset+max(w/10, 1), h, colorPipeLight)
	fillRect(img, w-inset-max(w/8, 1), lip, w-inset, h, colorPipeShade)

	// Lip at the opening
	fillRect(img, 0, 0, w, lip, colorPipeShade)
	fillRect(img, 1, 1, w-1, lip-1, colorPipe)
	return img
}

func drawGround(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	band := max(h/8, 2)
	fillRect(img, 0, 0, w, band, colorGroundTop)
	fillRect(img, 0, band, w, h, colorGround)

	// Diagonal stripes in the grass band scroll visibly
	for x := 0; x < w; x += 12 {
		for y := 0; y < band; y++ {
			fillRect(img, x+y, y, x+y+4, y+1, colorPipeShade)
		}
	}
	fillRect(img, 0, band, w, band+2, colorGroundDark)
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := -ry; y <= ry; y++ {
		for x := -rx; x <= rx; x++ {
			if x*x*ry*ry+y*y*rx*rx <= rx*rx*ry*ry {
				if (image.Point{X: cx + x, Y: cy + y}).In(img.Rect) {
					img.SetRGBA(cx+x, cy+y, c)
				}
			}
		}
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xFF}
}
