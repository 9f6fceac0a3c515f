package render

import "github.com/lixenwraith/tof-flappy/asset"

// Renderer accepts back-to-front sprite draws for one frame, then presents it
type Renderer interface {
	// Blit draws s with its top-left corner at (x, y) in logical screen pixels
	Blit(s *asset.Sprite, x, y int)

	// Present flushes the frame to the output device and starts a new one
	Present() error
}

// Recorder is a Renderer that records draw calls, for tests and headless runs
type Recorder struct {
	Frames  int
	Calls   []Blit
	Last    []Blit
	current []Blit
}

// Blit is one recorded draw call
type Blit struct {
	Name string
	X, Y int
}

// Blit implements Renderer
func (r *Recorder) Blit(s *asset.Sprite, x, y int) {
	b := Blit{Name: s.Name, X: x, Y: y}
	r.Calls = append(r.Calls, b)
	r.current = append(r.current, b)
}

// Present implements Renderer
func (r *Recorder) Present() error {
	r.Frames++
	r.Last = r.current
	r.current = nil
	return nil
}

// Names returns the sprite names drawn in the last presented frame
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Last))
	for i, b := range r.Last {
		out[i] = b.Name
	}
	return out
}
