package system

import (
	"math/rand"

	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/entity"
	"github.com/lixenwraith/tof-flappy/physics"
)

// PipeConfig is the obstacle generation geometry
type PipeConfig struct {
	ScreenHeight int
	Gap          int // vertical opening between top and bottom pipe
	MinHeight    int // top pipe exposure lower bound (inclusive)
	MaxHeight    int // top pipe exposure upper bound (inclusive)
	Spacing      int // horizontal distance between consecutive pairs
	FirstX       int // x of the leading pair at start
	Pairs        int // pairs alive at once
}

// PipePair is a top and bottom pipe sharing one gap, removed and created together
type PipePair struct {
	Top    *entity.Pipe
	Bottom *entity.Pipe
}

// X returns the shared horizontal position
func (p PipePair) X() int {
	return p.Top.X
}

// GapTop returns the y of the opening's upper edge
func (p PipePair) GapTop() int {
	return p.Top.Bounds().Max.Y
}

// GapBottom returns the y of the opening's lower edge
func (p PipePair) GapBottom() int {
	return p.Bottom.Bounds().Min.Y
}

// PipeField generates and recycles a fixed number of pipe pairs
type PipeField struct {
	cfg    PipeConfig
	rng    *rand.Rand
	sprite *asset.Sprite
	flip   *asset.Sprite
	params *physics.Params

	pairs []PipePair
}

// NewPipeField creates the initial pairs starting at cfg.FirstX
func NewPipeField(cfg PipeConfig, rng *rand.Rand, sprites *asset.Set, params *physics.Params) *PipeField {
	f := &PipeField{
		cfg:    cfg,
		rng:    rng,
		sprite: sprites.Pipe,
		flip:   sprites.PipeInverted,
		params: params,
		pairs:  make([]PipePair, 0, cfg.Pairs),
	}
	for i := 0; i < cfg.Pairs; i++ {
		f.pairs = append(f.pairs, f.generate(cfg.FirstX+i*cfg.Spacing))
	}
	return f
}

// generate builds a pair at x with a randomized gap offset
func (f *PipeField) generate(x int) PipePair {
	top := f.cfg.MinHeight + f.rng.Intn(f.cfg.MaxHeight-f.cfg.MinHeight+1)
	bottom := f.cfg.ScreenHeight - top - f.cfg.Gap
	return PipePair{
		Top:    entity.NewPipe(true, x, top, f.cfg.ScreenHeight, f.flip, f.params),
		Bottom: entity.NewPipe(false, x, bottom, f.cfg.ScreenHeight, f.sprite, f.params),
	}
}

// Advance scrolls every pipe one tick
func (f *PipeField) Advance() {
	for _, p := range f.pairs {
		p.Top.Advance()
		p.Bottom.Advance()
	}
}

// Recycle replaces the leading pair once it is fully off-screen, returns true if it did
func (f *PipeField) Recycle() bool {
	if len(f.pairs) == 0 || !entity.OffScreen(f.pairs[0].Top) {
		return false
	}
	trailing := f.pairs[len(f.pairs)-1]
	copy(f.pairs, f.pairs[1:])
	f.pairs[len(f.pairs)-1] = f.generate(trailing.X() + f.cfg.Spacing)
	return true
}

// Pairs returns the live pairs, leading first
func (f *PipeField) Pairs() []PipePair {
	return f.pairs
}

// Entities returns every pipe, top before bottom per pair
func (f *PipeField) Entities() []entity.Entity {
	out := make([]entity.Entity, 0, len(f.pairs)*2)
	for _, p := range f.pairs {
		out = append(out, p.Top, p.Bottom)
	}
	return out
}
