package engine

import (
	"math/rand"

	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/entity"
	"github.com/lixenwraith/tof-flappy/physics"
	"github.com/lixenwraith/tof-flappy/render"
	"github.com/lixenwraith/tof-flappy/system"
)

// WorldConfig is the complete geometry and physics of one game
type WorldConfig struct {
	Layout         asset.Layout
	Params         physics.Params
	Pipes          system.PipeConfig
	GroundSegments int
	MessageX       int
	MessageY       int
	Seed           int64
}

// StepResult reports what happened during one simulation step
type StepResult struct {
	Flapped  bool
	Started  bool
	Collided bool
	Hit      entity.Entity
}

// World owns every entity and the phase of one game session
// All mutation happens through Step and Reset from a single goroutine
type World struct {
	cfg     WorldConfig
	sprites *asset.Set
	params  *physics.Params
	rng     *rand.Rand

	State  State
	Tick   uint64
	Bird   *entity.Bird
	Pipes  *system.PipeField
	Ground *system.GroundStrip
	Hit    entity.Entity
}

// NewWorld creates a world in StateBegin
func NewWorld(cfg WorldConfig, sprites *asset.Set) *World {
	params := cfg.Params
	w := &World{
		cfg:     cfg,
		sprites: sprites,
		params:  &params,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
	w.Reset()
	return w
}

// Reset rebuilds all entities and returns to StateBegin
// The RNG is not reseeded so consecutive games get different pipes
func (w *World) Reset() {
	l := w.cfg.Layout
	w.State = StateBegin
	w.Tick = 0
	w.Hit = nil
	w.Bird = entity.NewBird(l.ScreenWidth/6, float64(l.ScreenHeight/2), w.sprites.Bird, w.params)
	w.Ground = system.NewGroundStrip(w.cfg.GroundSegments, l.ScreenHeight-l.GroundHeight, w.sprites.Ground, w.params)
	w.Pipes = system.NewPipeField(w.cfg.Pipes, w.rng, w.sprites, w.params)
}

// Step advances the world by one tick; flap is the debounced input for this tick
// Order: input, motion, recycling, collision
func (w *World) Step(flap bool) StepResult {
	var res StepResult
	w.Tick++

	switch w.State {
	case StateBegin:
		if flap {
			// The starting flap takes effect now so the bird never drops before it
			w.Bird.Flap()
			w.State = StatePlaying
			res.Flapped, res.Started = true, true
		}
		w.Bird.Animate()
		w.Ground.Advance()
		w.Ground.Recycle()

	case StatePlaying:
		if flap {
			w.Bird.Flap()
			res.Flapped = true
		}
		w.Bird.Advance()
		w.Pipes.Advance()
		w.Ground.Advance()

		w.Pipes.Recycle()
		w.Ground.Recycle()

		if hit := w.collision(); hit != nil {
			w.State = StateGameOver
			w.Hit = hit
			res.Collided, res.Hit = true, hit
		}

	case StateGameOver:
		// Terminal: nothing moves
	}

	return res
}

// collision returns the first ground or pipe entity overlapping the bird
func (w *World) collision() entity.Entity {
	if g, ok := physics.CollidesAny(w.Bird, w.Ground.Segments()); ok {
		return g
	}
	if p, ok := physics.CollidesAny(w.Bird, w.Pipes.Entities()); ok {
		return p
	}
	return nil
}

// Draw issues the frame back to front: background, message, ground, pipes, bird
func (w *World) Draw(r render.Renderer) {
	r.Blit(w.sprites.Background, 0, 0)
	if w.State == StateBegin {
		r.Blit(w.sprites.Message, w.cfg.MessageX, w.cfg.MessageY)
	}
	for _, g := range w.Ground.Segments() {
		drawEntity(r, g)
	}
	if w.State != StateBegin {
		for _, p := range w.Pipes.Entities() {
			drawEntity(r, p)
		}
	}
	drawEntity(r, w.Bird)
}

func drawEntity(r render.Renderer, e entity.Entity) {
	p := e.Position()
	r.Blit(e.Sprite(), p.X, p.Y)
}

// Entities returns every live entity, bird first
func (w *World) Entities() []entity.Entity {
	out := []entity.Entity{w.Bird}
	for _, g := range w.Ground.Segments() {
		out = append(out, g)
	}
	return append(out, w.Pipes.Entities()...)
}

// Params returns the per-tick physics in effect
func (w *World) Params() physics.Params {
	return *w.params
}
