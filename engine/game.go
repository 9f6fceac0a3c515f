package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/tof-flappy/audio"
	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/input"
	"github.com/lixenwraith/tof-flappy/render"
	"github.com/lixenwraith/tof-flappy/sensor"
)

// GameOptions configures the session around the world
type GameOptions struct {
	// Restart allows a flap after GameOverHold to return to StateBegin instead of ending
	Restart bool
	// GameOverHold is how long the collision frame stays before end or restart
	GameOverHold time.Duration
}

// TickResult reports one full tick
type TickResult struct {
	StepResult
	Restarted bool
	Finished  bool
}

// Game drives one World from a ranging sensor and reports through audio and a renderer
type Game struct {
	World *World

	debouncer *input.RangingDebouncer
	ranger    sensor.Ranger
	audio     audio.Player
	clock     TimeProvider
	opts      GameOptions

	start    time.Time
	overAt   time.Time
	finished bool
}

// NewGame wires a world to its collaborators; the debounce clock starts now
func NewGame(world *World, debouncer *input.RangingDebouncer, ranger sensor.Ranger, player audio.Player, clock TimeProvider, opts GameOptions) *Game {
	if player == nil {
		player = audio.Nop{}
	}
	return &Game{
		World:     world,
		debouncer: debouncer,
		ranger:    ranger,
		audio:     player,
		clock:     clock,
		opts:      opts,
		start:     clock.Now(),
	}
}

// Update runs input and simulation for one tick
func (g *Game) Update() TickResult {
	var res TickResult
	if g.finished {
		res.Finished = true
		return res
	}

	now := g.clock.Now()
	flap := g.debouncer.Poll(g.ranger, now.Sub(g.start).Milliseconds())

	if g.World.State == StateGameOver {
		if now.Sub(g.overAt) < g.opts.GameOverHold {
			return res
		}
		if !g.opts.Restart {
			g.finished = true
			res.Finished = true
			return res
		}
		if flap {
			g.World.Reset()
			g.debouncer.Reset()
			res.Restarted = true
			log.Printf("game: restart")
		}
		return res
	}

	res.StepResult = g.World.Step(flap)

	if res.Started {
		log.Printf("game: %s -> %s at tick %d", StateBegin, StatePlaying, g.World.Tick)
	}
	if res.Flapped {
		g.audio.Play(constant.SoundWing)
	}
	if res.Collided {
		g.audio.Play(constant.SoundHit)
		g.overAt = now
		log.Printf("game: %s -> %s at tick %d, hit %s at %v",
			StatePlaying, StateGameOver, g.World.Tick, res.Hit.Kind(), res.Hit.Position())
	}
	return res
}

// Render issues the current frame to r and presents it
func (g *Game) Render(r render.Renderer) error {
	g.World.Draw(r)
	return r.Present()
}

// Tick is Update followed by Render, the terminal frontend's unit of work
func (g *Game) Tick(r render.Renderer) (TickResult, error) {
	res := g.Update()
	if res.Finished {
		return res, nil
	}
	return res, g.Render(r)
}

// Finished reports whether the session has ended
func (g *Game) Finished() bool {
	return g.finished
}

// Debouncer exposes the input debouncer for diagnostics
func (g *Game) Debouncer() *input.RangingDebouncer {
	return g.debouncer
}
