package engine

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/lixenwraith/tof-flappy/audio"
	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/entity"
	"github.com/lixenwraith/tof-flappy/input"
	"github.com/lixenwraith/tof-flappy/render"
	"github.com/lixenwraith/tof-flappy/sensor"
)

const testTick = time.Second / 15

// feed serves queued distances, then the far sentinel
type feed struct {
	mm []int
}

func (f *feed) ReadRangeMM() (int, error) {
	if len(f.mm) == 0 {
		return constant.RangeFar, nil
	}
	v := f.mm[0]
	f.mm = f.mm[1:]
	return v, nil
}

type gameHarness struct {
	game  *Game
	clock *MockTimeProvider
	audio *audio.Recorder
}

func newHarness(r sensor.Ranger, opts GameOptions) *gameHarness {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := &audio.Recorder{}
	g := NewGame(newTestWorld(11), input.NewRangingDebouncer(input.DefaultRangingConfig()), r, rec, clock, opts)
	return &gameHarness{game: g, clock: clock, audio: rec}
}

func (h *gameHarness) tick() TickResult {
	h.clock.Advance(testTick)
	return h.game.Update()
}

func TestGameFlapAtTickFive(t *testing.T) {
	h := newHarness(&feed{mm: []int{400, 400, 400, 400, 150}}, GameOptions{GameOverHold: time.Second})

	for i := 1; i <= 4; i++ {
		if res := h.tick(); res.Flapped {
			t.Fatalf("tick %d: unexpected flap", i)
		}
		if h.game.World.State != StateBegin {
			t.Fatalf("tick %d: Expected Begin, got %s", i, h.game.World.State)
		}
	}

	res := h.tick()
	w := h.game.World
	if !res.Started || !res.Flapped {
		t.Fatalf("Expected start at tick 5, got %+v", res)
	}
	if w.State != StatePlaying || w.Tick != 5 {
		t.Errorf("Expected Playing at tick 5, got %s at %d", w.State, w.Tick)
	}
	if w.Bird.VelY != -constant.FlapSpeed {
		t.Errorf("Expected velocity -15, got %v", w.Bird.VelY)
	}
	if !slices.Equal(h.audio.Played, []string{constant.SoundWing}) {
		t.Errorf("Expected wing sound, got %v", h.audio.Played)
	}

	// Falls under gravity from here until it meets the ground
	prevVel := w.Bird.VelY
	for w.State == StatePlaying && w.Tick < 100 {
		res = h.tick()
		if w.State == StatePlaying && w.Bird.VelY != prevVel+constant.Gravity {
			t.Fatalf("tick %d: Expected gravity step, got v=%v after %v", w.Tick, w.Bird.VelY, prevVel)
		}
		prevVel = w.Bird.VelY
	}
	if !res.Collided || res.Hit.Kind() != entity.KindGround || w.Tick != 22 {
		t.Errorf("Expected ground collision at tick 22, got %+v at %d", res, w.Tick)
	}
	if !slices.Equal(h.audio.Played, []string{constant.SoundWing, constant.SoundHit}) {
		t.Errorf("Expected wing then hit, got %v", h.audio.Played)
	}
}

func TestGameOverHoldThenFinish(t *testing.T) {
	h := newHarness(&feed{mm: []int{400, 400, 400, 400, 150}}, GameOptions{GameOverHold: time.Second})
	for h.game.World.State != StateGameOver && h.game.World.Tick < 100 {
		h.tick()
	}
	if h.game.World.State != StateGameOver {
		t.Fatal("Expected game over")
	}

	for i := 0; i < 14; i++ {
		if res := h.tick(); res.Finished {
			t.Fatalf("Expected hold, finished after %d ticks", i+1)
		}
	}
	h.clock.Advance(time.Second)
	if res := h.game.Update(); !res.Finished || !h.game.Finished() {
		t.Error("Expected finish after the hold")
	}

	r := &render.Recorder{}
	if _, err := h.game.Tick(r); err != nil || r.Frames != 0 {
		t.Errorf("Expected no frame after finish, got %d frames (%v)", r.Frames, err)
	}
}

func TestGameRestart(t *testing.T) {
	f := &feed{mm: []int{400, 400, 400, 400, 150}}
	h := newHarness(f, GameOptions{Restart: true, GameOverHold: time.Second})
	for h.game.World.State != StateGameOver && h.game.World.Tick < 100 {
		h.tick()
	}

	// A flap during the hold is ignored
	f.mm = []int{400, 150}
	h.tick()
	h.tick()
	if h.game.World.State != StateGameOver {
		t.Fatal("Expected flap during hold to be ignored")
	}

	h.clock.Advance(2 * time.Second)
	f.mm = []int{400, 150}
	if res := h.tick(); res.Restarted || res.Finished {
		t.Fatalf("Expected waiting for a flap, got %+v", res)
	}
	res := h.tick()
	if !res.Restarted {
		t.Fatalf("Expected restart on flap, got %+v", res)
	}
	w := h.game.World
	if w.State != StateBegin || w.Bird.Y != constant.ScreenHeight/2 {
		t.Errorf("Expected fresh Begin, got %s y=%v", w.State, w.Bird.Y)
	}
	if h.game.Finished() {
		t.Error("Expected session to continue")
	}
	// The sample before the flap was 400; a fresh debouncer is back at the far sentinel
	d := h.game.Debouncer()
	if d.LastObserved() != constant.RangeFar || d.LastFlapMS() != 0 {
		t.Errorf("Expected reset debouncer, got last=%d flap=%d", d.LastObserved(), d.LastFlapMS())
	}
}

func TestGameSensorFailuresNeverFlap(t *testing.T) {
	broken := sensor.RangerFunc(func() (int, error) { return 0, errors.New("i2c timeout") })
	h := newHarness(broken, GameOptions{})

	for i := 0; i < 50; i++ {
		if res := h.tick(); res.Flapped {
			t.Fatal("Expected no flap from a failing sensor")
		}
	}
	if h.game.World.State != StateBegin {
		t.Errorf("Expected Begin, got %s", h.game.World.State)
	}
	if _, failures, evaluated := h.game.Debouncer().Stats(); failures != 50 || evaluated != 50 {
		t.Errorf("Expected 50 failures of 50, got %d of %d", failures, evaluated)
	}
}

func TestGameTickRendersFrame(t *testing.T) {
	h := newHarness(&feed{}, GameOptions{})
	r := &render.Recorder{}

	for i := 0; i < 3; i++ {
		h.clock.Advance(testTick)
		if _, err := h.game.Tick(r); err != nil {
			t.Fatal(err)
		}
	}
	if r.Frames != 3 {
		t.Errorf("Expected 3 frames, got %d", r.Frames)
	}
	if names := r.Names(); names[0] != "background" || names[1] != "message" {
		t.Errorf("Expected Begin frame, got %v", names)
	}
}

func TestNewGameDefaultsToSilentPlayer(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	g := NewGame(newTestWorld(1), input.NewRangingDebouncer(input.DefaultRangingConfig()), &feed{mm: []int{400, 400, 400, 400, 150}}, nil, clock, GameOptions{})
	for i := 0; i < 6; i++ {
		clock.Advance(testTick)
		g.Update()
	}
	if g.World.State != StatePlaying {
		t.Errorf("Expected Playing, got %s", g.World.State)
	}
}
