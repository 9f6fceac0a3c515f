package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/core"
	"github.com/lixenwraith/tof-flappy/input"
)

// Terminal wraps a tcell screen and its input pump
type Terminal struct {
	screen  tcell.Screen
	keys    *input.KeyTable
	intents chan input.Intent

	finiOnce sync.Once
	wg       sync.WaitGroup
}

// New wraps screen; pass nil to create the default terminal screen on Init
func New(screen tcell.Screen, keys *input.KeyTable) *Terminal {
	return &Terminal{
		screen:  screen,
		keys:    keys,
		intents: make(chan input.Intent, constant.EventQueueSize),
	}
}

// Init enters raw mode and the alternate screen, hides the cursor
func (t *Terminal) Init() error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()
	core.SetCrashReset(t.crashReset)
	return nil
}

// Screen returns the underlying tcell screen
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Start launches the event pump; it exits when the screen is finalized
func (t *Terminal) Start() {
	t.wg.Add(1)
	core.Go(t.pump)
}

func (t *Terminal) pump() {
	defer t.wg.Done()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		intent := t.keys.Translate(ev)
		if intent.Type == input.IntentNone {
			continue
		}
		select {
		case t.intents <- intent:
		default:
			// Loop is behind, drop rather than block the pump
		}
	}
}

// Drain returns every pending intent without blocking
func (t *Terminal) Drain() []input.Intent {
	var out []input.Intent
	for {
		select {
		case in := <-t.intents:
			out = append(out, in)
		default:
			return out
		}
	}
}

// Fini restores terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		core.SetCrashReset(nil)
		if t.screen != nil {
			t.screen.Fini()
		}
	})
}

// Wait blocks until the pump has exited, call after Fini
func (t *Terminal) Wait() {
	t.wg.Wait()
}

// crashReset runs from core.HandleCrash; a panicking screen may not finish Fini
func (t *Terminal) crashReset() {
	t.Fini()
	EmergencyReset(os.Stdout)
}

// EmergencyReset writes the escape sequences that leave the alternate screen
// and restore the cursor, for use when no screen is available
func EmergencyReset(w io.Writer) {
	io.WriteString(w, "\x1b[?25h\x1b[?1049l\x1b[0m")
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
