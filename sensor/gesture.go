package sensor

import (
	"sync"

	"github.com/lixenwraith/tof-flappy/constant"
)

// DefaultSweep is an approaching hand followed by its retreat, in mm
// Steps are larger than the debounce threshold and dip below the near threshold
var DefaultSweep = []int{400, 300, 180, 120, 300}

// Gesture simulates a ranging sensor from discrete triggers such as key presses
// Each Trigger queues one sweep; idle reads return the far sentinel
type Gesture struct {
	mu      sync.Mutex
	sweep   []int
	pending []int
}

// NewGesture creates a simulator replaying sweep per trigger, nil uses DefaultSweep
func NewGesture(sweep []int) *Gesture {
	if len(sweep) == 0 {
		sweep = DefaultSweep
	}
	return &Gesture{sweep: sweep}
}

// Trigger queues one hand sweep
func (g *Gesture) Trigger() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, g.sweep...)
}

// Pending returns the number of queued readings
func (g *Gesture) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

// ReadRangeMM implements Ranger
func (g *Gesture) ReadRangeMM() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.pending) == 0 {
		return constant.RangeFar, nil
	}
	mm := g.pending[0]
	g.pending = g.pending[1:]
	return mm, nil
}
