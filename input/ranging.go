package input

import (
	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/sensor"
)

// RangingConfig holds the gesture thresholds
type RangingConfig struct {
	NearMM     int   // sample must be closer than this
	DebounceMM int   // minimum approach since the last observed sample
	CooldownMS int64 // minimum time between accepted flaps
}

// DefaultRangingConfig returns the stock thresholds
func DefaultRangingConfig() RangingConfig {
	return RangingConfig{
		NearMM:     constant.RangeNearMM,
		DebounceMM: constant.RangeDebounceMM,
		CooldownMS: constant.RangeCooldownMS,
	}
}

// RangingDebouncer turns noisy distance samples into discrete flap events
//
// A flap fires when the sample is near, the hand approached by at least
// DebounceMM since the last observed sample, and the cooldown has elapsed.
// The last observed distance is only refreshed on valid samples that do not
// fire, so a firing sample does not become the reference for the next one.
type RangingDebouncer struct {
	cfg RangingConfig

	lastMM    int
	lastFlap  int64
	fired     uint64
	failures  uint64
	evaluated uint64
}

// NewRangingDebouncer creates a debouncer in its initial state
func NewRangingDebouncer(cfg RangingConfig) *RangingDebouncer {
	d := &RangingDebouncer{cfg: cfg}
	d.Reset()
	return d
}

// Reset restores the far reference and clears the cooldown timestamp
func (d *RangingDebouncer) Reset() {
	d.lastMM = constant.RangeFar
	d.lastFlap = 0
}

// Evaluate processes one sample taken at nowMS and reports whether a flap fires
// Invalid samples read as far, never fire, and leave the reference untouched
func (d *RangingDebouncer) Evaluate(mm int, valid bool, nowMS int64) bool {
	d.evaluated++
	if !valid || mm <= 0 {
		d.failures++
		return false
	}

	if mm < d.cfg.NearMM &&
		d.lastMM-mm >= d.cfg.DebounceMM &&
		nowMS-d.lastFlap >= d.cfg.CooldownMS {
		d.lastFlap = nowMS
		d.fired++
		return true
	}

	d.lastMM = mm
	return false
}

// Poll reads the sensor once and evaluates the result; read errors are swallowed
func (d *RangingDebouncer) Poll(r sensor.Ranger, nowMS int64) bool {
	mm, err := r.ReadRangeMM()
	if err != nil {
		return d.Evaluate(constant.RangeFar, false, nowMS)
	}
	return d.Evaluate(mm, true, nowMS)
}

// LastObserved returns the current reference distance
func (d *RangingDebouncer) LastObserved() int {
	return d.lastMM
}

// LastFlapMS returns the timestamp of the last accepted flap
func (d *RangingDebouncer) LastFlapMS() int64 {
	return d.lastFlap
}

// Stats returns fired flaps, failed reads and total evaluations
func (d *RangingDebouncer) Stats() (fired, failures, evaluated uint64) {
	return d.fired, d.failures, d.evaluated
}
