// Package sensor provides ranging-sensor drivers that report a distance in
// millimetres. Drivers may fail on any read; callers decide how to degrade.
package sensor

import "errors"

var (
	// ErrNoSample is returned before a driver has produced its first reading
	ErrNoSample = errors.New("sensor: no sample yet")

	// ErrStale is returned when the latest reading is older than allowed
	ErrStale = errors.New("sensor: sample is stale")

	// ErrOutOfRange is returned for non-positive readings
	ErrOutOfRange = errors.New("sensor: reading out of range")

	// ErrExhausted is returned by Script after its last reading
	ErrExhausted = errors.New("sensor: script exhausted")
)

// Ranger reads one distance sample in millimetres
type Ranger interface {
	ReadRangeMM() (int, error)
}

// RangerFunc adapts a function to Ranger
type RangerFunc func() (int, error)

// ReadRangeMM implements Ranger
func (f RangerFunc) ReadRangeMM() (int, error) {
	return f()
}
