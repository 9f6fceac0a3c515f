package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// TickFunc runs one tick; returning stop ends the schedule
type TickFunc func() (stop bool, err error)

// ClockScheduler runs game logic on a fixed tick in the calling goroutine
// Blocks between ticks; corrects drift and resyncs when too far behind
type ClockScheduler struct {
	clock        TimeProvider
	tickInterval time.Duration
	maxBehind    time.Duration

	// wait blocks for d or until ctx is done
	wait func(ctx context.Context, d time.Duration) error

	nextTickDeadline time.Time
	tickCount        atomic.Uint64
	resyncs          atomic.Uint64
}

// NewClockScheduler creates a scheduler with the given tick interval
func NewClockScheduler(clock TimeProvider, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		clock:        clock,
		tickInterval: tickInterval,
		maxBehind:    tickInterval * 2,
		wait:         timerWait,
	}
}

// timerWait sleeps on a timer, returning early on cancellation
func timerWait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run ticks until fn asks to stop, fn fails, or ctx is cancelled
// Cancellation is a clean stop and returns nil
func (cs *ClockScheduler) Run(ctx context.Context, fn TickFunc) error {
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)

	for {
		if ctx.Err() != nil {
			return nil
		}

		now := cs.clock.Now()
		if now.Before(cs.nextTickDeadline) {
			if err := cs.wait(ctx, cs.nextTickDeadline.Sub(now)); err != nil {
				return nil
			}
			continue
		}

		stop, err := fn()
		cs.tickCount.Add(1)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}

		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		if now.Sub(cs.nextTickDeadline) > cs.maxBehind {
			// Too far behind to catch up without a burst of ticks
			cs.nextTickDeadline = now.Add(cs.tickInterval)
			cs.resyncs.Add(1)
		}
	}
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Resyncs returns how many times the schedule was reset after falling behind
func (cs *ClockScheduler) Resyncs() uint64 {
	return cs.resyncs.Load()
}
