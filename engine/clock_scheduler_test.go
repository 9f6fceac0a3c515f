package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newMockScheduler(interval time.Duration) (*ClockScheduler, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	cs := NewClockScheduler(mock, interval)
	cs.wait = mock.Sleep
	return cs, mock
}

func TestClockSchedulerFixedRate(t *testing.T) {
	cs, mock := newMockScheduler(testTick)
	start := mock.Now()

	var stamps []time.Time
	err := cs.Run(context.Background(), func() (bool, error) {
		stamps = append(stamps, mock.Now())
		return len(stamps) == 15, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if cs.TickCount() != 15 {
		t.Errorf("Expected 15 ticks, got %d", cs.TickCount())
	}
	for i, s := range stamps {
		if want := start.Add(time.Duration(i+1) * testTick); !s.Equal(want) {
			t.Errorf("tick %d: Expected %v, got %v", i+1, want.Sub(start), s.Sub(start))
		}
	}
	if cs.Resyncs() != 0 {
		t.Errorf("Expected no resyncs, got %d", cs.Resyncs())
	}
}

func TestClockSchedulerCatchesUpSmallDelay(t *testing.T) {
	cs, mock := newMockScheduler(100 * time.Millisecond)
	start := mock.Now()

	var stamps []time.Duration
	cs.Run(context.Background(), func() (bool, error) {
		stamps = append(stamps, mock.Now().Sub(start))
		if len(stamps) == 1 {
			// A slow tick that stays within the catch-up window
			mock.Advance(150 * time.Millisecond)
		}
		return len(stamps) == 4, nil
	})

	want := []time.Duration{100, 250, 300, 400}
	for i, w := range want {
		if stamps[i] != w*time.Millisecond {
			t.Errorf("tick %d: Expected %vms, got %v", i+1, w, stamps[i])
		}
	}
	if cs.Resyncs() != 0 {
		t.Errorf("Expected no resync, got %d", cs.Resyncs())
	}
}

func TestClockSchedulerResyncsWhenFarBehind(t *testing.T) {
	cs, mock := newMockScheduler(100 * time.Millisecond)
	start := mock.Now()

	var stamps []time.Duration
	cs.Run(context.Background(), func() (bool, error) {
		stamps = append(stamps, mock.Now().Sub(start))
		if len(stamps) == 1 {
			mock.Advance(time.Second)
		}
		return len(stamps) == 3, nil
	})

	if cs.Resyncs() != 1 {
		t.Fatalf("Expected one resync, got %d", cs.Resyncs())
	}
	// No burst: the tick after the stall runs immediately, then the rate resumes
	want := []time.Duration{100, 1100, 1200}
	for i, w := range want {
		if stamps[i] != w*time.Millisecond {
			t.Errorf("tick %d: Expected %vms, got %v", i+1, w, stamps[i])
		}
	}
}

func TestClockSchedulerStopsOnError(t *testing.T) {
	cs, _ := newMockScheduler(testTick)
	boom := errors.New("render failed")

	err := cs.Run(context.Background(), func() (bool, error) { return false, boom })
	if !errors.Is(err, boom) {
		t.Errorf("Expected tick error, got %v", err)
	}
	if cs.TickCount() != 1 {
		t.Errorf("Expected 1 tick, got %d", cs.TickCount())
	}
}

func TestClockSchedulerCancellation(t *testing.T) {
	cs := NewClockScheduler(NewMonotonicTimeProvider(), time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	ticks := 0
	err := cs.Run(ctx, func() (bool, error) {
		ticks++
		if ticks == 3 {
			cancel()
		}
		return false, nil
	})
	if err != nil {
		t.Errorf("Expected clean stop on cancel, got %v", err)
	}
	if ticks != 3 {
		t.Errorf("Expected 3 ticks, got %d", ticks)
	}
}
