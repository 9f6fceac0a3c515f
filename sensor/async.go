package sensor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tof-flappy/core"
)

// Async polls a blocking Ranger on its own goroutine and serves the latest
// sample without blocking, so a slow bus cannot stall the game tick
type Async struct {
	src      Ranger
	interval time.Duration
	maxAge   time.Duration
	now      func() time.Time

	mu      sync.RWMutex
	last    int
	lastErr error
	at      time.Time

	reads  atomic.Uint64
	fails  atomic.Uint64
	stopCh chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// NewAsync wraps src; samples older than maxAge read as ErrStale
func NewAsync(src Ranger, interval, maxAge time.Duration) *Async {
	return &Async{
		src:      src,
		interval: interval,
		maxAge:   maxAge,
		now:      time.Now,
		lastErr:  ErrNoSample,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the poller
func (a *Async) Start() {
	a.wg.Add(1)
	core.Go(a.loop)
}

// Stop halts the poller and waits for an in-flight read to return
func (a *Async) Stop() {
	a.once.Do(func() {
		close(a.stopCh)
		a.wg.Wait()
	})
}

func (a *Async) loop() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		a.poll()
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (a *Async) poll() {
	mm, err := a.src.ReadRangeMM()
	a.reads.Add(1)
	if err != nil {
		a.fails.Add(1)
	}

	a.mu.Lock()
	a.last, a.lastErr, a.at = mm, err, a.now()
	a.mu.Unlock()
}

// ReadRangeMM implements Ranger with the most recent sample
func (a *Async) ReadRangeMM() (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.lastErr != nil {
		return 0, a.lastErr
	}
	if a.maxAge > 0 && a.now().Sub(a.at) > a.maxAge {
		return 0, ErrStale
	}
	return a.last, nil
}

// Stats returns total reads and failed reads
func (a *Async) Stats() (reads, fails uint64) {
	return a.reads.Load(), a.fails.Load()
}
