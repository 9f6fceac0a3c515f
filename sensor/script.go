package sensor

import "sync"

// Reading is one scripted sensor result
type Reading struct {
	MM  int
	Err error
}

// Script replays a fixed sequence of readings, then returns ErrExhausted
type Script struct {
	mu       sync.Mutex
	readings []Reading
	pos      int
}

// NewScript creates a script from distances; use Fail for error entries
func NewScript(readings ...Reading) *Script {
	return &Script{readings: readings}
}

// Distances builds readings from plain millimetre values
func Distances(mm ...int) []Reading {
	out := make([]Reading, len(mm))
	for i, v := range mm {
		out[i] = Reading{MM: v}
	}
	return out
}

// Fail builds a failing reading
func Fail(err error) Reading {
	return Reading{Err: err}
}

// ReadRangeMM implements Ranger
func (s *Script) ReadRangeMM() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.readings) {
		return 0, ErrExhausted
	}
	r := s.readings[s.pos]
	s.pos++
	return r.MM, r.Err
}

// Remaining returns the number of unread entries
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.readings) - s.pos
}
