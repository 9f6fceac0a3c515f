package audio

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/lixenwraith/tof-flappy/constant"
)

// Speaker is a beep-backed Player holding every sound pre-rendered in memory
type Speaker struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	format      beep.Format
	sounds      map[string]*beep.Buffer
	mixer       *beep.Mixer
	initialized bool

	muted atomic.Bool
	plays atomic.Uint64
}

// NewSpeaker creates an unloaded, uninitialized speaker
func NewSpeaker(cfg *AudioConfig) *Speaker {
	return &Speaker{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
		sounds: make(map[string]*beep.Buffer),
		mixer:  &beep.Mixer{},
	}
}

// Load renders every game sound into memory, WAV files override synthesized defaults
// A configured file that cannot be read or decoded is an error
func (s *Speaker) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{constant.SoundWing, constant.SoundHit} {
		var src beep.Streamer
		if path, ok := s.cfg.Files[name]; ok && path != "" {
			st, err := s.decodeWAV(path)
			if err != nil {
				return fmt.Errorf("sound %s: %w", name, err)
			}
			src = newVolume(st, s.cfg.volume(name))
		} else {
			src = GetSoundEffect(name, s.cfg)
		}

		buf := beep.NewBuffer(s.format)
		buf.Append(src)
		s.sounds[name] = buf
	}
	return nil
}

// decodeWAV reads a whole WAV file resampled to the speaker rate
func (s *Speaker) decodeWAV(path string) (beep.Streamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	st, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// Buffer the file now so the handle can be closed
	buf := beep.NewBuffer(format)
	buf.Append(st)
	st.Close()

	var out beep.Streamer = buf.Streamer(0, buf.Len())
	if format.SampleRate != s.format.SampleRate {
		out = beep.Resample(4, format.SampleRate, s.format.SampleRate, out)
	}
	return out, nil
}

// Initialize opens the audio device and starts the mixer
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	err := speaker.Init(s.format.SampleRate, s.format.SampleRate.N(constant.AudioBufferDuration))
	if err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play implements Player; unknown names, muted or uninitialized speakers are silent
func (s *Speaker) Play(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.sounds[name]
	if !ok || !s.initialized || s.muted.Load() {
		return
	}

	s.plays.Add(1)
	speaker.Lock()
	s.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Has reports whether a sound is loaded
func (s *Speaker) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sounds[name]
	return ok
}

// Length returns the loaded sound length in samples, 0 if unknown
func (s *Speaker) Length(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if buf, ok := s.sounds[name]; ok {
		return buf.Len()
	}
	return 0
}

// ToggleMute flips mute and returns the new state
func (s *Speaker) ToggleMute() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Plays returns the number of sounds sent to the mixer
func (s *Speaker) Plays() uint64 {
	return s.plays.Load()
}

// Cleanup stops all sounds and closes the audio device
func (s *Speaker) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	s.mixer = &beep.Mixer{}
	s.initialized = false
}
