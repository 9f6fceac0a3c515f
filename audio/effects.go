package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/tof-flappy/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample evaluates one period position in [0, 1)
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// glide is a mono tone whose frequency moves linearly from one value to another
type glide struct {
	from, to float64
	wave     WaveType
	rate     float64
	phase    float64
	pos, n   int
}

// NewGlide returns a tone sweeping from one frequency to another over duration
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &glide{from: from, to: to, wave: wave, rate: float64(rate), n: rate.N(duration)}
}

// NewOscillator returns a fixed-frequency tone
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

func (g *glide) Stream(samples [][2]float64) (int, bool) {
	left := g.n - g.pos
	if left <= 0 {
		return 0, false
	}
	count := min(len(samples), left)
	for i := 0; i < count; i++ {
		v := g.wave.sample(g.phase)
		samples[i] = [2]float64{v, v}

		freq := g.from + (g.to-g.from)*float64(g.pos)/float64(g.n)
		_, g.phase = math.Modf(g.phase + freq/g.rate)
		g.pos++
	}
	return count, true
}

func (g *glide) Err() error { return nil }

// shaped applies a linear attack and release ramp and cuts the source at length
type shaped struct {
	src                  beep.Streamer
	attack, release, end int
	pos                  int
}

// NewEnvelope limits s to duration, fading in over attack and out over release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &shaped{src: s, attack: rate.N(attack), release: rate.N(release), end: rate.N(duration)}
}

func (e *shaped) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if e.release > 0 && pos >= e.end-e.release {
		g = min(g, float64(e.end-pos)/float64(e.release))
	}
	return max(g, 0)
}

func (e *shaped) Stream(samples [][2]float64) (int, bool) {
	left := e.end - e.pos
	if left <= 0 {
		return 0, false
	}
	n, ok := e.src.Stream(samples[:min(len(samples), left)])
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok && n > 0
}

func (e *shaped) Err() error { return e.src.Err() }

// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateWingSound generates an upward chirp for a flap
func CreateWingSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.WingSoundDuration

	chirp := NewGlide(520, 1040, d, WaveSine, rate)
	return newVolume(NewEnvelope(chirp, d, constant.WingSoundAttack, constant.WingSoundRelease, rate), cfg.volume(constant.SoundWing))
}

// CreateHitSound generates a falling thud under a short noise burst
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.HitSoundDuration

	thud := NewEnvelope(NewGlide(140, 60, d, WaveSaw, rate), d, constant.HitSoundAttack, constant.HitSoundRelease, rate)
	crack := NewEnvelope(NewOscillator(0, d/2, WaveNoise, rate), d/2, constant.HitSoundAttack, d/3, rate)

	return newVolume(beep.Mix(newVolume(thud, 0.7), newVolume(crack, 0.4)), cfg.volume(constant.SoundHit))
}

// GetSoundEffect returns the synthesized streamer for a sound name, nil if unknown
func GetSoundEffect(name string, cfg *AudioConfig) beep.Streamer {
	switch name {
	case constant.SoundWing:
		return CreateWingSound(cfg)
	case constant.SoundHit:
		return CreateHitSound(cfg)
	default:
		return nil
	}
}
