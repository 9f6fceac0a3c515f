package audio

import "github.com/lixenwraith/tof-flappy/constant"

// AudioConfig holds speaker and sound source settings
type AudioConfig struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	// EffectVolumes scales individual sounds by name, missing names play at 1.0
	EffectVolumes map[string]float64
	// Files maps sound names to WAV files replacing the synthesized defaults
	Files map[string]string
}

// DefaultAudioConfig returns synthesized sounds at full volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constant.AudioSampleRate,
		MasterVolume: 1.0,
		EffectVolumes: map[string]float64{
			constant.SoundWing: 0.6,
			constant.SoundHit:  0.8,
		},
		Files: map[string]string{},
	}
}

// volume returns the effective volume for a sound
func (c *AudioConfig) volume(name string) float64 {
	v, ok := c.EffectVolumes[name]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
