package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Sound names used by the game loop
const (
	SoundWing = "wing"
	SoundHit  = "hit"
)

// Wing Sound
const (
	WingSoundDuration = 120 * time.Millisecond
	WingSoundAttack   = 5 * time.Millisecond
	WingSoundRelease  = 80 * time.Millisecond
)

// Hit Sound
const (
	HitSoundDuration = 250 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 200 * time.Millisecond
)
