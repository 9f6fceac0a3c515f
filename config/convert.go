package config

import (
	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/audio"
	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/engine"
	"github.com/lixenwraith/tof-flappy/input"
	"github.com/lixenwraith/tof-flappy/physics"
	"github.com/lixenwraith/tof-flappy/system"
)

// Layout returns sprite sizes
func (c *Config) Layout() asset.Layout {
	return asset.Layout{
		ScreenWidth:   c.Screen.Width,
		ScreenHeight:  c.Screen.Height,
		BirdWidth:     c.Bird.Width,
		BirdHeight:    c.Bird.Height,
		PipeWidth:     c.Pipes.Width,
		PipeHeight:    c.Pipes.Height,
		GroundWidth:   c.Ground.Width,
		GroundHeight:  c.Ground.Height,
		MessageWidth:  constant.MessageWidth,
		MessageHeight: constant.MessageHeight,
	}
}

// Params returns per-tick physics rescaled from the calibration rate to the tick rate
func (c *Config) Params() physics.Params {
	p := physics.Params{
		Gravity:     c.Physics.Gravity,
		FlapSpeed:   c.Physics.FlapSpeed,
		ScrollSpeed: c.Physics.ScrollSpeed,
	}
	return p.Scaled(c.Physics.CalibrationRate, c.Game.TickRate)
}

// PipeConfig returns obstacle generation geometry
func (c *Config) PipeConfig() system.PipeConfig {
	return system.PipeConfig{
		ScreenHeight: c.Screen.Height,
		Gap:          c.Pipes.Gap,
		MinHeight:    c.Pipes.MinHeight,
		MaxHeight:    c.Pipes.MaxHeight,
		Spacing:      c.Pipes.Spacing,
		FirstX:       c.Pipes.FirstX,
		Pairs:        c.Pipes.Pairs,
	}
}

// WorldConfig assembles the world with the given RNG seed
func (c *Config) WorldConfig(seed int64) engine.WorldConfig {
	return engine.WorldConfig{
		Layout:         c.Layout(),
		Params:         c.Params(),
		Pipes:          c.PipeConfig(),
		GroundSegments: c.Ground.Segments,
		MessageX:       constant.MessageX,
		MessageY:       constant.MessageY,
		Seed:           seed,
	}
}

// RangingConfig returns debounce thresholds
func (c *Config) RangingConfig() input.RangingConfig {
	return input.RangingConfig{
		NearMM:     c.Ranging.NearMM,
		DebounceMM: c.Ranging.DebounceMM,
		CooldownMS: c.Ranging.Cooldown.Milliseconds(),
	}
}

// GameOptions returns session behavior around the world
func (c *Config) GameOptions() engine.GameOptions {
	return engine.GameOptions{
		Restart:      c.Game.Restart,
		GameOverHold: c.Game.GameOverHold.Duration,
	}
}

// AudioConfig returns speaker settings, configured volumes override the defaults
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.SampleRate = c.Audio.SampleRate
	ac.MasterVolume = c.Audio.Volume
	for name, v := range c.Audio.Volumes {
		ac.EffectVolumes[name] = v
	}
	for name, path := range c.Audio.Files {
		ac.Files[name] = path
	}
	return ac
}
