package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/tof-flappy/constant"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected valid defaults, got %v", err)
	}
	if cfg.TickInterval() != time.Second/constant.TickRate {
		t.Errorf("Unexpected tick interval %v", cfg.TickInterval())
	}
}

func TestExampleFileLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "flappy.example.toml"))
	if err != nil {
		t.Fatalf("Expected example config to load, got %v", err)
	}
	def := Default()
	if cfg.Pipes != def.Pipes || cfg.Ranging != def.Ranging || cfg.Game != def.Game {
		t.Error("Expected example file to restate the defaults")
	}
	if cfg.Audio.Volumes[constant.SoundHit] != 0.8 {
		t.Errorf("Expected hit volume 0.8, got %v", cfg.Audio.Volumes[constant.SoundHit])
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg.Sensor.Source != SensorGesture {
		t.Errorf("Expected defaults, got %+v (%v)", cfg.Sensor, err)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(`
[ranging]
near_mm = 180
cooldown = "400ms"

[sensor]
source = "script"
script = [400, 300, 150]

[game]
tick_rate = 30
restart = true
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	rc := cfg.RangingConfig()
	if rc.NearMM != 180 || rc.CooldownMS != 400 || rc.DebounceMM != constant.RangeDebounceMM {
		t.Errorf("Unexpected ranging config %+v", rc)
	}
	if len(cfg.Sensor.Script) != 3 || cfg.Sensor.Script[2] != 150 {
		t.Errorf("Unexpected script %v", cfg.Sensor.Script)
	}
	if !cfg.GameOptions().Restart || cfg.GameOptions().GameOverHold != constant.GameOverHold {
		t.Errorf("Unexpected game options %+v", cfg.GameOptions())
	}

	// Doubling the tick rate halves velocities and quarters gravity
	p := cfg.Params()
	if p.FlapSpeed != 7.5 || p.ScrollSpeed != 7.5 || p.Gravity != 0.75 {
		t.Errorf("Unexpected rescaled params %+v", p)
	}
	if cfg.TickInterval() != time.Second/30 {
		t.Errorf("Unexpected tick interval %v", cfg.TickInterval())
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse("[pipes]\ngapp = 150\n")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for a typo, got %v", err)
	}
}

func TestParseRejectsBadDuration(t *testing.T) {
	if _, err := Parse("[ranging]\ncooldown = \"soon\"\n"); err == nil {
		t.Error("Expected duration parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero tick rate", func(c *Config) { c.Game.TickRate = 0 }},
		{"inverted pipe range", func(c *Config) { c.Pipes.MinHeight = 350 }},
		{"gap too tall", func(c *Config) { c.Pipes.Gap = 400 }},
		{"pipe sprite too short", func(c *Config) { c.Pipes.Height = 200 }},
		{"one ground segment", func(c *Config) { c.Ground.Segments = 1 }},
		{"narrow ground", func(c *Config) { c.Ground.Width = 300 }},
		{"spacing inside pipe", func(c *Config) { c.Pipes.Spacing = 40 }},
		{"negative cooldown", func(c *Config) { c.Ranging.Cooldown = Duration{-time.Second} }},
		{"unknown sensor", func(c *Config) { c.Sensor.Source = "sonar" }},
		{"empty script", func(c *Config) { c.Sensor.Source = SensorScript }},
		{"no sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[screen\nwidth = 1"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Expected syntax error")
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Audio.Volumes = map[string]float64{constant.SoundWing: 0.1}
	cfg.Audio.Files = map[string]string{constant.SoundHit: "hit.wav"}

	ac := cfg.AudioConfig()
	if ac.EffectVolumes[constant.SoundWing] != 0.1 || ac.EffectVolumes[constant.SoundHit] != 0.8 {
		t.Errorf("Expected override merged over defaults, got %v", ac.EffectVolumes)
	}
	if ac.Files[constant.SoundHit] != "hit.wav" {
		t.Errorf("Unexpected files %v", ac.Files)
	}

	wc := cfg.WorldConfig(42)
	if wc.Seed != 42 || wc.Pipes.Gap != constant.PipeGap || wc.GroundSegments != constant.GroundSegments {
		t.Errorf("Unexpected world config %+v", wc)
	}
	if wc.Layout.GroundHeight != constant.GroundHeight || wc.Params.Gravity != constant.Gravity {
		t.Errorf("Unexpected layout or params %+v %+v", wc.Layout, wc.Params)
	}
}
