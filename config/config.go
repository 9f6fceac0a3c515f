// Package config loads game settings from an optional TOML file layered over
// built-in defaults, and converts them into the parameter structs each
// subsystem consumes.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/sensor"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Sensor sources
const (
	SensorGesture = "gesture"
	SensorIIO     = "iio"
	SensorScript  = "script"
)

// Duration is a time.Duration read from a TOML string such as "250ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type ScreenConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// PhysicsConfig values are per tick at CalibrationRate
type PhysicsConfig struct {
	Gravity         float64 `toml:"gravity"`
	FlapSpeed       float64 `toml:"flap_speed"`
	ScrollSpeed     float64 `toml:"scroll_speed"`
	CalibrationRate int     `toml:"calibration_rate"`
}

type BirdConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type PipesConfig struct {
	Width     int `toml:"width"`
	Height    int `toml:"height"`
	Gap       int `toml:"gap"`
	MinHeight int `toml:"min_height"`
	MaxHeight int `toml:"max_height"`
	Spacing   int `toml:"spacing"`
	FirstX    int `toml:"first_x"`
	Pairs     int `toml:"pairs"`
}

type GroundConfig struct {
	Width    int `toml:"width"`
	Height   int `toml:"height"`
	Segments int `toml:"segments"`
}

type RangingConfig struct {
	NearMM     int      `toml:"near_mm"`
	DebounceMM int      `toml:"debounce_mm"`
	Cooldown   Duration `toml:"cooldown"`
}

type SensorConfig struct {
	Source       string   `toml:"source"`
	IIODevice    string   `toml:"iio_device"`
	IIOName      string   `toml:"iio_name"`
	IIORoot      string   `toml:"iio_root"`
	PollInterval Duration `toml:"poll_interval"`
	MaxAge       Duration `toml:"max_age"`
	Script       []int    `toml:"script"`
}

type AssetsConfig struct {
	// SpriteDir holds PNG sprites; empty uses the built-in set
	SpriteDir string `toml:"sprite_dir"`
}

type AudioConfig struct {
	Enabled    bool               `toml:"enabled"`
	SampleRate int                `toml:"sample_rate"`
	Volume     float64            `toml:"volume"`
	Volumes    map[string]float64 `toml:"volumes"`
	Files      map[string]string  `toml:"files"`
}

type GameConfig struct {
	TickRate     int      `toml:"tick_rate"`
	Seed         int64    `toml:"seed"`
	Restart      bool     `toml:"restart"`
	GameOverHold Duration `toml:"game_over_hold"`
}

// Config is the full settings tree
type Config struct {
	Screen  ScreenConfig  `toml:"screen"`
	Physics PhysicsConfig `toml:"physics"`
	Bird    BirdConfig    `toml:"bird"`
	Pipes   PipesConfig   `toml:"pipes"`
	Ground  GroundConfig  `toml:"ground"`
	Ranging RangingConfig `toml:"ranging"`
	Sensor  SensorConfig  `toml:"sensor"`
	Assets  AssetsConfig  `toml:"assets"`
	Audio   AudioConfig   `toml:"audio"`
	Game    GameConfig    `toml:"game"`
}

// Default returns the stock game
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{Width: constant.ScreenWidth, Height: constant.ScreenHeight},
		Physics: PhysicsConfig{
			Gravity:         constant.Gravity,
			FlapSpeed:       constant.FlapSpeed,
			ScrollSpeed:     constant.ScrollSpeed,
			CalibrationRate: constant.TickRate,
		},
		Bird: BirdConfig{Width: constant.BirdWidth, Height: constant.BirdHeight},
		Pipes: PipesConfig{
			Width:     constant.PipeWidth,
			Height:    constant.PipeHeight,
			Gap:       constant.PipeGap,
			MinHeight: constant.PipeMinHeight,
			MaxHeight: constant.PipeMaxHeight,
			Spacing:   constant.PipeSpacing,
			FirstX:    constant.FirstPipeX,
			Pairs:     constant.PipePairs,
		},
		Ground: GroundConfig{
			Width:    constant.GroundWidth,
			Height:   constant.GroundHeight,
			Segments: constant.GroundSegments,
		},
		Ranging: RangingConfig{
			NearMM:     constant.RangeNearMM,
			DebounceMM: constant.RangeDebounceMM,
			Cooldown:   Duration{constant.RangeCooldownMS * time.Millisecond},
		},
		Sensor: SensorConfig{
			Source:       SensorGesture,
			IIOName:      "vl53l0x",
			IIORoot:      sensor.DefaultIIORoot,
			PollInterval: Duration{30 * time.Millisecond},
			MaxAge:       Duration{200 * time.Millisecond},
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: constant.AudioSampleRate,
			Volume:     1.0,
			Volumes:    map[string]float64{},
			Files:      map[string]string{},
		},
		Game: GameConfig{
			TickRate:     constant.TickRate,
			GameOverHold: Duration{constant.GameOverHold},
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
// Unknown keys are rejected so typos do not silently fall back
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.finish(md); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults, for embedded or test configs
func Parse(text string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.finish(md); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) finish(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}
	return c.Validate()
}

// Validate rejects geometry and timing the game cannot run with
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid)
	}

	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return invalid("screen size %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Game.TickRate <= 0:
		return invalid("tick rate %d", c.Game.TickRate)
	case c.Physics.CalibrationRate <= 0:
		return invalid("physics calibration rate %d", c.Physics.CalibrationRate)
	case c.Bird.Width <= 0 || c.Bird.Height <= 0:
		return invalid("bird size %dx%d", c.Bird.Width, c.Bird.Height)
	case c.Pipes.Width <= 0 || c.Pipes.Height <= 0:
		return invalid("pipe size %dx%d", c.Pipes.Width, c.Pipes.Height)
	case c.Pipes.Gap <= 0:
		return invalid("pipe gap %d", c.Pipes.Gap)
	case c.Pipes.MinHeight < 0 || c.Pipes.MinHeight > c.Pipes.MaxHeight:
		return invalid("pipe height range [%d, %d]", c.Pipes.MinHeight, c.Pipes.MaxHeight)
	case c.Pipes.MaxHeight+c.Pipes.Gap > c.Screen.Height:
		return invalid("pipe max height %d plus gap %d exceeds screen height %d", c.Pipes.MaxHeight, c.Pipes.Gap, c.Screen.Height)
	case c.Pipes.MaxHeight > c.Pipes.Height || c.Screen.Height-c.Pipes.MinHeight-c.Pipes.Gap > c.Pipes.Height:
		return invalid("pipe sprite height %d cannot cover exposure range", c.Pipes.Height)
	case c.Pipes.Pairs <= 0:
		return invalid("pipe pairs %d", c.Pipes.Pairs)
	case c.Pipes.Spacing < c.Pipes.Width:
		return invalid("pipe spacing %d narrower than pipe width %d", c.Pipes.Spacing, c.Pipes.Width)
	case c.Ground.Segments < 2:
		return invalid("ground segments %d, need at least 2", c.Ground.Segments)
	case c.Ground.Width < c.Screen.Width:
		return invalid("ground width %d narrower than screen %d", c.Ground.Width, c.Screen.Width)
	case c.Ground.Height <= 0 || c.Ground.Height >= c.Screen.Height:
		return invalid("ground height %d", c.Ground.Height)
	case c.Ranging.NearMM <= 0 || c.Ranging.DebounceMM < 0 || c.Ranging.Cooldown.Duration < 0:
		return invalid("ranging thresholds near=%d debounce=%d cooldown=%s", c.Ranging.NearMM, c.Ranging.DebounceMM, c.Ranging.Cooldown)
	case c.Audio.SampleRate <= 0:
		return invalid("audio sample rate %d", c.Audio.SampleRate)
	case c.Audio.Volume < 0:
		return invalid("audio volume %f", c.Audio.Volume)
	case c.Game.GameOverHold.Duration < 0:
		return invalid("game over hold %s", c.Game.GameOverHold)
	}

	switch c.Sensor.Source {
	case SensorGesture, SensorIIO:
	case SensorScript:
		if len(c.Sensor.Script) == 0 {
			return invalid("sensor source %q needs a script", c.Sensor.Source)
		}
	default:
		return invalid("sensor source %q", c.Sensor.Source)
	}
	return nil
}

// TickInterval returns the duration of one tick
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Game.TickRate)
}
