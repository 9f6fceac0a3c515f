// Package bootstrap assembles a playable session from a config: sprites,
// ranging sensor, audio and the game itself. Both frontends share it.
package bootstrap

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/tof-flappy/asset"
	"github.com/lixenwraith/tof-flappy/audio"
	"github.com/lixenwraith/tof-flappy/config"
	"github.com/lixenwraith/tof-flappy/engine"
	"github.com/lixenwraith/tof-flappy/input"
	"github.com/lixenwraith/tof-flappy/sensor"
)

// Session is everything a frontend needs to run one game
type Session struct {
	Config  *config.Config
	Sprites *asset.Set
	Ranger  sensor.Ranger
	// Gesture is set when the sensor is simulated from key presses
	Gesture *sensor.Gesture
	// Speaker is nil when audio is disabled or the device is unavailable
	Speaker *audio.Speaker
	Game    *engine.Game
	Seed    int64

	closers []func()
}

// Options are frontend overrides applied after the config file
type Options struct {
	Mute bool
	Seed int64 // 0 keeps the config seed, or the clock when that is 0 too
}

// New builds a session; asset and sensor failures are fatal, audio device failure is not
func New(cfg *config.Config, clock engine.TimeProvider, opts Options) (*Session, error) {
	s := &Session{Config: cfg}

	sprites, err := LoadSprites(cfg)
	if err != nil {
		return nil, err
	}
	s.Sprites = sprites

	if err := s.openSensor(); err != nil {
		return nil, err
	}

	player, err := s.openAudio(opts.Mute)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.Seed = opts.Seed
	if s.Seed == 0 {
		s.Seed = cfg.Game.Seed
	}
	if s.Seed == 0 {
		s.Seed = time.Now().UnixNano()
	}
	log.Printf("bootstrap: seed %d, tick rate %d Hz, sensor %s", s.Seed, cfg.Game.TickRate, cfg.Sensor.Source)

	world := engine.NewWorld(cfg.WorldConfig(s.Seed), sprites)
	debouncer := input.NewRangingDebouncer(cfg.RangingConfig())
	s.Game = engine.NewGame(world, debouncer, s.Ranger, player, clock, cfg.GameOptions())
	return s, nil
}

// LoadConfig reads path over the defaults, empty path keeps the defaults
// A non-empty sensor overrides the configured source
func LoadConfig(path, sensor string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if sensor != "" {
		cfg.Sensor.Source = sensor
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadSprites returns the PNG set from the configured directory, or the built-in set
func LoadSprites(cfg *config.Config) (*asset.Set, error) {
	if cfg.Assets.SpriteDir == "" {
		return asset.Builtin(cfg.Layout()), nil
	}
	set, err := asset.Load(cfg.Assets.SpriteDir, cfg.Layout())
	if err != nil {
		return nil, fmt.Errorf("sprites: %w", err)
	}
	return set, nil
}

func (s *Session) openSensor() error {
	sc := s.Config.Sensor
	switch sc.Source {
	case config.SensorGesture:
		s.Gesture = sensor.NewGesture(nil)
		s.Ranger = s.Gesture

	case config.SensorScript:
		s.Ranger = sensor.NewScript(sensor.Distances(sc.Script...)...)

	case config.SensorIIO:
		var dev *sensor.IIO
		var err error
		if sc.IIODevice != "" {
			dev, err = sensor.NewIIO(sc.IIODevice)
		} else {
			dev, err = sensor.FindIIO(sc.IIORoot, sc.IIOName)
		}
		if err != nil {
			return fmt.Errorf("sensor: %w", err)
		}
		log.Printf("bootstrap: ranging from %s", dev.Path())

		async := sensor.NewAsync(dev, sc.PollInterval.Duration, sc.MaxAge.Duration)
		async.Start()
		s.closers = append(s.closers, func() {
			async.Stop()
			reads, fails := async.Stats()
			log.Printf("sensor: %d reads, %d failed", reads, fails)
		})
		s.Ranger = async

	default:
		return fmt.Errorf("sensor source %q: %w", sc.Source, config.ErrInvalid)
	}
	return nil
}

func (s *Session) openAudio(mute bool) (audio.Player, error) {
	ac := s.Config.AudioConfig()
	if !ac.Enabled || mute {
		return audio.Nop{}, nil
	}

	spk := audio.NewSpeaker(ac)
	if err := spk.Load(); err != nil {
		// Configured sound files are part of the asset set
		return nil, fmt.Errorf("audio: %w", err)
	}
	if err := spk.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
		return audio.Nop{}, nil
	}
	s.Speaker = spk
	s.closers = append(s.closers, spk.Cleanup)
	return spk, nil
}

// HandleIntent applies a frontend intent, returns true when the session should quit
func (s *Session) HandleIntent(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return true
	case input.IntentFlap:
		if s.Gesture != nil {
			s.Gesture.Trigger()
		}
	case input.IntentToggleMute:
		if s.Speaker != nil {
			log.Printf("audio: muted=%v", s.Speaker.ToggleMute())
		}
	}
	return false
}

// Close releases the sensor poller and audio device in reverse order
func (s *Session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
