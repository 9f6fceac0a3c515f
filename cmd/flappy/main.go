package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/tof-flappy/bootstrap"
	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/core"
	"github.com/lixenwraith/tof-flappy/engine"
	"github.com/lixenwraith/tof-flappy/input"
	"github.com/lixenwraith/tof-flappy/render"
	"github.com/lixenwraith/tof-flappy/terminal"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to "+filepath.Join(constant.LogDir, constant.LogFileName))
	sensorFlag = flag.String("sensor", "", "Sensor source override: gesture, iio, script")
	seedFlag   = flag.Int64("seed", 0, "Pipe layout seed, 0 uses config or clock")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	// Panic Recovery: terminal reset registered by terminal.Init runs first
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := bootstrap.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := bootstrap.LoadConfig(*configFlag, *sensorFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	clock := engine.NewMonotonicTimeProvider()
	session, err := bootstrap.New(cfg, clock, bootstrap.Options{Mute: *muteFlag, Seed: *seedFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Startup failed: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	term := terminal.New(nil, input.DefaultKeyTable())
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()
	term.Start()

	renderer := render.NewTerminalRenderer(term.Screen(), cfg.Screen.Width, cfg.Screen.Height)
	scheduler := engine.NewClockScheduler(clock, cfg.TickInterval())

	err = scheduler.Run(context.Background(), func() (bool, error) {
		for _, in := range term.Drain() {
			if session.HandleIntent(in) {
				log.Printf("quit requested at tick %d", session.Game.World.Tick)
				return true, nil
			}
		}
		if _, err := session.Game.Tick(renderer); err != nil {
			return true, err
		}
		return session.Game.Finished(), nil
	})

	term.Fini()
	log.Printf("exit after %d ticks, %d resyncs", scheduler.TickCount(), scheduler.Resyncs())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game loop: %v\n", err)
		os.Exit(1)
	}
}
