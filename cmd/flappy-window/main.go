package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/tof-flappy/bootstrap"
	"github.com/lixenwraith/tof-flappy/constant"
	"github.com/lixenwraith/tof-flappy/engine"
	"github.com/lixenwraith/tof-flappy/input"
	"github.com/lixenwraith/tof-flappy/render/window"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to "+filepath.Join(constant.LogDir, constant.LogFileName))
	sensorFlag = flag.String("sensor", "", "Sensor source override: gesture, iio, script")
	seedFlag   = flag.Int64("seed", 0, "Pipe layout seed, 0 uses config or clock")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	scaleFlag  = flag.Float64("scale", 1, "Window scale factor")
)

// windowKeys maps ebiten keys onto the same intents the terminal key table produces
var windowKeys = map[ebiten.Key]input.IntentType{
	ebiten.KeyEscape: input.IntentQuit,
	ebiten.KeyQ:      input.IntentQuit,
	ebiten.KeySpace:  input.IntentFlap,
	ebiten.KeyUp:     input.IntentFlap,
	ebiten.KeyEnter:  input.IntentFlap,
	ebiten.KeyK:      input.IntentFlap,
	ebiten.KeyM:      input.IntentToggleMute,
}

// Game adapts a session to ebiten's Update/Draw loop, one Update per tick
type Game struct {
	session  *bootstrap.Session
	renderer *window.Renderer
	width    int
	height   int
}

func (g *Game) Update() error {
	for key, intent := range windowKeys {
		if inpututil.IsKeyJustPressed(key) && g.session.HandleIntent(input.Intent{Type: intent}) {
			return ebiten.Termination
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.HandleIntent(input.Intent{Type: input.IntentFlap})
	}

	if res := g.session.Game.Update(); res.Finished {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	if err := g.session.Game.Render(g.renderer); err != nil {
		log.Printf("render: %v", err)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	flag.Parse()

	if logFile := bootstrap.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := bootstrap.LoadConfig(*configFlag, *sensorFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	session, err := bootstrap.New(cfg, engine.NewMonotonicTimeProvider(), bootstrap.Options{Mute: *muteFlag, Seed: *seedFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Startup failed: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	g := &Game{
		session:  session,
		renderer: window.NewRenderer(),
		width:    cfg.Screen.Width,
		height:   cfg.Screen.Height,
	}

	ebiten.SetTPS(cfg.Game.TickRate)
	ebiten.SetWindowSize(int(float64(cfg.Screen.Width)**scaleFlag), int(float64(cfg.Screen.Height)**scaleFlag))
	ebiten.SetWindowTitle("Flappy Bird")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		session.Close()
		fmt.Fprintf(os.Stderr, "Window: %v\n", err)
		os.Exit(1)
	}
}
