package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/app"
	"github.com/lixenwraith/loose-goose/config"
	"github.com/lixenwraith/loose-goose/control"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/goose"
	"github.com/lixenwraith/loose-goose/logging"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/render/ebitenr"
	"github.com/lixenwraith/loose-goose/vmath"
)

var (
	configFlag = flag.String("config", "goose.yaml", "YAML config file (optional)")
	envFlag    = flag.String("env", ".env", "dotenv file (optional)")
)

// overlay is the ebiten.Game driving one app
type overlay struct {
	app      *app.App
	renderer *ebitenr.Renderer
	log      *zap.Logger
	bounds   vmath.Bounds
	hat      goose.HatType
	quit     context.Context
}

func (o *overlay) Update() error {
	if o.quit.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	o.handleKeys()

	x, y := ebiten.CursorPosition()
	in := engine.Input{
		Pointer:          vmath.V(float64(x), float64(y)),
		Clicked:          inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		SecondaryClicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Down:             ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	o.app.Tick(in, o.bounds)
	return nil
}

// stateKeys maps the number row onto the twelve states
var stateKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0, ebiten.KeyMinus, ebiten.KeyEqual,
}

func (o *overlay) handleKeys() {
	c := o.app.Controller
	post := func(op control.Op) {
		if err := c.Post(op); err != nil {
			o.log.Warn("command dropped", zap.Error(err))
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		post(control.Op{Kind: control.OpSpawn})
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		post(control.Op{Kind: control.OpKill})
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		o.hat = o.hat.Next()
		post(control.Op{Kind: control.OpSetHat, Hat: o.hat})
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		post(control.Op{Kind: control.OpToggleDebug})
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		c.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		c.ToggleMute()
	}
	for i, k := range stateKeys {
		if inpututil.IsKeyJustPressed(k) {
			post(control.Op{Kind: control.OpSetState, State: goose.Kind(i)})
		}
	}
}

func (o *overlay) Draw(screen *ebiten.Image) {
	o.renderer.Begin(screen)
	o.app.Engine.Draw(o.renderer)
}

func (o *overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	o.bounds = vmath.Bounds{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, flush, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		return
	}
	defer a.Close()
	a.Start(ctx)

	ebiten.SetWindowTitle("loose-goose")
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(parameter.TicksPerSecond)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	if cfg.Window.Transparent {
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
	}

	o := &overlay{
		app:      a,
		renderer: ebitenr.New(),
		log:      log,
		bounds:   vmath.Bounds{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
		quit:     ctx,
	}
	err = ebiten.RunGameWithOptions(o, &ebiten.RunGameOptions{
		ScreenTransparent: cfg.Window.Transparent,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("window closed with error", zap.Error(err))
	}
}
