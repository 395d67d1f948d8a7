package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/app"
	"github.com/lixenwraith/loose-goose/config"
	"github.com/lixenwraith/loose-goose/control"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/goose"
	"github.com/lixenwraith/loose-goose/logging"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/render/termr"
	"github.com/lixenwraith/loose-goose/vmath"
)

var (
	configFlag = flag.String("config", "goose.yaml", "YAML config file (optional)")
	envFlag    = flag.String("env", ".env", "dotenv file (optional)")
	cellWFlag  = flag.Float64("cell-w", 4, "canvas pixels per terminal column")
	cellHFlag  = flag.Float64("cell-h", 8, "canvas pixels per terminal row")
)

// pointer folds mouse events between ticks into one engine.Input
type pointer struct {
	pos       vmath.Vec2
	buttons   tcell.ButtonMask
	clicked   bool
	secondary bool
}

func (p *pointer) mouse(ev *tcell.EventMouse, r *termr.Renderer) {
	x, y := ev.Position()
	p.pos = r.CanvasPoint(x, y)
	b := ev.Buttons()
	pressed := b &^ p.buttons
	if pressed&tcell.Button1 != 0 {
		p.clicked = true
	}
	if pressed&tcell.Button2 != 0 {
		p.secondary = true
	}
	p.buttons = b
}

// take returns the input for this tick and clears edge-triggered clicks
func (p *pointer) take() engine.Input {
	in := engine.Input{
		Pointer:          p.pos,
		Clicked:          p.clicked,
		SecondaryClicked: p.secondary,
		Down:             p.buttons&tcell.Button1 != 0,
	}
	p.clicked, p.secondary = false, false
	return in
}

// stateRunes maps the number row onto the twelve states
const stateRunes = "1234567890-="

// handleKey returns false when the host should exit
func handleKey(ev *tcell.EventKey, a *app.App, hat *goose.HatType, log *zap.Logger) bool {
	post := func(op control.Op) {
		if err := a.Controller.Post(op); err != nil {
			log.Warn("command dropped", zap.Error(err))
		}
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); r {
	case 'q':
		return false
	case 'n':
		post(control.Op{Kind: control.OpSpawn})
	case 'k':
		post(control.Op{Kind: control.OpKill})
	case 'h':
		*hat = hat.Next()
		post(control.Op{Kind: control.OpSetHat, Hat: *hat})
	case 'd':
		post(control.Op{Kind: control.OpToggleDebug})
	case ' ':
		a.Controller.TogglePause()
	case 'm':
		a.Controller.ToggleMute()
	default:
		for i, sr := range stateRunes {
			if sr == r {
				post(control.Op{Kind: control.OpSetState, State: goose.Kind(i)})
			}
		}
	}
	return true
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()
	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	// stdout is the screen
	if cfg.Log.Output == logging.OutputStderr {
		cfg.Log.Output = logging.OutputFile
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
		fmt.Fprintf(os.Stderr, "startup: %v\n", err)
		return
	}
	defer a.Close()
	a.Start(ctx)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return
	}
	crashScreen = screen
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	renderer := termr.New(screen, *cellWFlag, *cellHFlag)

	events := make(chan tcell.Event, 256)
	goSafe(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	var (
		ptr pointer
		hat goose.HatType
	)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ev, a, &hat, log) {
					return
				}
			case *tcell.EventMouse:
				ptr.mouse(ev, renderer)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			renderer.Begin()
			a.Tick(ptr.take(), renderer.Bounds())
			a.Engine.Draw(renderer)
			if a.Engine.Context().Debug {
				drawStatus(renderer, a.Controller.Snapshot())
			}
			renderer.Flush()
		}
	}
}

func drawStatus(r *termr.Renderer, s control.Snapshot) {
	line := "no goose"
	if s.Agent != nil {
		line = fmt.Sprintf("%s  state=%s  hat=%s  goslings=%d", s.Agent.ID[:8], s.Agent.State, s.Agent.Hat, s.Agent.Goslings)
	}
	if s.Paused {
		line += "  [paused]"
	}
	if s.Muted {
		line += "  [muted]"
	}
	r.DrawText(line, 0, 0)
}
