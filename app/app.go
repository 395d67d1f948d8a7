// Package app wires a loaded config into a running simulation: audio, assets,
// engine, controller and the optional control API. Hosts own the window or
// terminal and drive Tick from their frame loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/audio"
	"github.com/lixenwraith/loose-goose/config"
	"github.com/lixenwraith/loose-goose/control"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/status"
	"github.com/lixenwraith/loose-goose/vmath"
)

type App struct {
	Config     *config.Config
	Log        *zap.Logger
	Status     *status.Registry
	Player     *audio.Player
	Assets     *asset.Manager
	Engine     *engine.Engine
	Controller *control.Controller
	API        *control.API

	cancel context.CancelFunc
	done   chan error
}

// New builds every component and loads assets; it does not open windows or devices
// other than the audio output
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Log:    log,
		Status: status.NewRegistry(),
	}

	a.Player = audio.NewPlayer(cfg.Audio, log.Named("audio"))
	if err := a.Player.Start(); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	man, err := loadManifest(cfg.Assets.Manifest)
	if err != nil {
		a.Player.Close()
		return nil, err
	}
	a.Assets = asset.NewManager(asset.Options{
		FS:           os.DirFS(cfg.Assets.Dir),
		Placeholders: cfg.Assets.Placeholders,
		Player:       a.Player,
		Log:          log.Named("asset"),
	})
	a.Assets.Queue(man)
	if err := a.Assets.DownloadAll(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Player.Close()
			return nil, err
		}
		// missing sheets are drawn as placeholders or skipped per draw
		log.Warn("assets degraded", zap.Error(err))
	}

	var rng engine.Rand
	if cfg.Behavior.Seed != 0 {
		rng = engine.SeededRand(cfg.Behavior.Seed)
	}
	a.Engine = engine.New(engine.Options{
		Clock:     engine.NewClock(nil, parameter.MaxTickStep),
		Assets:    a.Assets,
		Rand:      rng,
		Log:       log.Named("engine"),
		Status:    a.Status,
		RateModel: cfg.Behavior.RateModel,
		Debug:     cfg.Debug,
	})
	a.Controller = control.New(a.Engine, a.Player, a.Status, log.Named("control"))

	if cfg.Control.Enabled {
		a.API = control.NewAPI(a.Controller, cfg.Control.Origins, log.Named("api"))
	}
	if cfg.Behavior.AutoSpawn {
		if err := a.Controller.Post(control.Op{Kind: control.OpSpawn}); err != nil {
			log.Warn("auto spawn", zap.Error(err))
		}
	}
	return a, nil
}

func loadManifest(path string) (*asset.Manifest, error) {
	if path == "" {
		return asset.MustDefaultManifest(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset manifest: %w", err)
	}
	return asset.ParseManifest(data)
}

// Start launches the control API when enabled
func (a *App) Start(ctx context.Context) {
	if a.API == nil {
		return
	}
	ctx, a.cancel = context.WithCancel(ctx)
	a.done = make(chan error, 1)
	go func() {
		err := a.API.Serve(ctx, a.Config.Control.Addr)
		if err != nil {
			a.Log.Error("control api stopped", zap.Error(err))
		}
		a.done <- err
	}()
}

// Tick advances the simulation by one host frame
func (a *App) Tick(in engine.Input, bounds vmath.Bounds) {
	a.Engine.Update(in, bounds)
}

// Close stops the API and the audio device
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
		<-a.done
	}
	a.Player.Close()
	a.Log.Info("shutdown complete")
}
