package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/audio"
)

// ErrMissingAsset is the animation package's sentinel, re-exported for hosts
var ErrMissingAsset = animation.ErrMissingAsset

// Options configures a Manager
type Options struct {
	// FS holds sheet and clip files at manifest paths; nil loads nothing from disk
	FS fs.FS
	// Placeholders synthesizes tinted grid sheets for sheets that fail to load
	Placeholders bool
	// Player receives clips; nil disables audio
	Player *audio.Player
	Log    *zap.Logger
	// Parallel bounds concurrent decodes
	Parallel int
}

// Manager queues assets, downloads them up front, then serves images and audio to the engine
type Manager struct {
	opts Options
	log  *zap.Logger

	mu     sync.RWMutex
	sheets []SheetSpec
	clips  []ClipSpec
	images map[string]image.Image
	warned map[string]bool
}

func NewManager(opts Options) *Manager {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Parallel <= 0 {
		opts.Parallel = 4
	}
	return &Manager{
		opts:   opts,
		log:    opts.Log,
		images: make(map[string]image.Image),
		warned: make(map[string]bool),
	}
}

// Queue adds every sheet and clip of m
func (m *Manager) Queue(man *Manifest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheets = append(m.sheets, man.Sheets...)
	m.clips = append(m.clips, man.Clips...)
}

// DownloadAll loads the queue. Individual failures degrade (placeholder, synth or
// absent) and are returned joined; only cancellation aborts the load
func (m *Manager) DownloadAll(ctx context.Context) error {
	m.mu.RLock()
	sheets := append([]SheetSpec(nil), m.sheets...)
	clips := append([]ClipSpec(nil), m.clips...)
	m.mu.RUnlock()

	var (
		errMu sync.Mutex
		errs  []error
	)
	record := func(err error) {
		errMu.Lock()
		errs = append(errs, err)
		errMu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Parallel)
	for _, s := range sheets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := m.loadSheet(s)
			if err != nil {
				record(err)
				if !m.opts.Placeholders {
					return nil
				}
				img = Placeholder(s)
				m.log.Debug("placeholder sheet", zap.String("sheet", s.ID))
			}
			m.mu.Lock()
			m.images[s.ID] = img
			m.mu.Unlock()
			return nil
		})
	}
	for _, c := range clips {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := m.loadClip(c); err != nil {
				record(err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	m.log.Info("assets loaded",
		zap.Int("sheets", len(sheets)),
		zap.Int("clips", len(clips)),
		zap.Int("degraded", len(errs)),
	)
	return errors.Join(errs...)
}

func (m *Manager) loadSheet(s SheetSpec) (image.Image, error) {
	if m.opts.FS == nil {
		return nil, fmt.Errorf("%w: sheet %s (no asset directory)", ErrMissingAsset, s.ID)
	}
	f, err := m.opts.FS.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", ErrMissingAsset, s.ID, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", s.ID, err)
	}
	return img, nil
}

// loadClip prefers the mp3 file and falls back to the synth preset
func (m *Manager) loadClip(c ClipSpec) error {
	p := m.opts.Player
	if p == nil {
		return nil
	}
	var fileErr error
	if m.opts.FS != nil && c.Path != "" {
		f, err := m.opts.FS.Open(c.Path)
		if err == nil {
			if fileErr = p.LoadMP3(c.ID, f); fileErr == nil {
				return nil
			}
		} else {
			fileErr = err
		}
	}
	if c.Synth != "" {
		return p.LoadSynth(c.ID, c.Synth)
	}
	if fileErr == nil {
		fileErr = errors.New("no file or synth preset")
	}
	return fmt.Errorf("%w: clip %s: %v", ErrMissingAsset, c.ID, fileErr)
}

// Image returns the sheet for id or nil when it never loaded
func (m *Manager) Image(id string) image.Image {
	m.mu.RLock()
	img := m.images[id]
	m.mu.RUnlock()
	return img
}

// SetImage installs img under id; hosts use it for generated sheets
func (m *Manager) SetImage(id string, img image.Image) {
	m.mu.Lock()
	m.images[id] = img
	m.mu.Unlock()
}

// PlayAudio starts clip id; unknown clips are logged once per id
func (m *Manager) PlayAudio(id string, volume float64) {
	if m.opts.Player == nil {
		return
	}
	if err := m.opts.Player.Play(id, volume); err != nil {
		m.warnOnce(id, err)
	}
}

func (m *Manager) StopAudio(id string) {
	if m.opts.Player != nil {
		m.opts.Player.Stop(id)
	}
}

func (m *Manager) warnOnce(id string, err error) {
	m.mu.Lock()
	seen := m.warned[id]
	m.warned[id] = true
	m.mu.Unlock()
	if !seen {
		m.log.Warn("audio clip unavailable", zap.String("clip", id), zap.Error(err))
	}
}

// Placeholder draws a tinted grid matching s: each frame is a rounded block whose
// notch moves with the column so animations stay visible without art
func Placeholder(s SheetSpec) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, s.FrameW*s.Cols, s.FrameH*s.Rows))
	body := color.NRGBA{R: s.Tint[0], G: s.Tint[1], B: s.Tint[2], A: 255}
	edge := color.NRGBA{R: s.Tint[0] / 2, G: s.Tint[1] / 2, B: s.Tint[2] / 2, A: 255}

	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			x0, y0 := col*s.FrameW, row*s.FrameH
			inset := max(1, s.FrameW/8)
			frame := image.Rect(x0+inset, y0+inset, x0+s.FrameW-inset, y0+s.FrameH-inset)
			draw.Draw(img, frame, &image.Uniform{C: edge}, image.Point{}, draw.Src)
			draw.Draw(img, frame.Inset(1), &image.Uniform{C: body}, image.Point{}, draw.Src)

			nw := max(1, s.FrameW/(s.Cols+2))
			nx := x0 + inset + 1 + (col*nw)%max(1, s.FrameW-2*inset-2-nw+1)
			notch := image.Rect(nx, y0+inset+1, nx+nw, y0+inset+1+max(1, s.FrameH/6))
			draw.Draw(img, notch, &image.Uniform{C: edge}, image.Point{}, draw.Src)
		}
	}
	return img
}
