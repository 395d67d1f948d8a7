// Package audio plays the agent's cues through a beep mixer.
// Clips are rendered once into buffers; every play is a fresh streamer over that buffer.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/parameter"
)

var ErrUnknownClip = errors.New("audio: unknown clip")

type voice struct {
	ctrl   *beep.Ctrl
	stream beep.StreamSeeker
}

func (v voice) done() bool { return v.stream.Position() >= v.stream.Len() }

// Player owns clip buffers and the output graph: mixer -> master volume -> pause ctrl
type Player struct {
	mu  sync.Mutex
	cfg Config
	log *zap.Logger

	format beep.Format
	clips  map[string]*beep.Buffer
	voices map[string][]voice

	mixer  *beep.Mixer
	master *effects.Volume
	ctrl   *beep.Ctrl

	volume float64

	started atomic.Bool
	silent  atomic.Bool
	muted   atomic.Bool
}

// NewPlayer builds the graph; nothing reaches the speaker until Start
func NewPlayer(cfg Config, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	p := &Player{
		cfg:    cfg,
		log:    log,
		format: beep.Format{SampleRate: beep.SampleRate(cfg.SampleRate), NumChannels: 2, Precision: 2},
		clips:  make(map[string]*beep.Buffer),
		voices: make(map[string][]voice),
		mixer:  &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	p.master = &effects.Volume{Streamer: p.mixer, Base: 2}
	p.setMaster(cfg.MasterVolume)
	p.ctrl = &beep.Ctrl{Streamer: p.master}
	return p
}

// Start opens the speaker. A missing device switches the player to silent mode
// rather than failing: the agent runs fine without sound
func (p *Player) Start() error {
	if p.started.Load() || p.silent.Load() {
		return nil
	}
	if !p.cfg.Enabled {
		p.silent.Store(true)
		p.log.Info("audio disabled")
		return nil
	}
	sr := p.format.SampleRate
	if err := speaker.Init(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		p.silent.Store(true)
		p.log.Warn("audio device unavailable, running silent", zap.Error(err))
		return nil
	}
	speaker.Play(p.ctrl)
	p.started.Store(true)
	p.log.Info("audio started", zap.Int("sample_rate", int(sr)))
	return nil
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.StopAll()
	if p.started.CompareAndSwap(true, false) {
		speaker.Clear()
		speaker.Close()
	}
}

// Silent reports whether output degraded to no-op
func (p *Player) Silent() bool { return p.silent.Load() }

// Output exposes the final streamer; tests pull samples from it without a device
func (p *Player) Output() beep.Streamer { return p.ctrl }

// lock serializes graph mutation with the speaker goroutine once it runs
func (p *Player) lock() {
	p.mu.Lock()
	if p.started.Load() {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.started.Load() {
		speaker.Unlock()
	}
	p.mu.Unlock()
}

// Load renders s into a buffer stored under id, replacing any previous clip
func (p *Player) Load(id string, s beep.Streamer) {
	buf := beep.NewBuffer(p.format)
	buf.Append(s)
	p.mu.Lock()
	p.clips[id] = buf
	p.mu.Unlock()
}

// LoadSynth renders a named preset
func (p *Player) LoadSynth(id, preset string) error {
	s, err := Synth(preset, p.format.SampleRate)
	if err != nil {
		return fmt.Errorf("clip %s: %w", id, err)
	}
	p.Load(id, s)
	return nil
}

// LoadMP3 decodes rc, resampling to the player rate when needed
func (p *Player) LoadMP3(id string, rc io.ReadCloser) error {
	s, format, err := mp3.Decode(rc)
	if err != nil {
		return fmt.Errorf("clip %s: %w", id, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != p.format.SampleRate {
		src = beep.Resample(4, format.SampleRate, p.format.SampleRate, s)
	}
	p.Load(id, src)
	return nil
}

// Has reports whether id is loaded
func (p *Player) Has(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.clips[id]
	return ok
}

// Play starts a new voice of id at linear volume vol
func (p *Player) Play(id string, vol float64) error {
	p.lock()
	defer p.unlock()

	buf, ok := p.clips[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownClip, id)
	}
	stream := buf.Streamer(0, buf.Len())
	v := &effects.Volume{Streamer: stream, Base: 2}
	linearVolume(v, vol*p.cfg.clipVolume(id))
	ctrl := &beep.Ctrl{Streamer: v}

	live := p.voices[id][:0]
	for _, old := range p.voices[id] {
		if !old.done() {
			live = append(live, old)
		}
	}
	p.voices[id] = append(live, voice{ctrl: ctrl, stream: stream})
	p.mixer.Add(ctrl)
	return nil
}

// Stop silences every voice of id
func (p *Player) Stop(id string) {
	p.lock()
	defer p.unlock()
	for _, v := range p.voices[id] {
		v.ctrl.Streamer = nil
	}
	delete(p.voices, id)
}

// StopAll drops every voice
func (p *Player) StopAll() {
	p.lock()
	defer p.unlock()
	p.mixer.Clear()
	clear(p.voices)
}

// Voices counts unfinished voices of id
func (p *Player) Voices(id string) int {
	p.lock()
	defer p.unlock()
	n := 0
	for _, v := range p.voices[id] {
		if !v.done() && v.ctrl.Streamer != nil {
			n++
		}
	}
	return n
}

func (p *Player) Pause() {
	p.lock()
	p.ctrl.Paused = true
	p.unlock()
}

func (p *Player) Resume() {
	p.lock()
	p.ctrl.Paused = false
	p.unlock()
}

func (p *Player) Paused() bool {
	p.lock()
	defer p.unlock()
	return p.ctrl.Paused
}

// SetMuted silences the master without stopping voices
func (p *Player) SetMuted(m bool) {
	p.lock()
	p.muted.Store(m)
	p.master.Silent = m || p.volume <= 0
	p.unlock()
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	m := !p.muted.Load()
	p.SetMuted(m)
	return m
}

func (p *Player) Muted() bool { return p.muted.Load() }

// SetVolume changes the master linear volume
func (p *Player) SetVolume(vol float64) {
	p.lock()
	p.setMaster(vol)
	p.unlock()
}

func (p *Player) setMaster(vol float64) {
	p.volume = vol
	linearVolume(p.master, vol)
	p.master.Silent = p.master.Silent || p.muted.Load()
}

// linearVolume maps a linear gain onto beep's logarithmic volume
func linearVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(vol)
}
