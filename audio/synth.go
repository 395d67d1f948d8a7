package audio

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/loose-goose/parameter"
)

var ErrUnknownPreset = errors.New("audio: unknown synth preset")

// Presets lists every synth preset name
var Presets = []string{
	"honk", "honk-high", "honk-low", "echo", "splash", "splat",
	"dance", "peep", "peep-high", "peep-low", "crack", "bonk",
}

// Synth renders a preset into a finite streamer at sr
func Synth(preset string, sr beep.SampleRate) (beep.Streamer, error) {
	switch preset {
	case "honk":
		return honk(sr, 380)
	case "honk-high":
		return honk(sr, 460)
	case "honk-low":
		return honk(sr, 300)
	case "echo":
		return echo(sr)
	case "peep":
		return peep(sr, 2200)
	case "peep-high":
		return peep(sr, 2600)
	case "peep-low":
		return peep(sr, 1800)
	case "splash":
		return noiseBurst(sr, parameter.ClipSplat*2, 6, 0.35), nil
	case "splat":
		return noiseBurst(sr, parameter.ClipSplat, 14, 0.4), nil
	case "crack":
		return noiseBurst(sr, parameter.ClipCrack, 30, 0.5), nil
	case "bonk":
		return bonk(sr)
	case "dance":
		return dance(sr)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
}

// envelope shapes a streamer over n samples; shape maps progress 0..1 to gain
type envelope struct {
	s     beep.Streamer
	n     int
	pos   int
	shape func(p float64) float64
}

func shaped(s beep.Streamer, n int, shape func(p float64) float64) beep.Streamer {
	return &envelope{s: beep.Take(n, s), n: n, shape: shape}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.shape(float64(e.pos) / float64(e.n))
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// attackDecay rises over the first tenth then decays linearly
func attackDecay(p float64) float64 {
	if p < 0.1 {
		return p / 0.1
	}
	return 1 - (p-0.1)/0.9
}

func expDecay(rate float64) func(float64) float64 {
	return func(p float64) float64 { return math.Exp(-p * rate) }
}

// honk is a nasal square tone with a detuned sine under it
func honk(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	sq, err := generators.SquareTone(sr, freq)
	if err != nil {
		return nil, err
	}
	sn, err := generators.SineTone(sr, freq*1.5)
	if err != nil {
		return nil, err
	}
	n := sr.N(parameter.ClipHonk)
	return shaped(beep.Mix(gain(sq, 0.25), gain(sn, 0.15)), n, attackDecay), nil
}

func echo(sr beep.SampleRate) (beep.Streamer, error) {
	var parts []beep.Streamer
	vol := 1.0
	for range 3 {
		h, err := honk(sr, 380)
		if err != nil {
			return nil, err
		}
		parts = append(parts, gain(h, vol), generators.Silence(sr.N(parameter.ClipEcho/10)))
		vol *= 0.45
	}
	return beep.Seq(parts...), nil
}

func peep(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return shaped(gain(tone, 0.2), sr.N(parameter.ClipPeep), attackDecay), nil
}

func bonk(sr beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.TriangleTone(sr, 180)
	if err != nil {
		return nil, err
	}
	return shaped(gain(tone, 0.5), sr.N(parameter.ClipBonk), expDecay(8)), nil
}

// dance loops a four-note bass line for the length of the dance
func dance(sr beep.SampleRate) (beep.Streamer, error) {
	notes := []float64{110, 138.6, 164.8, 138.6}
	beat := sr.N(275 * time.Millisecond)
	total := sr.N(parameter.ClipDance)

	// Streamers are single-use, so every beat gets its own tone
	var seq []beep.Streamer
	for i := 0; i*beat < total; i++ {
		tone, err := generators.SquareTone(sr, notes[i%len(notes)])
		if err != nil {
			return nil, err
		}
		seq = append(seq, shaped(gain(tone, 0.15), beat, expDecay(3)))
	}
	return beep.Take(total, beep.Seq(seq...)), nil
}

// noiseBurst is white noise with an exponential decay; splashes and cracks
func noiseBurst(sr beep.SampleRate, d time.Duration, decay, level float64) beep.Streamer {
	noise := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := (rand.Float64()*2 - 1) * level
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
	return shaped(noise, sr.N(d), expDecay(decay))
}

// gain scales s linearly; effects.Gain adds its factor to unity
func gain(s beep.Streamer, g float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: g - 1}
}
