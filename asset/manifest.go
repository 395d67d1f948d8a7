package asset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SheetSpec locates a sprite sheet and describes its grid for placeholders
type SheetSpec struct {
	ID     string   `yaml:"id"`
	Path   string   `yaml:"path"`
	FrameW int      `yaml:"frame_w"`
	FrameH int      `yaml:"frame_h"`
	Cols   int      `yaml:"cols"`
	Rows   int      `yaml:"rows"`
	Tint   [3]uint8 `yaml:"tint"`
}

// ClipSpec locates an audio clip; Synth names the fallback generator
type ClipSpec struct {
	ID    string `yaml:"id"`
	Path  string `yaml:"path"`
	Synth string `yaml:"synth"`
}

// Manifest lists every asset to queue at startup
type Manifest struct {
	Sheets []SheetSpec `yaml:"sheets"`
	Clips  []ClipSpec  `yaml:"clips"`
}

// ParseManifest decodes YAML and checks ids are unique and grids are positive
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("asset manifest: %w", err)
	}
	seen := make(map[string]bool)
	for _, s := range m.Sheets {
		if seen[s.ID] {
			return nil, fmt.Errorf("asset manifest: duplicate sheet %q", s.ID)
		}
		seen[s.ID] = true
		if s.FrameW <= 0 || s.FrameH <= 0 || s.Cols <= 0 || s.Rows <= 0 {
			return nil, fmt.Errorf("asset manifest: sheet %q has empty grid", s.ID)
		}
	}
	for _, c := range m.Clips {
		if seen[c.ID] {
			return nil, fmt.Errorf("asset manifest: duplicate clip %q", c.ID)
		}
		seen[c.ID] = true
	}
	return &m, nil
}

// MustDefaultManifest parses DefaultManifest; the embedded table is a compile-time constant
func MustDefaultManifest() *Manifest {
	m, err := ParseManifest([]byte(DefaultManifest))
	if err != nil {
		panic(err)
	}
	return m
}

// DefaultManifest is the built-in asset table
const DefaultManifest = `
sheets:
  - { id: goose,      path: sprites/goose.png,        frame_w: 32, frame_h: 32, cols: 8, rows: 13, tint: [240, 240, 235] }
  - { id: gosling,    path: sprites/gosling.png,      frame_w: 16, frame_h: 16, cols: 4, rows: 4,  tint: [250, 220, 90] }
  - { id: egg,        path: sprites/egg.png,          frame_w: 16, frame_h: 16, cols: 8, rows: 2,  tint: [245, 240, 220] }
  - { id: honk,       path: sprites/honk.png,         frame_w: 16, frame_h: 16, cols: 3, rows: 1,  tint: [255, 255, 255] }
  - { id: textbox,    path: entities/textbox.png,     frame_w: 64, frame_h: 32, cols: 3, rows: 2,  tint: [255, 255, 255] }
  - { id: shadow,     path: entities/shadow.png,      frame_w: 32, frame_h: 32, cols: 1, rows: 1,  tint: [40, 40, 40] }
  - { id: hats,       path: sprites/hats.png,         frame_w: 20, frame_h: 20, cols: 15, rows: 1, tint: [200, 40, 40] }
  - { id: angry,      path: sprites/angry.png,        frame_w: 16, frame_h: 16, cols: 2, rows: 1,  tint: [230, 30, 30] }
  - { id: bat,        path: sprites/baseball-bat.png, frame_w: 16, frame_h: 16, cols: 3, rows: 2,  tint: [160, 110, 60] }
  - { id: puddle,     path: entities/puddle.png,      frame_w: 64, frame_h: 32, cols: 1, rows: 1,  tint: [70, 130, 220] }
  - { id: mud,        path: entities/mud.png,         frame_w: 64, frame_h: 32, cols: 1, rows: 1,  tint: [110, 80, 50] }
  - { id: footprints, path: sprites/footprints.png,   frame_w: 10, frame_h: 10, cols: 1, rows: 1,  tint: [110, 80, 50] }
  - { id: disco,      path: entities/disco-ball.png,  frame_w: 16, frame_h: 20, cols: 2, rows: 1,  tint: [200, 200, 255] }
  - { id: target,     path: sprites/target.png,       frame_w: 16, frame_h: 16, cols: 1, rows: 1,  tint: [255, 0, 0] }
  - { id: memes,      path: memes/memes.png,          frame_w: 32, frame_h: 32, cols: 7, rows: 1,  tint: [180, 180, 180] }
clips:
  - { id: honk1,             path: audio/honk1.mp3,             synth: honk }
  - { id: honk2,             path: audio/honk2.mp3,             synth: honk-high }
  - { id: honk3,             path: audio/honk3.mp3,             synth: honk-low }
  - { id: honk-echo,         path: audio/honk-echo.mp3,         synth: echo }
  - { id: splash,            path: audio/splash.mp3,            synth: splash }
  - { id: splat,             path: audio/splat.mp3,             synth: splat }
  - { id: distraction-dance, path: audio/distraction-dance.mp3, synth: dance }
  - { id: peep1,             path: audio/peep1.mp3,             synth: peep }
  - { id: peep2,             path: audio/peep2.mp3,             synth: peep-high }
  - { id: peep3,             path: audio/peep3.mp3,             synth: peep-low }
  - { id: egg-crack,         path: audio/egg-crack.mp3,         synth: crack }
  - { id: bonk,              path: audio/bonk.mp3,              synth: bonk }
`
