package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/loose-goose/parameter"
)

// Config controls the player; clip volumes are linear multipliers keyed by clip id
type Config struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	SampleRate   int                `yaml:"sample_rate"`
	ClipVolumes  map[string]float64 `yaml:"clip_volumes"`
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		ClipVolumes:  map[string]float64{},
	}
}

// ApplyEnv overlays GOOSE_AUDIO_* environment variables on cfg
// Malformed values are ignored and the previous value kept
func ApplyEnv(cfg Config) Config {
	if enabled := os.Getenv("GOOSE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("GOOSE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if clipVols := os.Getenv("GOOSE_CLIP_VOLUMES"); clipVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(clipVols), &volumes); err == nil {
			if cfg.ClipVolumes == nil {
				cfg.ClipVolumes = make(map[string]float64, len(volumes))
			}
			for id, v := range volumes {
				cfg.ClipVolumes[id] = v
			}
		}
	}

	if sampleRate := os.Getenv("GOOSE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// clipVolume returns the configured multiplier for id, 1 when unset
func (c Config) clipVolume(id string) float64 {
	if v, ok := c.ClipVolumes[id]; ok {
		return v
	}
	return 1
}
