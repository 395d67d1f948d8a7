// Package config assembles runtime settings: defaults, then an optional YAML file,
// then a .env file, then GOOSE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/loose-goose/audio"
	"github.com/lixenwraith/loose-goose/logging"
	"github.com/lixenwraith/loose-goose/parameter"
)

var ErrInvalid = errors.New("config: invalid")

type Window struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	Transparent bool `yaml:"transparent"`
	Fullscreen  bool `yaml:"fullscreen"`
}

type Assets struct {
	Dir          string `yaml:"dir"`
	Manifest     string `yaml:"manifest"`
	Placeholders bool   `yaml:"placeholders"`
}

type Behavior struct {
	RateModel string `yaml:"rate_model"`
	// Seed 0 draws from the runtime source
	Seed      uint64 `yaml:"seed"`
	AutoSpawn bool   `yaml:"auto_spawn"`
}

type Control struct {
	Enabled bool     `yaml:"enabled"`
	Addr    string   `yaml:"addr"`
	Origins []string `yaml:"origins"`
}

type Config struct {
	Window   Window         `yaml:"window"`
	Audio    audio.Config   `yaml:"audio"`
	Assets   Assets         `yaml:"assets"`
	Behavior Behavior       `yaml:"behavior"`
	Control  Control        `yaml:"control"`
	Log      logging.Config `yaml:"log"`
	Debug    bool           `yaml:"debug"`
}

func Default() *Config {
	return &Config{
		Window:   Window{Width: 1280, Height: 720, Transparent: true},
		Audio:    audio.DefaultConfig(),
		Assets:   Assets{Dir: "assets", Placeholders: true},
		Behavior: Behavior{RateModel: parameter.RateModelPoisson, AutoSpawn: true},
		Control:  Control{Enabled: false, Addr: "127.0.0.1:7788", Origins: []string{"*"}},
		Log:      logging.DefaultConfig(),
	}
}

// Load applies every layer. Missing optional files are skipped; a file that
// exists but does not parse is an error
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
			}
		}
	}

	if envFile != "" {
		// godotenv never overrides variables already set in the process
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("env file: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	envInt("GOOSE_WIDTH", &cfg.Window.Width)
	envInt("GOOSE_HEIGHT", &cfg.Window.Height)
	envBool("GOOSE_TRANSPARENT", &cfg.Window.Transparent)
	envBool("GOOSE_FULLSCREEN", &cfg.Window.Fullscreen)

	envString("GOOSE_ASSET_DIR", &cfg.Assets.Dir)
	envString("GOOSE_ASSET_MANIFEST", &cfg.Assets.Manifest)
	envBool("GOOSE_PLACEHOLDERS", &cfg.Assets.Placeholders)

	envString("GOOSE_RATE_MODEL", &cfg.Behavior.RateModel)
	if v := os.Getenv("GOOSE_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Behavior.Seed = n
		}
	}
	envBool("GOOSE_AUTO_SPAWN", &cfg.Behavior.AutoSpawn)

	envBool("GOOSE_CONTROL_ENABLED", &cfg.Control.Enabled)
	envString("GOOSE_CONTROL_ADDR", &cfg.Control.Addr)
	if v := os.Getenv("GOOSE_CONTROL_ORIGINS"); v != "" {
		cfg.Control.Origins = strings.Split(v, ",")
	}

	envString("GOOSE_LOG_LEVEL", &cfg.Log.Level)
	envString("GOOSE_LOG_FORMAT", &cfg.Log.Format)
	envString("GOOSE_LOG_OUTPUT", &cfg.Log.Output)
	envString("GOOSE_LOG_FILE", &cfg.Log.File)

	envBool("GOOSE_DEBUG", &cfg.Debug)

	cfg.Audio = audio.ApplyEnv(cfg.Audio)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Validate rejects values no component can run with
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio master_volume %.2f outside [0,1]", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio sample_rate %d", c.Audio.SampleRate))
	}
	switch c.Behavior.RateModel {
	case parameter.RateModelPoisson, parameter.RateModelPerTick:
	default:
		errs = append(errs, fmt.Errorf("behavior rate_model %q", c.Behavior.RateModel))
	}
	if c.Control.Enabled && c.Control.Addr == "" {
		errs = append(errs, errors.New("control addr empty"))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
