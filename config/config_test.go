package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/loose-goose/parameter"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultsValidate(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, parameter.RateModelPoisson, cfg.Behavior.RateModel)
	assert.True(t, cfg.Audio.Enabled)
}

func TestMissingFilesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "nope.yaml"), filepath.Join(dir, ".env"))
	require.NoError(t, err)
}

func TestLayerOrder(t *testing.T) {
	yamlPath := writeFile(t, "goose.yaml", `
window:
  width: 640
  height: 480
behavior:
  rate_model: per_tick
  seed: 9
log:
  level: debug
`)
	envPath := writeFile(t, ".env", "GOOSE_HEIGHT=500\nGOOSE_DEBUG=true\n")
	t.Setenv("GOOSE_WIDTH", "1024")

	cfg, err := Load(yamlPath, envPath)
	require.NoError(t, err)

	if cfg.Window.Width != 1024 {
		t.Errorf("Expected process env to win for width, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 500 {
		t.Errorf("Expected .env to override yaml height, got %d", cfg.Window.Height)
	}
	assert.True(t, cfg.Debug)
	assert.Equal(t, parameter.RateModelPerTick, cfg.Behavior.RateModel)
	assert.Equal(t, uint64(9), cfg.Behavior.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)

	// godotenv sets variables for the process; clear them for other tests
	os.Unsetenv("GOOSE_HEIGHT")
	os.Unsetenv("GOOSE_DEBUG")
}

func TestInvalid(t *testing.T) {
	tests := map[string]string{
		"rate model": "behavior:\n  rate_model: hourly\n",
		"volume":     "audio:\n  master_volume: 3\n",
		"window":     "window:\n  width: 0\n",
		"log level":  "log:\n  level: chatty\n",
		"syntax":     "window: [",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "c.yaml", body), "")
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestControlNeedsAddr(t *testing.T) {
	cfg := Default()
	cfg.Control.Enabled = true
	cfg.Control.Addr = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}
