package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
		ok   bool
	}{
		{"defaults", func(*Config) {}, true},
		{"bad level", func(c *Config) { c.Level = "loud" }, false},
		{"bad format", func(c *Config) { c.Format = "xml" }, false},
		{"bad output", func(c *Config) { c.Output = "syslog" }, false},
		{"file without path", func(c *Config) { c.Output = OutputFile; c.File = " " }, false},
		{"json debug", func(c *Config) { c.Format = FormatJSON; c.Level = "debug" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mut(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "goose.log")
	log, closeFn, err := New(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("honk")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"honk"`))
	assert.False(t, strings.Contains(string(data), "hidden"))
}

func TestNoneIsNop(t *testing.T) {
	log, closeFn, err := New(Config{Level: "info", Format: FormatConsole, Output: OutputNone})
	require.NoError(t, err)
	defer closeFn()
	assert.False(t, log.Core().Enabled(0))
}
