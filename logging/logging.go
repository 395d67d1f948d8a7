// Package logging builds the zap logger shared by every component.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	OutputStderr = "stderr"
	OutputFile   = "file"
	OutputNone   = "none"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects level, encoding and destination
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	File   string `yaml:"file"`
}

func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatConsole,
		Output: OutputStderr,
		File:   filepath.Join("logs", "loose-goose.log"),
	}
}

// Validate checks enumerated fields
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("log level %q: %w", c.Level, err)
	}
	switch c.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("log format %q: want console or json", c.Format)
	}
	switch c.Output {
	case OutputStderr, OutputFile, OutputNone:
	default:
		return fmt.Errorf("log output %q: want stderr, file or none", c.Output)
	}
	if c.Output == OutputFile && strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("log output file: empty path")
	}
	return nil
}

// New builds the logger; the returned func flushes and closes its sink
func New(cfg Config) (*zap.Logger, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if cfg.Output == OutputNone {
		return zap.NewNop(), func() {}, nil
	}
	level, _ := zapcore.ParseLevel(cfg.Level)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	var (
		sink    zapcore.WriteSyncer
		closeFn = func() {}
	)
	switch cfg.Output {
	case OutputFile:
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		sink = zapcore.AddSync(f)
		closeFn = func() { f.Close() }
	default:
		sink = zapcore.Lock(os.Stderr)
	}

	logger := zap.New(zapcore.NewCore(enc, sink, level), zap.AddCaller())
	return logger, func() {
		_ = logger.Sync()
		closeFn()
	}, nil
}
