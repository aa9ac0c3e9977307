// Package config loads runner settings from a YAML file.
//
//	glyphs:
//	  success: "[ok]"
//	  failure: "[fail]"
//	log:
//	  level: debug
//	  format: json
//	run_id: "nightly-001"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/scenario"
)

// Config holds runner settings. The zero value means defaults everywhere.
type Config struct {
	Glyphs Glyphs `yaml:"glyphs"`
	Log    Log    `yaml:"log"`

	// RunID fixes the run identifier of every playback. Empty generates a
	// UUIDv7 per playback.
	RunID string `yaml:"run_id,omitempty"`
}

// Glyphs sets the transcript markers. Empty keeps the defaults.
type Glyphs struct {
	Success string `yaml:"success,omitempty"`
	Failure string `yaml:"failure,omitempty"`
}

// Log configures playback diagnostics.
type Log struct {
	// Level is one of debug, info, warn or error. Default: info.
	Level string `yaml:"level,omitempty"`

	// Format is text or json. Default: text.
	Format string `yaml:"format,omitempty"`
}

// Load reads and validates a config file. Unknown fields are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML config data. Empty data yields the
// default config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if strings.ContainsAny(c.Glyphs.Success+c.Glyphs.Failure, "\r\n") {
		return fmt.Errorf("glyphs must fit on one line")
	}
	return nil
}

// Level returns the configured slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
}

// Logger builds a logger writing to w at the configured level and format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Options translates the config into runner options. The logger is
// supplied by the caller since only it knows where diagnostics go.
func (c *Config) Options(logger *slog.Logger) []scenario.Option {
	opts := []scenario.Option{
		scenario.WithGlyphs(c.Glyphs.Success, c.Glyphs.Failure),
	}
	if logger != nil {
		opts = append(opts, scenario.WithLogger(logger))
	}
	if c.RunID != "" {
		opts = append(opts, scenario.WithIDGenerator(fixedID(c.RunID)))
	}
	return opts
}

type fixedID string

func (id fixedID) Generate() string { return string(id) }
