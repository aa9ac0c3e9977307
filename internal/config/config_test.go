package config

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scenario"
)

func TestLoad_Full(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Glyphs: Glyphs{Success: "[ok]", Failure: "[fail]"},
		Log:    Log{Level: "debug", Format: "json"},
		RunID:  "nightly-001",
	}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "typo.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "glyph")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestParse_EmptyIsDefault(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad level", "log:\n  level: loud\n", "log.level must be"},
		{"bad format", "log:\n  format: xml\n", "log.format must be"},
		{"multi-line glyph", "glyphs:\n  success: \"a\\nb\"\n", "glyphs must fit on one line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Log: Log{Level: "warn", Format: "json"}}
	logger := cfg.Logger(&buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestConfig_Options(t *testing.T) {
	cfg, err := Parse([]byte("glyphs:\n  success: \"+\"\n  failure: \"-\"\nrun_id: fixed\n"))
	require.NoError(t, err)

	collector := scenario.NewCollector()
	rec := scenario.NewRecorder()
	opts := append(cfg.Options(nil), scenario.WithObserver(collector))
	r, err := scenario.New("configured", rec, opts...)
	require.NoError(t, err)

	r.Given("a step", scenario.Action(func() {}))
	require.NoError(t, r.Play(context.Background()))

	assert.Equal(t, []string{"+ SCENARIO for configured", "+ GIVEN a step"}, rec.Lines())
	report, ok := collector.Report()
	require.True(t, ok)
	assert.Equal(t, "fixed", report.RunID)
}
