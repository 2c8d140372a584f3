package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalframe/signalframe/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ",", cfg.Input.ValueDelimiter)
	assert.Equal(t, ".", cfg.Input.DecimalDelimiter)
	assert.False(t, cfg.Input.HasHeaders)
	assert.Equal(t, 128, cfg.Window.BufferSize)
	assert.Equal(t, 1, cfg.Window.DownsampleFactor)
	assert.False(t, cfg.Window.RowLimit.Bounded())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty value delimiter", mutate: func(c *Config) { c.Input.ValueDelimiter = "" }},
		{name: "empty decimal delimiter", mutate: func(c *Config) { c.Input.DecimalDelimiter = "" }},
		{name: "zero buffer size", mutate: func(c *Config) { c.Window.BufferSize = 0 }},
		{name: "negative buffer size", mutate: func(c *Config) { c.Window.BufferSize = -1 }},
		{name: "zero downsample factor", mutate: func(c *Config) { c.Window.DownsampleFactor = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
		})
	}
}

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfigFile(t, "run.yaml", `
input:
  value_delimiter: ";"
  decimal_delimiter: ","
  has_headers: true
window:
  columns: [X, Y]
  buffer_size: 4
  downsample_factor: 2
  row_limit: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.Input.ValueDelimiter)
	assert.Equal(t, ",", cfg.Input.DecimalDelimiter)
	assert.True(t, cfg.Input.HasHeaders)
	require.Len(t, cfg.Window.Columns, 2)
	assert.Equal(t, "X", cfg.Window.Columns[0].Label())
	assert.Equal(t, 4, cfg.Window.BufferSize)
	assert.Equal(t, 2, cfg.Window.DownsampleFactor)
	assert.Equal(t, 10, cfg.Window.RowLimit.Value())

	// Unset sections keep their defaults
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfigFile(t, "run.json", `{
  "window": {
    "columns": [2, 3],
    "buffer_size": 2,
    "downsample_factor": 1,
    "row_limit": "all"
  }
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Window.Columns, 2)
	assert.True(t, cfg.Window.Columns[0].IsIndex())
	assert.Equal(t, 2, cfg.Window.Columns[0].Index())
	assert.False(t, cfg.Window.RowLimit.Bounded())
}

func TestLoadSubstitutesEnvVars(t *testing.T) {
	t.Setenv("SIGNALFRAME_TEST_DELIM", ";")
	path := writeConfigFile(t, "run.yaml", `
input:
  value_delimiter: "${SIGNALFRAME_TEST_DELIM}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ";", cfg.Input.ValueDelimiter)
}

func TestLoadRejectsNonBooleanHeaderFlag(t *testing.T) {
	path := writeConfigFile(t, "run.yaml", `
input:
  has_headers: maybe
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfigFile(t, "run.yaml", `
window:
  buffer_size: 0
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Window.Columns = []Selector{Label("X"), Label("Y")}
	cfg.Window.RowLimit = Limit(10)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
