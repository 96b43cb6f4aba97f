package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ANIMPLAY_CONFIG", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, c.UI.FPS)
	assert.Equal(t, "crossfade", c.UI.Screen)
	assert.True(t, c.UI.Mouse)
	assert.Equal(t, 1.0, c.Motion.TimeScale)
	assert.Equal(t, 8.0, c.Render.DPPerCol)
	assert.Equal(t, 16.0, c.Render.DPPerRow)
	assert.Empty(t, c.Log.File)
	assert.Empty(t, c.Tracing.Endpoint)
	assert.Equal(t, "animplay", c.Tracing.Service)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[ui]
fps = 60
screen = "counter"

[motion]
time_scale = 2.5
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, c.UI.FPS)
	assert.Equal(t, "counter", c.UI.Screen)
	assert.Equal(t, 2.5, c.Motion.TimeScale)
	// Untouched keys keep defaults.
	assert.Equal(t, 8.0, c.Render.DPPerCol)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  fps: 60\n"), 0o644))
	t.Setenv("ANIMPLAY_UI_FPS", "12")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, c.UI.FPS)
}

func TestLoad_ConfigEnvPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "animplay.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ui": {"screen": "spin"}}`), 0o644))
	t.Setenv("ANIMPLAY_CONFIG", path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "spin", c.UI.Screen)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("ANIMPLAY_MOTION_TIME_SCALE", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time_scale")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero fps", func(c *Config) { c.UI.FPS = 0 }, true},
		{"huge fps", func(c *Config) { c.UI.FPS = 1000 }, true},
		{"negative scale", func(c *Config) { c.Motion.TimeScale = -1 }, true},
		{"zero dp per row", func(c *Config) { c.Render.DPPerRow = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
