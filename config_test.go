package easel

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunConfigDefaults(t *testing.T) {
	cfg, err := LoadRunConfig("EASELTEST")
	require.NoError(t, err)
	assert.Equal(t, "easel", cfg.Title)
	assert.Equal(t, HostWindow, cfg.Host)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 25*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.DoubleClickInterval)
	assert.Equal(t, "screenshots", cfg.ScreenshotDir)
	assert.Empty(t, cfg.TestScript)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 40, cfg.TPS())
}

func TestLoadRunConfigFromEnv(t *testing.T) {
	t.Setenv("EASELTEST_TITLE", "Quiz Board")
	t.Setenv("EASELTEST_HOST", "terminal")
	t.Setenv("EASELTEST_WIDTH", "650")
	t.Setenv("EASELTEST_HEIGHT", "447")
	t.Setenv("EASELTEST_TICK_INTERVAL", "10ms")
	t.Setenv("EASELTEST_DEBUG", "true")
	t.Setenv("EASELTEST_LOG_LEVEL", "debug")

	cfg, err := LoadRunConfig("EASELTEST")
	require.NoError(t, err)
	assert.Equal(t, "Quiz Board", cfg.Title)
	assert.Equal(t, HostTerminal, cfg.Host)
	assert.Equal(t, 650, cfg.Width)
	assert.Equal(t, 447, cfg.Height)
	assert.Equal(t, 100, cfg.TPS())
	assert.True(t, cfg.Debug)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestLoadRunConfigInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"zero width", "EASELTEST_WIDTH", "0"},
		{"negative height", "EASELTEST_HEIGHT", "-1"},
		{"unknown host", "EASELTEST_HOST", "browser"},
		{"zero interval", "EASELTEST_TICK_INTERVAL", "0s"},
		{"unparsable width", "EASELTEST_WIDTH", "wide"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadRunConfig("EASELTEST")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "load run config")
		})
	}
}

func TestRunConfigTPS(t *testing.T) {
	tests := []struct {
		interval time.Duration
		want     int
	}{
		{25 * time.Millisecond, 40},
		{16 * time.Millisecond, 63},
		{time.Second, 1},
		{3 * time.Second, 1},
		{0, 40},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RunConfig{TickInterval: tt.interval}.TPS(), "interval %v", tt.interval)
	}
}

func TestRunConfigLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, RunConfig{Level: in}.LogLevel(), "level %q", in)
	}
}

func TestRunConfigApply(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "script.json")
	require.NoError(t, os.WriteFile(script, []byte(`{"steps": [{"action": "wait", "frames": 1}]}`), 0o644))

	s, _ := newTestScene()
	cfg := RunConfig{ScreenshotDir: filepath.Join(dir, "shots"), TestScript: script}
	require.NoError(t, cfg.Apply(s))
	assert.Equal(t, filepath.Join(dir, "shots"), s.ScreenshotDir)
	require.NotNil(t, s.TestRunner())

	missing := RunConfig{TestScript: filepath.Join(dir, "nope.json")}
	assert.Error(t, missing.Apply(s))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"steps": []}`), 0o644))
	assert.Error(t, RunConfig{TestScript: bad}.Apply(s))
}
