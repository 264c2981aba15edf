package easel

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvPrefix is the environment prefix LoadRunConfig uses when given
// an empty prefix.
const DefaultEnvPrefix = "EASEL"

// Host names accepted in RunConfig.Host.
const (
	HostWindow   = "window"
	HostTerminal = "terminal"
)

// RunConfig holds the settings a host needs to run a scene.
type RunConfig struct {
	Title               string        `envconfig:"TITLE" default:"easel"`
	Host                string        `envconfig:"HOST" default:"window"`
	Width               int           `envconfig:"WIDTH" default:"640"`
	Height              int           `envconfig:"HEIGHT" default:"480"`
	TickInterval        time.Duration `envconfig:"TICK_INTERVAL" default:"25ms"`
	DoubleClickInterval time.Duration `envconfig:"DOUBLE_CLICK_INTERVAL" default:"500ms"`
	ScreenshotDir       string        `envconfig:"SCREENSHOT_DIR" default:"screenshots"`
	TestScript          string        `envconfig:"TEST_SCRIPT"`
	Debug               bool          `envconfig:"DEBUG" default:"false"`
	Level               string        `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadRunConfig reads a RunConfig from the environment, e.g. EASEL_WIDTH
// for the default prefix.
func LoadRunConfig(prefix string) (RunConfig, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	var cfg RunConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("load run config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return RunConfig{}, fmt.Errorf("load run config: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Host != HostWindow && cfg.Host != HostTerminal {
		return RunConfig{}, fmt.Errorf("load run config: unknown host %q", cfg.Host)
	}
	if cfg.TickInterval <= 0 {
		return RunConfig{}, fmt.Errorf("load run config: tick interval must be positive, got %v", cfg.TickInterval)
	}
	return cfg, nil
}

// TPS converts the tick interval into ticks per second, rounded to the
// nearest integer and never below 1.
func (c RunConfig) TPS() int {
	interval := c.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	tps := int((time.Second + interval/2) / interval)
	if tps < 1 {
		return 1
	}
	return tps
}

// LogLevel maps Level to a slog level. Unknown names map to info.
func (c RunConfig) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger builds a text logger on stderr at the configured level.
func (c RunConfig) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel()}))
}

// Apply copies the scene-level settings onto s and attaches the test script
// named by TestScript, if any.
func (c RunConfig) Apply(s *Scene) error {
	if c.ScreenshotDir != "" {
		s.ScreenshotDir = c.ScreenshotDir
	}
	s.SetDebugMode(c.Debug)
	if c.TestScript == "" {
		return nil
	}
	data, err := os.ReadFile(c.TestScript)
	if err != nil {
		return fmt.Errorf("read test script: %w", err)
	}
	runner, err := LoadTestScript(data)
	if err != nil {
		return err
	}
	s.SetTestRunner(runner)
	return nil
}
