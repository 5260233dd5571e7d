package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/debounce"
	"github.com/relaytimer/relaytimer-go/pkg/sequencer"
	"github.com/relaytimer/relaytimer-go/pkg/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, timer.DefaultConfig(), cfg.Timer())
	assert.Equal(t, sequencer.RelayPair(sequencer.DefaultOnHold, sequencer.DefaultOffHold), cfg.Phases())
	assert.Equal(t, debounce.DefaultWindow, cfg.Debounce())
	assert.Equal(t, debounce.ModeLevel, cfg.DebounceMode())
	assert.Equal(t, 500*time.Millisecond, cfg.Pulse())
	assert.Equal(t, 10*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 2*time.Second, cfg.Splash())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "timer.yaml", `
min_seconds: 60
max_seconds: 600
increment_seconds: 60
expiry_policy: hold
strict_debounce: true
variant: single
pins:
  relay_a: GPIO17
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, timer.Config{Min: 60, Max: 600, Increment: 60, Policy: timer.HoldAtZero}, cfg.Timer())
	assert.Equal(t, VariantSingle, cfg.Variant)
	assert.Equal(t, sequencer.SingleOutput(), cfg.Phases())
	assert.Equal(t, debounce.ModeStrict, cfg.DebounceMode())
	assert.Equal(t, "GPIO17", cfg.Pins.RelayA)
	// Unset keys keep their defaults.
	assert.Equal(t, "D5", cfg.Pins.Increment)
	assert.Equal(t, 80, cfg.DebounceMS)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "timer.toml", `
min_seconds = 120
phase_hold_ms = [1000, 500, 1000, 500]
shared_debounce = false
variant = "motor"

[pins]
motor_status = "GPIO27"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.MinSeconds)
	assert.False(t, cfg.SharedDebounce)
	assert.Equal(t, VariantMotor, cfg.Variant)
	assert.Nil(t, cfg.Phases(), "motor variant drives no sequencer outputs")
	assert.Equal(t, "GPIO27", cfg.Pins.MotorStatus)
	assert.Equal(t, []int{1000, 500, 1000, 500}, cfg.PhaseHoldMS)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeFile(t, "timer.ini", "min_seconds=1")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadParseError(t *testing.T) {
	path := writeFile(t, "timer.yaml", "min_seconds: [")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"MaxBelowMin", func(c *Config) { c.MaxSeconds = c.MinSeconds - 1 }},
		{"ZeroIncrement", func(c *Config) { c.IncrementSeconds = 0 }},
		{"BadPolicy", func(c *Config) { c.ExpiryPolicy = "forever" }},
		{"BadVariant", func(c *Config) { c.Variant = "triple" }},
		{"NegativePulse", func(c *Config) { c.PulseMS = -1 }},
		{"ZeroPoll", func(c *Config) { c.PollIntervalMS = 0 }},
		{"ShortCycle", func(c *Config) { c.PhaseHoldMS = []int{5000} }},
		{"NegativeHold", func(c *Config) { c.PhaseHoldMS = []int{5000, -1, 5000, 2000} }},
		{"NoStartPin", func(c *Config) { c.Pins.Start = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("Motor")
	require.NoError(t, err)
	assert.Equal(t, VariantMotor, v)

	_, err = ParseVariant("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
