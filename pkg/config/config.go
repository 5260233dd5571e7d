// Package config loads relay timer settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/relaytimer/relaytimer-go/pkg/debounce"
	"github.com/relaytimer/relaytimer-go/pkg/sequencer"
	"github.com/relaytimer/relaytimer-go/pkg/timer"
)

// Config errors.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownFormat = errors.New("unknown config format")
)

// Variant selects the output wiring.
type Variant string

const (
	// VariantRelayPair alternates two relays.
	VariantRelayPair Variant = "relay-pair"

	// VariantSingle holds one output on while running.
	VariantSingle Variant = "single"

	// VariantMotor pulses motor enable/disable lines and watches a status input.
	VariantMotor Variant = "motor"
)

// ParseVariant parses a variant name.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(s)); v {
	case VariantRelayPair, VariantSingle, VariantMotor:
		return v, nil
	default:
		return "", fmt.Errorf("%w: variant %q (valid: relay-pair, single, motor)", ErrInvalidConfig, s)
	}
}

// Pins names the board lines. Names are the pin labels on the board
// and key the simulated pin bank.
type Pins struct {
	Increment    string `yaml:"increment" toml:"increment"`
	Start        string `yaml:"start" toml:"start"`
	Decrement    string `yaml:"decrement" toml:"decrement"`
	RelayA       string `yaml:"relay_a" toml:"relay_a"`
	RelayB       string `yaml:"relay_b" toml:"relay_b"`
	MotorEnable  string `yaml:"motor_enable" toml:"motor_enable"`
	MotorDisable string `yaml:"motor_disable" toml:"motor_disable"`
	MotorStatus  string `yaml:"motor_status" toml:"motor_status"`
}

// Config holds all relay timer settings.
type Config struct {
	MinSeconds       int `yaml:"min_seconds" toml:"min_seconds"`
	MaxSeconds       int `yaml:"max_seconds" toml:"max_seconds"`
	IncrementSeconds int `yaml:"increment_seconds" toml:"increment_seconds"`

	// ExpiryPolicy is "reset" or "hold".
	ExpiryPolicy string `yaml:"expiry_policy" toml:"expiry_policy"`

	DebounceMS     int  `yaml:"debounce_ms" toml:"debounce_ms"`
	SharedDebounce bool `yaml:"shared_debounce" toml:"shared_debounce"`
	StrictDebounce bool `yaml:"strict_debounce" toml:"strict_debounce"`

	// PhaseHoldMS lists the phase holds. Four values describe the relay
	// pair cycle (A on, off, B on, off).
	PhaseHoldMS []int `yaml:"phase_hold_ms" toml:"phase_hold_ms"`

	PulseMS int     `yaml:"pulse_ms" toml:"pulse_ms"`
	Variant Variant `yaml:"variant" toml:"variant"`
	Pins    Pins    `yaml:"pins" toml:"pins"`

	PollIntervalMS int `yaml:"poll_interval_ms" toml:"poll_interval_ms"`
	SplashMS       int `yaml:"splash_ms" toml:"splash_ms"`
}

// Default returns the firmware settings.
func Default() *Config {
	return &Config{
		MinSeconds:       timer.DefaultMin,
		MaxSeconds:       timer.DefaultMax,
		IncrementSeconds: timer.DefaultIncrement,
		ExpiryPolicy:     timer.ResetToMin.String(),
		DebounceMS:       int(debounce.DefaultWindow / time.Millisecond),
		SharedDebounce:   true,
		PhaseHoldMS:      []int{5000, 2000, 5000, 2000},
		PulseMS:          500,
		Variant:          VariantRelayPair,
		Pins: Pins{
			Increment:    "D5",
			Start:        "D4",
			Decrement:    "D1",
			RelayA:       "D7",
			RelayB:       "D6",
			MotorEnable:  "D0",
			MotorDisable: "D3",
			MotorStatus:  "D2",
		},
		PollIntervalMS: 10,
		SplashMS:       2000,
	}
}

// Load reads a config file over the defaults. The format follows the
// extension: .yaml/.yml or .toml. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := Unmarshal(filepath.Ext(path), data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Unmarshal decodes data in the format named by ext into cfg.
func Unmarshal(ext string, data []byte, cfg *Config) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if err := c.Timer().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := timer.ParseExpiryPolicy(c.ExpiryPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseVariant(string(c.Variant)); err != nil {
		return err
	}
	if c.DebounceMS < 0 || c.PulseMS < 0 || c.SplashMS < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("%w: poll_interval_ms must be positive", ErrInvalidConfig)
	}
	if c.Variant == VariantRelayPair {
		if len(c.PhaseHoldMS) != 4 {
			return fmt.Errorf("%w: relay-pair needs 4 phase holds, got %d", ErrInvalidConfig, len(c.PhaseHoldMS))
		}
		if err := sequencer.Validate(c.Phases()); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if c.Pins.Increment == "" || c.Pins.Start == "" {
		return fmt.Errorf("%w: increment and start pins are required", ErrInvalidConfig)
	}
	return nil
}

// Timer returns the timer settings.
func (c *Config) Timer() timer.Config {
	// Validate reports a bad policy name.
	policy, _ := timer.ParseExpiryPolicy(c.ExpiryPolicy)
	return timer.Config{
		Min:       c.MinSeconds,
		Max:       c.MaxSeconds,
		Increment: c.IncrementSeconds,
		Policy:    policy,
	}
}

// Phases returns the output cycle for the variant.
func (c *Config) Phases() []sequencer.Phase {
	switch c.Variant {
	case VariantRelayPair:
		return sequencer.FromHolds(c.PhaseHoldMS)
	case VariantSingle:
		return sequencer.SingleOutput()
	default:
		return nil
	}
}

// DebounceMode returns the configured debounce mode.
func (c *Config) DebounceMode() debounce.Mode {
	if c.StrictDebounce {
		return debounce.ModeStrict
	}
	return debounce.ModeLevel
}

// Debounce returns the debounce window.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Pulse returns the motor pulse width.
func (c *Config) Pulse() time.Duration {
	return time.Duration(c.PulseMS) * time.Millisecond
}

// PollInterval returns the control loop period.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Splash returns how long the welcome screen is shown.
func (c *Config) Splash() time.Duration {
	return time.Duration(c.SplashMS) * time.Millisecond
}
