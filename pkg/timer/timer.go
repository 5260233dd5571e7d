package timer

import (
	"errors"
	"fmt"
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/run"
)

// Timer constants.
const (
	// DefaultMin is the minimum duration in seconds (10 min).
	DefaultMin = 600

	// DefaultMax is the maximum duration in seconds (90 min).
	DefaultMax = 5400

	// DefaultIncrement is the increment step in seconds (5 min).
	DefaultIncrement = 300

	// TickInterval is the countdown period.
	TickInterval = time.Second

	// MaxDisplaySeconds is the largest duration the MM:SS display can show.
	MaxDisplaySeconds = 99*60 + 59
)

// Timer errors.
var (
	ErrInvalidBounds    = errors.New("invalid timer bounds")
	ErrInvalidIncrement = errors.New("invalid timer increment")
	ErrUnknownPolicy    = errors.New("unknown expiry policy")
)

// ExpiryPolicy decides the remaining time after the countdown reaches zero.
type ExpiryPolicy uint8

const (
	// ResetToMin reloads Min for the next cycle.
	ResetToMin ExpiryPolicy = iota

	// HoldAtZero leaves the remaining time at zero.
	HoldAtZero
)

// String returns the policy name used in configuration files.
func (p ExpiryPolicy) String() string {
	switch p {
	case ResetToMin:
		return "reset"
	case HoldAtZero:
		return "hold"
	default:
		return "unknown"
	}
}

// ParseExpiryPolicy parses a policy name.
func ParseExpiryPolicy(s string) (ExpiryPolicy, error) {
	switch s {
	case "reset", "":
		return ResetToMin, nil
	case "hold":
		return HoldAtZero, nil
	default:
		return ResetToMin, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Config holds timer configuration in seconds.
type Config struct {
	Min       int
	Max       int
	Increment int
	Policy    ExpiryPolicy
}

// DefaultConfig returns the firmware constants.
func DefaultConfig() Config {
	return Config{
		Min:       DefaultMin,
		Max:       DefaultMax,
		Increment: DefaultIncrement,
		Policy:    ResetToMin,
	}
}

// Validate checks the configured bounds.
func (c Config) Validate() error {
	if c.Min <= 0 || c.Max < c.Min || c.Max > MaxDisplaySeconds {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidBounds, c.Min, c.Max)
	}
	if c.Increment <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIncrement, c.Increment)
	}
	if c.Policy != ResetToMin && c.Policy != HoldAtZero {
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, c.Policy)
	}
	return nil
}

// Timer holds the remaining duration. It is owned by a single controller
// and is not safe for concurrent use.
type Timer struct {
	cfg       Config
	remaining int
	lastTick  time.Time
}

// New creates a timer loaded with Min whose tick grid starts at now.
func New(cfg Config, now time.Time) (*Timer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Timer{
		cfg:       cfg,
		remaining: cfg.Min,
		lastTick:  now,
	}, nil
}

// Config returns the timer configuration.
func (t *Timer) Config() Config {
	return t.cfg
}

// Remaining returns the remaining seconds.
func (t *Timer) Remaining() int {
	return t.remaining
}

// Increment adds one step while stopped, wrapping to Min past Max.
// It returns the new remaining time and whether it changed.
func (t *Timer) Increment(state run.State) (int, bool) {
	if state != run.Stopped {
		return t.remaining, false
	}

	next := t.remaining + t.cfg.Increment
	if next > t.cfg.Max {
		next = t.cfg.Min
	}
	changed := next != t.remaining
	t.remaining = next
	return t.remaining, changed
}

// Tick advances the countdown if a full interval has elapsed since the last
// applied tick. expired is true on the tick that brings the remaining time
// to zero. A run started from zero expires on its first tick.
func (t *Timer) Tick(state run.State, now time.Time) (remaining int, expired bool) {
	if now.Sub(t.lastTick) < TickInterval {
		return t.remaining, false
	}
	t.lastTick = now

	if state != run.Running {
		return t.remaining, false
	}
	if t.remaining == 0 {
		return 0, true
	}

	t.remaining--
	return t.remaining, t.remaining == 0
}

// Expire applies the expiry policy and returns the new remaining time.
func (t *Timer) Expire() int {
	if t.cfg.Policy == ResetToMin {
		t.remaining = t.cfg.Min
	}
	return t.remaining
}

// Reset reloads Min regardless of policy.
func (t *Timer) Reset() {
	t.remaining = t.cfg.Min
}

// Split returns the remaining time as minutes and seconds.
func Split(seconds int) (minutes, secs int) {
	if seconds < 0 {
		seconds = 0
	}
	return seconds / 60, seconds % 60
}
