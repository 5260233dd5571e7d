package hal

import (
	"fmt"
	"sync"
	"time"
)

// Level is the instantaneous logic level of a digital line.
type Level uint8

const (
	// Low is logic 0. Active level for every line on this board.
	Low Level = iota

	// High is logic 1. Idle level of pulled-up inputs and safe level of outputs.
	High
)

// Line polarity. The board is wired active-low throughout.
const (
	Active   = Low
	Inactive = High
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// Drive maps a logical on/off to the active-low output level.
func Drive(on bool) Level {
	if on {
		return Active
	}
	return Inactive
}

// IsActive reports whether l is the active (energized or pressed) level.
func IsActive(l Level) bool {
	return l == Active
}

// DigitalInput is a pulled-up input pin polled once per loop iteration.
type DigitalInput interface {
	Read() Level
}

// DigitalOutput is an output pin.
type DigitalOutput interface {
	Write(level Level)
}

// View is the read-only display model derived from the controller.
type View struct {
	// Minutes of remaining time, 0-99.
	Minutes int

	// Seconds of remaining time, 0-59.
	Seconds int

	// Label is the state label shown on the second display line.
	Label string
}

// Clock returns "MM:SS" zero padded.
func (v View) Clock() string {
	return fmt.Sprintf("%02d:%02d", v.Minutes, v.Seconds)
}

// Display renders a View. It is only called when the controller is dirty.
type Display interface {
	Render(v View) error
}

// StatusSink receives the on-demand status text line.
type StatusSink interface {
	WriteStatus(line string) error
}

// Clock provides the monotonic time read at the top of each iteration.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a manually advanced Clock.
// It is safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock creates a FakeClock starting at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set moves the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Compile-time interface satisfaction checks.
var (
	_ Clock = systemClock{}
	_ Clock = (*FakeClock)(nil)
)
