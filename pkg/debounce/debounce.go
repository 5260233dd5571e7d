package debounce

import (
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/hal"
)

// DefaultWindow is the default minimum interval between accepted edges.
const DefaultWindow = 80 * time.Millisecond

// Edge is the result of polling a debouncer.
type Edge uint8

const (
	// EdgeNone means no change was accepted.
	EdgeNone Edge = iota

	// EdgeFalling is a High to Low change: a press on a pulled-up input.
	EdgeFalling

	// EdgeRising is a Low to High change: a release on a pulled-up input.
	EdgeRising
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "NONE"
	case EdgeFalling:
		return "FALLING"
	case EdgeRising:
		return "RISING"
	default:
		return "UNKNOWN"
	}
}

// Pressed reports whether e is a press on an active-low input.
func (e Edge) Pressed() bool {
	return e == EdgeFalling
}

// Mode selects the level a raw reading is compared against.
type Mode uint8

const (
	// ModeLevel compares against the last raw reading.
	ModeLevel Mode = iota

	// ModeStrict compares against the last accepted level.
	ModeStrict
)

// Poll applies the acceptance rule to a single reading.
// prev is the level the reading is compared against and lastAccepted the
// time of the last accepted change. The caller stores now as the new
// acceptance time when accepted is true.
func Poll(raw, prev hal.Level, now, lastAccepted time.Time, window time.Duration) (Edge, bool) {
	if raw == prev || now.Sub(lastAccepted) <= window {
		return EdgeNone, false
	}
	if raw == hal.Low {
		return EdgeFalling, true
	}
	return EdgeRising, true
}

// stamp is the acceptance time shared between debouncers of a Group.
type stamp struct {
	at time.Time
}

// Debouncer filters one input.
// The zero value is not usable; use New or Group.New.
type Debouncer struct {
	window   time.Duration
	mode     Mode
	lastRaw  hal.Level
	accepted hal.Level
	stamp    *stamp
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithMode sets the comparison mode.
func WithMode(m Mode) Option {
	return func(d *Debouncer) {
		d.mode = m
	}
}

// WithInitialLevel sets the level assumed before the first poll.
// Inputs are pulled up, so the default is High.
func WithInitialLevel(l hal.Level) Option {
	return func(d *Debouncer) {
		d.lastRaw = l
		d.accepted = l
	}
}

// New creates a standalone debouncer with its own acceptance timestamp.
// A window of zero selects DefaultWindow.
func New(window time.Duration, opts ...Option) *Debouncer {
	return newDebouncer(window, &stamp{}, opts)
}

func newDebouncer(window time.Duration, s *stamp, opts []Option) *Debouncer {
	if window == 0 {
		window = DefaultWindow
	}
	d := &Debouncer{
		window:   window,
		lastRaw:  hal.High,
		accepted: hal.High,
		stamp:    s,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Poll feeds one raw reading taken at now and returns the accepted edge.
func (d *Debouncer) Poll(raw hal.Level, now time.Time) Edge {
	prev := d.lastRaw
	if d.mode == ModeStrict {
		prev = d.accepted
	}

	edge, ok := Poll(raw, prev, now, d.stamp.at, d.window)
	if ok {
		d.stamp.at = now
		d.accepted = raw
	}
	d.lastRaw = raw
	return edge
}

// Level returns the last accepted level.
func (d *Debouncer) Level() hal.Level {
	return d.accepted
}

// LastAccepted returns the time of the last accepted change in the
// debouncer's group. It is the zero time before any change was accepted.
func (d *Debouncer) LastAccepted() time.Time {
	return d.stamp.at
}

// Window returns the debounce window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Group creates debouncers sharing one acceptance timestamp.
type Group struct {
	window time.Duration
	stamp  stamp
}

// NewGroup creates a group with the given window.
// A window of zero selects DefaultWindow.
func NewGroup(window time.Duration) *Group {
	if window == 0 {
		window = DefaultWindow
	}
	return &Group{window: window}
}

// New creates a debouncer bound to the group's timestamp.
func (g *Group) New(opts ...Option) *Debouncer {
	return newDebouncer(g.window, &g.stamp, opts)
}
