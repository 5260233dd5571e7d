// Package pulse drives an output active for a fixed width without blocking
// the control loop. A pulse is pending from Fire until Service observes the
// deadline, at which point the output settles at the inactive level.
package pulse

import (
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/hal"
)

// DefaultWidth is the default pulse width.
const DefaultWidth = 500 * time.Millisecond

// Pulse is a one-shot timed output.
type Pulse struct {
	out      hal.DigitalOutput
	width    time.Duration
	deadline time.Time
	pending  bool
}

// New creates a pulse on out and drives out to the inactive level.
// A width of zero selects DefaultWidth.
func New(out hal.DigitalOutput, width time.Duration) *Pulse {
	if width == 0 {
		width = DefaultWidth
	}
	out.Write(hal.Inactive)
	return &Pulse{out: out, width: width}
}

// Fire drives the output active until now+width.
// Firing while pending extends the deadline.
func (p *Pulse) Fire(now time.Time) {
	p.out.Write(hal.Active)
	p.deadline = now.Add(p.width)
	p.pending = true
}

// Service releases the output once the deadline has passed.
// It reports whether the pulse ended on this call.
func (p *Pulse) Service(now time.Time) bool {
	if !p.pending || now.Before(p.deadline) {
		return false
	}
	p.out.Write(hal.Inactive)
	p.pending = false
	return true
}

// Cancel releases the output immediately.
func (p *Pulse) Cancel() {
	if !p.pending {
		return
	}
	p.out.Write(hal.Inactive)
	p.pending = false
}

// Pending reports whether the output is currently held active.
func (p *Pulse) Pending() bool {
	return p.pending
}

// Width returns the pulse width.
func (p *Pulse) Width() time.Duration {
	return p.width
}
