// Package sequencer drives the relay outputs through a repeating timed
// cycle while the controller is running.
//
// Each phase lists which outputs are active and how long the phase holds,
// measured from the moment it was entered. Outside Running every output is
// forced to the safe level and the cycle rewinds to the first phase, so each
// entry into Running starts the cycle over.
package sequencer

import (
	"errors"
	"fmt"
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/hal"
	"github.com/relaytimer/relaytimer-go/pkg/run"
)

// Default relay-pair hold times.
const (
	DefaultOnHold  = 5000 * time.Millisecond
	DefaultOffHold = 2000 * time.Millisecond
)

// Sequencer errors.
var (
	ErrNoPhases       = errors.New("sequence has no phases")
	ErrOutputMismatch = errors.New("phase output count mismatch")
	ErrNegativeHold   = errors.New("negative phase hold")
)

// Phase is one segment of the cycle.
type Phase struct {
	// Outputs lists the logical state of every output; true is energized.
	Outputs []bool

	// Hold is how long the phase lasts. Zero holds forever.
	Hold time.Duration
}

// RelayPair returns the alternating two-relay cycle:
// A on, both off, B on, both off.
func RelayPair(on, off time.Duration) []Phase {
	return []Phase{
		{Outputs: []bool{true, false}, Hold: on},
		{Outputs: []bool{false, false}, Hold: off},
		{Outputs: []bool{false, true}, Hold: on},
		{Outputs: []bool{false, false}, Hold: off},
	}
}

// SingleOutput returns a single phase with one output on and no end.
func SingleOutput() []Phase {
	return []Phase{{Outputs: []bool{true}}}
}

// FromHolds builds a relay-pair cycle from four hold times in milliseconds.
// Other lengths build a single-output sequence whose phases alternate on and
// off with the given holds.
func FromHolds(ms []int) []Phase {
	if len(ms) == 4 {
		return []Phase{
			{Outputs: []bool{true, false}, Hold: time.Duration(ms[0]) * time.Millisecond},
			{Outputs: []bool{false, false}, Hold: time.Duration(ms[1]) * time.Millisecond},
			{Outputs: []bool{false, true}, Hold: time.Duration(ms[2]) * time.Millisecond},
			{Outputs: []bool{false, false}, Hold: time.Duration(ms[3]) * time.Millisecond},
		}
	}
	phases := make([]Phase, 0, len(ms))
	for i, h := range ms {
		phases = append(phases, Phase{
			Outputs: []bool{i%2 == 0},
			Hold:    time.Duration(h) * time.Millisecond,
		})
	}
	return phases
}

// Validate checks that phases are usable.
func Validate(phases []Phase) error {
	if len(phases) == 0 {
		return ErrNoPhases
	}
	n := len(phases[0].Outputs)
	for i, p := range phases {
		if len(p.Outputs) != n || n == 0 {
			return fmt.Errorf("%w: phase %d has %d outputs, want %d", ErrOutputMismatch, i, len(p.Outputs), n)
		}
		if p.Hold < 0 {
			return fmt.Errorf("%w: phase %d", ErrNegativeHold, i)
		}
	}
	return nil
}

// Sequencer owns the current phase. It is not safe for concurrent use.
type Sequencer struct {
	phases    []Phase
	index     int
	enteredAt time.Time
	active    bool
}

// New creates a sequencer for the given phases.
func New(phases []Phase) (*Sequencer, error) {
	if err := Validate(phases); err != nil {
		return nil, err
	}
	return &Sequencer{phases: phases}, nil
}

// Outputs returns the number of outputs driven.
func (s *Sequencer) Outputs() int {
	return len(s.phases[0].Outputs)
}

// Phase returns the current phase index.
func (s *Sequencer) Phase() int {
	return s.index
}

// Phases returns the number of phases in the cycle.
func (s *Sequencer) Phases() int {
	return len(s.phases)
}

// Restart enters the first phase at now.
func (s *Sequencer) Restart(now time.Time) {
	s.index = 0
	s.enteredAt = now
	s.active = true
}

// Advance returns the phase and output levels for this iteration.
// Outside Running every output is at the safe level and the cycle rewinds.
func (s *Sequencer) Advance(state run.State, now time.Time) (int, []hal.Level) {
	if state != run.Running {
		s.index = 0
		s.active = false
		return s.index, s.Safe()
	}

	if !s.active {
		s.Restart(now)
	}

	p := s.phases[s.index]
	if p.Hold > 0 && now.Sub(s.enteredAt) >= p.Hold {
		s.index = (s.index + 1) % len(s.phases)
		s.enteredAt = now
	}

	return s.index, s.levels(s.phases[s.index])
}

// Safe returns every output at the inactive level.
func (s *Sequencer) Safe() []hal.Level {
	out := make([]hal.Level, s.Outputs())
	for i := range out {
		out[i] = hal.Inactive
	}
	return out
}

func (s *Sequencer) levels(p Phase) []hal.Level {
	out := make([]hal.Level, len(p.Outputs))
	for i, on := range p.Outputs {
		out[i] = hal.Drive(on)
	}
	return out
}
