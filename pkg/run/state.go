// Package run defines the run state shared by the timer, the output
// sequencer and the controller. Only the controller changes it.
package run

// State represents the controller run state.
type State uint8

const (
	// Stopped is the idle state. The duration can be adjusted.
	Stopped State = iota

	// Running counts down and cycles the outputs.
	Running

	// Paused holds the remaining time with outputs safe.
	Paused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Stopped:
		return "STOPPED"
	case Running:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// Label returns the text shown on the display.
func (s State) Label() string {
	switch s {
	case Running:
		return "ENCENDIDO"
	case Paused:
		return "PAUSADO"
	default:
		return "DETENIDO"
	}
}

// StatusLabel returns the text used in serial status lines. It differs from
// Label only while running.
func (s State) StatusLabel() string {
	if s == Running {
		return "EN MARCHA"
	}
	return s.Label()
}

// ParseState parses a state name as returned by String.
func ParseState(s string) (State, bool) {
	switch s {
	case "STOPPED":
		return Stopped, true
	case "RUNNING":
		return Running, true
	case "PAUSED":
		return Paused, true
	default:
		return Stopped, false
	}
}
