package log

import (
	"fmt"
	"strings"
	"time"
)

// Event represents a controller event captured during one loop iteration.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the process run that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// State is the run state after the event.
	State string `cbor:"4,keyasint,omitempty"`

	// Remaining is the remaining time in seconds after the event.
	Remaining int `cbor:"5,keyasint"`

	// Type-specific payload (one of these will be set).
	Button      *ButtonEvent      `cbor:"10,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"`
	Countdown   *CountdownEvent   `cbor:"12,keyasint,omitempty"`
	Phase       *PhaseEvent       `cbor:"13,keyasint,omitempty"`
	Output      *OutputEvent      `cbor:"14,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"15,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryInput indicates an accepted input edge.
	CategoryInput Category = 0
	// CategoryState indicates a run state change.
	CategoryState Category = 1
	// CategoryCountdown indicates a countdown tick.
	CategoryCountdown Category = 2
	// CategoryPhase indicates an output sequencer phase change.
	CategoryPhase Category = 3
	// CategoryOutput indicates a pulse on a motor line.
	CategoryOutput Category = 4
	// CategoryError indicates a collaborator error.
	CategoryError Category = 5
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "INPUT"
	case CategoryState:
		return "STATE"
	case CategoryCountdown:
		return "COUNTDOWN"
	case CategoryPhase:
		return "PHASE"
	case CategoryOutput:
		return "OUTPUT"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "input":
		return CategoryInput, nil
	case "state":
		return CategoryState, nil
	case "countdown":
		return CategoryCountdown, nil
	case "phase":
		return CategoryPhase, nil
	case "output":
		return CategoryOutput, nil
	case "error":
		return CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category %q (valid: input, state, countdown, phase, output, error)", s)
	}
}

// Input identifies a physical input line.
type Input uint8

const (
	// InputIncrement is the increment button.
	InputIncrement Input = 0
	// InputStart is the start/pause/emergency button.
	InputStart Input = 1
	// InputDecrement is the reserved decrement button.
	InputDecrement Input = 2
	// InputMotorStatus is the motor-status sensor.
	InputMotorStatus Input = 3
)

// String returns the input name.
func (i Input) String() string {
	switch i {
	case InputIncrement:
		return "INC"
	case InputStart:
		return "START"
	case InputDecrement:
		return "DEC"
	case InputMotorStatus:
		return "MOTOR_STATUS"
	default:
		return "UNKNOWN"
	}
}

// ButtonEvent captures an accepted edge on an input line.
type ButtonEvent struct {
	// Input is the line that changed.
	Input Input `cbor:"1,keyasint"`

	// Edge is the accepted edge name (FALLING, RISING).
	Edge string `cbor:"2,keyasint"`

	// Ignored is set when the edge had no effect in the current state.
	Ignored bool `cbor:"3,keyasint,omitempty"`
}

// Reason explains a state change.
type Reason uint8

const (
	// ReasonButton is a start button press.
	ReasonButton Reason = 0
	// ReasonExpired is the countdown reaching zero.
	ReasonExpired Reason = 1
	// ReasonMotorOverride is the motor-status safety override.
	ReasonMotorOverride Reason = 2
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case ReasonButton:
		return "BUTTON"
	case ReasonExpired:
		return "EXPIRED"
	case ReasonMotorOverride:
		return "MOTOR_OVERRIDE"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a run state transition.
type StateChangeEvent struct {
	// OldState is the previous state.
	OldState string `cbor:"1,keyasint"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change.
	Reason Reason `cbor:"3,keyasint"`
}

// CountdownEvent captures a countdown decrement.
type CountdownEvent struct {
	// Remaining is the remaining time in seconds after the tick.
	Remaining int `cbor:"1,keyasint"`

	// Expired is set on the tick that reached zero.
	Expired bool `cbor:"2,keyasint,omitempty"`
}

// PhaseEvent captures an output sequencer phase change.
type PhaseEvent struct {
	// Phase is the new phase index.
	Phase int `cbor:"1,keyasint"`

	// Outputs holds the driven levels, one character per output (L or H).
	Outputs string `cbor:"2,keyasint"`
}

// OutputEvent captures a pulse on a motor line.
type OutputEvent struct {
	// Line is the output name (enable, disable).
	Line string `cbor:"1,keyasint"`

	// Level is the level driven (LOW, HIGH).
	Level string `cbor:"2,keyasint"`
}

// ErrorEventData captures collaborator errors.
type ErrorEventData struct {
	// Component is the collaborator that failed (display, status).
	Component string `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`
}
