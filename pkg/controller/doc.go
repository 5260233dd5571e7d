// Package controller implements the relay timer state machine.
//
// The Controller is the single owner of the run state. Each call to Step is
// one iteration of the cooperative control loop and evaluates, in order:
//
//  1. Buttons: debounced edges on the increment and start inputs.
//  2. Countdown: the 1 Hz timer tick, and expiry.
//  3. Safety: the optional motor-status override.
//  4. Outputs: the phase sequencer and pending motor pulses.
//
// A button edge and an expiry can both apply within one iteration; the
// order above decides the outcome. After Step the caller checks Dirty,
// renders View and calls ClearDirty.
//
// # Transitions
//
//	Stopped --start--> Running --start--> Paused --start--> Running
//	Running --expired--> Stopped
//	Running --motor stopped--> Stopped   (motor variant only)
//
// The increment button only acts while Stopped. The decrement input is read
// and ignored.
//
// # Motor Variant
//
// When enable and disable lines are wired, entering Running fires a pulse on
// the enable line and leaving it fires one on the disable line. Pulses do not
// block the loop. While Running with no enable pulse pending, a motor-status
// reading of stopped forces Stopped, fires the disable pulse and reloads the
// minimum duration.
package controller
