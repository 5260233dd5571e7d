// Package hal defines the hardware abstraction used by the relay timer.
//
// The controller never touches pins directly. It reads buttons and sensors
// through DigitalInput, drives relays and motor lines through DigitalOutput,
// and hands a View to a Display when the screen is stale.
//
// # Polarity
//
// All lines are active-low. Inputs are pulled up, so an idle button reads
// High and a pressed one reads Low. Outputs are energized by driving them
// Low; High is the safe, inactive level.
//
// # Clock
//
// Every component compares against a Clock read once per loop iteration.
// SystemClock is backed by the monotonic reading of time.Now. FakeClock is
// used by tests and by the simulator.
package hal
