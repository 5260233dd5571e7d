// Package timer implements the countdown behind the relay timer.
//
// # Duration
//
// The remaining time is held in whole seconds within [Min, Max]. While the
// controller is stopped the increment button adds Increment seconds and wraps
// to Min when the result would exceed Max. It never clamps.
//
// # Countdown
//
// The timer paces itself at 1 Hz against the clock it is polled with. Its
// tick grid runs continuously from construction, as the firmware's did, so
// the first decrement after a start lands anywhere within the next second.
// The countdown only moves while the controller is running.
//
// # Expiry
//
// Reaching zero reports expiry exactly once. What happens to the remaining
// time afterwards is an ExpiryPolicy: ResetToMin prepares the next cycle,
// HoldAtZero leaves zero on the display until the user increments.
package timer
