// Package debounce turns raw button levels into press and release edges.
//
// # Acceptance Rule
//
// A change is accepted only when the raw level differs from the previously
// observed raw level and more than the window has elapsed since the last
// accepted change. The previous level is updated on every poll, accepted or
// not. Toggling faster than the window can therefore leave the stored level
// equal to a later genuine change, which then produces no edge. ModeStrict
// compares against the last accepted level instead and does not have this
// property.
//
// # Shared Windows
//
// Debouncers created from the same Group share one acceptance timestamp: an
// edge accepted on one button blocks every other button in the group for the
// window. This is how the board wires its increment and start buttons.
package debounce
