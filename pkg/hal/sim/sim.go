// Package sim provides in-memory pins for running the relay timer without
// hardware. Pins are safe for concurrent use so a console or TUI goroutine
// can press buttons while the control loop polls them.
package sim

import (
	"sort"
	"sync"
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/hal"
)

// Pin is a simulated digital line usable as input and output.
type Pin struct {
	mu       sync.Mutex
	name     string
	level    hal.Level
	writes   int
	onChange func(name string, old, new hal.Level)
}

// NewPin creates a pin idling at level.
func NewPin(name string, level hal.Level) *Pin {
	return &Pin{name: name, level: level}
}

// Name returns the pin name.
func (p *Pin) Name() string {
	return p.name
}

// Read returns the current level.
func (p *Pin) Read() hal.Level {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Write sets the level. The change callback only fires on actual changes.
func (p *Pin) Write(level hal.Level) {
	p.mu.Lock()
	old := p.level
	p.level = level
	p.writes++
	fn := p.onChange
	p.mu.Unlock()

	if fn != nil && old != level {
		fn(p.name, old, level)
	}
}

// Writes returns the number of Write calls.
func (p *Pin) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

// Press drives an input to its active level.
func (p *Pin) Press() {
	p.Write(hal.Active)
}

// Release returns an input to its idle level.
func (p *Pin) Release() {
	p.Write(hal.Inactive)
}

// Tap presses the pin now and releases it after hold.
// hold must exceed the debounce window for the release to be seen as an edge.
func (p *Pin) Tap(hold time.Duration) {
	p.Press()
	time.AfterFunc(hold, p.Release)
}

// OnChange sets a callback for level changes.
func (p *Pin) OnChange(fn func(name string, old, new hal.Level)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = fn
}

// Bank is a named set of simulated pins.
type Bank struct {
	mu   sync.RWMutex
	pins map[string]*Pin
}

// NewBank creates an empty pin bank.
func NewBank() *Bank {
	return &Bank{pins: make(map[string]*Pin)}
}

// Pin returns the named pin, creating it idle-high if it doesn't exist.
func (b *Bank) Pin(name string) *Pin {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p, ok := b.pins[name]; ok {
		return p
	}
	p := NewPin(name, hal.Inactive)
	b.pins[name] = p
	return p
}

// Lookup returns the named pin if it exists.
func (b *Bank) Lookup(name string) (*Pin, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.pins[name]
	return p, ok
}

// Names returns the pin names in sorted order.
func (b *Bank) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.pins))
	for n := range b.pins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns the current level of every pin.
func (b *Bank) Snapshot() map[string]hal.Level {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]hal.Level, len(b.pins))
	for n, p := range b.pins {
		out[n] = p.Read()
	}
	return out
}

// Compile-time interface satisfaction checks.
var (
	_ hal.DigitalInput  = (*Pin)(nil)
	_ hal.DigitalOutput = (*Pin)(nil)
)
