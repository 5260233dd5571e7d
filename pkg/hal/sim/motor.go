package sim

import (
	"sync"

	"github.com/relaytimer/relaytimer-go/pkg/hal"
)

// Motor models a latching contactor with an auxiliary status contact.
// A pulse on enable starts it, a pulse on disable stops it, and status reads
// Low while it turns.
type Motor struct {
	mu      sync.Mutex
	status  *Pin
	running bool
}

// NewMotor links enable and disable to status.
func NewMotor(enable, disable, status *Pin) *Motor {
	m := &Motor{status: status}
	status.Write(hal.Inactive)

	enable.OnChange(func(_ string, _, level hal.Level) {
		if hal.IsActive(level) {
			m.set(true)
		}
	})
	disable.OnChange(func(_ string, _, level hal.Level) {
		if hal.IsActive(level) {
			m.set(false)
		}
	})
	return m
}

// Running reports whether the motor turns.
func (m *Motor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Stall stops the motor without a disable pulse, as a tripped overload would.
func (m *Motor) Stall() {
	m.set(false)
}

func (m *Motor) set(running bool) {
	m.mu.Lock()
	m.running = running
	m.mu.Unlock()
	m.status.Write(hal.Drive(running))
}
