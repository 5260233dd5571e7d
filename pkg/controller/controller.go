package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/debounce"
	"github.com/relaytimer/relaytimer-go/pkg/hal"
	tlog "github.com/relaytimer/relaytimer-go/pkg/log"
	"github.com/relaytimer/relaytimer-go/pkg/pulse"
	"github.com/relaytimer/relaytimer-go/pkg/run"
	"github.com/relaytimer/relaytimer-go/pkg/sequencer"
	"github.com/relaytimer/relaytimer-go/pkg/timer"
)

// Controller errors.
var (
	ErrMissingInput   = errors.New("required input not wired")
	ErrOutputMismatch = errors.New("output count does not match sequence")
	ErrMotorWiring    = errors.New("motor lines must be wired together")
)

// Config configures a Controller.
type Config struct {
	// Timer holds duration bounds and the expiry policy.
	Timer timer.Config

	// Phases is the output cycle. Ignored when no outputs are wired.
	Phases []sequencer.Phase

	// Debounce is the button debounce window.
	Debounce time.Duration

	// DebounceMode selects the edge comparison.
	DebounceMode debounce.Mode

	// SharedDebounce makes the increment and start buttons share one window.
	SharedDebounce bool

	// PulseWidth is the motor enable/disable pulse width.
	PulseWidth time.Duration

	// EventLogger receives controller events. Nil disables capture.
	EventLogger tlog.Logger

	// SessionID is stamped on every event.
	SessionID string

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns the relay-pair configuration with firmware timings.
func DefaultConfig() Config {
	return Config{
		Timer:          timer.DefaultConfig(),
		Phases:         sequencer.RelayPair(sequencer.DefaultOnHold, sequencer.DefaultOffHold),
		Debounce:       debounce.DefaultWindow,
		SharedDebounce: true,
		PulseWidth:     pulse.DefaultWidth,
	}
}

// Pins wires the controller to the board.
type Pins struct {
	// Increment and Start are required.
	Increment hal.DigitalInput
	Start     hal.DigitalInput

	// Decrement is reserved and read but has no effect.
	Decrement hal.DigitalInput

	// MotorStatus reads Low while the motor turns.
	MotorStatus hal.DigitalInput

	// Outputs are driven by the sequencer, in phase output order.
	Outputs []hal.DigitalOutput

	// MotorEnable and MotorDisable receive start and stop pulses.
	MotorEnable  hal.DigitalOutput
	MotorDisable hal.DigitalOutput
}

// Controller is the relay timer state machine.
// It is not safe for concurrent use.
type Controller struct {
	cfg  Config
	pins Pins

	state run.State
	timer *timer.Timer
	seq   *sequencer.Sequencer

	inc   *debounce.Debouncer
	start *debounce.Debouncer
	dec   *debounce.Debouncer
	motor *debounce.Debouncer

	enable  *pulse.Pulse
	disable *pulse.Pulse

	phase   int
	outputs []hal.Level
	dirty   bool

	events tlog.Logger
	logger *slog.Logger
}

// New creates a stopped controller loaded with the minimum duration.
// Every output is driven to its safe level.
func New(cfg Config, pins Pins, now time.Time) (*Controller, error) {
	if pins.Increment == nil || pins.Start == nil {
		return nil, ErrMissingInput
	}
	if (pins.MotorEnable == nil) != (pins.MotorDisable == nil) {
		return nil, ErrMotorWiring
	}

	tm, err := timer.New(cfg.Timer, now)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:    cfg,
		pins:   pins,
		state:  run.Stopped,
		timer:  tm,
		dirty:  true,
		events: cfg.EventLogger,
		logger: cfg.Logger,
	}
	if c.events == nil {
		c.events = tlog.NoopLogger{}
	}

	if len(pins.Outputs) > 0 {
		seq, err := sequencer.New(cfg.Phases)
		if err != nil {
			return nil, err
		}
		if seq.Outputs() != len(pins.Outputs) {
			return nil, fmt.Errorf("%w: %d outputs wired, sequence drives %d", ErrOutputMismatch, len(pins.Outputs), seq.Outputs())
		}
		c.seq = seq
		c.writeOutputs(seq.Safe())
	}

	opts := []debounce.Option{debounce.WithMode(cfg.DebounceMode)}
	if cfg.SharedDebounce {
		g := debounce.NewGroup(cfg.Debounce)
		c.inc = g.New(opts...)
		c.start = g.New(opts...)
	} else {
		c.inc = debounce.New(cfg.Debounce, opts...)
		c.start = debounce.New(cfg.Debounce, opts...)
	}
	if pins.Decrement != nil {
		c.dec = debounce.New(cfg.Debounce, opts...)
	}
	if pins.MotorStatus != nil {
		// The sensor is a level, so a change inside the window must not be lost.
		c.motor = debounce.New(cfg.Debounce, debounce.WithMode(debounce.ModeStrict))
	}
	if pins.MotorEnable != nil {
		c.enable = pulse.New(pins.MotorEnable, cfg.PulseWidth)
		c.disable = pulse.New(pins.MotorDisable, cfg.PulseWidth)
	}

	return c, nil
}

// State returns the run state.
func (c *Controller) State() run.State {
	return c.state
}

// Remaining returns the remaining seconds.
func (c *Controller) Remaining() int {
	return c.timer.Remaining()
}

// Phase returns the current sequencer phase.
func (c *Controller) Phase() int {
	return c.phase
}

// Outputs returns the levels last driven on the sequencer outputs.
func (c *Controller) Outputs() []hal.Level {
	out := make([]hal.Level, len(c.outputs))
	copy(out, c.outputs)
	return out
}

// PulsePending reports whether a motor pulse is in progress.
func (c *Controller) PulsePending() bool {
	if c.enable == nil {
		return false
	}
	return c.enable.Pending() || c.disable.Pending()
}

// Dirty reports whether the display is stale.
func (c *Controller) Dirty() bool {
	return c.dirty
}

// ClearDirty is called by the display consumer after drawing.
func (c *Controller) ClearDirty() {
	c.dirty = false
}

// MarkDirty forces a redraw.
func (c *Controller) MarkDirty() {
	c.dirty = true
}

// View returns the display model.
func (c *Controller) View() hal.View {
	m, s := timer.Split(c.timer.Remaining())
	return hal.View{Minutes: m, Seconds: s, Label: c.state.Label()}
}

// StatusLine returns the status text line.
func (c *Controller) StatusLine() string {
	m, s := timer.Split(c.timer.Remaining())
	return fmt.Sprintf("Estado: %s | Tiempo: %02d:%02d", c.state.StatusLabel(), m, s)
}

// Step runs one loop iteration at now.
func (c *Controller) Step(now time.Time) {
	c.handleButtons(now)
	c.countdown(now)
	c.checkMotor(now)
	c.driveOutputs(now)
}

func (c *Controller) handleButtons(now time.Time) {
	if edge := c.inc.Poll(c.pins.Increment.Read(), now); edge == debounce.EdgeFalling {
		c.onIncrement(now, edge)
	}

	if edge := c.start.Poll(c.pins.Start.Read(), now); edge == debounce.EdgeFalling {
		c.onStart(now, edge)
	}

	if c.dec != nil {
		if edge := c.dec.Poll(c.pins.Decrement.Read(), now); edge == debounce.EdgeFalling {
			c.emitButton(now, tlog.InputDecrement, edge, true)
		}
	}

	if c.motor != nil {
		if edge := c.motor.Poll(c.pins.MotorStatus.Read(), now); edge != debounce.EdgeNone {
			c.emitButton(now, tlog.InputMotorStatus, edge, false)
		}
	}
}

func (c *Controller) onIncrement(now time.Time, edge debounce.Edge) {
	_, changed := c.timer.Increment(c.state)
	ignored := c.state != run.Stopped
	if changed {
		c.dirty = true
	}
	c.emitButton(now, tlog.InputIncrement, edge, ignored)
}

func (c *Controller) onStart(now time.Time, edge debounce.Edge) {
	c.emitButton(now, tlog.InputStart, edge, false)

	switch c.state {
	case run.Stopped, run.Paused:
		c.enterRunning(now)
	case run.Running:
		c.transition(now, run.Paused, tlog.ReasonButton)
		c.forceSafe(now)
		c.firePulse(now, c.disable, "disable")
	}
}

func (c *Controller) enterRunning(now time.Time) {
	c.transition(now, run.Running, tlog.ReasonButton)
	if c.seq != nil {
		c.seq.Restart(now)
	}
	c.firePulse(now, c.enable, "enable")
}

func (c *Controller) countdown(now time.Time) {
	before := c.timer.Remaining()
	remaining, expired := c.timer.Tick(c.state, now)
	if remaining != before || expired {
		c.dirty = true
		c.emit(now, tlog.Event{
			Category:  tlog.CategoryCountdown,
			Countdown: &tlog.CountdownEvent{Remaining: remaining, Expired: expired},
		})
	}
	if !expired {
		return
	}

	c.transition(now, run.Stopped, tlog.ReasonExpired)
	c.timer.Expire()
	c.forceSafe(now)
	c.firePulse(now, c.disable, "disable")
}

func (c *Controller) checkMotor(now time.Time) {
	if c.motor == nil || c.state != run.Running || c.PulsePending() {
		return
	}
	if hal.IsActive(c.motor.Level()) {
		return
	}

	c.debug("motor stopped while running, forcing stop")
	c.transition(now, run.Stopped, tlog.ReasonMotorOverride)
	c.timer.Reset()
	c.forceSafe(now)
	c.firePulse(now, c.disable, "disable")
}

func (c *Controller) driveOutputs(now time.Time) {
	if c.seq != nil {
		phase, levels := c.seq.Advance(c.state, now)
		c.applyPhase(now, phase, levels)
	}

	if c.enable != nil {
		if c.enable.Service(now) {
			c.emitOutput(now, "enable", hal.Inactive)
		}
		if c.disable.Service(now) {
			c.emitOutput(now, "disable", hal.Inactive)
		}
	}
}

// forceSafe drives every sequencer output inactive immediately.
func (c *Controller) forceSafe(now time.Time) {
	if c.seq == nil {
		return
	}
	c.applyPhase(now, 0, c.seq.Safe())
}

func (c *Controller) applyPhase(now time.Time, phase int, levels []hal.Level) {
	if phase == c.phase && equalLevels(levels, c.outputs) {
		return
	}
	c.phase = phase
	c.writeOutputs(levels)
	c.emit(now, tlog.Event{
		Category: tlog.CategoryPhase,
		Phase:    &tlog.PhaseEvent{Phase: phase, Outputs: formatLevels(levels)},
	})
}

func (c *Controller) writeOutputs(levels []hal.Level) {
	for i, out := range c.pins.Outputs {
		out.Write(levels[i])
	}
	c.outputs = levels
}

func (c *Controller) firePulse(now time.Time, p *pulse.Pulse, line string) {
	if p == nil {
		return
	}
	// Enable and disable never overlap.
	if line == "enable" {
		c.disable.Cancel()
	} else {
		c.enable.Cancel()
	}
	p.Fire(now)
	c.emitOutput(now, line, hal.Active)
}

func (c *Controller) transition(now time.Time, to run.State, reason tlog.Reason) {
	from := c.state
	c.state = to
	c.dirty = true
	c.debug("state change", "from", from, "to", to, "reason", reason)
	c.emit(now, tlog.Event{
		Category: tlog.CategoryState,
		StateChange: &tlog.StateChangeEvent{
			OldState: from.String(),
			NewState: to.String(),
			Reason:   reason,
		},
	})
}

func (c *Controller) emitButton(now time.Time, in tlog.Input, edge debounce.Edge, ignored bool) {
	c.emit(now, tlog.Event{
		Category: tlog.CategoryInput,
		Button:   &tlog.ButtonEvent{Input: in, Edge: edge.String(), Ignored: ignored},
	})
}

func (c *Controller) emitOutput(now time.Time, line string, level hal.Level) {
	c.emit(now, tlog.Event{
		Category: tlog.CategoryOutput,
		Output:   &tlog.OutputEvent{Line: line, Level: level.String()},
	})
}

func (c *Controller) emit(now time.Time, e tlog.Event) {
	e.Timestamp = now
	e.SessionID = c.cfg.SessionID
	e.State = c.state.String()
	e.Remaining = c.timer.Remaining()
	c.events.Log(e)
}

func (c *Controller) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func equalLevels(a, b []hal.Level) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatLevels(levels []hal.Level) string {
	var b strings.Builder
	for _, l := range levels {
		if l == hal.Low {
			b.WriteByte('L')
		} else {
			b.WriteByte('H')
		}
	}
	return b.String()
}
