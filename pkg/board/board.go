package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/config"
	"github.com/relaytimer/relaytimer-go/pkg/controller"
	"github.com/relaytimer/relaytimer-go/pkg/hal"
	"github.com/relaytimer/relaytimer-go/pkg/hal/sim"
	tlog "github.com/relaytimer/relaytimer-go/pkg/log"
	"github.com/relaytimer/relaytimer-go/pkg/run"
)

// Board errors.
var (
	ErrNoConfig    = errors.New("config required")
	ErrUnknownLine = errors.New("unknown line")
)

// Line names a board input.
type Line string

// Board inputs.
const (
	LineIncrement   Line = "inc"
	LineStart       Line = "start"
	LineDecrement   Line = "dec"
	LineMotorStatus Line = "motor"
)

// SplashRenderer is implemented by displays that can show the boot screen.
type SplashRenderer interface {
	ShowSplash() error
}

// Options configures a Board.
type Options struct {
	// Config is required.
	Config *config.Config

	// Bank supplies the pins. If nil, a new bank is created.
	Bank *sim.Bank

	// Display receives a frame whenever the view changes. Optional.
	Display hal.Display

	// Status receives status lines on request. Optional.
	Status hal.StatusSink

	// Clock defaults to the system clock.
	Clock hal.Clock

	// EventLogger receives controller and board events. Optional.
	EventLogger tlog.Logger

	// SessionID is stamped on every event.
	SessionID string

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// Board owns the controller and its pins.
type Board struct {
	mu sync.Mutex

	cfg     *config.Config
	bank    *sim.Bank
	ctrl    *controller.Controller
	motor   *sim.Motor
	display hal.Display
	status  hal.StatusSink
	clock   hal.Clock
	events  tlog.Logger
	session string
	logger  *slog.Logger

	inputs        map[Line]*sim.Pin
	statusPending bool
	booted        bool
	frames        int
}

// New wires a board from opts.
func New(opts Options) (*Board, error) {
	if opts.Config == nil {
		return nil, ErrNoConfig
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		cfg:     opts.Config,
		bank:    opts.Bank,
		display: opts.Display,
		status:  opts.Status,
		clock:   opts.Clock,
		events:  opts.EventLogger,
		session: opts.SessionID,
		logger:  opts.Logger,
		inputs:  make(map[Line]*sim.Pin),
	}
	if b.bank == nil {
		b.bank = sim.NewBank()
	}
	if b.clock == nil {
		b.clock = hal.SystemClock
	}
	if b.events == nil {
		b.events = tlog.NoopLogger{}
	}

	cfg := opts.Config
	pins := controller.Pins{}

	inc := b.bank.Pin(cfg.Pins.Increment)
	start := b.bank.Pin(cfg.Pins.Start)
	b.inputs[LineIncrement] = inc
	b.inputs[LineStart] = start
	pins.Increment = inc
	pins.Start = start
	if cfg.Pins.Decrement != "" {
		dec := b.bank.Pin(cfg.Pins.Decrement)
		b.inputs[LineDecrement] = dec
		pins.Decrement = dec
	}

	switch cfg.Variant {
	case config.VariantRelayPair:
		pins.Outputs = []hal.DigitalOutput{b.bank.Pin(cfg.Pins.RelayA), b.bank.Pin(cfg.Pins.RelayB)}
	case config.VariantSingle:
		pins.Outputs = []hal.DigitalOutput{b.bank.Pin(cfg.Pins.RelayA)}
	case config.VariantMotor:
		enable := b.bank.Pin(cfg.Pins.MotorEnable)
		disable := b.bank.Pin(cfg.Pins.MotorDisable)
		status := b.bank.Pin(cfg.Pins.MotorStatus)
		b.motor = sim.NewMotor(enable, disable, status)
		b.inputs[LineMotorStatus] = status
		pins.MotorEnable = enable
		pins.MotorDisable = disable
		pins.MotorStatus = status
	}

	ctrl, err := controller.New(controller.Config{
		Timer:          cfg.Timer(),
		Phases:         cfg.Phases(),
		Debounce:       cfg.Debounce(),
		DebounceMode:   cfg.DebounceMode(),
		SharedDebounce: cfg.SharedDebounce,
		PulseWidth:     cfg.Pulse(),
		EventLogger:    b.events,
		SessionID:      opts.SessionID,
		Logger:         opts.Logger,
	}, pins, b.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	b.ctrl = ctrl

	return b, nil
}

// Run boots the board and runs the control loop until ctx is cancelled.
func (b *Board) Run(ctx context.Context) error {
	if err := b.Boot(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(b.cfg.PollInterval())
	defer ticker.Stop()

	b.debug("control loop started", "interval", b.cfg.PollInterval(), "variant", b.cfg.Variant)
	for {
		select {
		case <-ctx.Done():
			b.debug("control loop stopped")
			return ctx.Err()
		case <-ticker.C:
			b.Step(b.clock.Now())
		}
	}
}

// Boot shows the welcome screen for the splash duration.
// It returns early with the context error if ctx is cancelled.
func (b *Board) Boot(ctx context.Context) error {
	if sr, ok := b.display.(SplashRenderer); ok {
		b.mu.Lock()
		if err := sr.ShowSplash(); err != nil {
			b.collaboratorError("display", err)
		}
		b.mu.Unlock()
	}

	if d := b.cfg.Splash(); d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	b.mu.Lock()
	b.booted = true
	b.mu.Unlock()
	return nil
}

// Step runs one control iteration at now and redraws if needed.
func (b *Board) Step(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ctrl.Step(now)

	if b.statusPending {
		b.statusPending = false
		b.writeStatus()
	}

	if !b.ctrl.Dirty() {
		return
	}
	if b.display != nil {
		if err := b.display.Render(b.ctrl.View()); err != nil {
			b.collaboratorError("display", err)
		} else {
			b.frames++
		}
	}
	b.ctrl.ClearDirty()
}

// RequestStatus asks for a status line on the next iteration.
func (b *Board) RequestStatus() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statusPending = true
}

// StatusLine returns the current status line.
func (b *Board) StatusLine() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctrl.StatusLine()
}

// Input returns the pin behind an input line.
func (b *Board) Input(l Line) (*sim.Pin, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.inputs[l]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLine, l)
	}
	return p, nil
}

// Tap presses a button and releases it after hold.
func (b *Board) Tap(l Line, hold time.Duration) error {
	p, err := b.Input(l)
	if err != nil {
		return err
	}
	p.Tap(hold)
	return nil
}

// Motor returns the simulated motor, or nil outside the motor variant.
func (b *Board) Motor() *sim.Motor {
	return b.motor
}

// Bank returns the pin bank.
func (b *Board) Bank() *sim.Bank {
	return b.bank
}

// Config returns the board configuration.
func (b *Board) Config() *config.Config {
	return b.cfg
}

// Snapshot is a consistent view of the board.
type Snapshot struct {
	Booted    bool
	State     run.State
	View      hal.View
	Remaining int
	Phase     int
	Pending   bool
	Pins      map[string]hal.Level
	Frames    int
}

// Snapshot returns the current board state.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		Booted:    b.booted,
		State:     b.ctrl.State(),
		View:      b.ctrl.View(),
		Remaining: b.ctrl.Remaining(),
		Phase:     b.ctrl.Phase(),
		Pending:   b.ctrl.PulsePending(),
		Pins:      b.bank.Snapshot(),
		Frames:    b.frames,
	}
}

func (b *Board) writeStatus() {
	if b.status == nil {
		return
	}
	if err := b.status.WriteStatus(b.ctrl.StatusLine()); err != nil {
		b.collaboratorError("status", err)
	}
}

// collaboratorError logs a display or status failure. The loop keeps running.
func (b *Board) collaboratorError(component string, err error) {
	if b.logger != nil {
		b.logger.Warn("collaborator failed", "component", component, "error", err)
	}
	b.events.Log(tlog.Event{
		Timestamp: b.clock.Now(),
		SessionID: b.session,
		Category:  tlog.CategoryError,
		State:     b.ctrl.State().String(),
		Remaining: b.ctrl.Remaining(),
		Error:     &tlog.ErrorEventData{Component: component, Message: err.Error()},
	})
}

func (b *Board) debug(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}
