package board

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/config"
	"github.com/relaytimer/relaytimer-go/pkg/hal"
	"github.com/relaytimer/relaytimer-go/pkg/hal/mocks"
	"github.com/relaytimer/relaytimer-go/pkg/lcd"
	tlog "github.com/relaytimer/relaytimer-go/pkg/log"
	"github.com/relaytimer/relaytimer-go/pkg/run"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var boot = time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)

type recorder struct {
	mu     sync.Mutex
	events []tlog.Event
}

func (r *recorder) Log(e tlog.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) errors() []tlog.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []tlog.Event
	for _, e := range r.events {
		if e.Category == tlog.CategoryError {
			out = append(out, e)
		}
	}
	return out
}

func newBoard(t *testing.T, cfg *config.Config, opts Options) (*Board, *hal.FakeClock) {
	t.Helper()
	clock := hal.NewFakeClock(boot)
	opts.Config = cfg
	opts.Clock = clock
	b, err := New(opts)
	require.NoError(t, err)
	return b, clock
}

// press holds a line across enough iterations for the edge to be accepted.
func press(t *testing.T, b *Board, clock *hal.FakeClock, l Line) {
	t.Helper()
	p, err := b.Input(l)
	require.NoError(t, err)

	p.Press()
	for i := 0; i < 10; i++ {
		b.Step(clock.Advance(10 * time.Millisecond))
	}
	p.Release()
	for i := 0; i < 10; i++ {
		b.Step(clock.Advance(10 * time.Millisecond))
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New(Options{})
	assert.ErrorIs(t, err, ErrNoConfig)

	cfg := config.Default()
	cfg.MinSeconds = 0
	_, err = New(Options{Config: cfg})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestStepRendersOnlyWhenDirty(t *testing.T) {
	display := mocks.NewMockDisplay(t)
	display.EXPECT().Render(hal.View{Minutes: 10, Seconds: 0, Label: "DETENIDO"}).Return(nil).Once()

	b, clock := newBoard(t, config.Default(), Options{Display: display})

	b.Step(clock.Advance(10 * time.Millisecond))
	b.Step(clock.Advance(10 * time.Millisecond))
	b.Step(clock.Advance(10 * time.Millisecond))

	assert.Equal(t, 1, b.Snapshot().Frames)
}

func TestStatusOnRequest(t *testing.T) {
	status := mocks.NewMockStatusSink(t)
	status.EXPECT().WriteStatus("Estado: DETENIDO | Tiempo: 10:00").Return(nil).Once()

	b, clock := newBoard(t, config.Default(), Options{Status: status})

	b.Step(clock.Advance(10 * time.Millisecond))
	b.RequestStatus()
	b.Step(clock.Advance(10 * time.Millisecond))
	b.Step(clock.Advance(10 * time.Millisecond))

	assert.Equal(t, "Estado: DETENIDO | Tiempo: 10:00", b.StatusLine())
}

func TestDisplayErrorIsNotFatal(t *testing.T) {
	display := mocks.NewMockDisplay(t)
	display.EXPECT().Render(mock.Anything).Return(errors.New("i2c nack")).Once()
	rec := &recorder{}

	b, clock := newBoard(t, config.Default(), Options{Display: display, EventLogger: rec, SessionID: "s1"})

	b.Step(clock.Advance(10 * time.Millisecond))
	b.Step(clock.Advance(10 * time.Millisecond))

	errs := rec.errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "display", errs[0].Error.Component)
	assert.Equal(t, "i2c nack", errs[0].Error.Message)
	assert.Equal(t, "s1", errs[0].SessionID)
	assert.Equal(t, 0, b.Snapshot().Frames)
}

func TestRelayPairRun(t *testing.T) {
	b, clock := newBoard(t, config.Default(), Options{})

	press(t, b, clock, LineStart)

	snap := b.Snapshot()
	assert.Equal(t, run.Running, snap.State)
	assert.Equal(t, "ENCENDIDO", snap.View.Label)
	assert.Equal(t, hal.Low, snap.Pins["D7"], "relay A on in the first phase")
	assert.Equal(t, hal.High, snap.Pins["D6"])

	press(t, b, clock, LineStart)
	snap = b.Snapshot()
	assert.Equal(t, run.Paused, snap.State)
	assert.Equal(t, hal.High, snap.Pins["D7"])
	assert.Equal(t, hal.High, snap.Pins["D6"])
}

func TestIncrementLine(t *testing.T) {
	b, clock := newBoard(t, config.Default(), Options{})

	press(t, b, clock, LineIncrement)

	assert.Equal(t, 900, b.Snapshot().Remaining)
}

func TestSingleVariant(t *testing.T) {
	cfg := config.Default()
	cfg.Variant = config.VariantSingle
	b, clock := newBoard(t, cfg, Options{})

	press(t, b, clock, LineStart)

	pins := b.Snapshot().Pins
	assert.Equal(t, hal.Low, pins["D7"])
	_, ok := pins["D6"]
	assert.False(t, ok, "second relay not wired")
}

func TestMotorVariant(t *testing.T) {
	cfg := config.Default()
	cfg.Variant = config.VariantMotor
	b, clock := newBoard(t, cfg, Options{})
	require.NotNil(t, b.Motor())

	press(t, b, clock, LineStart)
	assert.True(t, b.Motor().Running())
	assert.True(t, b.Snapshot().Pending)

	for i := 0; i < 50; i++ {
		b.Step(clock.Advance(10 * time.Millisecond))
	}
	assert.False(t, b.Snapshot().Pending)

	b.Motor().Stall()
	b.Step(clock.Advance(10 * time.Millisecond))

	snap := b.Snapshot()
	assert.Equal(t, run.Stopped, snap.State)
	assert.Equal(t, hal.Low, snap.Pins["D3"], "disable pulse fired")
}

func TestInputUnknownLine(t *testing.T) {
	b, _ := newBoard(t, config.Default(), Options{})

	_, err := b.Input(LineMotorStatus)
	assert.ErrorIs(t, err, ErrUnknownLine)
	assert.ErrorIs(t, b.Tap(Line("bogus"), time.Millisecond), ErrUnknownLine)
}

func TestRunLoop(t *testing.T) {
	cfg := config.Default()
	cfg.SplashMS = 0
	cfg.PollIntervalMS = 1

	display := mocks.NewMockDisplay(t)
	display.EXPECT().Render(mock.Anything).Return(nil).Maybe()

	b, err := New(Options{Config: cfg, Display: display})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = b.Run(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	snap := b.Snapshot()
	assert.True(t, snap.Booted)
	assert.Equal(t, 1, snap.Frames)
}

func TestBootShowsSplash(t *testing.T) {
	cfg := config.Default()
	cfg.SplashMS = 60_000

	var buf bytes.Buffer
	b, err := New(Options{Config: cfg, Display: lcd.NewWriter(&buf)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = b.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, b.Snapshot().Booted)
	assert.Contains(t, buf.String(), "Bienvenido!")
}
