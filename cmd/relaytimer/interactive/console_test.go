package interactive

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaytimer/relaytimer-go/pkg/board"
	"github.com/relaytimer/relaytimer-go/pkg/config"
	"github.com/relaytimer/relaytimer-go/pkg/hal"
)

func newCommands(t *testing.T, variant config.Variant) (*Commands, *bytes.Buffer, *hal.FakeClock) {
	t.Helper()
	cfg := config.Default()
	cfg.Variant = variant
	clock := hal.NewFakeClock(time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC))

	b, err := board.New(board.Options{Config: cfg, Clock: clock})
	require.NoError(t, err)

	var out bytes.Buffer
	return &Commands{Out: &out, Board: b, Hold: time.Hour}, &out, clock
}

func TestExecuteQuit(t *testing.T) {
	c, out, _ := newCommands(t, config.VariantRelayPair)

	assert.False(t, c.Execute(""))
	assert.False(t, c.Execute("help"))
	assert.True(t, c.Execute("quit"))
	assert.Contains(t, out.String(), "Exiting...")
}

func TestExecuteUnknown(t *testing.T) {
	c, out, _ := newCommands(t, config.VariantRelayPair)

	c.Execute("launch")

	assert.Contains(t, out.String(), "Unknown command: launch")
}

func TestExecuteStartPressesButton(t *testing.T) {
	c, _, clock := newCommands(t, config.VariantRelayPair)

	c.Execute("start")
	c.Board.Step(clock.Advance(10 * time.Millisecond))

	snap := c.Board.Snapshot()
	assert.Equal(t, "ENCENDIDO", snap.View.Label)
	assert.Equal(t, hal.Low, snap.Pins["D4"], "button still held")
}

func TestExecuteHold(t *testing.T) {
	c, out, _ := newCommands(t, config.VariantRelayPair)

	c.Execute("hold inc")
	assert.Contains(t, out.String(), "Usage: hold")

	out.Reset()
	c.Execute("hold inc abc")
	assert.Contains(t, out.String(), "Invalid duration")

	out.Reset()
	c.Execute("hold motor 100")
	assert.Contains(t, out.String(), "Error:")
}

func TestExecuteMotor(t *testing.T) {
	c, out, _ := newCommands(t, config.VariantRelayPair)
	c.Execute("motor")
	assert.Contains(t, out.String(), "No motor")

	c, out, _ = newCommands(t, config.VariantMotor)
	c.Execute("motor")
	assert.Contains(t, out.String(), "Motor: stopped")

	out.Reset()
	c.Execute("motor stall")
	assert.Contains(t, out.String(), "Motor stalled")
}

func TestExecutePins(t *testing.T) {
	c, out, _ := newCommands(t, config.VariantRelayPair)

	c.Execute("pins")

	for _, name := range []string{"D1", "D4", "D5", "D6", "D7"} {
		assert.Contains(t, out.String(), name)
	}
	assert.NotContains(t, out.String(), "*")
}

func TestExecuteShow(t *testing.T) {
	c, out, _ := newCommands(t, config.VariantRelayPair)

	c.Execute("show")

	assert.Contains(t, out.String(), "State:     STOPPED")
	assert.Contains(t, out.String(), "Remaining: 10:00 (600 s)")
}
