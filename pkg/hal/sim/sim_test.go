package sim

import (
	"testing"
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/hal"
	"github.com/stretchr/testify/assert"
)

func TestPinPressRelease(t *testing.T) {
	p := NewPin("inc", hal.Inactive)

	p.Press()
	assert.Equal(t, hal.Low, p.Read())
	p.Release()
	assert.Equal(t, hal.High, p.Read())
	assert.Equal(t, 2, p.Writes())
}

func TestPinOnChangeOnlyOnChange(t *testing.T) {
	p := NewPin("relay_a", hal.High)
	var changes int
	p.OnChange(func(name string, old, new hal.Level) {
		changes++
		assert.Equal(t, "relay_a", name)
	})

	p.Write(hal.High)
	p.Write(hal.Low)
	p.Write(hal.Low)
	p.Write(hal.High)

	assert.Equal(t, 2, changes)
}

func TestPinTap(t *testing.T) {
	p := NewPin("start", hal.Inactive)

	p.Tap(10 * time.Millisecond)
	assert.Equal(t, hal.Low, p.Read())

	assert.Eventually(t, func() bool { return p.Read() == hal.High }, time.Second, 5*time.Millisecond)
}

func TestBank(t *testing.T) {
	b := NewBank()
	inc := b.Pin("inc")
	b.Pin("start")

	assert.Same(t, inc, b.Pin("inc"))
	assert.Equal(t, []string{"inc", "start"}, b.Names())

	_, ok := b.Lookup("dec")
	assert.False(t, ok)

	inc.Press()
	snap := b.Snapshot()
	assert.Equal(t, hal.Low, snap["inc"])
	assert.Equal(t, hal.High, snap["start"])
}

func TestMotor(t *testing.T) {
	b := NewBank()
	en, dis, status := b.Pin("enable"), b.Pin("disable"), b.Pin("status")
	m := NewMotor(en, dis, status)

	assert.False(t, m.Running())
	assert.Equal(t, hal.High, status.Read())

	en.Write(hal.Active)
	en.Write(hal.Inactive)
	assert.True(t, m.Running())
	assert.Equal(t, hal.Low, status.Read())

	m.Stall()
	assert.False(t, m.Running())
	assert.Equal(t, hal.High, status.Read())

	en.Write(hal.Active)
	dis.Write(hal.Active)
	assert.False(t, m.Running())
}
