package lcd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/relaytimer/relaytimer-go/pkg/hal"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		view  hal.View
		line0 string
		line1 string
	}{
		{hal.View{Minutes: 10, Seconds: 0, Label: "DETENIDO"}, "Tiempo: 10:00", "   DETENIDO     "},
		{hal.View{Minutes: 9, Seconds: 5, Label: "ENCENDIDO"}, "Tiempo: 09:05", "    ENCENDIDO    "},
		{hal.View{Minutes: 90, Seconds: 0, Label: "PAUSADO"}, "Tiempo: 90:00", "    PAUSADO     "},
	}

	for _, tt := range tests {
		t.Run(tt.view.Label, func(t *testing.T) {
			got := Text(tt.view)
			assert.Equal(t, tt.line0, got[0])
			assert.Equal(t, tt.line1, got[1])
		})
	}
}

func TestLinesFitDisplay(t *testing.T) {
	for _, label := range []string{"DETENIDO", "ENCENDIDO", "PAUSADO", "OTRO"} {
		lines := Lines(hal.View{Minutes: 1, Seconds: 2, Label: label})
		for i, l := range lines {
			if len(l) != Columns {
				t.Errorf("%s row %d = %q, len %d", label, i, l, len(l))
			}
		}
	}

	// The running label overflows by one column and is clipped.
	lines := Lines(hal.View{Label: "ENCENDIDO"})
	assert.Equal(t, "    ENCENDIDO   ", lines[1])
}

func TestFrame(t *testing.T) {
	got := Frame(hal.View{Minutes: 10, Label: "DETENIDO"})
	assert.Equal(t, "Tiempo: 10:00   \n   DETENIDO     ", got)
}

func TestWriterRender(t *testing.T) {
	var buf bytes.Buffer
	d := NewWriter(&buf)

	err := d.Render(hal.View{Minutes: 5, Seconds: 30, Label: "PAUSADO"})

	assert.NoError(t, err)
	want := strings.Join([]string{
		"+----------------+",
		"|Tiempo: 05:30   |",
		"|    PAUSADO     |",
		"+----------------+",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriterSplash(t *testing.T) {
	var buf bytes.Buffer
	d := NewWriter(&buf)

	assert.NoError(t, d.ShowSplash())
	assert.Contains(t, buf.String(), "|Bienvenido!     |")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("bus error") }

func TestWriterPropagatesErrors(t *testing.T) {
	d := NewWriter(failingWriter{})
	assert.Error(t, d.Render(hal.View{}))

	s := NewStatusWriter(failingWriter{})
	assert.Error(t, s.WriteStatus("x"))
}

func TestStatusWriter(t *testing.T) {
	var buf bytes.Buffer
	s := NewStatusWriter(&buf)

	assert.NoError(t, s.WriteStatus("Estado: DETENIDO | Tiempo: 10:00"))
	assert.Equal(t, "Estado: DETENIDO | Tiempo: 10:00\r\n", buf.String())
}
