// Package lcd renders the controller view as the 16x2 character display
// shows it, and provides writer-backed Display and StatusSink adapters.
package lcd

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/relaytimer/relaytimer-go/pkg/hal"
)

// Display geometry.
const (
	Columns = 16
	Rows    = 2
)

// Splash is the boot message.
const Splash = "Bienvenido!"

// Second-line text per label, as the firmware positions it.
var labelLines = map[string]string{
	"ENCENDIDO": "    ENCENDIDO    ",
	"PAUSADO":   "    PAUSADO     ",
	"DETENIDO":  "   DETENIDO     ",
}

// Text returns the raw text written to each row.
func Text(v hal.View) [Rows]string {
	line1, ok := labelLines[v.Label]
	if !ok {
		line1 = v.Label
	}
	return [Rows]string{"Tiempo: " + v.Clock(), line1}
}

// Lines returns the visible rows, padded and clipped to Columns.
func Lines(v hal.View) [Rows]string {
	text := Text(v)
	var out [Rows]string
	for i, s := range text {
		out[i] = fit(s)
	}
	return out
}

// SplashLines returns the visible rows of the boot screen.
func SplashLines() [Rows]string {
	return [Rows]string{fit(Splash), fit("")}
}

// Frame returns the visible rows joined by a newline.
func Frame(v hal.View) string {
	l := Lines(v)
	return l[0] + "\n" + l[1]
}

func fit(s string) string {
	if len(s) > Columns {
		return s[:Columns]
	}
	return s + strings.Repeat(" ", Columns-len(s))
}

// Writer draws frames to an io.Writer inside a box border.
// It is safe for concurrent use.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a writer-backed display.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Render draws v.
func (d *Writer) Render(v hal.View) error {
	return d.draw(Lines(v))
}

// ShowSplash draws the boot screen.
func (d *Writer) ShowSplash() error {
	return d.draw(SplashLines())
}

func (d *Writer) draw(lines [Rows]string) error {
	border := "+" + strings.Repeat("-", Columns) + "+"

	var b strings.Builder
	b.WriteString(border + "\n")
	for _, l := range lines {
		b.WriteString("|" + l + "|\n")
	}
	b.WriteString(border + "\n")

	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := io.WriteString(d.w, b.String())
	return err
}

// StatusWriter writes status lines, one per call.
type StatusWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStatusWriter creates a writer-backed status sink.
func NewStatusWriter(w io.Writer) *StatusWriter {
	return &StatusWriter{w: w}
}

// WriteStatus writes line followed by CRLF, as the serial console expects.
func (s *StatusWriter) WriteStatus(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "%s\r\n", line)
	return err
}

// Compile-time interface satisfaction checks.
var (
	_ hal.Display    = (*Writer)(nil)
	_ hal.StatusSink = (*StatusWriter)(nil)
)
