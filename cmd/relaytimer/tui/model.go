// Package tui emulates the relay timer front panel in the terminal.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/relaytimer/relaytimer-go/pkg/board"
	"github.com/relaytimer/relaytimer-go/pkg/hal"
	"github.com/relaytimer/relaytimer-go/pkg/lcd"
)

// RefreshInterval is how often the panel re-reads the board.
const RefreshInterval = 50 * time.Millisecond

// PressHold is how long a key press holds a button down.
const PressHold = 150 * time.Millisecond

type tickMsg struct{}

// Model is the bubbletea model for the front panel.
type Model struct {
	board  *board.Board
	keys   KeyMap
	help   help.Model
	styles Styles

	snap   board.Snapshot
	status string
	err    error
}

// New creates a panel for b.
func New(b *board.Board) *Model {
	return &Model{
		board:  b,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
		snap:   b.Snapshot(),
	}
}

// Run shows the panel until the user quits or ctx is cancelled.
func Run(ctx context.Context, b *board.Board) error {
	p := tea.NewProgram(New(b), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.snap = m.board.Snapshot()
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Increment):
			m.press(board.LineIncrement)
		case key.Matches(msg, m.keys.Start):
			m.press(board.LineStart)
		case key.Matches(msg, m.keys.Decrement):
			m.press(board.LineDecrement)
		case key.Matches(msg, m.keys.Stall):
			if motor := m.board.Motor(); motor != nil {
				motor.Stall()
			}
		case key.Matches(msg, m.keys.Status):
			m.status = m.board.StatusLine()
		}
	}
	return m, nil
}

func (m *Model) press(l board.Line) {
	m.err = m.board.Tap(l, PressHold)
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Relay Timer"))
	b.WriteString("\n")

	rows := lcd.SplashLines()
	if m.snap.Booted {
		rows = lcd.Lines(m.snap.View)
	}
	screen := m.styles.LCD.Render(rows[0]) + "\n" + m.styles.LCD.Render(rows[1])
	b.WriteString(m.styles.Bezel.Render(screen))
	b.WriteString("\n")

	b.WriteString(m.outputs())

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Status.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// outputs renders one lamp per output pin.
func (m *Model) outputs() string {
	cfg := m.board.Config()
	names := []string{cfg.Pins.RelayA, cfg.Pins.RelayB, cfg.Pins.MotorEnable, cfg.Pins.MotorDisable}

	var lamps []string
	for _, name := range names {
		level, ok := m.snap.Pins[name]
		if !ok {
			continue
		}
		style := m.styles.Off
		if hal.IsActive(level) {
			style = m.styles.On
		}
		lamps = append(lamps, style.Render("● "+name))
	}
	if len(lamps) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(lamps, "  ")) + "\n"
}
