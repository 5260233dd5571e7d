package tui

import "github.com/charmbracelet/lipgloss"

// Colors used in the relay timer TUI.
var (
	ColorBacklight = lipgloss.Color("#9ACD32") // LCD green
	ColorInk       = lipgloss.Color("#1B2A0E")
	ColorBezel     = lipgloss.Color("#4B5563")
	ColorOn        = lipgloss.Color("#EF4444")
	ColorOff       = lipgloss.Color("#6B7280")
	ColorMuted     = lipgloss.Color("#9CA3AF")
)

// Styles holds the styles for the relay timer TUI.
type Styles struct {
	Title  lipgloss.Style
	LCD    lipgloss.Style
	Bezel  lipgloss.Style
	On     lipgloss.Style
	Off    lipgloss.Style
	Status lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		LCD: lipgloss.NewStyle().
			Foreground(ColorInk).
			Background(ColorBacklight),
		Bezel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBezel).
			Padding(0, 1),
		On: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOn),
		Off: lipgloss.NewStyle().
			Foreground(ColorOff),
		Status: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
	}
}
