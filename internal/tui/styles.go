package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	// Layout styles
	Container lipgloss.Style
	Divider   lipgloss.Style

	// Page styles
	Brand    lipgloss.Style
	Nav      lipgloss.Style
	Headline lipgloss.Style
	Tagline  lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style

	// Carousel styles
	Item       lipgloss.Style
	ItemActive lipgloss.Style
	Hidden     lipgloss.Style

	// Rotation state colors
	StateRunning  lipgloss.Style
	StatePaused   lipgloss.Style
	StateIdle     lipgloss.Style
	StateDisabled lipgloss.Style

	// Event log
	Event lipgloss.Style
	Error lipgloss.Style

	// Focus indicators
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
}{
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")),

	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Nav: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Headline: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")),

	Tagline: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("250")),

	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Item: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	ItemActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	Hidden: lipgloss.NewStyle().
		Foreground(lipgloss.Color("236")),

	StateRunning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	StatePaused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")),

	StateIdle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	StateDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),

	Event: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),

	FocusedBorder: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")), // Bright blue while hovered

	UnfocusedBorder: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")),

	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 2),

	ModalTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")),
}
