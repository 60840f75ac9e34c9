// Package tui holds the interactive prompts and terminal styles used by
// the jeff CLI.
package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains lipgloss styles for CLI output
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Rule    lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return StylesFor(lipgloss.DefaultRenderer())
}

// NewStyles returns styles whose color profile matches w. Writers that
// are not terminals get plain text.
func NewStyles(w io.Writer) Styles {
	return StylesFor(lipgloss.NewRenderer(w))
}

// StylesFor builds the palette on a specific renderer
func StylesFor(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")), // Purple
		Success: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Error: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Warning: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")), // Yellow
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Accent: r.NewStyle().
			Foreground(lipgloss.Color("86")), // Cyan
		Rule: r.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// Check renders a success line
func (s Styles) Check(msg string) string {
	return s.Success.Render("✓") + " " + msg
}

// Warn renders a warning line
func (s Styles) Warn(msg string) string {
	return s.Warning.Render("!") + " " + msg
}

// Fail renders a failure line
func (s Styles) Fail(msg string) string {
	return s.Error.Render("✗") + " " + msg
}
