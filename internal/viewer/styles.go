package viewer

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles used by the viewer.
type Styles struct {
	Title   lipgloss.Style
	Counter lipgloss.Style
	Playing lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the default viewer styles.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")),

		Counter: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4")),

		Playing: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
	}
}
