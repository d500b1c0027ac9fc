package viewer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the viewer keybindings.
type KeyMap struct {
	// Prev shows the previous part.
	Prev key.Binding

	// Next shows the next part.
	Next key.Binding

	// First jumps to part 1.
	First key.Binding

	// AutoPlay toggles cycling through parts.
	AutoPlay key.Binding

	// Quit exits the viewer.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		AutoPlay: key.NewBinding(
			key.WithKeys(" ", "a"),
			key.WithHelp("space", "auto-play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.AutoPlay, k.First, k.Quit}
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
