package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains the HUD's own keyboard shortcuts. These are keyhud's
// controls, not the bindings it displays.
type KeyMap struct {
	Follow    key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	NextMode  key.Binding
	Options   key.Binding
	PrevMode  key.Binding
	Quit      key.Binding
	Reload    key.Binding
	Shared    key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
func NewKeyMap() KeyMap {
	return KeyMap{
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow the live key table"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "help"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next mode"),
		),
		Options: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "options"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "previous mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload keybinds"),
		),
		Shared: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle shared column"),
		),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.NextMode,
		k.Shared,
		k.Reload,
		k.Help,
		k.Quit,
	}
}
