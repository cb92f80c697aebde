package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the comparison viewer. Every movement
// binding is applied to both panes at once so aligned text stays level.
type KeyMap struct {
	Up           key.Binding // scroll both panes one line up
	Down         key.Binding // scroll both panes one line down
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GotoTop      key.Binding // jump both panes to the first line
	GotoBottom   key.Binding // jump both panes to the last line
	Quit         key.Binding // leave the viewer and return to the shell
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings listed in the status bar, after the
// matched and unmatched counts. Half-page movement is left out to keep the
// bar on one line at common widths.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.GotoTop, k.GotoBottom, k.Quit}
}
