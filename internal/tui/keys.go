package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the seat map key bindings. The mouse does the real work;
// keys cover zoom, panning without a mouse and quitting.
type KeyMap struct {
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ResetView key.Binding
	Clear     key.Binding

	PanUp    key.Binding
	PanDown  key.Binding
	PanLeft  key.Binding
	PanRight key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out"),
	),
	ResetView: key.NewBinding(
		key.WithKeys("r", "0"),
		key.WithHelp("r", "reset view"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear selection"),
	),
	PanUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑", "pan"),
	),
	PanDown: key.NewBinding(
		key.WithKeys("j", "down"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("h", "left"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("l", "right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// shortHelp lists the bindings shown in the footer.
func (k KeyMap) shortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.PanUp, k.ResetView, k.Clear, k.Quit}
}
