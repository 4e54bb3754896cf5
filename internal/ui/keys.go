package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Scrolling; each press counts as a drag that ends when input goes quiet.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// Refresh controls
	Refresh     key.Binding
	LoadMore    key.Binding
	ResetNoMore key.Binding
	ToggleAuto  key.Binding

	// General
	CycleTheme key.Binding
	ToggleHelp key.Binding
	HideHelp   key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up/pull"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m", "enter"),
			key.WithHelp("m", "load more"),
		),
		ResetNoMore: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset no more data"),
		),
		ToggleAuto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle auto load"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "all keys"),
		),
		HideHelp: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide help bar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.LoadMore, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Refresh, k.LoadMore, k.ResetNoMore, k.ToggleAuto},
		{k.CycleTheme, k.ToggleHelp, k.HideHelp, k.Quit},
	}
}
