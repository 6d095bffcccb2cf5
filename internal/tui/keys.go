package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines key bindings for the solver screen
type keyMap struct {
	Submit     key.Binding
	ToggleSort key.Binding
	ToggleMode key.Binding
	Move       key.Binding
	Clear      key.Binding
	Quit       key.Binding

	grid bool
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	if k.grid {
		return []key.Binding{k.Submit, k.Move, k.Clear, k.ToggleSort, k.ToggleMode, k.Quit}
	}
	return []key.Binding{k.Submit, k.ToggleSort, k.ToggleMode, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.ToggleSort, k.ToggleMode},
		{k.Move, k.Clear, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "solve"),
		),
		ToggleSort: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "sort by length"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "text/grid input"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↑↓→", "move"),
		),
		Clear: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("bksp", "clear cell"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
