package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the repl keybindings that are not routed to the
// backend.
type keyMap struct {
	Quit        key.Binding
	ToggleASCII key.Binding
	CycleSchema key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Alternate   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ToggleASCII: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "toggle ascii"),
		),
		CycleSchema: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "cycle schema"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "prev page"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next page"),
		),
		Alternate: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "second choice"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleASCII, k.CycleSchema, k.PageDown, k.Alternate, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleASCII, k.CycleSchema},
		{k.PageUp, k.PageDown, k.Alternate},
		{k.Quit},
	}
}
