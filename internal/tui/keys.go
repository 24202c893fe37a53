package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit  key.Binding
	Delete  key.Binding
	Clear   key.Binding
	Shuffle key.Binding
	Rules   key.Binding
	Theme   key.Binding
	Share   key.Binding
	Scroll  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Delete:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "delete")),
		Clear:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Shuffle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "shuffle")),
		Rules:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "rules")),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Share:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "share")),
		Scroll:  key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll words")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Shuffle, k.Rules, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Delete, k.Clear, k.Shuffle},
		{k.Rules, k.Theme, k.Share, k.Scroll, k.Quit},
	}
}
