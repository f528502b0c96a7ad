package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	Send       key.Binding
	Escape     key.Binding
	NewChat    key.Binding
	RunReview  key.Binding
	ToggleNav  key.Binding
	SwitchTab  key.Binding
	Filter     key.Binding
	HistFilter key.Binding
	MarkAll    key.Binding
	NextRisk   key.Binding
	PrevRisk   key.Binding
	MarkDone   key.Binding
	Accept     key.Binding
	Preview    key.Binding
	Copy       key.Binding
	Up         key.Binding
	Down       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		FocusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		FocusPrev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous panel")),
		Send:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send / select")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close view")),
		NewChat:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new chat")),
		RunReview:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "run AI review")),
		ToggleNav:  key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "toggle sidebar")),
		SwitchTab:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "switch tab")),
		Filter:     key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "severity filter")),
		HistFilter: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "history filter")),
		MarkAll:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "mark all as reviewed")),
		NextRisk:   key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "next risk")),
		PrevRisk:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "previous risk")),
		MarkDone:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "toggle reviewed")),
		Accept:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "accept suggested edit")),
		Preview:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "preview edit")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy suggestion")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("up", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "down")),
	}
}
