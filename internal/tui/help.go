package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title    string
	bindings []key.Binding
}

func (m *MainModel) helpSections() []helpSection {
	k := m.keys
	return []helpSection{
		{"General", []key.Binding{k.Help, k.Quit, k.FocusNext, k.FocusPrev, k.ToggleNav}},
		{"Chats", []key.Binding{k.Send, k.NewChat, k.Escape, k.RunReview}},
		{"Risk list", []key.Binding{k.SwitchTab, k.Filter, k.HistFilter, k.MarkAll, k.Up, k.Down}},
		{"Open risk", []key.Binding{k.NextRisk, k.PrevRisk, k.MarkDone, k.Accept, k.Preview, k.Copy}},
	}
}

func (m *MainModel) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.PaneTitleF.Render("Keyboard shortcuts"))
	b.WriteString("\n")
	for _, sec := range m.helpSections() {
		b.WriteString("\n")
		b.WriteString(m.theme.PaneTitle.Render(sec.title))
		b.WriteString("\n")
		for _, kb := range sec.bindings {
			h := kb.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.theme.ListSelected.Render(padRight(h.Key, 10)),
				m.theme.Footer.Render(h.Desc)))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.theme.TopBarMeta.Render("press f1 or esc to close"))

	box := m.theme.PaneFocused.Width(min(m.width-4, 52))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box.Render(b.String()))
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
