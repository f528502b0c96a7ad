package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"genie-review/internal/review"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const welcomeText = "This chat is private to you and Genie"

// renderChat builds the middle pane: the active thread, the selected risk's
// thread, or the welcome screen when nothing is in the foreground.
func (m *MainModel) renderChat(width int) string {
	if risk, ok := m.session.SelectedRisk(); ok {
		return m.renderThread(m.session.RiskThread(risk.Title), width)
	}
	active := m.session.ActiveThread()
	if active == nil || len(active.Messages) == 0 {
		return m.renderWelcome(width)
	}
	return m.renderThread(active, width)
}

func (m *MainModel) renderWelcome(width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	var b strings.Builder
	b.WriteString(m.theme.CardTitle.Render("Hi, how can Genie help today?"))
	b.WriteString("\n")
	b.WriteString(m.theme.TopBarMeta.Render(welcomeText))
	b.WriteString("\n\n")
	b.WriteString(m.theme.PaneTitle.Render("Suggested"))
	b.WriteString("\n")
	for _, s := range []struct{ action, hint string }{
		{"Run AI Review", "ctrl+r"},
		{"Summarise document", "type it below"},
		{"Extract commercial terms", "type it below"},
	} {
		b.WriteString("  " + m.theme.ListItem.Render(s.action) + "  " + m.theme.TopBarMeta.Render(s.hint) + "\n")
	}
	return wrap.Render(b.String())
}

func (m *MainModel) renderThread(t *review.ChatThread, width int) string {
	if t == nil {
		return ""
	}
	wrap := lipgloss.NewStyle().Width(width)
	var parts []string
	for _, msg := range t.Messages {
		parts = append(parts, wrap.Render(m.renderMessage(t, msg)))
	}
	return strings.Join(parts, "\n\n")
}

func (m *MainModel) renderMessage(t *review.ChatThread, msg review.Message) string {
	var b strings.Builder
	switch msg.Role {
	case review.RoleUser:
		b.WriteString(m.theme.RoleYou.Render("You"))
	default:
		b.WriteString(m.theme.RoleAI.Render("Genie"))
	}
	b.WriteString("\n")

	switch msg.Kind {
	case review.KindConfigForm:
		b.WriteString(msg.Content)
		if m.form != nil && t == m.session.ActiveThread() && t.Stage == review.StageAwaitingDocInfo {
			b.WriteString("\n\n")
			b.WriteString(m.form.view(m.theme, m.focus == focusChat))
		}

	case review.KindApplyModeChoice:
		b.WriteString(msg.Content)
		b.WriteString("\n\n")
		b.WriteString(m.renderApplyChoices(t))

	case review.KindRiskCard:
		b.WriteString(m.renderRiskCard(msg.RiskTitle))

	default:
		if msg.Loading {
			b.WriteString(m.theme.Spinner.Render(spinnerFrames[m.spinFrame%len(spinnerFrames)]) + " ")
		}
		b.WriteString(msg.Content)
	}
	return b.String()
}

func (m *MainModel) renderApplyChoices(t *review.ChatThread) string {
	live := t == m.session.ActiveThread() && t.Stage == review.StageAwaitingApplyMode
	var b strings.Builder
	for i, mode := range review.ApplyModeChoices() {
		label := review.ApplyModeLabel(mode)
		switch {
		case live && i == m.choiceSel:
			b.WriteString("> " + m.theme.ListSelected.Render(label))
		case !live && m.session.Mode == mode:
			b.WriteString("* " + m.theme.ListItem.Render(label))
		default:
			b.WriteString("  " + m.theme.FieldName.Render(label))
		}
		if i < len(review.ApplyModeChoices())-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *MainModel) renderRiskCard(title string) string {
	item, ok := review.RiskByTitle(title)
	if !ok {
		return title
	}
	content := review.ContentForRisk(title)

	var b strings.Builder
	sev := m.theme.SevMedium
	if item.Severity == review.SeverityHigh {
		sev = m.theme.SevHigh
	}
	b.WriteString(sev.Render(strings.ToUpper(string(item.Severity))) + " " + m.theme.CardTitle.Render(item.Title))
	b.WriteString("\n\n")
	b.WriteString(content.Description)
	if content.Original != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.CardLabel.Render("Original clause"))
		b.WriteString("\n")
		b.WriteString(m.theme.CardQuote.Render(content.Original))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.CardLabel.Render("Suggested revision"))
	b.WriteString("\n")
	b.WriteString(m.theme.CardQuote.Render(content.Suggested))
	b.WriteString("\n\n")
	b.WriteString(m.theme.CardLabel.Render("Why it matters"))
	b.WriteString("\n")
	b.WriteString(content.Rationale)

	b.WriteString("\n\n")
	hints := []string{}
	if !m.session.IsAccepted(title) {
		hints = append(hints, "ctrl+e accept edit")
		if m.session.Mode == review.ApplyManual && !m.session.IsPreviewed(title) {
			hints = append(hints, "ctrl+o preview")
		}
	}
	hints = append(hints, "ctrl+y copy", "ctrl+d mark reviewed", "ctrl+j/ctrl+k next/prev")
	b.WriteString(m.theme.TopBarMeta.Render(strings.Join(hints, " · ")))
	return b.String()
}

func (m *MainModel) chatTitle() string {
	if risk, ok := m.session.SelectedRisk(); ok {
		status := ""
		if m.session.IsResolved(risk.Title) {
			status = " (reviewed)"
		}
		return risk.Title + status
	}
	if t := m.session.ActiveThread(); t != nil {
		return t.Title
	}
	return "Chat"
}

func (m *MainModel) refreshChat() {
	m.chatVP.SetContent(m.renderChat(m.chatVP.Width))
	m.chatVP.GotoBottom()
}
