package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"genie-review/internal/review"
)

type navKind int

const (
	navCTA navKind = iota
	navRisk
	navChat
)

type navItem struct {
	kind     navKind
	title    string
	chatID   string
	severity review.Severity
	resolved bool
}

// navItems flattens the left panel into a selectable list for the current
// tab and filters.
func (m *MainModel) navItems() []navItem {
	var items []navItem

	if m.session.Tab == review.TabUnresolved {
		if !m.session.ReviewHasRun {
			return []navItem{{kind: navCTA, title: "Review document"}}
		}
		for _, r := range m.session.ListForView(review.TabUnresolved, m.session.Filter) {
			items = append(items, navItem{kind: navRisk, title: r.Title, severity: r.Severity})
		}
		return items
	}

	for _, r := range m.session.ListForView(review.TabHistory, m.session.Filter) {
		items = append(items, navItem{kind: navRisk, title: r.Title, severity: r.Severity, resolved: true})
	}
	for _, t := range m.session.ResolvedChats() {
		items = append(items, navItem{kind: navChat, title: t.Title, chatID: t.ID})
	}
	return items
}

func (m *MainModel) clampNavSel() {
	n := len(m.navItems())
	if n == 0 {
		m.navSel = 0
		return
	}
	if m.navSel >= n {
		m.navSel = n - 1
	}
	if m.navSel < 0 {
		m.navSel = 0
	}
}

// activateNav opens whatever the selection points at.
func (m *MainModel) activateNav() tea.Cmd {
	items := m.navItems()
	if m.navSel >= len(items) {
		return nil
	}
	item := items[m.navSel]
	switch item.kind {
	case navCTA:
		return m.openReviewThread()
	case navRisk:
		m.session.OpenRisk(item.title)
		if r, ok := review.RiskByTitle(item.title); ok && r.ScrollTarget != "" {
			m.refreshDoc()
			m.scrollToClause(r.ScrollTarget)
		}
		m.focus = focusChat
		m.refreshChat()
	case navChat:
		m.session.OpenHistoryChat(item.chatID)
		m.focus = focusChat
		m.refreshChat()
	}
	return nil
}

func (m *MainModel) renderLeftPanel(width, height int) string {
	var b strings.Builder

	toReview := fmt.Sprintf("To review (%d)", m.session.ToReviewCount())
	history := fmt.Sprintf("History (%d)", m.session.HistoryCount())
	if m.session.Tab == review.TabUnresolved {
		b.WriteString(m.theme.TabActive.Render(toReview) + "  " + m.theme.TabInactive.Render(history))
	} else {
		b.WriteString(m.theme.TabInactive.Render(toReview) + "  " + m.theme.TabActive.Render(history))
	}
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n\n")

	items := m.navItems()
	if len(items) == 0 {
		b.WriteString(m.theme.TopBarMeta.Render(m.emptyNavText()))
	}
	for i, item := range items {
		b.WriteString(m.renderNavItem(i, item, width))
		b.WriteString("\n")
	}

	if m.animRisks && m.session.Tab == review.TabUnresolved {
		b.WriteString("\n" + m.theme.Notice.Render("● new risk flags"))
	}
	if m.animHistory && m.session.Tab == review.TabHistory {
		b.WriteString("\n" + m.theme.Notice.Render("● updated"))
	}
	return b.String()
}

func (m *MainModel) renderFilterLine() string {
	if m.session.Tab == review.TabUnresolved {
		if !m.session.ReviewHasRun {
			return m.theme.TopBarMeta.Render("no review yet")
		}
		return m.theme.TopBarMeta.Render("severity: " + severityFilterLabel(m.session.Filter) + " (ctrl+f)")
	}
	return m.theme.TopBarMeta.Render("show: " + historyFilterLabel(m.session.HistFilter) + " (ctrl+g)")
}

func severityFilterLabel(f review.SeverityFilter) string {
	switch f {
	case review.FilterHigh:
		return "high"
	case review.FilterMedium:
		return "medium"
	default:
		return "all"
	}
}

func historyFilterLabel(f review.HistoryFilter) string {
	switch f {
	case review.HistoryRisks:
		return "risks"
	case review.HistoryChats:
		return "chats"
	default:
		return "all"
	}
}

func (m *MainModel) emptyNavText() string {
	if m.session.Tab == review.TabUnresolved {
		return "Nothing left to review."
	}
	return "Nothing here yet."
}

func (m *MainModel) renderNavItem(i int, item navItem, width int) string {
	marker := "  "
	style := m.theme.ListItem
	if m.focus == focusNav && i == m.navSel {
		marker = "> "
		style = m.theme.ListSelected
	}

	var badge string
	switch {
	case item.kind == navCTA:
		badge = m.theme.TabActive.Render("▶ ")
	case item.kind == navChat:
		badge = m.theme.TopBarMeta.Render("💬 ")
	case item.resolved:
		badge = m.theme.Resolved.Render("✓ ")
	case item.severity == review.SeverityHigh:
		badge = m.theme.SevHigh.Render("H ")
	default:
		badge = m.theme.SevMedium.Render("M ")
	}

	title := truncateForWidth(item.title, width-6)
	return marker + badge + style.Render(title)
}

func truncateForWidth(s string, w int) string {
	if w < 4 {
		return s
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w-1]) + "…"
}

// cycleSeverityFilter advances high -> medium -> all -> high.
func (m *MainModel) cycleSeverityFilter() {
	switch m.session.Filter {
	case review.FilterHigh:
		m.session.Filter = review.FilterMedium
	case review.FilterMedium:
		m.session.Filter = review.FilterAll
	default:
		m.session.Filter = review.FilterHigh
	}
	m.clampNavSel()
}

func (m *MainModel) cycleHistoryFilter() {
	switch m.session.HistFilter {
	case review.HistoryAll:
		m.session.HistFilter = review.HistoryRisks
	case review.HistoryRisks:
		m.session.HistFilter = review.HistoryChats
	default:
		m.session.HistFilter = review.HistoryAll
	}
	m.clampNavSel()
}

func (m *MainModel) switchTab() {
	if m.session.Tab == review.TabUnresolved {
		m.session.Tab = review.TabHistory
	} else {
		m.session.Tab = review.TabUnresolved
	}
	m.navSel = 0
}
