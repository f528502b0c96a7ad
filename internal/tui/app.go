package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"genie-review/internal/review"
)

type focusArea int

const (
	focusNav focusArea = iota
	focusChat
	focusDoc
)

const (
	navWidth          = 30
	riskAnimDuration  = 2 * time.Second
	histAnimDuration  = 3500 * time.Millisecond
	spinInterval      = 150 * time.Millisecond
	minTerminalWidth  = 60
	minTerminalHeight = 16
)

type (
	processingDoneMsg struct{}
	riskAnimOffMsg    struct{}
	histAnimOffMsg    struct{}
	highlightOffMsg   struct{ title string }
	noticeOffMsg      struct{}
	spinTickMsg       struct{}
)

// MainModel is the top-level Bubble Tea model: three panels (navigation,
// chat, document), a shared input box, and the timers driving the scripted
// review.
type MainModel struct {
	session *review.Session
	cfg     review.Config
	theme   Theme
	keys    keyMap
	log     *review.Logger
	version string

	width  int
	height int
	ready  bool

	focus        focusArea
	navCollapsed bool
	navSel       int

	input  textarea.Model
	chatVP viewport.Model
	docVP  viewport.Model

	form      *configForm
	choiceSel int

	showHelp       bool
	spinFrame      int
	animRisks      bool
	animHistory    bool
	highlightTitle string
	notice         string

	clauseLines map[string]int
}

func New(cfg review.Config, version string, log *review.Logger) *MainModel {
	if log == nil {
		log = review.NopLogger()
	}

	ta := textarea.New()
	ta.Placeholder = "Ask Genie about this document…"
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.CharLimit = 0
	ta.Focus()

	return &MainModel{
		session:     review.NewSession(log),
		cfg:         cfg,
		theme:       NewTheme(cfg.Theme),
		keys:        newKeyMap(),
		log:         log,
		version:     version,
		focus:       focusChat,
		input:       ta,
		clauseLines: map[string]int{},
	}
}

// Session exposes the underlying review state, used by tests.
func (m *MainModel) Session() *review.Session { return m.session }

func (m *MainModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		m.refreshChat()
		m.refreshDoc()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case processingDoneMsg:
		return m, m.finishProcessing()

	case spinTickMsg:
		if !m.session.Processing {
			return m, nil
		}
		m.spinFrame++
		m.refreshChat()
		return m, m.spinTick()

	case riskAnimOffMsg:
		m.animRisks = false
		return m, nil

	case histAnimOffMsg:
		m.animHistory = false
		return m, nil

	case highlightOffMsg:
		if m.highlightTitle == msg.title {
			m.highlightTitle = ""
			m.refreshDoc()
		}
		return m, nil

	case noticeOffMsg:
		m.notice = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case m.showHelp:
		if key.Matches(msg, k.Help) || key.Matches(msg, k.Escape) {
			m.showHelp = false
		}
		return m, nil

	case key.Matches(msg, k.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, k.ToggleNav):
		m.navCollapsed = !m.navCollapsed
		if m.navCollapsed && m.focus == focusNav {
			m.focus = focusChat
		}
		m.applyLayout()
		m.refreshChat()
		m.refreshDoc()
		return m, nil

	case key.Matches(msg, k.NewChat):
		m.session.NewChat()
		m.syncScriptUI()
		m.focus = focusChat
		m.refreshChat()
		m.clampNavSel()
		return m, nil

	case key.Matches(msg, k.RunReview):
		return m, m.openReviewThread()

	case key.Matches(msg, k.SwitchTab):
		m.switchTab()
		return m, nil

	case key.Matches(msg, k.Filter):
		if m.session.Tab == review.TabUnresolved {
			m.cycleSeverityFilter()
		}
		return m, nil

	case key.Matches(msg, k.HistFilter):
		if m.session.Tab == review.TabHistory {
			m.cycleHistoryFilter()
		}
		return m, nil

	case key.Matches(msg, k.MarkAll):
		m.session.MarkAllReviewed()
		m.clampNavSel()
		m.refreshChat()
		return m, nil

	case key.Matches(msg, k.NextRisk):
		m.stepRisk(func() { m.session.NextRisk() })
		return m, nil

	case key.Matches(msg, k.PrevRisk):
		m.stepRisk(func() { m.session.PreviousRisk() })
		return m, nil

	case key.Matches(msg, k.MarkDone):
		m.toggleReviewed()
		return m, nil

	case key.Matches(msg, k.Accept):
		return m, m.acceptSelected()

	case key.Matches(msg, k.Preview):
		m.previewSelected()
		return m, nil

	case key.Matches(msg, k.Copy):
		return m, m.copySuggestion()

	case key.Matches(msg, k.Escape):
		m.closeForeground()
		return m, nil

	case key.Matches(msg, k.FocusNext):
		m.cycleFocus(1)
		m.refreshChat()
		return m, nil

	case key.Matches(msg, k.FocusPrev):
		m.cycleFocus(-1)
		m.refreshChat()
		return m, nil
	}

	switch m.focus {
	case focusNav:
		return m.handleNavKey(msg)
	case focusDoc:
		var cmd tea.Cmd
		m.docVP, cmd = m.docVP.Update(msg)
		return m, cmd
	default:
		return m.handleChatKey(msg)
	}
}

func (m *MainModel) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.navSel > 0 {
			m.navSel--
		}
	case key.Matches(msg, m.keys.Down):
		if m.navSel < len(m.navItems())-1 {
			m.navSel++
		}
	case key.Matches(msg, m.keys.Send):
		return m, m.activateNav()
	}
	return m, nil
}

func (m *MainModel) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.session.ActiveThread()

	if m.form != nil && active != nil && active.Stage == review.StageAwaitingDocInfo {
		if m.form.handleKey(msg) {
			details := m.form.details()
			m.session.SubmitDocDetails(details)
			m.form = nil
			m.syncScriptUI()
		}
		m.refreshChat()
		return m, nil
	}

	if active != nil && active.Stage == review.StageAwaitingApplyMode {
		return m.handleApplyChoiceKey(msg)
	}

	if key.Matches(msg, m.keys.Send) {
		return m, m.sendCurrent()
	}
	if m.session.Processing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *MainModel) handleApplyChoiceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := review.ApplyModeChoices()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.choiceSel = wrapIndex(m.choiceSel-1, len(choices))
		m.refreshChat()
	case key.Matches(msg, m.keys.Down):
		m.choiceSel = wrapIndex(m.choiceSel+1, len(choices))
		m.refreshChat()
	case key.Matches(msg, m.keys.Send):
		started := m.session.ChooseApplyMode(choices[m.choiceSel])
		m.refreshChat()
		if started {
			return m, tea.Batch(m.processingTimer(), m.spinTick())
		}
	}
	return m, nil
}

func (m *MainModel) sendCurrent() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}
	// Sending always surfaces the navigation panel so the archived chat or
	// the review thread is visible in its list.
	if m.navCollapsed {
		m.navCollapsed = false
		m.applyLayout()
		m.refreshDoc()
	}
	if _, ok := m.session.SelectedRisk(); ok {
		m.session.SendToRisk(text)
		m.input.Reset()
		m.refreshChat()
		return nil
	}

	started := m.session.Send(text)
	m.input.Reset()
	m.syncScriptUI()
	m.clampNavSel()
	m.refreshChat()
	if started {
		return tea.Batch(m.processingTimer(), m.spinTick())
	}
	return nil
}

// syncScriptUI keeps the inline form and apply-mode selection aligned with
// the active thread's stage.
func (m *MainModel) syncScriptUI() {
	active := m.session.ActiveThread()
	if active != nil && active.Stage == review.StageAwaitingDocInfo {
		if m.form == nil {
			m.form = newConfigForm()
		}
	} else {
		m.form = nil
	}
	if active == nil || active.Stage != review.StageAwaitingApplyMode {
		m.choiceSel = 0
	}
}

func (m *MainModel) openReviewThread() tea.Cmd {
	m.session.RunReview()
	m.syncScriptUI()
	m.focus = focusChat
	m.clampNavSel()
	m.refreshChat()
	return nil
}

func (m *MainModel) processingTimer() tea.Cmd {
	return tea.Tick(m.cfg.ProcessingDelay(), func(time.Time) tea.Msg {
		return processingDoneMsg{}
	})
}

func (m *MainModel) spinTick() tea.Cmd {
	return tea.Tick(spinInterval, func(time.Time) tea.Msg {
		return spinTickMsg{}
	})
}

func (m *MainModel) finishProcessing() tea.Cmd {
	m.session.CompleteProcessing()
	m.navSel = 0
	m.syncScriptUI()
	m.refreshChat()
	m.refreshDoc()
	if m.cfg.ReduceMotion {
		return nil
	}
	m.animRisks = true
	m.animHistory = true
	return tea.Batch(
		tea.Tick(riskAnimDuration, func(time.Time) tea.Msg { return riskAnimOffMsg{} }),
		tea.Tick(histAnimDuration, func(time.Time) tea.Msg { return histAnimOffMsg{} }),
	)
}

func (m *MainModel) stepRisk(step func()) {
	if _, ok := m.session.SelectedRisk(); !ok {
		return
	}
	step()
	if risk, ok := m.session.SelectedRisk(); ok && risk.ScrollTarget != "" {
		m.scrollToClause(risk.ScrollTarget)
	}
	m.refreshChat()
}

func (m *MainModel) toggleReviewed() {
	risk, ok := m.session.SelectedRisk()
	if !ok {
		return
	}
	if m.session.IsResolved(risk.Title) {
		m.session.Unresolve(risk.Title)
	} else {
		m.session.MarkReviewed(risk.Title)
		m.focus = focusNav
	}
	m.navSel = 0
	m.clampNavSel()
	m.refreshChat()
}

func (m *MainModel) acceptSelected() tea.Cmd {
	risk, ok := m.session.SelectedRisk()
	if !ok || m.session.IsAccepted(risk.Title) {
		return nil
	}
	m.session.Accept(risk.Title)
	if !m.cfg.ReduceMotion {
		m.highlightTitle = risk.Title
	}
	m.refreshChat()
	m.refreshDoc()
	if risk.ScrollTarget != "" {
		m.scrollToClause(risk.ScrollTarget)
	}
	if m.cfg.ReduceMotion {
		return nil
	}
	title := risk.Title
	return tea.Tick(m.cfg.HighlightDuration(), func(time.Time) tea.Msg {
		return highlightOffMsg{title: title}
	})
}

func (m *MainModel) previewSelected() {
	risk, ok := m.session.SelectedRisk()
	if !ok || m.session.Mode != review.ApplyManual {
		return
	}
	m.session.Preview(risk.Title)
	m.refreshChat()
	m.refreshDoc()
	if risk.ScrollTarget != "" {
		m.scrollToClause(risk.ScrollTarget)
	}
}

func (m *MainModel) copySuggestion() tea.Cmd {
	risk, ok := m.session.SelectedRisk()
	if !ok {
		return nil
	}
	content := review.ContentForRisk(risk.Title)
	if err := writeClipboard(content.Suggested); err != nil {
		m.notice = "Clipboard unavailable"
		m.log.Error("clipboard write failed", map[string]interface{}{"error": err.Error()})
	} else {
		m.notice = "Copied to clipboard"
	}
	return tea.Tick(m.cfg.CopiedNotice(), func(time.Time) tea.Msg {
		return noticeOffMsg{}
	})
}

func (m *MainModel) closeForeground() {
	if _, ok := m.session.SelectedRisk(); ok {
		m.session.CloseRisk()
		m.focus = focusNav
		m.clampNavSel()
		m.refreshChat()
		return
	}
	if m.session.ActiveThread() != nil {
		m.session.CloseChat()
		m.syncScriptUI()
		m.focus = focusNav
		m.clampNavSel()
		m.refreshChat()
	}
}

func (m *MainModel) cycleFocus(dir int) {
	order := []focusArea{focusNav, focusChat, focusDoc}
	if m.navCollapsed {
		order = []focusArea{focusChat, focusDoc}
	}
	cur := 0
	for i, f := range order {
		if f == m.focus {
			cur = i
			break
		}
	}
	m.focus = order[wrapIndex(cur+dir, len(order))]
	if m.focus == focusChat {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *MainModel) applyLayout() {
	w := m.width
	if w < minTerminalWidth {
		w = minTerminalWidth
	}
	h := m.height
	if h < minTerminalHeight {
		h = minTerminalHeight
	}

	navW := navWidth
	if m.navCollapsed {
		navW = 0
	}
	contentW := w - navW
	chatW := contentW * 55 / 100
	docW := contentW - chatW

	// top bar + footer + bordered input row
	panelH := h - 1 - 1 - 3
	// pane borders plus the title line inside
	innerH := panelH - 3

	m.chatVP = viewport.New(chatW-4, innerH)
	m.docVP = viewport.New(docW-4, innerH)
	m.input.SetWidth(w - 6)
}

func (m *MainModel) View() string {
	if !m.ready {
		return "starting genie…"
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var panes []string
	if !m.navCollapsed {
		panes = append(panes, m.renderPane("Genie", m.renderLeftPanel(navWidth-4, m.chatVP.Height), navWidth, m.focus == focusNav))
	}
	panes = append(panes,
		m.renderPane(m.chatTitle(), m.chatVP.View(), m.chatVP.Width+4, m.focus == focusChat),
		m.renderPane(review.DocumentTitle, m.docVP.View(), m.docVP.Width+4, m.focus == focusDoc),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		lipgloss.JoinHorizontal(lipgloss.Top, panes...),
		m.renderInput(),
		m.renderFooter(),
	)
}

func (m *MainModel) renderPane(title, body string, width int, focused bool) string {
	style := m.theme.Pane
	titleStyle := m.theme.PaneTitle
	if focused {
		style = m.theme.PaneFocused
		titleStyle = m.theme.PaneTitleF
	}
	inner := titleStyle.Render(truncateForWidth(title, width-4)) + "\n" + body
	return style.Width(width - 2).Render(inner)
}

func (m *MainModel) renderTopBar() string {
	parts := []string{
		m.theme.TopBarBadge.Render("Genie"),
		m.theme.TopBarTitle.Render("Contract Review"),
		m.theme.TopBarMeta.Render(m.version),
	}
	if m.session.ReviewHasRun {
		parts = append(parts, m.theme.TopBarMeta.Render("mode: "+review.ApplyModeLabel(m.session.Mode)))
	}
	return m.theme.TopBar.Render(" " + strings.Join(parts, "  "))
}

func (m *MainModel) renderInput() string {
	style := m.theme.InputBox
	if m.focus == focusChat {
		style = m.theme.InputBoxF
	}
	if m.session.Processing {
		return style.Width(m.width - 2).Render(m.theme.TopBarMeta.Render("Genie is reviewing the document…"))
	}
	return style.Width(m.width - 2).Render(m.input.View())
}

func (m *MainModel) renderFooter() string {
	if m.notice != "" {
		return " " + m.theme.Notice.Render(m.notice)
	}
	hints := []string{"f1 help", "tab focus", "ctrl+n new chat", "ctrl+r review", "ctrl+c quit"}
	return " " + m.theme.Footer.Render(strings.Join(hints, " · "))
}
