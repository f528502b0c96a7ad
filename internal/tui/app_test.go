package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"genie-review/internal/review"
)

func newTestModel(t *testing.T) *MainModel {
	t.Helper()
	cfg := review.DefaultConfig()
	m := New(cfg, "test", review.NopLogger())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "ctrl+j":
		return tea.KeyMsg{Type: tea.KeyCtrlJ}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m *MainModel, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

func typeText(m *MainModel, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// driveReview walks the whole scripted review through key presses: open
// the review thread, submit the form, pick an apply mode, and fire the
// processing-done timer.
func driveReview(t *testing.T, m *MainModel, mode review.ApplyMode) {
	t.Helper()
	press(m, "ctrl+r")
	if m.form == nil {
		t.Fatal("document-details form not shown")
	}

	// Walk the form: doc type -> governing law -> party (pick one) -> confirm.
	press(m, "enter", "enter", "right", "enter", "enter")
	active := m.session.ActiveThread()
	if active == nil || active.Stage != review.StageAwaitingContext {
		t.Fatalf("after form: stage %v", active.Stage)
	}

	typeText(m, "Focus on IP protection and early termination")
	press(m, "enter")
	if active.Stage != review.StageAwaitingApplyMode {
		t.Fatalf("after context: stage %v", active.Stage)
	}

	choices := review.ApplyModeChoices()
	for i, c := range choices {
		if c == mode {
			for j := 0; j < i; j++ {
				press(m, "down")
			}
			break
		}
	}
	press(m, "enter")
	if !m.session.Processing {
		t.Fatal("choosing an apply mode must start processing")
	}
	m.Update(processingDoneMsg{})
}

func TestScriptedReviewViaKeyboard(t *testing.T) {
	m := newTestModel(t)
	driveReview(t, m, review.ApplyTrackChanges)

	s := m.Session()
	if !s.ReviewHasRun {
		t.Fatal("review did not run")
	}
	if s.Mode != review.ApplyTrackChanges {
		t.Fatalf("mode: got %s", s.Mode)
	}
	if got := s.ToReviewCount(); got != 6 {
		t.Fatalf("to-review count: got %d, want 6", got)
	}
	if active := s.ActiveThread(); active == nil || active.Stage != review.StageComplete {
		t.Fatal("review thread not complete")
	}
	if !m.animRisks || !m.animHistory {
		t.Fatal("list animations not armed")
	}
	m.Update(riskAnimOffMsg{})
	m.Update(histAnimOffMsg{})
	if m.animRisks || m.animHistory {
		t.Fatal("animations not cleared")
	}
}

func TestTypedReviewRequestOpensForm(t *testing.T) {
	m := newTestModel(t)
	press(m, "esc") // dismiss the empty placeholder chat
	press(m, "tab") // back to the chat panel
	typeText(m, "Please review this contract")
	press(m, "enter")

	active := m.Session().ActiveThread()
	if active == nil || active.Stage != review.StageAwaitingDocInfo {
		t.Fatal("typed review request did not open a review thread")
	}
	if m.form == nil {
		t.Fatal("form not shown for typed review request")
	}
	if active.Title != "Run AI Review" {
		t.Fatalf("title: got %q", active.Title)
	}
}

func TestEmptySendIsNoOp(t *testing.T) {
	m := newTestModel(t)
	press(m, "enter")
	active := m.Session().ActiveThread()
	if active == nil || len(active.Messages) != 0 {
		t.Fatal("empty send must not append messages")
	}
}

func TestGenericChatArchivesImmediately(t *testing.T) {
	m := newTestModel(t)
	typeText(m, "summarise the document please")
	press(m, "enter")

	s := m.Session()
	if got := len(s.ResolvedChats()); got != 1 {
		t.Fatalf("history chats: got %d, want 1", got)
	}
	if s.HistoryCount() != 1 {
		t.Fatalf("history count: got %d", s.HistoryCount())
	}
	active := s.ActiveThread()
	if active == nil || len(active.Messages) != 2 {
		t.Fatal("chat thread missing the scripted echo")
	}
}

func TestOpenRiskAndStepThroughList(t *testing.T) {
	m := newTestModel(t)
	driveReview(t, m, review.ApplyTrackChanges)

	press(m, "esc") // close the review thread, focus the nav list
	if m.focus != focusNav {
		t.Fatal("escape should focus the navigation list")
	}
	press(m, "enter")

	first := review.Catalog()[0]
	risk, ok := m.Session().SelectedRisk()
	if !ok || risk.Title != first.Title {
		t.Fatalf("selected: got %q, want %q", risk.Title, first.Title)
	}

	press(m, "ctrl+j")
	risk, _ = m.Session().SelectedRisk()
	if risk.Title != review.Catalog()[1].Title {
		t.Fatalf("after next: got %q", risk.Title)
	}
	press(m, "ctrl+k")
	risk, _ = m.Session().SelectedRisk()
	if risk.Title != first.Title {
		t.Fatalf("after prev: got %q", risk.Title)
	}
}

func TestAcceptHighlightLifecycle(t *testing.T) {
	m := newTestModel(t)
	driveReview(t, m, review.ApplyManual)
	press(m, "esc", "enter") // open the first risk

	risk, _ := m.Session().SelectedRisk()
	press(m, "ctrl+e")
	if !m.Session().IsAccepted(risk.Title) {
		t.Fatal("accept key did not accept the edit")
	}
	if m.highlightTitle != risk.Title {
		t.Fatal("highlight not armed")
	}
	m.Update(highlightOffMsg{title: risk.Title})
	if m.highlightTitle != "" {
		t.Fatal("highlight not cleared")
	}
	if got := m.Session().EditStateFor(risk.Title); got != review.EditApplied {
		t.Fatalf("edit state: got %s", got)
	}
}

func TestPreviewOnlyInManualMode(t *testing.T) {
	m := newTestModel(t)
	driveReview(t, m, review.ApplyDirect)
	press(m, "esc", "enter")

	risk, _ := m.Session().SelectedRisk()
	press(m, "ctrl+o")
	if m.Session().IsPreviewed(risk.Title) {
		t.Fatal("preview must be a no-op outside manual mode")
	}

	m2 := newTestModel(t)
	driveReview(t, m2, review.ApplyManual)
	press(m2, "esc", "enter")
	risk2, _ := m2.Session().SelectedRisk()
	press(m2, "ctrl+o")
	if !m2.Session().IsPreviewed(risk2.Title) {
		t.Fatal("preview did not register in manual mode")
	}
}

func TestMarkReviewedTogglesAndReturnsToList(t *testing.T) {
	m := newTestModel(t)
	driveReview(t, m, review.ApplyTrackChanges)
	press(m, "esc", "enter")

	risk, _ := m.Session().SelectedRisk()
	press(m, "ctrl+d")
	if !m.Session().IsResolved(risk.Title) {
		t.Fatal("risk not resolved")
	}
	if _, open := m.Session().SelectedRisk(); open {
		t.Fatal("risk chat should close on mark reviewed")
	}
	if m.Session().ToReviewCount() != 5 {
		t.Fatalf("to-review count: got %d, want 5", m.Session().ToReviewCount())
	}
}

func TestMarkAllReviewed(t *testing.T) {
	m := newTestModel(t)
	driveReview(t, m, review.ApplyTrackChanges)
	press(m, "ctrl+s")
	if got := m.Session().ToReviewCount(); got != 0 {
		t.Fatalf("to-review count: got %d, want 0", got)
	}
}

func TestCopySuggestionUsesClipboardStub(t *testing.T) {
	var captured string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		captured = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m := newTestModel(t)
	driveReview(t, m, review.ApplyTrackChanges)
	press(m, "esc", "enter", "ctrl+y")

	risk, _ := m.Session().SelectedRisk()
	want := review.ContentForRisk(risk.Title).Suggested
	if captured != want {
		t.Fatalf("copied: got %q, want %q", captured, want)
	}
	if m.notice != "Copied to clipboard" {
		t.Fatalf("notice: got %q", m.notice)
	}
	m.Update(noticeOffMsg{})
	if m.notice != "" {
		t.Fatal("notice not cleared")
	}
}

func TestProcessingBlocksInput(t *testing.T) {
	m := newTestModel(t)
	press(m, "ctrl+r", "enter", "enter", "right", "enter", "enter")
	typeText(m, "no special context")
	press(m, "enter", "enter")
	if !m.Session().Processing {
		t.Fatal("expected processing state")
	}
	typeText(m, "hello")
	if m.input.Value() != "" {
		t.Fatalf("input accepted text while processing: %q", m.input.Value())
	}
	press(m, "enter")
	active := m.Session().ActiveThread()
	if active.Stage != review.StageProcessing {
		t.Fatalf("stage: got %v", active.Stage)
	}
}

func TestTabAndFilterKeys(t *testing.T) {
	m := newTestModel(t)
	driveReview(t, m, review.ApplyTrackChanges)

	s := m.Session()
	if s.Tab != review.TabUnresolved {
		t.Fatalf("tab after review: got %s", s.Tab)
	}
	if s.Filter != review.FilterAll {
		t.Fatalf("filter after review: got %s", s.Filter)
	}

	press(m, "ctrl+f")
	if s.Filter != review.FilterHigh {
		t.Fatalf("filter after cycle: got %s", s.Filter)
	}
	if got := len(m.navItems()); got != 3 {
		t.Fatalf("high-filtered items: got %d, want 3", got)
	}

	press(m, "ctrl+t")
	if s.Tab != review.TabHistory {
		t.Fatalf("tab after switch: got %s", s.Tab)
	}
	press(m, "ctrl+g")
	if s.HistFilter != review.HistoryRisks {
		t.Fatalf("history filter: got %s", s.HistFilter)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	press(m, "f1")
	if !m.showHelp {
		t.Fatal("help not shown")
	}
	if !strings.Contains(m.View(), "Keyboard shortcuts") {
		t.Fatal("help overlay missing from view")
	}
	press(m, "ctrl+n") // swallowed while help is open
	if !m.showHelp {
		t.Fatal("help dismissed by a non-close key")
	}
	press(m, "esc")
	if m.showHelp {
		t.Fatal("help not dismissed")
	}
}

func TestToggleSidebar(t *testing.T) {
	m := newTestModel(t)
	press(m, "ctrl+b")
	if !m.navCollapsed {
		t.Fatal("sidebar not collapsed")
	}
	if m.View() == "" {
		t.Fatal("empty view with collapsed sidebar")
	}
	press(m, "ctrl+b")
	if m.navCollapsed {
		t.Fatal("sidebar not restored")
	}
}

func TestSendRevealsCollapsedSidebar(t *testing.T) {
	m := newTestModel(t)
	press(m, "ctrl+b")
	typeText(m, "summarise the key obligations")
	press(m, "enter")
	if m.navCollapsed {
		t.Fatal("send did not reveal the sidebar")
	}
}

func TestPreReviewNavShowsCTA(t *testing.T) {
	m := newTestModel(t)
	m.Session().Tab = review.TabUnresolved
	items := m.navItems()
	if len(items) != 1 || items[0].kind != navCTA {
		t.Fatalf("pre-review nav: got %+v", items)
	}
	press(m, "esc") // focus nav
	m.Session().Tab = review.TabUnresolved
	press(m, "enter")
	active := m.Session().ActiveThread()
	if active == nil || active.Stage != review.StageAwaitingDocInfo {
		t.Fatal("CTA did not open a review thread")
	}
}

func TestViewRendersDocumentAndRiskCount(t *testing.T) {
	m := newTestModel(t)
	driveReview(t, m, review.ApplyTrackChanges)
	view := m.View()
	if !strings.Contains(view, "NDA (Non-Disclosure Agreement)") {
		t.Fatal("document title missing from view")
	}
	if !strings.Contains(view, "To review (6)") {
		t.Fatal("to-review count missing from view")
	}
}
