package review

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Tab string

const (
	TabUnresolved Tab = "unresolved"
	TabHistory    Tab = "history"
)

type SeverityFilter string

const (
	FilterHigh   SeverityFilter = "high"
	FilterMedium SeverityFilter = "medium"
	FilterAll    SeverityFilter = "all"
)

// HistoryFilter narrows the history tab: resolved risks, resolved chats, or
// both. One control governs both lists.
type HistoryFilter string

const (
	HistoryAll   HistoryFilter = "all"
	HistoryRisks HistoryFilter = "risks"
	HistoryChats HistoryFilter = "chats"
)

// Session owns the whole in-memory review state: the active thread, the
// archived chats, the selected risk, and the per-item flags driving the
// document overlay. Everything resets on process restart.
type Session struct {
	active       *ChatThread
	selectedRisk string
	resolvedChat []*ChatThread
	archivedIDs  map[string]struct{}
	riskThreads  map[string]*ChatThread

	resolved  map[string]struct{}
	previewed map[string]struct{}
	accepted  map[string]struct{}

	Mode       ApplyMode
	Tab        Tab
	Filter     SeverityFilter
	HistFilter HistoryFilter

	ReviewHasRun bool
	Processing   bool

	// The review titles alternate between first and later runs.
	reviewTitleUsed bool

	log *Logger
}

func NewSession(log *Logger) *Session {
	if log == nil {
		log = NopLogger()
	}
	return &Session{
		active:      NewThread(placeholderTitle),
		archivedIDs: map[string]struct{}{},
		riskThreads: map[string]*ChatThread{},
		resolved:    map[string]struct{}{},
		previewed:   map[string]struct{}{},
		accepted:    map[string]struct{}{},
		Mode:        ApplyManual,
		Tab:         TabHistory,
		Filter:      FilterHigh,
		HistFilter:  HistoryAll,
		log:         log,
	}
}

// ActiveThread returns the foreground chat thread, or nil when a risk chat
// or nothing is in the foreground.
func (s *Session) ActiveThread() *ChatThread { return s.active }

// SelectedRisk returns the foreground risk item, if one is selected. The
// selected risk and the active thread are mutually exclusive.
func (s *Session) SelectedRisk() (RiskItem, bool) {
	if s.selectedRisk == "" {
		return RiskItem{}, false
	}
	return RiskByTitle(s.selectedRisk)
}

// RiskThread returns the per-risk conversation for a title, if it has been
// opened at least once.
func (s *Session) RiskThread(title string) *ChatThread {
	return s.riskThreads[title]
}

// ResolvedChats returns archived threads, oldest first, honoring the
// history-content filter.
func (s *Session) ResolvedChats() []*ChatThread {
	if s.HistFilter == HistoryRisks {
		return nil
	}
	return s.resolvedChat
}

// Send records a typed message into the active thread, creating a thread
// first when none is open. The returned flag is true when this send moved a
// review thread into its processing stage, meaning the caller must schedule
// the simulated processing delay.
//
// Empty and whitespace-only input is silently ignored.
func (s *Session) Send(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if s.Processing {
		return false
	}

	if s.active == nil {
		if WantsReview(text) {
			t := NewThread(s.reviewTitle())
			t.Stage = StageAwaitingDocInfo
			t.Append(NewUserMessage(text), ReviewThreadOpening())
			s.active = t
			s.archiveThread(t)
			s.Tab = TabHistory
			return false
		}
		t := NewThread(chatTitleFromPrompt(text))
		t.Append(NewUserMessage(text), NewAssistantMessage(freeChatReply))
		s.active = t
		s.archiveThread(t)
		s.Tab = TabHistory
		return false
	}

	if s.active.IsReviewThread() {
		return s.advanceActive(FreeText{Text: text})
	}

	firstMessage := len(s.active.Messages) == 0
	s.active.RenameFromFirstMessage(text)
	stage, msgs := Advance(s.active.Stage, FreeText{Text: text})
	s.active.Stage = stage
	s.active.Append(msgs...)
	if firstMessage {
		s.archiveThread(s.active)
		s.Tab = TabHistory
	}
	return false
}

// SubmitDocDetails feeds the completed document-details form into the
// review script.
func (s *Session) SubmitDocDetails(d DocDetails) {
	if s.active == nil || s.active.Stage != StageAwaitingDocInfo {
		return
	}
	s.advanceActive(d)
}

// ChooseApplyMode records the user's apply-mode pick and moves the review
// thread into processing. Returns true when the caller should start the
// simulated processing delay.
func (s *Session) ChooseApplyMode(mode ApplyMode) bool {
	if s.active == nil || s.active.Stage != StageAwaitingApplyMode {
		return false
	}
	s.Mode = mode
	return s.advanceActive(ApplyChoice{Mode: mode})
}

func (s *Session) advanceActive(in UserInput) bool {
	stage, msgs := Advance(s.active.Stage, in)
	s.active.Stage = stage
	s.active.Append(msgs...)
	if stage == StageProcessing {
		s.Processing = true
		s.log.Info("review processing started", map[string]interface{}{"thread": s.active.ID})
		return true
	}
	return false
}

// CompleteProcessing is invoked when the simulated processing delay fires.
func (s *Session) CompleteProcessing() {
	s.Processing = false
	s.StartReview()
}

// StartReview marks the review as run, resets the list filters, and appends
// the completion summary to the active thread. Safe to invoke more than
// once: the summary is appended only if the thread does not already carry
// one.
func (s *Session) StartReview() {
	s.ReviewHasRun = true
	s.Filter = FilterAll
	s.Tab = TabUnresolved

	high, medium := s.unresolvedCounts()

	if s.active != nil && !s.active.HasCompletionMessage() {
		s.active.Append(NewAssistantMessage(completionSummary(high, medium)))
		s.active.Stage = StageComplete
		s.archiveThread(s.active)
	}
	s.log.Info("review completed", map[string]interface{}{"high": high, "medium": medium})
}

func (s *Session) unresolvedCounts() (high, medium int) {
	for _, item := range Catalog() {
		if s.IsResolved(item.Title) {
			continue
		}
		switch item.Severity {
		case SeverityHigh:
			high++
		case SeverityMedium:
			medium++
		}
	}
	return high, medium
}

func completionSummary(high, medium int) string {
	return fmt.Sprintf(
		"Thanks! We've completed your AI review.\n\nWe found %d high risk %s and %d medium risk %s in your document.\n\nYou can review them in the left panel.",
		high, pluralFlag(high), medium, pluralFlag(medium))
}

func pluralFlag(n int) string {
	if n == 1 {
		return "flag"
	}
	return "flags"
}

func (s *Session) reviewTitle() string {
	if s.ReviewHasRun {
		return "Re-Run Review"
	}
	return "Run AI Review"
}

// RunReview opens a fresh review configuration thread, archiving whatever
// chat was in the foreground.
func (s *Session) RunReview() {
	if s.active != nil && !s.active.FromHistory && len(s.active.Messages) > 0 {
		s.archiveThread(s.active)
	}
	t := NewThread(s.reviewTitle())
	t.Stage = StageAwaitingDocInfo
	t.Append(ReviewThreadOpening())
	s.active = t
	s.selectedRisk = ""
}

// NewChat opens an empty placeholder-titled thread as the foreground view.
func (s *Session) NewChat() {
	s.active = NewThread(placeholderTitle)
	s.selectedRisk = ""
	s.Tab = TabHistory
}

// CloseChat dismisses the active thread; it stays reachable from history if
// it was ever archived.
func (s *Session) CloseChat() {
	if s.active == nil {
		return
	}
	s.active = nil
}

// OpenHistoryChat reopens an archived thread as the active one.
func (s *Session) OpenHistoryChat(id string) {
	for _, t := range s.resolvedChat {
		if t.ID == id {
			t.FromHistory = true
			s.active = t
			s.selectedRisk = ""
			return
		}
	}
}

// archiveThread moves a thread into the resolved/history set at most once.
func (s *Session) archiveThread(t *ChatThread) {
	if _, ok := s.archivedIDs[t.ID]; ok {
		return
	}
	t.ResolvedAt = time.Now()
	s.resolvedChat = append(s.resolvedChat, t)
	s.archivedIDs[t.ID] = struct{}{}
}

// OpenRisk brings a risk chat into the foreground, seeding it with the
// structured risk card on first open. Opening a risk closes the active
// thread and vice versa.
func (s *Session) OpenRisk(title string) {
	if _, ok := RiskByTitle(title); !ok {
		return
	}
	s.selectedRisk = title
	s.active = nil
	if s.riskThreads[title] == nil {
		t := NewThread(title)
		card := newAssistantKind(KindRiskCard, "")
		card.RiskTitle = title
		t.Append(card)
		s.riskThreads[title] = t
	}
}

func (s *Session) CloseRisk() {
	s.selectedRisk = ""
}

// SendToRisk records a message into the selected risk's thread, with the
// scripted assistant echo. Empty input is ignored.
func (s *Session) SendToRisk(text string) {
	if strings.TrimSpace(text) == "" || s.selectedRisk == "" {
		return
	}
	t := s.riskThreads[s.selectedRisk]
	if t == nil {
		return
	}
	reply := fmt.Sprintf("I'll help you with the %q task. Let me analyze the document...", s.selectedRisk)
	t.Append(NewUserMessage(text), NewAssistantMessage(reply))
}

// IsResolved reports whether a finding has been marked as reviewed.
func (s *Session) IsResolved(title string) bool {
	_, ok := s.resolved[title]
	return ok
}

// Resolve marks a finding as reviewed. Idempotent.
func (s *Session) Resolve(title string) {
	if _, ok := s.resolved[title]; ok {
		return
	}
	s.resolved[title] = struct{}{}
	s.log.Info("risk resolved", map[string]interface{}{"title": title})
}

// Unresolve moves a finding back to the review list. Idempotent.
func (s *Session) Unresolve(title string) {
	delete(s.resolved, title)
}

// MarkReviewed resolves the selected risk, closes its chat, and returns to
// the review list.
func (s *Session) MarkReviewed(title string) {
	s.Resolve(title)
	s.CloseRisk()
	s.Tab = TabUnresolved
}

// MarkAllReviewed resolves every currently unresolved finding.
func (s *Session) MarkAllReviewed() {
	for _, item := range s.UnresolvedRisks() {
		s.Resolve(item.Title)
	}
}

// UnresolvedRisks returns unresolved findings in catalog order, ignoring the
// severity filter. Navigation operates over this sequence.
func (s *Session) UnresolvedRisks() []RiskItem {
	var out []RiskItem
	for _, item := range Catalog() {
		if !s.IsResolved(item.Title) {
			out = append(out, item)
		}
	}
	return out
}

// ListForView returns the findings the left panel shows for a tab and
// severity filter. The unresolved view under the "all" filter is sorted
// High before Medium, stable within a severity; specific filters keep
// catalog order.
func (s *Session) ListForView(tab Tab, filter SeverityFilter) []RiskItem {
	if tab == TabHistory {
		if s.HistFilter == HistoryChats {
			return nil
		}
		var out []RiskItem
		for _, item := range Catalog() {
			if s.IsResolved(item.Title) {
				out = append(out, item)
			}
		}
		return out
	}

	items := s.UnresolvedRisks()
	if filter == FilterAll {
		sorted := make([]RiskItem, len(items))
		copy(sorted, items)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Severity == SeverityHigh && sorted[j].Severity == SeverityMedium
		})
		return sorted
	}

	var out []RiskItem
	for _, item := range items {
		if strings.EqualFold(string(item.Severity), string(filter)) {
			out = append(out, item)
		}
	}
	return out
}

// NextRisk moves the selection to the next unresolved finding, wrapping at
// the end. If the current selection has been resolved away, it falls back to
// the first unresolved finding. No-op with nothing left to review.
func (s *Session) NextRisk() {
	items := s.UnresolvedRisks()
	if len(items) == 0 || s.selectedRisk == "" {
		return
	}
	idx := indexOfRisk(items, s.selectedRisk)
	if idx >= 0 && idx < len(items)-1 {
		s.OpenRisk(items[idx+1].Title)
		return
	}
	s.OpenRisk(items[0].Title)
}

// PreviousRisk is NextRisk's mirror, wrapping at the front and falling back
// to the last unresolved finding.
func (s *Session) PreviousRisk() {
	items := s.UnresolvedRisks()
	if len(items) == 0 || s.selectedRisk == "" {
		return
	}
	idx := indexOfRisk(items, s.selectedRisk)
	if idx > 0 {
		s.OpenRisk(items[idx-1].Title)
		return
	}
	s.OpenRisk(items[len(items)-1].Title)
}

func indexOfRisk(items []RiskItem, title string) int {
	for i, item := range items {
		if item.Title == title {
			return i
		}
	}
	return -1
}

// ToReviewCount is the left panel's "To Review" badge: zero until a review
// has run.
func (s *Session) ToReviewCount() int {
	if !s.ReviewHasRun {
		return 0
	}
	return len(s.UnresolvedRisks())
}

// HistoryCount counts archived chats plus resolved findings.
func (s *Session) HistoryCount() int {
	return len(s.resolvedChat) + len(s.resolved)
}
