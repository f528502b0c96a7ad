package review

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MessageKind selects how a message renders. Specialized kinds carry their
// payload in dedicated fields instead of sentinel content strings.
type MessageKind string

const (
	KindText            MessageKind = "text"
	KindConfigForm      MessageKind = "config-form"
	KindApplyModeChoice MessageKind = "apply-mode-choice"
	KindRiskCard        MessageKind = "risk-card"
)

type Message struct {
	ID        string
	Role      Role
	Kind      MessageKind
	Content   string
	RiskTitle string // set for KindRiskCard
	Loading   bool
	CreatedAt time.Time
}

func NewUserMessage(content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Kind:      KindText,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

func NewAssistantMessage(content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Kind:      KindText,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

func newAssistantKind(kind MessageKind, content string) Message {
	m := NewAssistantMessage(content)
	m.Kind = kind
	return m
}

// ChatThread is an ordered conversation between the user and the assistant.
// Messages are append-only; a thread is never edited in place.
type ChatThread struct {
	ID          string
	Title       string
	Messages    []Message
	Stage       Stage
	CreatedAt   time.Time
	ResolvedAt  time.Time
	FromHistory bool
}

const placeholderTitle = "New chat"

func NewThread(title string) *ChatThread {
	return &ChatThread{
		ID:        uuid.NewString(),
		Title:     title,
		Stage:     StageFreeChat,
		CreatedAt: time.Now(),
	}
}

func (t *ChatThread) Append(msgs ...Message) {
	t.Messages = append(t.Messages, msgs...)
}

func (t *ChatThread) UserMessageCount() int {
	n := 0
	for _, m := range t.Messages {
		if m.Role == RoleUser {
			n++
		}
	}
	return n
}

// IsReviewThread reports whether this thread runs the review configuration
// script rather than free chat.
func (t *ChatThread) IsReviewThread() bool {
	return t.Stage != StageFreeChat
}

const completionMarker = "We've completed your AI review"

// HasCompletionMessage reports whether the review completion summary was
// already appended. Completion can be triggered from more than one entry
// point; this guard keeps it idempotent.
func (t *ChatThread) HasCompletionMessage() bool {
	for _, m := range t.Messages {
		if m.Role == RoleAssistant && strings.Contains(m.Content, completionMarker) {
			return true
		}
	}
	return false
}

// RenameFromFirstMessage gives a placeholder-titled empty thread a title
// derived from the user's first message, truncated to 30 characters.
func (t *ChatThread) RenameFromFirstMessage(text string) {
	if t.Title != placeholderTitle || len(t.Messages) > 0 {
		return
	}
	t.Title = truncateTitle(text, 30)
}

func truncateTitle(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// chatTitleFromPrompt derives a short title for a brand-new thread from its
// opening message: the first few words plus an ellipsis.
func chatTitleFromPrompt(prompt string) string {
	words := strings.Fields(prompt)
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ") + "..."
}
