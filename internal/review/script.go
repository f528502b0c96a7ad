package review

import "strings"

// Stage is the explicit position of a thread in the scripted review
// conversation. Free chat threads stay in StageFreeChat forever.
type Stage string

const (
	StageFreeChat          Stage = "free_chat"
	StageAwaitingDocInfo   Stage = "awaiting_doc_info"
	StageAwaitingContext   Stage = "awaiting_context"
	StageAwaitingApplyMode Stage = "awaiting_apply_mode"
	StageProcessing        Stage = "processing"
	StageComplete          Stage = "complete"
)

// ApplyMode is the session-wide policy for showing suggested edits in the
// document. Chosen once per review run.
type ApplyMode string

const (
	ApplyManual       ApplyMode = "manual"
	ApplyTrackChanges ApplyMode = "track-changes"
	ApplyDirect       ApplyMode = "direct-apply"
)

// ApplyModeLabel is the wording shown for each choice, and the user message
// recorded when it is picked.
func ApplyModeLabel(mode ApplyMode) string {
	switch mode {
	case ApplyTrackChanges:
		return "Apply edits in track changes"
	case ApplyDirect:
		return "Apply edits directly"
	default:
		return "I'll apply edits manually"
	}
}

// ApplyModeChoices lists the three options in display order.
func ApplyModeChoices() []ApplyMode {
	return []ApplyMode{ApplyManual, ApplyDirect, ApplyTrackChanges}
}

// UserInput is what the user contributed this turn: typed text, the
// completed document-details form, or an apply-mode pick.
type UserInput interface {
	isUserInput()
	userContent() string
}

type FreeText struct {
	Text string
}

type DocDetails struct {
	DocumentType string
	GoverningLaw string
	Party        string
}

type ApplyChoice struct {
	Mode ApplyMode
}

func (FreeText) isUserInput()    {}
func (DocDetails) isUserInput()  {}
func (ApplyChoice) isUserInput() {}

func (f FreeText) userContent() string { return f.Text }

func (d DocDetails) userContent() string {
	return "Document type: " + d.DocumentType + "\nGoverning law: " + d.GoverningLaw + "\nParty: " + d.Party
}

func (a ApplyChoice) userContent() string { return ApplyModeLabel(a.Mode) }

// Scripted assistant copy.
const (
	docDetailsPrompt = "Great! Just a couple of questions to tailor your review.\n\nFirstly, confirm your document details."

	contextPrompt = "Please give Genie as much information as possible to help tailor your review.\n\nThe more you write, the better your review will be.\n\nFor example:\nBackground on your business and the other party\nAny key concerns or risks\nYour top priorities for handling this contract"

	applyModePrompt = "How should Genie apply its amendment suggestions to your document?"

	processingNotice = "Thank you!\n\nWe're running your tailored AI risk review now. This might take a couple of minutes."

	freeChatReply = "I'll help you analyze that. Let me check the document..."
)

// ReviewThreadOpening returns the assistant message a fresh review
// configuration thread starts with: the greeting plus the inline
// document-details form.
func ReviewThreadOpening() Message {
	return newAssistantKind(KindConfigForm, docDetailsPrompt)
}

// Advance is the pure transition function of the conversation state machine:
// given the current stage and the user's input it yields the next stage and
// the messages to append (the user's own message followed by any scripted
// assistant response).
func Advance(stage Stage, in UserInput) (Stage, []Message) {
	user := NewUserMessage(in.userContent())

	switch stage {
	case StageAwaitingDocInfo:
		return StageAwaitingContext, []Message{user, NewAssistantMessage(contextPrompt)}

	case StageAwaitingContext:
		return StageAwaitingApplyMode, []Message{user, newAssistantKind(KindApplyModeChoice, applyModePrompt)}

	case StageAwaitingApplyMode:
		notice := NewAssistantMessage(processingNotice)
		notice.Loading = true
		return StageProcessing, []Message{user, notice}

	case StageFreeChat:
		return StageFreeChat, []Message{user, NewAssistantMessage(freeChatReply)}

	default:
		// Processing and complete threads behave as free chat without the
		// scripted echo: the user's message is recorded, nothing replies.
		return stage, []Message{user}
	}
}

// WantsReview reports whether a message asks for a document review; it
// decides whether a fresh thread opens as a review configuration thread.
func WantsReview(text string) bool {
	return strings.Contains(strings.ToLower(text), "review")
}
