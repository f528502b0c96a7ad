package review

import (
	"strings"
	"testing"
)

func TestAdvanceThroughReviewScript(t *testing.T) {
	stage := StageAwaitingDocInfo

	stage, msgs := Advance(stage, DocDetails{
		DocumentType: "Non-Disclosure Agreement",
		GoverningLaw: "England and Wales",
		Party:        "The Disclosing Party",
	})
	if stage != StageAwaitingContext {
		t.Fatalf("after form: got stage %s", stage)
	}
	if len(msgs) != 2 {
		t.Fatalf("after form: got %d messages", len(msgs))
	}
	if msgs[0].Role != RoleUser || !strings.Contains(msgs[0].Content, "Governing law: England and Wales") {
		t.Fatalf("form user message: got %q", msgs[0].Content)
	}
	if !strings.Contains(msgs[1].Content, "as much information as possible") {
		t.Fatalf("context prompt: got %q", msgs[1].Content)
	}

	stage, msgs = Advance(stage, FreeText{Text: "Focus on IP risk"})
	if stage != StageAwaitingApplyMode {
		t.Fatalf("after context: got stage %s", stage)
	}
	if msgs[1].Kind != KindApplyModeChoice {
		t.Fatalf("after context: got kind %s", msgs[1].Kind)
	}

	stage, msgs = Advance(stage, ApplyChoice{Mode: ApplyTrackChanges})
	if stage != StageProcessing {
		t.Fatalf("after choice: got stage %s", stage)
	}
	if msgs[0].Content != "Apply edits in track changes" {
		t.Fatalf("choice user message: got %q", msgs[0].Content)
	}
	if !msgs[1].Loading {
		t.Fatal("processing notice should be loading")
	}
}

func TestAdvanceAfterProcessingAppendsUserOnly(t *testing.T) {
	for _, stage := range []Stage{StageProcessing, StageComplete} {
		next, msgs := Advance(stage, FreeText{Text: "anything"})
		if next != stage {
			t.Fatalf("stage %s changed to %s", stage, next)
		}
		if len(msgs) != 1 || msgs[0].Role != RoleUser {
			t.Fatalf("stage %s: got %d messages", stage, len(msgs))
		}
	}
}

func TestAdvanceFreeChatEchoes(t *testing.T) {
	stage, msgs := Advance(StageFreeChat, FreeText{Text: "hello"})
	if stage != StageFreeChat {
		t.Fatalf("got stage %s", stage)
	}
	if len(msgs) != 2 || msgs[1].Role != RoleAssistant {
		t.Fatalf("got %d messages", len(msgs))
	}
	if !strings.Contains(msgs[1].Content, "Let me check the document") {
		t.Fatalf("echo: got %q", msgs[1].Content)
	}
}

func TestWantsReview(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Please review this contract", true},
		{"REVIEW it", true},
		{"I'd like a preview", true}, // substring match, as in the reference
		{"summarise the document", false},
	}
	for _, tc := range cases {
		if got := WantsReview(tc.text); got != tc.want {
			t.Fatalf("WantsReview(%q): got %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestApplyModeChoices(t *testing.T) {
	choices := ApplyModeChoices()
	if len(choices) != 3 {
		t.Fatalf("got %d choices", len(choices))
	}
	seen := map[ApplyMode]bool{}
	for _, c := range choices {
		seen[c] = true
		if ApplyModeLabel(c) == "" {
			t.Fatalf("mode %s has no label", c)
		}
	}
	if !seen[ApplyManual] || !seen[ApplyDirect] || !seen[ApplyTrackChanges] {
		t.Fatalf("choices incomplete: %v", choices)
	}
}
