package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"genie-review/internal/review"
)

// configForm is the inline document-details form shown inside a review
// thread. Three select fields plus a confirm row; confirm stays disabled
// until the party field has a value.
type configForm struct {
	row      int // 0..2 fields, 3 confirm
	docType  int
	law      int
	party    int // -1 until the user picks
}

var (
	docTypeOptions = []string{"Non-Disclosure Agreement", "Master Services Agreement", "Employment Contract", "Licensing Agreement"}
	lawOptions     = []string{"England and Wales", "Scotland", "United States (Delaware)", "Singapore"}
	partyOptions   = []string{"The Disclosing Party", "The Receiving Party", "Neutral / both parties"}
)

const formConfirmRow = 3

func newConfigForm() *configForm {
	return &configForm{party: -1}
}

func (f *configForm) complete() bool { return f.party >= 0 }

func (f *configForm) details() review.DocDetails {
	return review.DocDetails{
		DocumentType: docTypeOptions[f.docType],
		GoverningLaw: lawOptions[f.law],
		Party:        partyOptions[f.party],
	}
}

// handleKey consumes a key press; submitted is true when the confirm row was
// activated with a complete form.
func (f *configForm) handleKey(msg tea.KeyMsg) (submitted bool) {
	switch msg.String() {
	case "up", "shift+tab":
		if f.row > 0 {
			f.row--
		}
	case "down", "tab":
		if f.row < formConfirmRow {
			f.row++
		}
	case "left":
		f.cycle(-1)
	case "right", " ":
		f.cycle(1)
	case "enter":
		if f.row == formConfirmRow {
			return f.complete()
		}
		f.row++
	}
	return false
}

func (f *configForm) cycle(dir int) {
	switch f.row {
	case 0:
		f.docType = wrapIndex(f.docType+dir, len(docTypeOptions))
	case 1:
		f.law = wrapIndex(f.law+dir, len(lawOptions))
	case 2:
		if f.party < 0 {
			f.party = 0
			return
		}
		f.party = wrapIndex(f.party+dir, len(partyOptions))
	}
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

func (f *configForm) view(t Theme, focused bool) string {
	var b strings.Builder

	field := func(row int, name, value string) {
		cursor := "  "
		style := t.FieldName
		if focused && f.row == row {
			cursor = "> "
			style = t.FieldSel
		}
		b.WriteString(cursor + style.Render(name+": ") + t.ListItem.Render(value) + "\n")
	}

	partyValue := "(select a party)"
	if f.party >= 0 {
		partyValue = partyOptions[f.party]
	}

	field(0, "Document type", docTypeOptions[f.docType])
	field(1, "Governing law", lawOptions[f.law])
	field(2, "Reviewing for", partyValue)

	confirm := "[ Confirm details ]"
	switch {
	case !f.complete():
		b.WriteString("  " + t.TopBarMeta.Render(confirm+" (pick a party first)"))
	case focused && f.row == formConfirmRow:
		b.WriteString("> " + t.FieldSel.Render(confirm))
	default:
		b.WriteString("  " + t.FieldName.Render(confirm))
	}
	return b.String()
}
