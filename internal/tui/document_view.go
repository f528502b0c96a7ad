package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"genie-review/internal/review"
)

// renderDocument builds the document pane content and a map from clause ID
// to its first line in the rendered output, used for scroll-to-clause.
func (m *MainModel) renderDocument(width int) (string, map[string]int) {
	wrap := lipgloss.NewStyle().Width(width)
	var b strings.Builder
	offsets := map[string]int{}
	lines := 0

	push := func(block string) {
		b.WriteString(block)
		b.WriteString("\n")
		lines += strings.Count(block, "\n") + 1
	}

	push(wrap.Render(m.theme.DocTitle.Render(review.DocumentTitle)))
	push("")

	for _, clause := range m.session.Document() {
		offsets[clause.ID] = lines
		push(wrap.Render(m.theme.DocHeading.Render(clause.Heading)))
		push(wrap.Render(m.renderClauseBody(clause)))
		push("")
	}
	return b.String(), offsets
}

func (m *MainModel) renderClauseBody(clause review.Clause) string {
	var b strings.Builder
	for _, seg := range clause.Segments {
		if seg.Edit == nil {
			b.WriteString(m.theme.DocBody.Render(seg.Text))
			continue
		}
		b.WriteString(m.renderEditSpan(seg.Edit))
	}
	return b.String()
}

func (m *MainModel) renderEditSpan(span *review.EditSpan) string {
	switch m.session.EditStateFor(span.RiskTitle) {
	case review.EditApplied:
		style := m.theme.DocBody
		if m.highlightTitle == span.RiskTitle {
			style = m.theme.AppliedHi
		}
		return style.Render(span.Suggested)

	case review.EditTracked:
		var b strings.Builder
		if span.Original != "" {
			b.WriteString(m.theme.TrackDeleted.Render(span.Original))
			b.WriteString(" ")
		}
		b.WriteString(m.theme.TrackAdded.Render(span.Suggested))
		return b.String()

	default:
		return m.theme.DocBody.Render(span.Original)
	}
}

func (m *MainModel) scrollToClause(id string) {
	line, ok := m.clauseLines[id]
	if !ok {
		return
	}
	m.docVP.SetYOffset(line)
}

func (m *MainModel) refreshDoc() {
	content, offsets := m.renderDocument(m.docVP.Width)
	m.clauseLines = offsets
	m.docVP.SetContent(content)
}
