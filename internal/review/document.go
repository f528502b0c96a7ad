package review

// Clause identifiers double as scroll targets.
const (
	ClauseParties          = "parties"
	ClauseConfidentialInfo = "confidential-information"
	ClauseObligations      = "obligations"
	ClauseExclusions       = "exclusions"
	ClauseTerm             = "term"
	ClauseReturn           = "return-or-destruction"
	ClauseNoLicense        = "no-license"
	ClauseRemedies         = "remedies"
	ClauseSurvival         = "survival"
	ClauseSignatures       = "signatures"
)

// EditState is the rendering decision for one suggested edit.
type EditState string

const (
	EditOriginal EditState = "original" // plain original wording
	EditTracked  EditState = "tracked"  // struck-through original plus inserted suggestion
	EditApplied  EditState = "applied"  // suggestion only
)

// EditSpan is one suggested amendment inside a clause. Original may be empty
// for pure insertions.
type EditSpan struct {
	RiskTitle string
	Original  string
	Suggested string
}

// Segment is either literal clause text or an edit span.
type Segment struct {
	Text string
	Edit *EditSpan
}

// Clause is one section of the demo NDA. A clause with OnlyForRisk set is
// rendered only while that risk's suggested edits are visible.
type Clause struct {
	ID          string
	Heading     string
	Segments    []Segment
	OnlyForRisk string
}

func text(s string) Segment { return Segment{Text: s} }

func edit(title, original, suggested string) Segment {
	return Segment{Edit: &EditSpan{RiskTitle: title, Original: original, Suggested: suggested}}
}

// DocumentTitle is the right panel's heading.
const DocumentTitle = "NDA (Non-Disclosure Agreement)"

var ndaClauses = []Clause{
	{
		ID: ClauseParties,
		Segments: []Segment{
			text("This Agreement is made between:\n\n" +
				"Disclosing Party: [Company A], located at [Address]\n" +
				"Receiving Party: [Company B], located at [Address]\n\n" +
				"Effective Date: [Insert Date]"),
		},
	},
	{
		ID:      ClauseConfidentialInfo,
		Heading: "Confidential Information",
		Segments: []Segment{
			text("\"Confidential Information\" includes all non-public, proprietary, or confidential information, "),
			edit("Untrackable Oral Disclosures",
				"whether oral or written",
				"whether oral or written, provided that oral disclosures are confirmed in writing and marked as confidential within 15 days"),
			text(", disclosed by the Disclosing Party to the Receiving Party."),
		},
	},
	{
		ID:      ClauseObligations,
		Heading: "Obligations of Confidentiality",
		Segments: []Segment{
			text("The Receiving Party agrees not to disclose, copy, or use the Confidential Information for any purpose other than evaluating a potential business relationship."),
			edit(LifecycleRiskTitle,
				"",
				" These obligations survive any early termination of this Agreement."),
		},
	},
	{
		ID:      ClauseExclusions,
		Heading: "Exclusions",
		Segments: []Segment{
			text("Confidential Information does not include information that is:\n" +
				"  • already known to the Receiving Party"),
			edit("Loophole: Unverified Prior Knowledge Claim",
				"",
				", as evidenced by written records created prior to disclosure"),
			text(",\n  • becomes publicly known without breach,\n  • is disclosed with prior written consent."),
		},
	},
	{
		ID:      ClauseTerm,
		Heading: "Term",
		Segments: []Segment{
			text("This Agreement shall remain in effect for two (2) years from the Effective Date, "),
			edit(LifecycleRiskTitle,
				"unless terminated earlier by either party with 30 days' notice",
				"unless terminated earlier by mutual written agreement or by the Disclosing Party with 30 days' notice"),
			text("."),
		},
	},
	{
		ID:      ClauseReturn,
		Heading: "Return or Destruction",
		Segments: []Segment{
			text("Upon termination, the Receiving Party shall return or destroy all Confidential Information "),
			edit("Vague Deadline: Unclear Return Timeline",
				"within a reasonable period",
				"within 10 business days of termination of this Agreement"),
			text("."),
			edit(LifecycleRiskTitle,
				"",
				" Return obligations apply however this Agreement ends, including early termination."),
		},
	},
	{
		ID:      ClauseNoLicense,
		Heading: "No License",
		Segments: []Segment{
			edit("Residual Knowledge Ambiguity",
				"Nothing in this Agreement grants any license or ownership rights under any intellectual property of the Disclosing Party",
				"Nothing in this Agreement grants any license or ownership rights, provided that the Receiving Party may retain and use residual knowledge in intangible form that cannot be identified as the Disclosing Party's Confidential Information"),
			text("."),
		},
	},
	{
		ID:      ClauseRemedies,
		Heading: "Remedies",
		Segments: []Segment{
			text("Any breach may result in irreparable harm. "),
			edit("Jurisdiction Gap: No Legal Venue Set",
				"The Disclosing Party is entitled to seek injunctive relief",
				"The Disclosing Party is entitled to seek injunctive relief in the courts of England and Wales [or relevant jurisdiction]"),
			edit(LifecycleRiskTitle,
				"",
				" Remedies remain available after termination by either party."),
			text(", in addition to other legal remedies."),
		},
	},
	{
		ID:          ClauseSurvival,
		Heading:     "Survival",
		OnlyForRisk: LifecycleRiskTitle,
		Segments: []Segment{
			edit(LifecycleRiskTitle,
				"",
				"The obligations of confidentiality set out in this Agreement survive termination, however effected, for a period of two (2) years."),
		},
	},
	{
		ID: ClauseSignatures,
		Segments: []Segment{
			text("IN WITNESS WHEREOF, the Parties have executed this Agreement as of the Effective Date.\n\n" +
				"COMPANY A:                         COMPANY B:\n" +
				"By:   ____________________         By:   ____________________\n" +
				"Name: ____________________         Name: ____________________\n" +
				"Title: ___________________         Title: ___________________"),
		},
	},
}

// EditStateFor decides how a risk's suggested edits render. Precedence:
// accepted > direct-apply mode > track-changes mode or previewed > original.
func (s *Session) EditStateFor(title string) EditState {
	if s.IsAccepted(title) {
		return EditApplied
	}
	if s.ReviewHasRun {
		switch {
		case s.Mode == ApplyDirect:
			return EditApplied
		case s.Mode == ApplyTrackChanges:
			return EditTracked
		}
	}
	if s.IsPreviewed(title) {
		return EditTracked
	}
	return EditOriginal
}

// Document returns the clauses to render for the current session state.
// Conditional clauses appear only while their owning risk's edits are
// visible as tracked or applied.
func (s *Session) Document() []Clause {
	out := make([]Clause, 0, len(ndaClauses))
	for _, c := range ndaClauses {
		if c.OnlyForRisk != "" && s.EditStateFor(c.OnlyForRisk) == EditOriginal {
			continue
		}
		out = append(out, c)
	}
	return out
}

// IsAccepted reports whether the user accepted a risk's suggested edit.
// Accepting an edit is independent of resolving the finding.
func (s *Session) IsAccepted(title string) bool {
	_, ok := s.accepted[title]
	return ok
}

// Accept applies a risk's suggested edit. Idempotent.
func (s *Session) Accept(title string) {
	if _, ok := s.accepted[title]; ok {
		return
	}
	s.accepted[title] = struct{}{}
	s.log.Info("edit accepted", map[string]interface{}{"title": title})
}

// RejectEdit withdraws an accepted edit, returning the clause to its
// pre-accept rendering.
func (s *Session) RejectEdit(title string) {
	delete(s.accepted, title)
}

// IsPreviewed reports whether a risk's edit was explicitly previewed.
func (s *Session) IsPreviewed(title string) bool {
	_, ok := s.previewed[title]
	return ok
}

// Preview shows a risk's edit as a tracked change regardless of the session
// apply mode. Idempotent.
func (s *Session) Preview(title string) {
	s.previewed[title] = struct{}{}
}
