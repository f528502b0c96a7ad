package review

type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
)

// RiskItem is a predefined finding about the demo NDA. The catalog is fixed
// at startup; items are never created or destroyed at runtime.
type RiskItem struct {
	Title        string
	Description  string
	Severity     Severity
	ScrollTarget string
}

// RiskContent is the detail card shown for a finding: the flagged original
// wording, the suggested replacement, and why the replacement helps.
type RiskContent struct {
	Description string
	Original    string
	Suggested   string
	Rationale   string
}

// LifecycleRiskTitle names the one finding whose suggested edits span
// several clauses plus a conditionally rendered Survival clause.
const LifecycleRiskTitle = "Premature Exit: Unilateral Early Termination"

var ipProtectionItems = []RiskItem{
	{
		Title: "Loophole: Unverified Prior Knowledge Claim",
		Description: "This clause lacks an explicit prohibition on reverse engineering, decompiling, or disassembling disclosed materials. Without this restriction, the Receiving Party could legally analyze and replicate proprietary information, risking loss of competitive advantage.\n\n" +
			"Adding a clear ban on reverse engineering would help protect proprietary assets.",
		Severity:     SeverityHigh,
		ScrollTarget: ClauseExclusions,
	},
	{
		Title: "Premature Exit: Unilateral Early Termination",
		Description: "This NDA does not clearly define ownership of intellectual property, leaving room for disputes over rights to derivatives, improvements, or modifications based on disclosed information. Without clarification, the Receiving Party could claim ownership over developments inspired by Confidential Information. \n\n" +
			"Add a section to this agreement specifying ownership of IP.",
		Severity:     SeverityHigh,
		ScrollTarget: ClauseTerm,
	},
	{
		Title:        "Untrackable Oral Disclosures",
		Description:  "Include definition and ownership terms for derivative works",
		Severity:     SeverityHigh,
		ScrollTarget: ClauseConfidentialInfo,
	},
}

var enforceabilityItems = []RiskItem{
	{
		Title:        "Vague Deadline: Unclear Return Timeline",
		Description:  "Add specific language about irreparable harm and right to injunction",
		Severity:     SeverityMedium,
		ScrollTarget: ClauseReturn,
	},
	{
		Title:        "Jurisdiction Gap: No Legal Venue Set",
		Description:  "Specify exact duration of confidentiality obligations post-termination",
		Severity:     SeverityMedium,
		ScrollTarget: ClauseRemedies,
	},
	{
		Title:        "Residual Knowledge Ambiguity",
		Description:  "Add clear definitions for residual knowledge and its handling",
		Severity:     SeverityMedium,
		ScrollTarget: ClauseNoLicense,
	},
}

// Catalog returns the full ordered list of findings: IP-protection items
// followed by enforceability items.
func Catalog() []RiskItem {
	out := make([]RiskItem, 0, len(ipProtectionItems)+len(enforceabilityItems))
	out = append(out, ipProtectionItems...)
	out = append(out, enforceabilityItems...)
	return out
}

// RiskByTitle looks a finding up by its title, the catalog's unique key.
func RiskByTitle(title string) (RiskItem, bool) {
	for _, item := range Catalog() {
		if item.Title == title {
			return item, true
		}
	}
	return RiskItem{}, false
}

var riskContents = map[string]RiskContent{
	"Loophole: Unverified Prior Knowledge Claim": {
		Description: "Certain exclusions allow the Receiving Party to claim they already knew information without any proof, creating a potential loophole for misuse.",
		Original:    "\"...information that is already known to the Receiving Party...\"",
		Suggested:   "\"...information that is already known to the Receiving Party, as evidenced by written records created prior to disclosure.\"",
		Rationale:   "Adds a documentation requirement, preventing false retrospective claims and preserving the NDA's enforceability.",
	},
	"Premature Exit: Unilateral Early Termination": {
		Description: "Allowing either party to terminate at will undermines the confidentiality period and could expose the Disclosing Party to post-termination misuse.",
		Original:    "\"…unless terminated earlier by either party with 30 days' notice.\"",
		Suggested:   "\"…unless terminated earlier by mutual written agreement or by the Disclosing Party with 30 days' notice.\"",
		Rationale:   "Prevents the Receiving Party from exiting unilaterally while still in possession of sensitive information, giving the Disclosing Party more control.",
	},
	"Untrackable Oral Disclosures": {
		Description: "The agreement treats oral and written disclosures equally but provides no way to verify oral information was actually disclosed, making enforcement difficult.",
		Original:    "\"…whether oral or written…\"",
		Suggested:   "\"…whether oral or written, provided that oral disclosures are confirmed in writing and marked as confidential within 15 days.\"",
		Rationale:   "Introduces a record-keeping requirement that strengthens evidentiary support for oral disclosures.",
	},
	"Vague Deadline: Unclear Return Timeline": {
		Description: "\"Reasonable period\" is subjective and could delay the return or destruction of sensitive materials.",
		Original:    "\"…shall return or destroy all Confidential Information within a reasonable period.\"",
		Suggested:   "\"…shall return or destroy all Confidential Information within 10 business days of termination of this Agreement.\"",
		Rationale:   "Creates a clear, enforceable timeline, helping avoid disputes and delays.",
	},
	"Jurisdiction Gap: No Legal Venue Set": {
		Description: "The remedies clause allows for injunctive relief but does not specify the legal jurisdiction, opening the door to venue disputes.",
		Original:    "\"The Disclosing Party is entitled to seek injunctive relief…\"",
		Suggested:   "\"The Disclosing Party is entitled to seek injunctive relief in the courts of England and Wales [or relevant jurisdiction]…\"",
		Rationale:   "Establishes where legal disputes will be resolved, ensuring smoother enforcement.",
	},
	"Residual Knowledge Ambiguity": {
		Description: "Without mentioning residuals, the NDA may be interpreted too strictly, potentially preventing the Receiving Party from using general knowledge acquired during discussions.",
		Original:    "\"Nothing in this Agreement grants any license or ownership rights…\"",
		Suggested:   "\"Nothing in this Agreement grants any license or ownership rights, provided that the Receiving Party may retain and use residual knowledge in intangible form that cannot be identified as the Disclosing Party's Confidential Information.\"",
		Rationale:   "Clarifies boundaries, balancing IP protection with practical limits on memory and operational use.",
	},
}

var placeholderContent = RiskContent{
	Description: "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
	Original:    "\"Lorem ipsum dolor sit amet, consectetur adipiscing elit...\"",
	Suggested:   "\"Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.\"",
	Rationale:   "Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.",
}

// ContentForRisk returns the detail card for a finding. Unknown titles get
// placeholder copy rather than an error; the demo never surfaces failures.
func ContentForRisk(title string) RiskContent {
	if c, ok := riskContents[title]; ok {
		return c
	}
	return placeholderContent
}
