package models

// CaseNature is the classified legal category of a document
type CaseNature string

const (
	CaseCriminal      CaseNature = "Criminal Case"
	CaseFamily        CaseNature = "Family Case"
	CaseProperty      CaseNature = "Property Case"
	CaseContract      CaseNature = "Contract Case"
	CaseEnvironmental CaseNature = "Environmental Case"
	CaseCivil         CaseNature = "Civil Case"
)

// KeywordCaseNatures lists the labels backed by keyword tables, in tie-break order
var KeywordCaseNatures = []CaseNature{
	CaseCriminal,
	CaseFamily,
	CaseProperty,
	CaseContract,
	CaseEnvironmental,
}

// CandidateCaseNatures returns the labels offered to a fallback classifier
func CandidateCaseNatures() []CaseNature {
	labels := make([]CaseNature, 0, len(KeywordCaseNatures)+1)
	labels = append(labels, KeywordCaseNatures...)
	return append(labels, CaseCivil)
}

// InsightBundle holds the static reference data attached to a case nature
type InsightBundle struct {
	IPCSections []string `json:"ipc_sections"`
	Remedies    []string `json:"remedies"`
	Lawyers     []string `json:"lawyers"`
}

// AnalysisResult is the response payload of a document analysis
type AnalysisResult struct {
	Summary     string     `json:"summary"`
	CaseNature  CaseNature `json:"case_nature"`
	RiskScore   int        `json:"risk_score"`
	Punishments string     `json:"punishments"`
	IPCSections []string   `json:"ipc_sections,omitempty"`
	Remedies    []string   `json:"remedies,omitempty"`
	Lawyers     []string   `json:"lawyers,omitempty"`
}
