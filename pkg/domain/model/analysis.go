package model

// Severity levels reported by the analyzer.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Issue is a single finding produced by the analyzer for one file.
type Issue struct {
	RuleID     string `json:"rule_id" firestore:"RuleID"`
	Severity   string `json:"severity" firestore:"Severity"`
	Message    string `json:"message" firestore:"Message"`
	Line       int    `json:"line" firestore:"Line"`
	Suggestion string `json:"suggestion,omitempty" firestore:"Suggestion"`
}

// AnalyzeOptions is passed through to the analyzer untouched.
type AnalyzeOptions struct {
	Language    string `json:"language,omitempty"`
	TargetLevel string `json:"target_level,omitempty"`
}

// AnalysisOutcome is the analyzer's verdict for one file. Confidence is in
// [0, 1].
type AnalysisOutcome struct {
	Issues     []Issue `json:"issues"`
	Confidence float64 `json:"confidence"`
}
