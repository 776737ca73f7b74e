package types

import "time"

// ConfidenceLevel buckets the overall confidence in a synthesis run.
type ConfidenceLevel string

// Confidence levels.
const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// confidenceLabels maps each confidence level to its display string.
var confidenceLabels = map[ConfidenceLevel]string{
	ConfidenceLow:    "Low",
	ConfidenceMedium: "Medium",
	ConfidenceHigh:   "High",
}

// Label returns the human-readable display string for the confidence level.
func (c ConfidenceLevel) Label() string {
	if label, ok := confidenceLabels[c]; ok {
		return label
	}
	return string(c)
}

// CareerSynthesis is the aggregate result of one synthesis run. It is created
// whole by the assembler and never partially updated: callers either get a
// complete successful result or a complete, clearly marked fallback result.
type CareerSynthesis struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	GeneratedAt time.Time `json:"generated_at"`

	SelfResponseIDs    []string `json:"self_response_ids"`
	AdvisorResponseIDs []string `json:"advisor_response_ids"`

	ThemeSets ThemeSets         `json:"theme_sets"`
	Insights  FiveInsightsModel `json:"insights"`
	Johari    JohariWindow      `json:"johari_window"`
	Narrative NarrativeFrame    `json:"narrative"`

	ExecutiveSummary         string   `json:"executive_summary"`
	StrategicRecommendations []string `json:"strategic_recommendations"`

	AlignmentScore  float64         `json:"alignment_score"` // [0,1]
	ConfidenceLevel ConfidenceLevel `json:"confidence_level"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

// IsFallback reports whether this synthesis is the deterministic fallback
// produced when a run could not complete normally.
func (s *CareerSynthesis) IsFallback() bool {
	return s.Metadata["fallback"] == "true"
}
