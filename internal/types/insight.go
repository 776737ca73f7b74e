package types

// InsightCategory classifies what kind of perception signal an insight carries.
type InsightCategory string

// Insight categories. A theme may legitimately surface in more than one
// category (an energising strength can also be flagged for repositioning).
const (
	CategoryStrength       InsightCategory = "strength"
	CategoryBlindspot      InsightCategory = "blindspot"
	CategoryOverestimation InsightCategory = "overestimation"
	CategoryDevelopment    InsightCategory = "development"
	CategoryPositioning    InsightCategory = "positioning"
)

// categoryLabels maps each insight category to its display string.
var categoryLabels = map[InsightCategory]string{
	CategoryStrength:       "Energising Strength",
	CategoryBlindspot:      "Hidden Strength",
	CategoryOverestimation: "Overused Talent",
	CategoryDevelopment:    "Aspirational Strength",
	CategoryPositioning:    "Misaligned Energy",
}

// Label returns the human-readable display string for the category.
func (c InsightCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// SynthesisInsight is the unit of output for every categorization step.
// Immutable once created: the categorizer builds a complete record and no
// downstream consumer mutates it.
type SynthesisInsight struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Category            InsightCategory `json:"category"`
	SupportingEvidence  []string        `json:"supporting_evidence"`
	StrategicImportance int             `json:"strategic_importance"` // 1..5
	ActionableAdvice    string          `json:"actionable_advice"`
	RelatedThemes       []string        `json:"related_themes"`
	Confidence          float64         `json:"confidence"` // [0,1]
}
