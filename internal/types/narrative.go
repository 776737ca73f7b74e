package types

// TruthKind says which rule produced a truth.
type TruthKind string

// Truth kinds in ranked order.
const (
	TruthEnergisingStrength TruthKind = "energising_strength"
	TruthSharedTheme        TruthKind = "shared_theme"
	TruthCoreValue          TruthKind = "core_value"
)

// Truth is one ranked certainty in the Three Truths frame: something both the
// person and their advisors would sign off on.
type Truth struct {
	Kind       TruthKind `json:"kind"`
	Statement  string    `json:"statement"`
	Theme      string    `json:"theme,omitempty"`
	Confidence float64   `json:"confidence"` // [0,1]
	Evidence   []string  `json:"evidence"`   // source-prefixed quotes, max 100 chars each
}

// TensionKind says which gap a tension frames.
type TensionKind string

// Tension kinds.
const (
	TensionRecognitionGap     TensionKind = "recognition_gap"
	TensionDevelopmentTension TensionKind = "development_tension"
)

// Tension is one of the Two Tensions: a gap between how the person operates
// and how they are seen, framed as an opportunity.
type Tension struct {
	Kind             TensionKind `json:"kind"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Theme            string      `json:"theme,omitempty"`
	OpportunityScore float64     `json:"opportunity_score"` // [0,1]
}

// NarrativeFrame is the compact Three Truths / Two Tensions / One Experiment
// structure the composer produces.
type NarrativeFrame struct {
	Truths     []Truth          `json:"truths"`   // up to 3
	Tensions   []Tension        `json:"tensions"` // up to 2
	Experiment CareerExperiment `json:"experiment"`
}
