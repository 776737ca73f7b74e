package types

// ExperimentType categorizes what a micro-experiment is probing.
type ExperimentType string

// Experiment types.
const (
	ExperimentVisibility  ExperimentType = "visibility"
	ExperimentSkillGrowth ExperimentType = "skill_growth"
	ExperimentFeedback    ExperimentType = "feedback"
	ExperimentPositioning ExperimentType = "positioning"
)

// ExperimentScope bounds where an experiment runs.
type ExperimentScope string

// Experiment scopes.
const (
	ScopePersonal       ExperimentScope = "personal"
	ScopeTeam           ExperimentScope = "team"
	ScopeOrganisational ExperimentScope = "organisational"
	ScopeExternal       ExperimentScope = "external"
)

// ExperimentPriority ranks how urgently an experiment should start.
type ExperimentPriority string

// Experiment priorities.
const (
	PriorityLow    ExperimentPriority = "low"
	PriorityMedium ExperimentPriority = "medium"
	PriorityHigh   ExperimentPriority = "high"
	PriorityUrgent ExperimentPriority = "urgent"
)

// Metric is a single measurable signal attached to an experiment.
type Metric struct {
	Name        string `json:"name"`
	Target      string `json:"target"`
	Measurement string `json:"measurement"`
}

// CareerExperiment is a concrete, time-boxed action derived from the
// synthesis: what to try, for how long, and how to tell whether it worked.
type CareerExperiment struct {
	Title                 string             `json:"title"`
	Description           string             `json:"description"`
	Type                  ExperimentType     `json:"type"`
	Hypothesis            string             `json:"hypothesis"`
	RelatedInsightIDs     []string           `json:"related_insight_ids"`
	Scope                 ExperimentScope    `json:"scope"`
	EstimatedDurationDays int                `json:"estimated_duration_days"`
	SuccessCriteria       []string           `json:"success_criteria"`
	Metrics               []Metric           `json:"metrics"`
	RequiredResources     []string           `json:"required_resources"`
	PotentialBarriers     []string           `json:"potential_barriers"`
	Priority              ExperimentPriority `json:"priority"`
	Tags                  []string           `json:"tags"`
	FeasibilityScore      float64            `json:"feasibility_score"` // [0,1]
}
