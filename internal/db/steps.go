package db

// Artifact step names. One row per (run, step).
const (
	StepThemeSets    = "theme_sets"
	StepFiveInsights = "five_insights"
	StepJohariWindow = "johari_window"
	StepNarrative    = "narrative"
	StepSynthesis    = "synthesis"
)

// Artifact categories group steps for querying.
const (
	CategoryReconciliation = "reconciliation"
	CategoryInsights       = "insights"
	CategorySynthesis      = "synthesis"
)
