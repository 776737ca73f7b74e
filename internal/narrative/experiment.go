package narrative

import (
	"fmt"

	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// composeExperiment picks the single micro-experiment by priority order:
// hidden strength first, then aspirational strength, then a generic
// visibility-building experiment keyed off the most frequent self theme.
func composeExperiment(model *types.FiveInsightsModel, sets *themes.ThemeSets) types.CareerExperiment {
	if top := topByImportance(model.HiddenStrengths); top != nil {
		return finalize(hiddenStrengthExperiment(top))
	}
	if top := topByImportance(model.AspirationalStrengths); top != nil {
		return finalize(aspirationalExperiment(top))
	}
	return finalize(visibilityExperiment(themes.MostFrequent(sets.SelfThemes)))
}

func hiddenStrengthExperiment(insight *types.SynthesisInsight) types.CareerExperiment {
	theme := primaryTheme(insight)
	label := phrase(theme)
	return types.CareerExperiment{
		Title:                 fmt.Sprintf("Claim your %s in public", label),
		Description:           fmt.Sprintf("Others already see your %s. Run one visible piece of work that forces you to name it yourself.", label),
		Type:                  types.ExperimentVisibility,
		Hypothesis:            fmt.Sprintf("If I present work that showcases my %s, I will start to own a strength others already credit me with.", label),
		RelatedInsightIDs:     []string{insight.ID},
		Scope:                 types.ScopeTeam,
		EstimatedDurationDays: 14,
		SuccessCriteria: []string{
			fmt.Sprintf("Delivered one piece of visible work centred on %s", label),
			"Received direct feedback from at least two colleagues",
		},
		Metrics: []types.Metric{
			{Name: "feedback_count", Target: "2", Measurement: "unsolicited or requested feedback mentions"},
		},
		RequiredResources: []string{"One recurring team forum", "A supportive advisor"},
		PotentialBarriers: []string{"Discomfort with self-promotion"},
		Priority:          types.PriorityHigh,
		Tags:              []string{theme, "recognition"},
	}
}

func aspirationalExperiment(insight *types.SynthesisInsight) types.CareerExperiment {
	theme := primaryTheme(insight)
	label := phrase(theme)
	return types.CareerExperiment{
		Title:                 fmt.Sprintf("Stretch into %s", label),
		Description:           fmt.Sprintf("Your advisors flagged %s as the place to grow. Take on one bounded task that exercises it.", label),
		Type:                  types.ExperimentSkillGrowth,
		Hypothesis:            fmt.Sprintf("If I practise %s on a small real task, I will learn whether it energises me as much as my advisors expect.", label),
		RelatedInsightIDs:     []string{insight.ID},
		Scope:                 types.ScopePersonal,
		EstimatedDurationDays: 21,
		SuccessCriteria: []string{
			fmt.Sprintf("Completed one task that required %s", label),
			"Captured a written reflection on how it felt",
		},
		Metrics: []types.Metric{
			{Name: "tasks_completed", Target: "1", Measurement: "bounded stretch tasks finished"},
		},
		RequiredResources: []string{"Manager sign-off on one stretch task"},
		PotentialBarriers: []string{"Day-to-day workload", "Fear of visible failure"},
		Priority:          types.PriorityMedium,
		Tags:              []string{theme, "growth"},
	}
}

// visibilityExperiment is the generic fallback when no insight-driven
// experiment is available. Keyed off the most frequent self-reported theme;
// degrades to a plain visibility routine when even that is missing.
func visibilityExperiment(theme string) types.CareerExperiment {
	label := phrase(theme)
	if theme == "" {
		label = "your strongest work"
	}
	exp := types.CareerExperiment{
		Title:                 "Build visibility for what you do best",
		Description:           fmt.Sprintf("Make %s visible beyond your immediate circle once a week.", label),
		Type:                  types.ExperimentVisibility,
		Hypothesis:            "If my best work is seen more widely, external feedback will sharpen my self-picture.",
		RelatedInsightIDs:     []string{},
		Scope:                 types.ScopePersonal,
		EstimatedDurationDays: 7,
		SuccessCriteria: []string{
			"Shared one piece of work outside the immediate team each week",
		},
		Metrics: []types.Metric{
			{Name: "shares", Target: "1/week", Measurement: "work shared beyond the immediate team"},
		},
		RequiredResources: []string{},
		PotentialBarriers: []string{},
		Priority:          types.PriorityMedium,
	}
	if theme != "" {
		exp.Tags = []string{theme, "visibility"}
	} else {
		exp.Tags = []string{"visibility"}
	}
	return exp
}

// finalize computes the feasibility score for the chosen experiment.
func finalize(exp types.CareerExperiment) types.CareerExperiment {
	exp.FeasibilityScore = feasibilityScore(&exp)
	return exp
}

// feasibilityScore starts at a 0.5 base and adjusts for duration, barrier
// count and priority, clamped to [0,1].
func feasibilityScore(exp *types.CareerExperiment) float64 {
	score := 0.5

	switch {
	case exp.EstimatedDurationDays <= 7:
		score += 0.3
	case exp.EstimatedDurationDays <= 30:
		score += 0.1
	default:
		score -= 0.1
	}

	switch barriers := len(exp.PotentialBarriers); {
	case barriers == 0:
		score += 0.2
	case barriers <= 2:
		score += 0.1
	default:
		score -= 0.1
	}

	switch exp.Priority {
	case types.PriorityUrgent:
		score += 0.2
	case types.PriorityHigh:
		score += 0.1
	case types.PriorityMedium:
		// no adjustment
	case types.PriorityLow:
		score -= 0.1
	}

	return clamp01(score)
}
