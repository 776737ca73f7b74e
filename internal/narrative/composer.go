// Package narrative composes the compact Three Truths / Two Tensions / One
// Experiment frame from the categorized insights and reconciled themes.
package narrative

import (
	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// Compose builds the narrative frame. Pure function of its inputs; every
// selection rule breaks ties deterministically.
func Compose(model *types.FiveInsightsModel, sets *themes.ThemeSets, self []types.Response) *types.NarrativeFrame {
	return &types.NarrativeFrame{
		Truths:     composeTruths(model, sets, self),
		Tensions:   composeTensions(model),
		Experiment: composeExperiment(model, sets),
	}
}

// topByConfidence returns the highest-confidence insight of a list, breaking
// ties by title. Nil for an empty list.
func topByConfidence(list []types.SynthesisInsight) *types.SynthesisInsight {
	if len(list) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(list); i++ {
		if list[i].Confidence > list[best].Confidence ||
			(list[i].Confidence == list[best].Confidence && list[i].Title < list[best].Title) {
			best = i
		}
	}
	return &list[best]
}

// topByImportance returns the highest-importance insight of a list, breaking
// ties by title. Nil for an empty list.
func topByImportance(list []types.SynthesisInsight) *types.SynthesisInsight {
	if len(list) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(list); i++ {
		if list[i].StrategicImportance > list[best].StrategicImportance ||
			(list[i].StrategicImportance == list[best].StrategicImportance && list[i].Title < list[best].Title) {
			best = i
		}
	}
	return &list[best]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
