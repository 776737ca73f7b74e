package synthesis

import (
	"time"

	"github.com/Wittering/wigu-synthesis/internal/johari"
	"github.com/Wittering/wigu-synthesis/internal/narrative"
	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// FallbackSummary is the recognizable placeholder executive summary of a
// fallback synthesis. Degraded quality is signalled through this text and a
// low confidence level, never through an error.
const FallbackSummary = "We could not complete a full synthesis this time. " +
	"This is a placeholder result; gather more responses and run the synthesis again."

// Fixed scores of the fallback synthesis.
const (
	fallbackAlignmentScore = 0.5
)

// fallbackSynthesis builds the deterministic fallback result: empty insight
// lists, the placeholder summary, alignment pinned at 0.5 and low confidence.
func fallbackSynthesis(id, sessionID string, generatedAt time.Time, reason string) *types.CareerSynthesis {
	empty := &themes.ThemeSets{
		SelfThemes:      []string{},
		AdvisorThemes:   []string{},
		CommonThemes:    []string{},
		UniqueToAdvisor: []string{},
		UniqueToSelf:    []string{},
	}
	emptyModel := &types.FiveInsightsModel{
		EnergisingStrengths:   []types.SynthesisInsight{},
		HiddenStrengths:       []types.SynthesisInsight{},
		OverusedTalents:       []types.SynthesisInsight{},
		AspirationalStrengths: []types.SynthesisInsight{},
		MisalignedEnergies:    []types.SynthesisInsight{},
		KeyRecommendations:    []string{},
	}

	return &types.CareerSynthesis{
		ID:                       id,
		SessionID:                sessionID,
		GeneratedAt:              generatedAt,
		SelfResponseIDs:          []string{},
		AdvisorResponseIDs:       []string{},
		ThemeSets:                empty.Record(),
		Insights:                 *emptyModel,
		Johari:                   *johari.Build(empty),
		Narrative:                *narrative.Compose(emptyModel, empty, nil),
		ExecutiveSummary:         FallbackSummary,
		StrategicRecommendations: []string{},
		AlignmentScore:           fallbackAlignmentScore,
		ConfidenceLevel:          types.ConfidenceLow,
		Metadata: map[string]string{
			"fallback":        "true",
			"fallback_reason": reason,
		},
	}
}
