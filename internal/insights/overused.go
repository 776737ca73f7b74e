package insights

import (
	"fmt"

	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// selfConfidenceFloor is the minimum self-reported confidence in a theme
// (averaged quality score of the self responses citing it) for the
// overestimation signal to fire.
const selfConfidenceFloor = 0.7

// findOverusedTalents emits an insight for every theme the person cites at
// least three times while advisors cite it at most once, provided the person
// is clearly confident about it. A strength leaned on hard at home that
// observers don't echo back is a candidate overestimation.
func findOverusedTalents(sets *themes.ThemeSets, self []types.Response, advisors []types.AdvisorResponse) []types.SynthesisInsight {
	selfCounts := sets.SelfCounts()
	advisorCounts := sets.AdvisorCounts()

	var out []types.SynthesisInsight
	for _, theme := range themes.Distinct(sets.SelfThemes) {
		sc := selfCounts[theme]
		ac := advisorCounts[theme]
		if sc < 3 || ac > 1 {
			continue
		}

		citing := citingSelf(self, theme)
		selfConfidence := averageQuality(citing)
		if selfConfidence < selfConfidenceFloor {
			continue
		}

		label := displayTheme(theme)
		out = append(out, types.SynthesisInsight{
			ID:                  insightID(types.CategoryOverestimation, theme),
			Title:               fmt.Sprintf("You may be over-indexing on %s", label),
			Description:         fmt.Sprintf("You raised %s %d times with high confidence, but your advisors mentioned it %d time(s). The signal may not be landing the way you assume.", label, sc, ac),
			Category:            types.CategoryOverestimation,
			SupportingEvidence:  selfQuotes(self, theme, 3),
			StrategicImportance: importanceFromCounts(sc),
			ActionableAdvice:    fmt.Sprintf("Test the gap: ask two advisors directly how visible your %s is to them.", label),
			RelatedThemes:       []string{theme},
			Confidence:          clamp01(0.5 + 0.05*float64(sc-ac)),
		})
	}
	sortInsightsByTheme(out)
	return out
}

// averageQuality returns the mean quality score of the responses, or zero
// when the list is empty.
func averageQuality(responses []types.Response) float64 {
	if len(responses) == 0 {
		return 0
	}
	total := 0.0
	for i := range responses {
		total += responses[i].QualityScore
	}
	return total / float64(len(responses))
}
