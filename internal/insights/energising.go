package insights

import (
	"fmt"

	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// findEnergisingStrengths emits an insight for every theme cited at least
// twice on each side with at least two evidence quotes from each side. These
// are the strengths both the person and their advisors keep coming back to.
func findEnergisingStrengths(sets *themes.ThemeSets, self []types.Response, advisors []types.AdvisorResponse) []types.SynthesisInsight {
	selfCounts := sets.SelfCounts()
	advisorCounts := sets.AdvisorCounts()

	var out []types.SynthesisInsight
	for _, theme := range sets.CommonThemes {
		sc, ac := selfCounts[theme], advisorCounts[theme]
		if sc < 2 || ac < 2 {
			continue
		}

		selfEv := selfQuotes(self, theme, 2)
		advisorEv := advisorQuotes(advisors, theme, 2)
		if len(selfEv) < 2 || len(advisorEv) < 2 {
			continue
		}

		confidence := 0.5 + 0.05*float64(sc+ac)
		if confidence > 1 {
			confidence = 1
		}
		// Evidence exists on both sides when we reach this point.
		confidence = clamp01(confidence + 0.2)

		label := displayTheme(theme)
		out = append(out, types.SynthesisInsight{
			ID:          insightID(types.CategoryStrength, theme),
			Title:       fmt.Sprintf("%s energises you and shows", titleCase(label)),
			Description: fmt.Sprintf("You name %s often and your advisors independently confirm it (%d self mentions, %d advisor mentions).", label, sc, ac),
			Category:    types.CategoryStrength,
			SupportingEvidence: append(append([]string{}, selfEv...),
				advisorEv...),
			StrategicImportance: importanceFromCounts(sc + ac),
			ActionableAdvice:    fmt.Sprintf("Seek out work that puts %s at the centre of your week, not the edges.", label),
			RelatedThemes:       []string{theme},
			Confidence:          confidence,
		})
	}
	sortInsightsByTheme(out)
	return out
}

// importanceFromCounts maps combined mention counts onto the 1..5
// strategic-importance scale.
func importanceFromCounts(combined int) int {
	imp := (combined + 1) / 2
	if imp < 1 {
		imp = 1
	}
	if imp > 5 {
		imp = 5
	}
	return imp
}
