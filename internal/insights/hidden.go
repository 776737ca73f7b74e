package insights

import (
	"fmt"

	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// evidenceCredibilityFloor is the minimum average credibility weight of the
// advisors citing a theme before it can count as a hidden strength.
const evidenceCredibilityFloor = 0.6

// findHiddenStrengths emits an insight for every theme advisors cite at least
// three times while the person cites it at most once, provided the citing
// advisors are credible enough on average. These are strengths others see
// that the person does not claim.
func findHiddenStrengths(sets *themes.ThemeSets, self []types.Response, advisors []types.AdvisorResponse) []types.SynthesisInsight {
	selfCounts := sets.SelfCounts()
	advisorCounts := sets.AdvisorCounts()

	var out []types.SynthesisInsight
	for _, theme := range themes.Distinct(sets.AdvisorThemes) {
		ac := advisorCounts[theme]
		sc := selfCounts[theme]
		if ac < 3 || sc > 1 {
			continue
		}

		citing := citingAdvisors(advisors, theme)
		cred := averageCredibility(citing)
		if cred < evidenceCredibilityFloor {
			continue
		}

		label := displayTheme(theme)
		out = append(out, types.SynthesisInsight{
			ID:                  insightID(types.CategoryBlindspot, theme),
			Title:               fmt.Sprintf("Others see %s in you", label),
			Description:         fmt.Sprintf("Your advisors raised %s %d times; you barely mentioned it. Credible observers agree on this one.", label, ac),
			Category:            types.CategoryBlindspot,
			SupportingEvidence:  advisorQuotes(advisors, theme, 3),
			StrategicImportance: importanceFromCounts(ac + 2),
			ActionableAdvice:    fmt.Sprintf("Ask one of your advisors for a concrete story of when your %s made a difference, then retell it as your own.", label),
			RelatedThemes:       []string{theme},
			Confidence:          clamp01(cred * (0.5 + 0.1*float64(ac))),
		})
	}
	sortInsightsByTheme(out)
	return out
}

// averageCredibility returns the mean credibility weight of the advisors, or
// zero when the list is empty.
func averageCredibility(advisors []types.AdvisorResponse) float64 {
	if len(advisors) == 0 {
		return 0
	}
	total := 0.0
	for i := range advisors {
		total += advisors[i].CredibilityWeight
	}
	return total / float64(len(advisors))
}
