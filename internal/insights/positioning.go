package insights

import (
	"fmt"
	"strings"

	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// strategicLanguage is the vocabulary that marks career-capital phrasing.
// Static configuration; deliberately English/Australian professional idiom.
var strategicLanguage = []string{
	"strategic", "strategy", "commercial", "enterprise", "transformation",
	"stakeholder", "executive", "growth", "market", "vision", "influence",
	"outcome", "impact", "value",
}

// findPositioningOpportunities compares, for each shared theme, the
// vocabulary advisors use against the vocabulary the person uses. When the
// advisors' framing scores higher on strategic language, the person is
// underselling a recognised strength and gets a repositioning insight.
func findPositioningOpportunities(sets *themes.ThemeSets, self []types.Response, advisors []types.AdvisorResponse) []types.SynthesisInsight {
	var out []types.SynthesisInsight
	for _, theme := range sets.CommonThemes {
		selfScore := strategicLanguageScore(textsCitingSelf(self, theme))
		advisorScore := strategicLanguageScore(textsCitingAdvisors(advisors, theme))
		if advisorScore <= selfScore {
			continue
		}

		label := displayTheme(theme)
		out = append(out, types.SynthesisInsight{
			ID:          insightID(types.CategoryPositioning, theme),
			Title:       fmt.Sprintf("Reposition how you talk about %s", label),
			Description: fmt.Sprintf("Your advisors describe your %s in more strategic terms than you do. The capability is recognised; the framing is not.", label),
			Category:    types.CategoryPositioning,
			SupportingEvidence: append(selfQuotes(self, theme, 1),
				advisorQuotes(advisors, theme, 1)...),
			StrategicImportance: 3,
			ActionableAdvice:    fmt.Sprintf("Borrow your advisors' phrasing next time %s comes up in a review or interview.", label),
			RelatedThemes:       []string{theme},
			Confidence:          clamp01(0.5 + 0.1*(advisorScore-selfScore)),
		})
	}
	sortInsightsByTheme(out)
	return out
}

// strategicLanguageScore counts strategic-vocabulary hits per text,
// normalized by the number of texts. Zero for an empty input.
func strategicLanguageScore(texts []string) float64 {
	if len(texts) == 0 {
		return 0
	}
	hits := 0
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, word := range strategicLanguage {
			if strings.Contains(lower, word) {
				hits++
			}
		}
	}
	return float64(hits) / float64(len(texts))
}

func textsCitingSelf(self []types.Response, theme string) []string {
	var texts []string
	for i := range self {
		if self[i].HasTheme(theme) {
			texts = append(texts, self[i].Text)
		}
	}
	return texts
}

func textsCitingAdvisors(advisors []types.AdvisorResponse, theme string) []string {
	var texts []string
	for i := range advisors {
		if advisors[i].HasTheme(theme) {
			texts = append(texts, advisors[i].Text)
		}
	}
	return texts
}
