package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Wittering/wigu-synthesis/internal/types"
)

// developmentKeywords are the advisor phrasings that signal a growth
// suggestion rather than a plain observation.
var developmentKeywords = []string{
	"develop", "improve", "grow", "learn", "build", "strengthen", "expand",
}

// developmentQualityFloor is the minimum response quality for a development
// suggestion to be taken seriously.
const developmentQualityFloor = 0.6

// maxDevelopmentInsights caps the aspirational-strength list.
const maxDevelopmentInsights = 5

// findDevelopmentOpportunities scans advisor responses for development
// language. One insight per (advisor response, theme) pair, deduplicated by
// normalized title, ranked by strategic importance and truncated to the cap.
func findDevelopmentOpportunities(advisors []types.AdvisorResponse) []types.SynthesisInsight {
	seen := make(map[string]bool)
	var out []types.SynthesisInsight

	for i := range advisors {
		resp := &advisors[i]
		if resp.QualityScore < developmentQualityFloor {
			continue
		}
		keyword := matchDevelopmentKeyword(resp.Text)
		if keyword == "" {
			continue
		}

		for _, theme := range resp.KeyThemes {
			label := displayTheme(theme)
			title := fmt.Sprintf("Grow your %s deliberately", label)
			normalized := strings.ToLower(strings.TrimSpace(title))
			if seen[normalized] {
				continue
			}
			seen[normalized] = true

			importance := 3
			if resp.QualityScore >= 0.8 {
				importance = 4
			}

			out = append(out, types.SynthesisInsight{
				ID:                  insightID(types.CategoryDevelopment, theme),
				Title:               title,
				Description:         fmt.Sprintf("An advisor suggested you %s in the area of %s.", keyword, label),
				Category:            types.CategoryDevelopment,
				SupportingEvidence:  []string{quote("Advisor", resp.Text, maxQuoteLen)},
				StrategicImportance: importance,
				ActionableAdvice:    fmt.Sprintf("Pick one small, visible piece of work this month that stretches your %s.", label),
				RelatedThemes:       []string{theme},
				Confidence:          clamp01(0.4 + 0.4*resp.QualityScore),
			})
		}
	}

	// Rank by importance, tie-break by title for a stable order, then cap.
	sort.Slice(out, func(i, j int) bool {
		if out[i].StrategicImportance != out[j].StrategicImportance {
			return out[i].StrategicImportance > out[j].StrategicImportance
		}
		return out[i].Title < out[j].Title
	})
	if len(out) > maxDevelopmentInsights {
		out = out[:maxDevelopmentInsights]
	}
	return out
}

// matchDevelopmentKeyword returns the first development keyword present in
// the text, or "" when none match.
func matchDevelopmentKeyword(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range developmentKeywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return ""
}
