// Package scoring computes the aggregate alignment and confidence numbers
// that summarize a synthesis run.
package scoring

import "github.com/Wittering/wigu-synthesis/internal/themes"

// AlignmentScore is the Jaccard-style overlap of the distinct self and
// advisor theme sets: |common| / |self ∪ advisor|. Zero when either side has
// no themes.
func AlignmentScore(sets *themes.ThemeSets) float64 {
	selfDistinct := themes.Distinct(sets.SelfThemes)
	advisorDistinct := themes.Distinct(sets.AdvisorThemes)
	if len(selfDistinct) == 0 || len(advisorDistinct) == 0 {
		return 0
	}

	union := make(map[string]bool, len(selfDistinct)+len(advisorDistinct))
	for _, t := range selfDistinct {
		union[t] = true
	}
	for _, t := range advisorDistinct {
		union[t] = true
	}
	if len(union) == 0 {
		return 0
	}
	return float64(len(sets.CommonThemes)) / float64(len(union))
}
