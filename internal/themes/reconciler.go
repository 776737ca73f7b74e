// Package themes reconciles the theme tags surfaced in self and advisor
// responses into the shared and divergent sets the rest of the engine works
// from. All operations are pure functions of their inputs; theme equality is
// case-sensitive exact string match on the tag produced by the tagging
// collaborator.
package themes

import "github.com/Wittering/wigu-synthesis/internal/types"

// ThemeSets holds the reconciled view of both response groups. SelfThemes and
// AdvisorThemes are order-preserving multisets (duplicates carry frequency
// information); the derived sets contain distinct themes in first-appearance
// order.
type ThemeSets struct {
	SelfThemes    []string `json:"self_themes"`
	AdvisorThemes []string `json:"advisor_themes"`

	CommonThemes    []string `json:"common_themes"`
	UniqueToAdvisor []string `json:"unique_to_advisor"`
	UniqueToSelf    []string `json:"unique_to_self"`
}

// Reconcile extracts the theme multisets from both response lists and derives
// the common and one-sided sets.
func Reconcile(self []types.Response, advisors []types.AdvisorResponse) *ThemeSets {
	sets := &ThemeSets{
		SelfThemes:    make([]string, 0),
		AdvisorThemes: make([]string, 0),
	}

	for _, r := range self {
		sets.SelfThemes = append(sets.SelfThemes, r.KeyThemes...)
	}
	for _, r := range advisors {
		sets.AdvisorThemes = append(sets.AdvisorThemes, r.KeyThemes...)
	}

	selfDistinct := Distinct(sets.SelfThemes)
	advisorDistinct := Distinct(sets.AdvisorThemes)
	selfSet := toSet(selfDistinct)
	advisorSet := toSet(advisorDistinct)

	sets.CommonThemes = make([]string, 0)
	sets.UniqueToSelf = make([]string, 0)
	for _, t := range selfDistinct {
		if advisorSet[t] {
			sets.CommonThemes = append(sets.CommonThemes, t)
		} else {
			sets.UniqueToSelf = append(sets.UniqueToSelf, t)
		}
	}

	sets.UniqueToAdvisor = make([]string, 0)
	for _, t := range advisorDistinct {
		if !selfSet[t] {
			sets.UniqueToAdvisor = append(sets.UniqueToAdvisor, t)
		}
	}

	return sets
}

// Record converts the sets to the wire-format record carried on a synthesis.
func (s *ThemeSets) Record() types.ThemeSets {
	return types.ThemeSets(*s)
}

// SelfCounts returns per-theme frequencies over the self multiset.
func (s *ThemeSets) SelfCounts() map[string]int {
	return Counts(s.SelfThemes)
}

// AdvisorCounts returns per-theme frequencies over the advisor multiset.
func (s *ThemeSets) AdvisorCounts() map[string]int {
	return Counts(s.AdvisorThemes)
}

// Mentioned returns the distinct union of both sides in first-appearance
// order (self first, then advisor).
func (s *ThemeSets) Mentioned() []string {
	return Distinct(append(append([]string{}, s.SelfThemes...), s.AdvisorThemes...))
}

// Counts builds a frequency map over a theme multiset.
func Counts(themes []string) map[string]int {
	counts := make(map[string]int, len(themes))
	for _, t := range themes {
		counts[t]++
	}
	return counts
}

// Distinct returns the distinct themes of a multiset in first-appearance order.
func Distinct(themes []string) []string {
	seen := make(map[string]bool, len(themes))
	out := make([]string, 0, len(themes))
	for _, t := range themes {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// MostFrequent returns the theme with the highest count in the multiset,
// breaking ties by first appearance. Returns "" for an empty multiset.
func MostFrequent(themes []string) string {
	counts := Counts(themes)
	best := ""
	bestCount := 0
	for _, t := range Distinct(themes) {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	return best
}

func toSet(themes []string) map[string]bool {
	set := make(map[string]bool, len(themes))
	for _, t := range themes {
		set[t] = true
	}
	return set
}
