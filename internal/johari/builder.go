// Package johari builds the four-quadrant perception map from the reconciled
// theme sets: what both sides see, what only advisors see, what only the
// person sees, and a catalogue of candidate themes nobody has surfaced yet.
package johari

import (
	"fmt"
	"strings"

	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// unknownArenaCatalogue is the fixed candidate list for the unknown arena:
// capabilities common enough in professional life that their absence from the
// conversation is itself worth surfacing. Static configuration.
var unknownArenaCatalogue = []string{
	"strategic_thinking",
	"change_management",
	"stakeholder_management",
	"commercial_acumen",
	"systems_thinking",
	"negotiation",
	"coaching",
	"public_speaking",
	"innovation",
	"resilience",
}

// Build constructs the Johari window from reconciled theme sets. Quadrant
// membership is pure set arithmetic; the unknown arena is the catalogue
// filtered to exclude any entry whose root word already appears in the
// mentioned-themes superset.
func Build(sets *themes.ThemeSets) *types.JohariWindow {
	w := &types.JohariWindow{
		OpenArena: types.JohariQuadrant{
			Name:        types.QuadrantOpen,
			Description: "Strengths you and your advisors both see.",
			Themes:      append([]string{}, sets.CommonThemes...),
		},
		BlindSpot: types.JohariQuadrant{
			Name:        types.QuadrantBlind,
			Description: "Strengths your advisors see that you did not mention.",
			Themes:      append([]string{}, sets.UniqueToAdvisor...),
		},
		HiddenArena: types.JohariQuadrant{
			Name:        types.QuadrantHidden,
			Description: "Strengths you mentioned that your advisors did not.",
			Themes:      append([]string{}, sets.UniqueToSelf...),
		},
		UnknownArena: types.JohariQuadrant{
			Name:        types.QuadrantUnknown,
			Description: "Capabilities nobody has surfaced yet; worth exploring.",
			Themes:      filterCatalogue(sets.Mentioned()),
		},
	}

	for _, q := range []*types.JohariQuadrant{&w.OpenArena, &w.BlindSpot, &w.HiddenArena, &w.UnknownArena} {
		q.Count = len(q.Themes)
		q.Insights = quadrantInsights(q.Name, q.Themes)
	}

	w.DominantQuadrant = dominantQuadrant(w)
	w.SelfAwarenessScore = selfAwarenessScore(w.OpenArena.Count, w.BlindSpot.Count, w.HiddenArena.Count)
	w.DevelopmentPriority = developmentPriority(w.BlindSpot.Count, w.HiddenArena.Count)
	return w
}

// filterCatalogue drops every catalogue entry whose root word (the prefix
// before the first underscore) already appears as the root of a mentioned
// theme.
func filterCatalogue(mentioned []string) []string {
	roots := make(map[string]bool, len(mentioned))
	for _, theme := range mentioned {
		roots[rootWord(theme)] = true
	}

	out := make([]string, 0, len(unknownArenaCatalogue))
	for _, candidate := range unknownArenaCatalogue {
		if !roots[rootWord(candidate)] {
			out = append(out, candidate)
		}
	}
	return out
}

// rootWord returns the prefix before the first underscore.
func rootWord(theme string) string {
	if idx := strings.Index(theme, "_"); idx >= 0 {
		return theme[:idx]
	}
	return theme
}

// dominantQuadrant is the argmax over quadrant sizes; ties break in
// declaration order open > blind > hidden > unknown.
func dominantQuadrant(w *types.JohariWindow) types.QuadrantName {
	best := w.OpenArena.Name
	bestCount := w.OpenArena.Count
	for _, q := range []types.JohariQuadrant{w.BlindSpot, w.HiddenArena, w.UnknownArena} {
		if q.Count > bestCount {
			best = q.Name
			bestCount = q.Count
		}
	}
	return best
}

// selfAwarenessScore rewards a large open arena and penalizes blind spots,
// normalized over the themes actually in play. Defaults to 0.5 when no
// themes were mentioned at all.
func selfAwarenessScore(open, blind, hidden int) float64 {
	denom := float64(open + blind + hidden)
	if denom == 0 {
		return 0.5
	}
	return clamp01((float64(open) - 0.5*float64(blind)) / denom)
}

// developmentPriority weighs blind spots heavier than hidden strengths: a
// gap others can see is more urgent than one only the person knows about.
func developmentPriority(blind, hidden int) float64 {
	return clamp01((0.7*float64(blind) + 0.5*float64(hidden)) / 10)
}

// quadrantInsights generates the actionable insight strings for a quadrant.
func quadrantInsights(name types.QuadrantName, quadrantThemes []string) []string {
	if len(quadrantThemes) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(quadrantThemes))
	for _, theme := range quadrantThemes {
		label := strings.ReplaceAll(theme, "_", " ")
		switch name {
		case types.QuadrantOpen:
			out = append(out, fmt.Sprintf("Lead with %s; it is your agreed ground.", label))
		case types.QuadrantBlind:
			out = append(out, fmt.Sprintf("Ask an advisor when they last saw your %s in action.", label))
		case types.QuadrantHidden:
			out = append(out, fmt.Sprintf("Find a visible outlet for your %s so others can see it too.", label))
		case types.QuadrantUnknown:
			out = append(out, fmt.Sprintf("Try a low-stakes experiment with %s to see if it fits.", label))
		}
	}
	return out
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
