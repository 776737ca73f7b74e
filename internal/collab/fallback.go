package collab

import (
	"context"
	"fmt"
	"strings"

	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// LocalFallback is the deterministic, synchronous collaborator used when the
// network collaborator is unavailable or failed. Theme tagging degrades to a
// keyword scan; narrative generation degrades to template strings. Identical
// inputs always produce identical output.
type LocalFallback struct{}

// NewLocalFallback returns the deterministic local collaborator.
func NewLocalFallback() *LocalFallback {
	return &LocalFallback{}
}

// ExtractThemes runs the keyword-based fallback tagger.
func (f *LocalFallback) ExtractThemes(_ context.Context, question, answer string) ([]string, error) {
	return themes.ExtractKeywordThemes(question, answer), nil
}

// GenerateNarrative renders template prose for the requested kind.
func (f *LocalFallback) GenerateNarrative(_ context.Context, kind NarrativeKind, insights []types.SynthesisInsight, contextValues map[string]string) (string, error) {
	switch kind {
	case NarrativeExecutiveSummary:
		return executiveSummaryTemplate(insights, contextValues), nil
	case NarrativeRecommendations:
		return recommendationsTemplate(insights), nil
	default:
		return "", fmt.Errorf("unknown narrative kind %q", kind)
	}
}

func executiveSummaryTemplate(insights []types.SynthesisInsight, contextValues map[string]string) string {
	var sb strings.Builder
	sb.WriteString("This synthesis compares how you describe your strengths with how your advisors describe them.")

	if alignment := contextValues["AlignmentScore"]; alignment != "" {
		sb.WriteString(fmt.Sprintf(" Overall alignment between the two views is %s.", alignment))
	}

	byCategory := make(map[types.InsightCategory]int)
	for _, ins := range insights {
		byCategory[ins.Category]++
	}
	if n := byCategory[types.CategoryStrength]; n > 0 {
		sb.WriteString(fmt.Sprintf(" %d strength(s) are confirmed on both sides.", n))
	}
	if n := byCategory[types.CategoryBlindspot]; n > 0 {
		sb.WriteString(fmt.Sprintf(" %d strength(s) are visible to others but not yet claimed by you.", n))
	}
	if n := byCategory[types.CategoryDevelopment]; n > 0 {
		sb.WriteString(fmt.Sprintf(" Advisors flagged %d concrete area(s) for development.", n))
	}
	if len(insights) == 0 {
		sb.WriteString(" Not enough categorized evidence was available to draw firm conclusions.")
	}
	return sb.String()
}

func recommendationsTemplate(insights []types.SynthesisInsight) string {
	if len(insights) == 0 {
		return "Gather more responses from both sides before acting on this synthesis."
	}
	var lines []string
	for _, ins := range insights {
		if ins.ActionableAdvice != "" {
			lines = append(lines, "- "+ins.ActionableAdvice)
		}
	}
	if len(lines) == 0 {
		return "Review the categorized insights and pick one to act on this month."
	}
	return strings.Join(lines, "\n")
}
