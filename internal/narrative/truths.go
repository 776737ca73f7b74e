package narrative

import (
	"fmt"
	"strings"

	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// truthQuoteLen bounds evidence quotes carried on a truth.
const truthQuoteLen = 100

// valuesKeywords signal a values-oriented statement in self responses.
// Static configuration.
var valuesKeywords = []string{
	"value", "integrity", "purpose", "meaning", "authentic", "fairness",
	"honesty", "helping", "service", "belonging",
}

// composeTruths selects up to three ranked certainties: the top energising
// strength, the most frequent shared theme, and a values-oriented theme
// detected in the self responses.
func composeTruths(model *types.FiveInsightsModel, sets *themes.ThemeSets, self []types.Response) []types.Truth {
	truths := make([]types.Truth, 0, 3)

	if top := topByConfidence(model.EnergisingStrengths); top != nil {
		theme := ""
		if len(top.RelatedThemes) > 0 {
			theme = top.RelatedThemes[0]
		}
		truths = append(truths, types.Truth{
			Kind:       types.TruthEnergisingStrength,
			Statement:  fmt.Sprintf("%s is a confirmed strength: you feel it and others see it.", titlePhrase(theme)),
			Theme:      theme,
			Confidence: top.Confidence,
			Evidence:   truncateEvidence(top.SupportingEvidence, 2),
		})
	}

	if theme := mostFrequentCommonTheme(sets); theme != "" {
		combined := sets.SelfCounts()[theme] + sets.AdvisorCounts()[theme]
		evidence := make([]string, 0, 2)
		evidence = append(evidence, quotesForTheme(self, theme, 1)...)
		truths = append(truths, types.Truth{
			Kind:       types.TruthSharedTheme,
			Statement:  fmt.Sprintf("Both sides of the mirror keep returning to %s.", phrase(theme)),
			Theme:      theme,
			Confidence: clamp01(0.6 + 0.05*float64(combined)),
			Evidence:   evidence,
		})
	}

	if theme, evidence := findValuesTheme(self); theme != "" {
		truths = append(truths, types.Truth{
			Kind:       types.TruthCoreValue,
			Statement:  fmt.Sprintf("Your answers are anchored in %s; decisions that cut against it will grate.", phrase(theme)),
			Theme:      theme,
			Confidence: 0.7,
			Evidence:   evidence,
		})
	}

	return truths
}

// mostFrequentCommonTheme picks the shared theme with the highest combined
// count, ties broken by order of appearance in CommonThemes.
func mostFrequentCommonTheme(sets *themes.ThemeSets) string {
	selfCounts := sets.SelfCounts()
	advisorCounts := sets.AdvisorCounts()

	best := ""
	bestCount := 0
	for _, theme := range sets.CommonThemes {
		combined := selfCounts[theme] + advisorCounts[theme]
		if combined > bestCount {
			best = theme
			bestCount = combined
		}
	}
	return best
}

// findValuesTheme scans self responses for values-oriented keywords and
// returns the first cited theme of the first matching response, with one
// evidence quote.
func findValuesTheme(self []types.Response) (string, []string) {
	for i := range self {
		lower := strings.ToLower(self[i].Text)
		for _, kw := range valuesKeywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			theme := ""
			if len(self[i].KeyThemes) > 0 {
				theme = self[i].KeyThemes[0]
			}
			if theme == "" {
				break
			}
			return theme, []string{truncateQuote("Self: " + strings.TrimSpace(self[i].Text))}
		}
	}
	return "", nil
}

// quotesForTheme collects up to limit source-prefixed quotes from self
// responses citing the theme.
func quotesForTheme(self []types.Response, theme string, limit int) []string {
	var quotes []string
	for i := range self {
		if self[i].HasTheme(theme) {
			quotes = append(quotes, truncateQuote("Self: "+strings.TrimSpace(self[i].Text)))
			if len(quotes) >= limit {
				break
			}
		}
	}
	return quotes
}

// truncateEvidence re-bounds already-prefixed evidence quotes to the 100-char
// truth limit, keeping at most n of them.
func truncateEvidence(evidence []string, n int) []string {
	if len(evidence) > n {
		evidence = evidence[:n]
	}
	out := make([]string, 0, len(evidence))
	for _, e := range evidence {
		out = append(out, truncateQuote(e))
	}
	return out
}

// truncateQuote bounds a quote to truthQuoteLen characters, truncating on a
// rune boundary so multi-byte text stays valid UTF-8.
func truncateQuote(s string) string {
	if runes := []rune(s); len(runes) > truthQuoteLen {
		return string(runes[:truthQuoteLen-3]) + "..."
	}
	return s
}

func phrase(theme string) string {
	return strings.ReplaceAll(theme, "_", " ")
}

func titlePhrase(theme string) string {
	p := phrase(theme)
	if p == "" {
		return "This"
	}
	return strings.ToUpper(p[:1]) + p[1:]
}
