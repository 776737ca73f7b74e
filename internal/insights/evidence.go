package insights

import (
	"strings"

	"github.com/Wittering/wigu-synthesis/internal/types"
)

// maxQuoteLen bounds evidence quotes carried on an insight.
const maxQuoteLen = 160

// selfQuotes collects source-prefixed quotes from self responses citing the
// theme, in input order.
func selfQuotes(self []types.Response, theme string, limit int) []string {
	var quotes []string
	for i := range self {
		if self[i].HasTheme(theme) {
			quotes = append(quotes, quote("Self", self[i].Text, maxQuoteLen))
			if limit > 0 && len(quotes) >= limit {
				break
			}
		}
	}
	return quotes
}

// advisorQuotes collects source-prefixed quotes from advisor responses citing
// the theme, in input order.
func advisorQuotes(advisors []types.AdvisorResponse, theme string, limit int) []string {
	var quotes []string
	for i := range advisors {
		if advisors[i].HasTheme(theme) {
			quotes = append(quotes, quote("Advisor", advisors[i].Text, maxQuoteLen))
			if limit > 0 && len(quotes) >= limit {
				break
			}
		}
	}
	return quotes
}

// citingAdvisors returns the advisor responses that cite the theme.
func citingAdvisors(advisors []types.AdvisorResponse, theme string) []types.AdvisorResponse {
	var out []types.AdvisorResponse
	for i := range advisors {
		if advisors[i].HasTheme(theme) {
			out = append(out, advisors[i])
		}
	}
	return out
}

// citingSelf returns the self responses that cite the theme.
func citingSelf(self []types.Response, theme string) []types.Response {
	var out []types.Response
	for i := range self {
		if self[i].HasTheme(theme) {
			out = append(out, self[i])
		}
	}
	return out
}

// quote builds a source-prefixed evidence quote bounded to max characters.
// Truncation counts runes so multi-byte text is never split mid-rune.
func quote(source, text string, max int) string {
	text = strings.TrimSpace(text)
	if runes := []rune(text); len(runes) > max {
		text = string(runes[:max-3]) + "..."
	}
	return source + ": " + text
}
