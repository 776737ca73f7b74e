// Package insights classifies reconciled theme evidence into the five-part
// strength model: energising strengths, hidden strengths, overused talents,
// aspirational strengths, and misaligned energies. The five rules are
// independent scans over the same immutable evidence and may emit overlapping
// themes into different categories.
package insights

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// Categorizer runs the five classification rules and assembles the
// FiveInsightsModel.
type Categorizer struct {
	logger *zap.Logger
}

// NewCategorizer creates a Categorizer. A nil logger disables logging.
func NewCategorizer(logger *zap.Logger) *Categorizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Categorizer{logger: logger}
}

// Categorize runs all five category scans over the reconciled themes and the
// raw responses. The scans only read shared immutable inputs, so they fan out
// concurrently; results are reassembled in fixed category order to keep
// output deterministic.
func (c *Categorizer) Categorize(ctx context.Context, sets *themes.ThemeSets, self []types.Response, advisors []types.AdvisorResponse) (*types.FiveInsightsModel, error) {
	var (
		energising   []types.SynthesisInsight
		hidden       []types.SynthesisInsight
		overused     []types.SynthesisInsight
		aspirational []types.SynthesisInsight
		misaligned   []types.SynthesisInsight
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		energising = findEnergisingStrengths(sets, self, advisors)
		return nil
	})
	g.Go(func() error {
		hidden = findHiddenStrengths(sets, self, advisors)
		return nil
	})
	g.Go(func() error {
		overused = findOverusedTalents(sets, self, advisors)
		return nil
	})
	g.Go(func() error {
		aspirational = findDevelopmentOpportunities(advisors)
		return nil
	})
	g.Go(func() error {
		misaligned = findPositioningOpportunities(sets, self, advisors)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Lists are never nil so the model always serializes with arrays.
	model := &types.FiveInsightsModel{
		EnergisingStrengths:   nonNil(energising),
		HiddenStrengths:       nonNil(hidden),
		OverusedTalents:       nonNil(overused),
		AspirationalStrengths: nonNil(aspirational),
		MisalignedEnergies:    nonNil(misaligned),
	}
	model.BalanceScore = balanceScore(model)
	model.KeyRecommendations = keyRecommendations(model)

	c.logger.Debug("categorized insights",
		zap.Int("energising", len(energising)),
		zap.Int("hidden", len(hidden)),
		zap.Int("overused", len(overused)),
		zap.Int("aspirational", len(aspirational)),
		zap.Int("misaligned", len(misaligned)),
		zap.Float64("balance", model.BalanceScore))

	return model, nil
}

// balanceScore measures how evenly insights spread across the five
// categories: 1.0 when all categories hold the same number of insights,
// approaching 0 as everything piles into one category. Zero when the model
// is empty.
func balanceScore(m *types.FiveInsightsModel) float64 {
	counts := m.CategoryCounts()
	total := 0
	maxCount, minCount := 0, 0
	for i, n := range counts {
		total += n
		if i == 0 || n > maxCount {
			maxCount = n
		}
		if i == 0 || n < minCount {
			minCount = n
		}
	}
	if total == 0 {
		return 0
	}
	return clamp01(1 - float64(maxCount-minCount)/float64(total))
}

// keyRecommendations turns the top insight of each non-empty category into a
// one-line recommendation, in fixed category order.
func keyRecommendations(m *types.FiveInsightsModel) []string {
	recs := make([]string, 0, 5)
	if top := topInsight(m.EnergisingStrengths); top != nil {
		recs = append(recs, fmt.Sprintf("Keep investing in %s; it energises you and others see it.", themeLabel(top.RelatedThemes)))
	}
	if top := topInsight(m.HiddenStrengths); top != nil {
		recs = append(recs, fmt.Sprintf("Own %s more openly; your advisors already see it in you.", themeLabel(top.RelatedThemes)))
	}
	if top := topInsight(m.OverusedTalents); top != nil {
		recs = append(recs, fmt.Sprintf("Check how much weight you put on %s; it may land less than you think.", themeLabel(top.RelatedThemes)))
	}
	if top := topInsight(m.AspirationalStrengths); top != nil {
		recs = append(recs, fmt.Sprintf("Treat %s as a deliberate development focus.", themeLabel(top.RelatedThemes)))
	}
	if top := topInsight(m.MisalignedEnergies); top != nil {
		recs = append(recs, fmt.Sprintf("Adopt the stronger language others use when you talk about %s.", themeLabel(top.RelatedThemes)))
	}
	return recs
}

// topInsight returns the highest-confidence insight, breaking ties by title.
func topInsight(list []types.SynthesisInsight) *types.SynthesisInsight {
	if len(list) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(list); i++ {
		if list[i].Confidence > list[best].Confidence ||
			(list[i].Confidence == list[best].Confidence && list[i].Title < list[best].Title) {
			best = i
		}
	}
	return &list[best]
}

func themeLabel(related []string) string {
	if len(related) == 0 {
		return "this area"
	}
	return displayTheme(related[0])
}

// displayTheme renders a snake_case theme tag for prose.
func displayTheme(theme string) string {
	return strings.ReplaceAll(theme, "_", " ")
}

// titleCase upper-cases the first letter of a phrase for titles.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// insightID builds a deterministic id so identical inputs yield identical
// output documents.
func insightID(category types.InsightCategory, key string) string {
	return fmt.Sprintf("insight_%s_%s", category, key)
}

// sortInsightsByTheme orders a category's insights by their primary theme so
// concurrent scans cannot perturb output order.
func sortInsightsByTheme(list []types.SynthesisInsight) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
}

func nonNil(list []types.SynthesisInsight) []types.SynthesisInsight {
	if list == nil {
		return []types.SynthesisInsight{}
	}
	return list
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
