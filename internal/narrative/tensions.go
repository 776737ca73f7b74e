package narrative

import (
	"fmt"

	"github.com/Wittering/wigu-synthesis/internal/types"
)

// composeTensions selects up to two tensions: the top hidden strength framed
// as a recognition gap, and the top aspirational strength framed as a
// development tension. Each carries an opportunity score derived from the
// underlying insight's strategic importance.
func composeTensions(model *types.FiveInsightsModel) []types.Tension {
	tensions := make([]types.Tension, 0, 2)

	if top := topByImportance(model.HiddenStrengths); top != nil {
		theme := primaryTheme(top)
		tensions = append(tensions, types.Tension{
			Kind:             types.TensionRecognitionGap,
			Title:            fmt.Sprintf("Recognition gap: %s", phrase(theme)),
			Description:      fmt.Sprintf("Advisors consistently see %s in you, but you don't claim it. Until you do, neither will the people deciding your next role.", phrase(theme)),
			Theme:            theme,
			OpportunityScore: float64(top.StrategicImportance) / 5,
		})
	}

	if top := topByImportance(model.AspirationalStrengths); top != nil {
		theme := primaryTheme(top)
		tensions = append(tensions, types.Tension{
			Kind:             types.TensionDevelopmentTension,
			Title:            fmt.Sprintf("Development tension: %s", phrase(theme)),
			Description:      fmt.Sprintf("Your advisors point at %s as the place to grow. Leaning into it will feel uncomfortable precisely because it matters.", phrase(theme)),
			Theme:            theme,
			OpportunityScore: float64(top.StrategicImportance) / 5,
		})
	}

	return tensions
}

func primaryTheme(insight *types.SynthesisInsight) string {
	if len(insight.RelatedThemes) > 0 {
		return insight.RelatedThemes[0]
	}
	return ""
}
