package narrative

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

func insight(id string, category types.InsightCategory, theme string, confidence float64, importance int) types.SynthesisInsight {
	return types.SynthesisInsight{
		ID:                  id,
		Title:               "Insight about " + theme,
		Description:         "description",
		Category:            category,
		SupportingEvidence:  []string{"Self: evidence for " + theme, "Advisor: evidence for " + theme},
		StrategicImportance: importance,
		RelatedThemes:       []string{theme},
		Confidence:          confidence,
	}
}

func TestCompose_FullFrame(t *testing.T) {
	model := &types.FiveInsightsModel{
		EnergisingStrengths: []types.SynthesisInsight{
			insight("insight_strength_leadership", types.CategoryStrength, "leadership", 0.9, 4),
		},
		HiddenStrengths: []types.SynthesisInsight{
			insight("insight_blindspot_mentoring", types.CategoryBlindspot, "mentoring", 0.7, 4),
		},
		AspirationalStrengths: []types.SynthesisInsight{
			insight("insight_development_public_speaking", types.CategoryDevelopment, "public_speaking", 0.6, 3),
		},
	}
	sets := &themes.ThemeSets{
		SelfThemes:    []string{"leadership", "leadership"},
		AdvisorThemes: []string{"leadership", "mentoring"},
		CommonThemes:  []string{"leadership"},
	}
	self := []types.Response{{
		QuestionID: "q1",
		Domain:     types.DomainValues,
		Text:       "Integrity matters more to me than titles.",
		KeyThemes:  []string{"leadership"},
	}}

	frame := Compose(model, sets, self)

	require.Len(t, frame.Truths, 3)
	assert.Equal(t, types.TruthEnergisingStrength, frame.Truths[0].Kind)
	assert.Equal(t, "leadership", frame.Truths[0].Theme)
	assert.Equal(t, types.TruthSharedTheme, frame.Truths[1].Kind)
	assert.Equal(t, types.TruthCoreValue, frame.Truths[2].Kind)

	require.Len(t, frame.Tensions, 2)
	assert.Equal(t, types.TensionRecognitionGap, frame.Tensions[0].Kind)
	assert.Equal(t, "mentoring", frame.Tensions[0].Theme)
	assert.InDelta(t, 4.0/5.0, frame.Tensions[0].OpportunityScore, 1e-9)
	assert.Equal(t, types.TensionDevelopmentTension, frame.Tensions[1].Kind)

	assert.Equal(t, types.ExperimentVisibility, frame.Experiment.Type, "hidden strength wins experiment priority")
	assert.Equal(t, []string{"insight_blindspot_mentoring"}, frame.Experiment.RelatedInsightIDs)
}

func TestCompose_EmptyModel(t *testing.T) {
	model := &types.FiveInsightsModel{}
	sets := &themes.ThemeSets{SelfThemes: []string{}, AdvisorThemes: []string{}}

	frame := Compose(model, sets, nil)

	assert.Empty(t, frame.Truths)
	assert.Empty(t, frame.Tensions)
	assert.NotEmpty(t, frame.Experiment.Title, "a generic experiment is always proposed")
	assert.Equal(t, types.ExperimentVisibility, frame.Experiment.Type)
}

func TestComposeTruths_EvidenceTruncated(t *testing.T) {
	long := strings.Repeat("x", 300)
	model := &types.FiveInsightsModel{
		EnergisingStrengths: []types.SynthesisInsight{{
			ID:                 "insight_strength_leadership",
			Category:           types.CategoryStrength,
			RelatedThemes:      []string{"leadership"},
			Confidence:         0.9,
			SupportingEvidence: []string{"Self: " + long, "Advisor: " + long, "Self: extra"},
		}},
	}
	sets := &themes.ThemeSets{SelfThemes: []string{}, AdvisorThemes: []string{}}

	truths := composeTruths(model, sets, nil)

	require.Len(t, truths, 1)
	assert.Len(t, truths[0].Evidence, 2, "at most two evidence quotes per truth")
	for _, ev := range truths[0].Evidence {
		assert.LessOrEqual(t, len(ev), truthQuoteLen)
		assert.True(t, strings.HasSuffix(ev, "..."))
	}
}

func TestMostFrequentCommonTheme(t *testing.T) {
	sets := &themes.ThemeSets{
		SelfThemes:    []string{"leadership", "empathy", "empathy"},
		AdvisorThemes: []string{"leadership", "empathy"},
		CommonThemes:  []string{"leadership", "empathy"},
	}
	assert.Equal(t, "empathy", mostFrequentCommonTheme(sets))

	assert.Equal(t, "", mostFrequentCommonTheme(&themes.ThemeSets{}))
}

func TestFindValuesTheme(t *testing.T) {
	self := []types.Response{
		{QuestionID: "q1", Text: "I enjoy shipping things.", KeyThemes: []string{"initiative"}},
		{QuestionID: "q2", Text: "Fairness is non-negotiable for me.", KeyThemes: []string{"empathy"}},
	}

	theme, evidence := findValuesTheme(self)
	assert.Equal(t, "empathy", theme)
	require.Len(t, evidence, 1)
	assert.True(t, strings.HasPrefix(evidence[0], "Self: "))
}

func TestFindValuesTheme_NoMatch(t *testing.T) {
	theme, evidence := findValuesTheme([]types.Response{
		{QuestionID: "q1", Text: "I enjoy shipping things.", KeyThemes: []string{"initiative"}},
	})
	assert.Equal(t, "", theme)
	assert.Nil(t, evidence)
}

func TestComposeExperiment_PriorityOrder(t *testing.T) {
	hidden := insight("insight_blindspot_mentoring", types.CategoryBlindspot, "mentoring", 0.7, 4)
	aspirational := insight("insight_development_negotiation", types.CategoryDevelopment, "negotiation", 0.6, 3)
	sets := &themes.ThemeSets{SelfThemes: []string{"leadership"}, AdvisorThemes: []string{}}

	both := composeExperiment(&types.FiveInsightsModel{
		HiddenStrengths:       []types.SynthesisInsight{hidden},
		AspirationalStrengths: []types.SynthesisInsight{aspirational},
	}, sets)
	assert.Equal(t, []string{"insight_blindspot_mentoring"}, both.RelatedInsightIDs)

	aspOnly := composeExperiment(&types.FiveInsightsModel{
		AspirationalStrengths: []types.SynthesisInsight{aspirational},
	}, sets)
	assert.Equal(t, types.ExperimentSkillGrowth, aspOnly.Type)
	assert.Equal(t, []string{"insight_development_negotiation"}, aspOnly.RelatedInsightIDs)

	generic := composeExperiment(&types.FiveInsightsModel{}, sets)
	assert.Equal(t, types.ExperimentVisibility, generic.Type)
	assert.Contains(t, generic.Tags, "leadership")
}

func TestFeasibilityScore(t *testing.T) {
	tests := []struct {
		name     string
		exp      types.CareerExperiment
		expected float64
	}{
		{
			name:     "short no barriers medium priority",
			exp:      types.CareerExperiment{EstimatedDurationDays: 7, Priority: types.PriorityMedium},
			expected: 1.0, // 0.5 + 0.3 + 0.2
		},
		{
			name: "two weeks one barrier high priority",
			exp: types.CareerExperiment{
				EstimatedDurationDays: 14,
				PotentialBarriers:     []string{"b1"},
				Priority:              types.PriorityHigh,
			},
			expected: 0.8, // 0.5 + 0.1 + 0.1 + 0.1
		},
		{
			name: "long many barriers low priority",
			exp: types.CareerExperiment{
				EstimatedDurationDays: 60,
				PotentialBarriers:     []string{"b1", "b2", "b3"},
				Priority:              types.PriorityLow,
			},
			expected: 0.2, // 0.5 - 0.1 - 0.1 - 0.1
		},
		{
			name: "urgent clamps at one",
			exp: types.CareerExperiment{
				EstimatedDurationDays: 3,
				Priority:              types.PriorityUrgent,
			},
			expected: 1.0, // 0.5 + 0.3 + 0.2 + 0.2 clamped
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, feasibilityScore(&tt.exp), 1e-9)
		})
	}
}

func TestComposeExperiment_FeasibilityComputed(t *testing.T) {
	sets := &themes.ThemeSets{SelfThemes: []string{}, AdvisorThemes: []string{}}
	exp := composeExperiment(&types.FiveInsightsModel{}, sets)
	// 7 days, no barriers, medium priority.
	assert.InDelta(t, 1.0, exp.FeasibilityScore, 1e-9)
}

func TestTruncateQuote_TruncatesOnRuneBoundary(t *testing.T) {
	q := truncateQuote("Self: " + strings.Repeat("é", 150))

	require.True(t, utf8.ValidString(q), "truncation must not split a rune")
	assert.True(t, strings.HasSuffix(q, "..."))
	assert.Equal(t, truthQuoteLen, len([]rune(q)))
}

func TestTruncateQuote_CountsCharactersNotBytes(t *testing.T) {
	// 90 two-byte runes: over the limit in bytes, under it in characters.
	q := "Self: " + strings.Repeat("é", 90)
	assert.Equal(t, q, truncateQuote(q))
}
