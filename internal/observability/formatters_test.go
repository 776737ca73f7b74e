package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wittering/wigu-synthesis/internal/types"
)

func TestPrintJohariWindow(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	window := &types.JohariWindow{
		OpenArena: types.JohariQuadrant{
			Name:   types.QuadrantOpen,
			Themes: []string{"leadership", "communication"},
			Count:  2,
		},
		BlindSpot: types.JohariQuadrant{
			Name:   types.QuadrantBlind,
			Themes: []string{"mentoring"},
			Count:  1,
		},
		HiddenArena: types.JohariQuadrant{
			Name: types.QuadrantHidden,
		},
		UnknownArena: types.JohariQuadrant{
			Name: types.QuadrantUnknown,
		},
		DominantQuadrant:    types.QuadrantOpen,
		SelfAwarenessScore:  0.75,
		DevelopmentPriority: 0.2,
	}
	p.PrintJohariWindow(window)

	out := buf.String()
	assert.Contains(t, out, "JOHARI WINDOW")
	assert.Contains(t, out, "Open Arena (2):")
	assert.Contains(t, out, "• leadership")
	assert.Contains(t, out, "• mentoring")
	assert.Contains(t, out, "Self-awareness:  0.75")
	assert.Contains(t, out, "Dev priority:    0.20")
}

func TestPrintJohariWindow_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJohariWindow(nil)
	assert.Empty(t, buf.String())
}

func TestPrintJohariWindow_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	window := &types.JohariWindow{
		OpenArena: types.JohariQuadrant{
			Name:   types.QuadrantOpen,
			Themes: []string{"a", "b", "c", "d", "e", "f", "g"},
			Count:  7,
		},
		DominantQuadrant: types.QuadrantOpen,
	}
	p.PrintJohariWindow(window)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintFiveInsights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	model := &types.FiveInsightsModel{
		EnergisingStrengths: []types.SynthesisInsight{
			{Title: "Leadership energises you", Confidence: 0.9},
		},
		BalanceScore: 0.5,
	}
	p.PrintFiveInsights(model)

	out := buf.String()
	assert.Contains(t, out, "FIVE INSIGHTS MODEL")
	assert.Contains(t, out, "Total insights: 1")
	assert.Contains(t, out, "Energising Strength:")
	assert.Contains(t, out, "• Leadership energises you (0.90)")
	assert.Contains(t, out, "Balance score: 0.50")
}

func TestPrintFiveInsights_EmptyModelSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFiveInsights(nil)
	p.PrintFiveInsights(&types.FiveInsightsModel{})

	assert.Empty(t, buf.String())
}

func TestPrintNarrative(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	frame := &types.NarrativeFrame{
		Truths: []types.Truth{
			{Statement: "Leadership is an energising strength."},
			{Statement: "You and your advisors agree on communication."},
		},
		Tensions: []types.Tension{
			{Title: "Others see mentoring you don't claim", OpportunityScore: 0.8},
		},
		Experiment: types.CareerExperiment{
			Title:                 "Claim your leadership in public",
			EstimatedDurationDays: 14,
			Priority:              types.PriorityHigh,
			FeasibilityScore:      0.8,
		},
	}
	p.PrintNarrative(frame)

	out := buf.String()
	assert.Contains(t, out, "NARRATIVE FRAME")
	assert.Contains(t, out, "Three Truths:")
	assert.Contains(t, out, "1. Leadership is an energising strength.")
	assert.Contains(t, out, "Two Tensions:")
	assert.Contains(t, out, "One Experiment:")
	assert.Contains(t, out, "Duration:    14 days")
	assert.Contains(t, out, "Priority:    high")
}

func TestPrintNarrative_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintNarrative(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSynthesisSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSynthesisSummary(&types.CareerSynthesis{
		SessionID:                "session-1",
		AlignmentScore:           0.67,
		ConfidenceLevel:          types.ConfidenceMedium,
		ExecutiveSummary:         "Strong agreement on leadership.",
		StrategicRecommendations: []string{"Lean into leadership."},
	})

	out := buf.String()
	assert.Contains(t, out, "SYNTHESIS SUMMARY")
	assert.Contains(t, out, "Session:     session-1")
	assert.Contains(t, out, "Alignment:   0.67")
	assert.Contains(t, out, "Confidence:  Medium")
	assert.Contains(t, out, "Strong agreement on leadership.")
	assert.Contains(t, out, "• Lean into leadership.")
	assert.NotContains(t, out, "FALLBACK")
}

func TestPrintSynthesisSummary_FallbackBanner(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSynthesisSummary(&types.CareerSynthesis{
		SessionID:       "session-1",
		ConfidenceLevel: types.ConfidenceLow,
		Metadata:        map[string]string{"fallback": "true"},
	})

	assert.Contains(t, buf.String(), "⚠ FALLBACK SYNTHESIS")
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)

	assert.Equal(t, []string{""}, wrapText("", 10))
}
