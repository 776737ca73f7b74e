package synthesis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wittering/wigu-synthesis/internal/collab"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

var fixedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// stubCollaborator scripts theme extraction and narrative generation.
type stubCollaborator struct {
	themes        []string
	themesErr     error
	narrative     string
	narrativeErr  error
	extractCalls  int
	generateCalls int
	generateKinds []collab.NarrativeKind
}

func (s *stubCollaborator) ExtractThemes(_ context.Context, _, _ string) ([]string, error) {
	s.extractCalls++
	return s.themes, s.themesErr
}

func (s *stubCollaborator) GenerateNarrative(_ context.Context, kind collab.NarrativeKind, _ []types.SynthesisInsight, _ map[string]string) (string, error) {
	s.generateCalls++
	s.generateKinds = append(s.generateKinds, kind)
	return s.narrative, s.narrativeErr
}

// panicCollaborator blows up mid-computation.
type panicCollaborator struct{}

func (p *panicCollaborator) ExtractThemes(context.Context, string, string) ([]string, error) {
	panic("collaborator exploded")
}

func (p *panicCollaborator) GenerateNarrative(context.Context, collab.NarrativeKind, []types.SynthesisInsight, map[string]string) (string, error) {
	panic("collaborator exploded")
}

func testEngine(c collab.Collaborator) *Engine {
	counter := 0
	opts := []Option{
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() string {
			counter++
			return fmt.Sprintf("synthesis-%d", counter)
		}),
	}
	if c != nil {
		opts = append(opts, WithCollaborator(c))
	}
	return NewEngine(opts...)
}

func taggedSelf() []types.Response {
	return []types.Response{
		{QuestionID: "q1", Domain: types.DomainStrengths, Text: "Leading projects energises me", QualityScore: 0.8, KeyThemes: []string{"leadership"}},
		{QuestionID: "q2", Domain: types.DomainValues, Text: "I thrive when leading change", QualityScore: 0.8, KeyThemes: []string{"leadership"}},
		{QuestionID: "q3", Domain: types.DomainInterests, Text: "I sketch new product ideas for fun", QualityScore: 0.7, KeyThemes: []string{"creativity"}},
	}
}

func taggedAdvisors() []types.AdvisorResponse {
	return []types.AdvisorResponse{
		{Response: types.Response{QuestionID: "a1", Domain: types.DomainStrengths, Text: "A natural leader", QualityScore: 0.8, KeyThemes: []string{"leadership"}}, CredibilityWeight: 0.9},
		{Response: types.Response{QuestionID: "a2", Domain: types.DomainRelationships, Text: "Steps up whenever the team drifts", QualityScore: 0.8, KeyThemes: []string{"leadership"}}, CredibilityWeight: 0.8},
		{Response: types.Response{QuestionID: "a3", Domain: types.DomainGrowthAreas, Text: "Quietly guides juniors", QualityScore: 0.7, KeyThemes: []string{"mentoring"}}, CredibilityWeight: 0.8},
	}
}

func TestGenerateSynthesis_Success(t *testing.T) {
	engine := testEngine(&stubCollaborator{narrative: "A model-written summary."})

	result, err := engine.GenerateSynthesis(context.Background(), "session-1", taggedSelf(), taggedAdvisors(), nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "synthesis-1", result.ID)
	assert.Equal(t, "session-1", result.SessionID)
	assert.Equal(t, fixedTime, result.GeneratedAt)
	assert.Equal(t, []string{"q1", "q2", "q3"}, result.SelfResponseIDs)
	assert.Equal(t, []string{"a1", "a2", "a3"}, result.AdvisorResponseIDs)
	assert.False(t, result.IsFallback())
	assert.Equal(t, string(PhaseDone), result.Metadata["phase"])
	assert.Equal(t, "A model-written summary.", result.ExecutiveSummary)

	// Distinct sets: self {leadership, creativity}, advisor {leadership,
	// mentoring}; one shared theme over a union of three.
	assert.InDelta(t, 1.0/3.0, result.AlignmentScore, 1e-9)

	assert.Equal(t, []string{"leadership"}, result.Johari.OpenArena.Themes)
	assert.Equal(t, []string{"mentoring"}, result.Johari.BlindSpot.Themes)
	assert.Equal(t, []string{"creativity"}, result.Johari.HiddenArena.Themes)
}

func TestGenerateSynthesis_Deterministic(t *testing.T) {
	run := func() *types.CareerSynthesis {
		engine := testEngine(&stubCollaborator{narrative: "Summary."})
		result, err := engine.GenerateSynthesis(context.Background(), "session-1", taggedSelf(), taggedAdvisors(), nil)
		require.NoError(t, err)
		return result
	}

	assert.Equal(t, run(), run(), "identical inputs must produce identical syntheses")
}

func TestGenerateSynthesis_EmptySelfFallsBack(t *testing.T) {
	engine := testEngine(nil)

	result, err := engine.GenerateSynthesis(context.Background(), "session-1", nil, taggedAdvisors(), nil)
	require.NoError(t, err, "validation failures must not surface as errors")
	require.NotNil(t, result)

	assert.True(t, result.IsFallback())
	assert.Equal(t, FallbackSummary, result.ExecutiveSummary)
	assert.Equal(t, 0.5, result.AlignmentScore)
	assert.Equal(t, types.ConfidenceLow, result.ConfidenceLevel)
	assert.Zero(t, result.Insights.Total())
	assert.Contains(t, result.Metadata["fallback_reason"], "no self responses")
}

func TestGenerateSynthesis_EmptyAdvisorsFallsBack(t *testing.T) {
	engine := testEngine(nil)

	result, err := engine.GenerateSynthesis(context.Background(), "session-1", taggedSelf(), nil, nil)
	require.NoError(t, err)
	assert.True(t, result.IsFallback())
	assert.Contains(t, result.Metadata["fallback_reason"], "no advisor responses")
}

func TestGenerateSynthesis_FallbackIsCompleteDocument(t *testing.T) {
	engine := testEngine(nil)

	result, err := engine.GenerateSynthesis(context.Background(), "s", nil, nil, nil)
	require.NoError(t, err)

	// Every component is present even in degraded form.
	assert.NotEmpty(t, result.ID)
	assert.NotNil(t, result.SelfResponseIDs)
	assert.NotNil(t, result.AdvisorResponseIDs)
	assert.NotEmpty(t, result.Johari.UnknownArena.Themes)
	assert.NotEmpty(t, result.Narrative.Experiment.Title)
	assert.NotNil(t, result.StrategicRecommendations)
}

func TestGenerateSynthesis_PanicBecomesFallback(t *testing.T) {
	engine := testEngine(&panicCollaborator{})

	// Untagged responses force a collaborator call, which panics.
	self := []types.Response{{QuestionID: "q1", Domain: types.DomainStrengths, Text: "Leading things", QualityScore: 0.8}}
	advisors := taggedAdvisors()

	result, err := engine.GenerateSynthesis(context.Background(), "session-1", self, advisors, nil)
	require.NoError(t, err, "panics must be absorbed into fallback results")
	assert.True(t, result.IsFallback())
	assert.Contains(t, result.Metadata["fallback_reason"], "panic")
}

func TestGenerateSynthesis_CancelledContext(t *testing.T) {
	engine := testEngine(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := engine.GenerateSynthesis(ctx, "session-1", taggedSelf(), taggedAdvisors(), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateSynthesis_CollaboratorErrorUsesKeywordFallback(t *testing.T) {
	stub := &stubCollaborator{
		themesErr:    errors.New("model unavailable"),
		narrativeErr: errors.New("model unavailable"),
	}
	engine := testEngine(stub)

	self := []types.Response{
		{QuestionID: "q1", Domain: types.DomainStrengths, Text: "Leading the team and mentoring juniors", QualityScore: 0.8},
	}
	result, err := engine.GenerateSynthesis(context.Background(), "session-1", self, taggedAdvisors(), nil)
	require.NoError(t, err)

	assert.False(t, result.IsFallback(), "collaborator failure degrades, it does not abort")
	assert.Positive(t, stub.extractCalls)
	// The keyword fallback tagged the untagged self response.
	assert.Contains(t, result.Johari.OpenArena.Themes, "leadership")
	// The template summary replaced the failed narrative call.
	assert.NotEmpty(t, result.ExecutiveSummary)
	assert.NotEqual(t, FallbackSummary, result.ExecutiveSummary)
}

func TestGenerateSynthesis_PreTaggedResponsesSkipExtraction(t *testing.T) {
	stub := &stubCollaborator{narrative: "Summary."}
	engine := testEngine(stub)

	_, err := engine.GenerateSynthesis(context.Background(), "session-1", taggedSelf(), taggedAdvisors(), nil)
	require.NoError(t, err)
	assert.Zero(t, stub.extractCalls, "tagged responses are never re-tagged")
}

func TestGenerateSynthesis_AdditionalContextInMetadata(t *testing.T) {
	engine := testEngine(&stubCollaborator{narrative: "Summary."})

	result, err := engine.GenerateSynthesis(context.Background(), "session-1", taggedSelf(), taggedAdvisors(), &Options{
		AdditionalContext: map[string]string{"career_stage": "mid"},
	})
	require.NoError(t, err)
	assert.Equal(t, "mid", result.Metadata["ctx_career_stage"])
}

func TestGenerateSynthesis_ScoreBounds(t *testing.T) {
	engine := testEngine(&stubCollaborator{narrative: "Summary."})

	result, err := engine.GenerateSynthesis(context.Background(), "session-1", taggedSelf(), taggedAdvisors(), nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.AlignmentScore, 0.0)
	assert.LessOrEqual(t, result.AlignmentScore, 1.0)
	assert.GreaterOrEqual(t, result.Johari.SelfAwarenessScore, 0.0)
	assert.LessOrEqual(t, result.Johari.SelfAwarenessScore, 1.0)
	assert.GreaterOrEqual(t, result.Narrative.Experiment.FeasibilityScore, 0.0)
	assert.LessOrEqual(t, result.Narrative.Experiment.FeasibilityScore, 1.0)
	for _, ins := range result.Insights.All() {
		assert.GreaterOrEqual(t, ins.Confidence, 0.0)
		assert.LessOrEqual(t, ins.Confidence, 1.0)
		assert.GreaterOrEqual(t, ins.StrategicImportance, 1)
		assert.LessOrEqual(t, ins.StrategicImportance, 5)
	}
}

func TestGenerateSynthesis_MultiByteEvidenceStaysValid(t *testing.T) {
	long := strings.Repeat("é", 200)
	self := []types.Response{
		{QuestionID: "q1", Domain: types.DomainStrengths, Text: long, QualityScore: 0.8, KeyThemes: []string{"leadership"}},
		{QuestionID: "q2", Domain: types.DomainValues, Text: long, QualityScore: 0.8, KeyThemes: []string{"leadership"}},
	}
	advisors := []types.AdvisorResponse{
		{Response: types.Response{QuestionID: "a1", Domain: types.DomainStrengths, Text: long, QualityScore: 0.8, KeyThemes: []string{"leadership"}}, CredibilityWeight: 0.9},
		{Response: types.Response{QuestionID: "a2", Domain: types.DomainRelationships, Text: long, QualityScore: 0.8, KeyThemes: []string{"leadership"}}, CredibilityWeight: 0.8},
	}

	result, err := testEngine(&stubCollaborator{narrative: "Summary."}).GenerateSynthesis(context.Background(), "session-1", self, advisors, nil)
	require.NoError(t, err)

	for _, ins := range result.Insights.All() {
		for _, ev := range ins.SupportingEvidence {
			assert.True(t, utf8.ValidString(ev), "evidence %q must stay valid UTF-8 after truncation", ev)
		}
	}

	require.NotEmpty(t, result.Narrative.Truths)
	for _, truth := range result.Narrative.Truths {
		for _, ev := range truth.Evidence {
			assert.True(t, utf8.ValidString(ev), "truth evidence %q must stay valid UTF-8 after truncation", ev)
			assert.LessOrEqual(t, len([]rune(ev)), 100)
		}
	}
}

func TestGenerateSynthesis_ThemeSetsCarried(t *testing.T) {
	engine := testEngine(&stubCollaborator{narrative: "Summary."})

	result, err := engine.GenerateSynthesis(context.Background(), "session-1", taggedSelf(), taggedAdvisors(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"leadership", "leadership", "creativity"}, result.ThemeSets.SelfThemes)
	assert.Equal(t, []string{"leadership", "leadership", "mentoring"}, result.ThemeSets.AdvisorThemes)
	assert.Equal(t, []string{"leadership"}, result.ThemeSets.CommonThemes)
	assert.Equal(t, []string{"mentoring"}, result.ThemeSets.UniqueToAdvisor)
	assert.Equal(t, []string{"creativity"}, result.ThemeSets.UniqueToSelf)
}

func TestGenerateSynthesis_RecommendationsFromCollaborator(t *testing.T) {
	stub := &stubCollaborator{narrative: "- Lean into leadership\n- Ask a peer for feedback"}
	engine := testEngine(stub)

	result, err := engine.GenerateSynthesis(context.Background(), "session-1", taggedSelf(), taggedAdvisors(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Lean into leadership", "Ask a peer for feedback"}, result.StrategicRecommendations)
	assert.Contains(t, stub.generateKinds, collab.NarrativeExecutiveSummary)
	assert.Contains(t, stub.generateKinds, collab.NarrativeRecommendations)
}

func TestGenerateSynthesis_RecommendationsDegradeToKeyRecommendations(t *testing.T) {
	stub := &stubCollaborator{narrativeErr: errors.New("model unavailable")}
	engine := testEngine(stub)

	result, err := engine.GenerateSynthesis(context.Background(), "session-1", taggedSelf(), taggedAdvisors(), nil)
	require.NoError(t, err)

	assert.Equal(t, result.Insights.KeyRecommendations, result.StrategicRecommendations)
	require.NotEmpty(t, result.StrategicRecommendations)
	assert.Contains(t, result.StrategicRecommendations[0], "leadership")
}

func TestGenerateSynthesis_EvidenceTraceable(t *testing.T) {
	engine := testEngine(&stubCollaborator{narrative: "Summary."})

	result, err := engine.GenerateSynthesis(context.Background(), "session-1", taggedSelf(), taggedAdvisors(), nil)
	require.NoError(t, err)

	for _, ins := range result.Insights.All() {
		for _, ev := range ins.SupportingEvidence {
			ok := strings.HasPrefix(ev, "Self: ") || strings.HasPrefix(ev, "Advisor: ")
			assert.True(t, ok, "evidence %q must carry its source prefix", ev)
		}
	}
}
