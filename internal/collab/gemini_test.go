package collab

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wittering/wigu-synthesis/internal/llm"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// stubClient fakes the LLM client with canned responses.
type stubClient struct {
	content     string
	jsonContent string
	err         error
	lastPrompt  string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.lastPrompt = prompt
	return s.content, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.lastPrompt = prompt
	return s.jsonContent, s.err
}

func (s *stubClient) Close() error { return nil }

func TestGeminiCollaborator_ExtractThemes(t *testing.T) {
	client := &stubClient{jsonContent: `{"themes": ["Leadership", "public speaking"]}`}
	c := NewGeminiCollaborator(client, time.Second, nil)

	got, err := c.ExtractThemes(context.Background(), "question?", "answer")
	require.NoError(t, err)
	assert.Equal(t, []string{"leadership", "public_speaking"}, got)
	assert.Contains(t, client.lastPrompt, "question?")
	assert.Contains(t, client.lastPrompt, "answer")
}

func TestGeminiCollaborator_ExtractThemes_BareArray(t *testing.T) {
	client := &stubClient{jsonContent: `["collaboration", "empathy"]`}
	c := NewGeminiCollaborator(client, time.Second, nil)

	got, err := c.ExtractThemes(context.Background(), "q", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"collaboration", "empathy"}, got)
}

func TestGeminiCollaborator_ExtractThemes_RepairsMalformedJSON(t *testing.T) {
	// Trailing comma is invalid JSON but repairable.
	client := &stubClient{jsonContent: `{"themes": ["leadership",]}`}
	c := NewGeminiCollaborator(client, time.Second, nil)

	got, err := c.ExtractThemes(context.Background(), "q", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"leadership"}, got)
}

func TestGeminiCollaborator_ExtractThemes_ParseError(t *testing.T) {
	client := &stubClient{jsonContent: `this is not json at all`}
	c := NewGeminiCollaborator(client, time.Second, nil)

	_, err := c.ExtractThemes(context.Background(), "q", "a")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "extract-themes", parseErr.Op)
}

func TestGeminiCollaborator_ExtractThemes_ClientError(t *testing.T) {
	client := &stubClient{err: errors.New("boom")}
	c := NewGeminiCollaborator(client, time.Second, nil)

	_, err := c.ExtractThemes(context.Background(), "q", "a")
	require.Error(t, err)
	var timeoutErr *TimeoutError
	assert.False(t, errors.As(err, &timeoutErr), "plain client errors are not timeouts")
}

func TestGeminiCollaborator_GenerateNarrative(t *testing.T) {
	client := &stubClient{content: "  A crisp summary.  "}
	c := NewGeminiCollaborator(client, time.Second, nil)

	insights := []types.SynthesisInsight{{
		Category:    types.CategoryStrength,
		Title:       "Leadership shows",
		Description: "desc",
		Confidence:  0.9,
	}}
	got, err := c.GenerateNarrative(context.Background(), NarrativeExecutiveSummary, insights, map[string]string{
		"AlignmentScore": "0.50",
	})
	require.NoError(t, err)
	assert.Equal(t, "A crisp summary.", got)
	assert.Contains(t, client.lastPrompt, "Leadership shows")
}

func TestGeminiCollaborator_DefaultTimeout(t *testing.T) {
	c := NewGeminiCollaborator(&stubClient{}, 0, nil)
	assert.Equal(t, DefaultTimeout, c.timeout)
}

func TestParseThemes_FencedBlock(t *testing.T) {
	got, err := parseThemes("```json\n{\"themes\": [\"x\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)
}

func TestNormalizeThemes(t *testing.T) {
	got := normalizeThemes([]string{" Leadership ", "leadership", "", "Public Speaking", "a", "b", "c", "d"})
	assert.Equal(t, []string{"leadership", "public_speaking", "a", "b", "c"}, got)
	assert.Len(t, got, maxThemesPerResponse)
}

func TestFormatInsights_Empty(t *testing.T) {
	assert.Equal(t, "(no categorized insights)", formatInsights(nil))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	assert.ErrorIs(t, &TimeoutError{Op: "op", Timeout: time.Second, Cause: cause}, cause)
	assert.ErrorIs(t, &ParseError{Op: "op", Cause: cause}, cause)
}
