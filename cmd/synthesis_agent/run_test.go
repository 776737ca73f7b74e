package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wittering/wigu-synthesis/internal/types"
)

func writeJSONFile(t *testing.T, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadSelfResponses(t *testing.T) {
	path := writeJSONFile(t, "self.json", []types.Response{{
		QuestionID:   "q1",
		QuestionText: "What work energises you?",
		Text:         "Leading teams.",
		Domain:       types.DomainStrengths,
		KeyThemes:    []string{"leadership"},
		QualityScore: 0.9,
	}})

	responses, err := loadSelfResponses(path)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "q1", responses[0].QuestionID)
	assert.Equal(t, []string{"leadership"}, responses[0].KeyThemes)
}

func TestLoadSelfResponses_MissingFile(t *testing.T) {
	_, err := loadSelfResponses(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read self responses")
}

func TestLoadSelfResponses_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "self.json")
	require.NoError(t, os.WriteFile(path, []byte("{not an array"), 0o644))

	_, err := loadSelfResponses(path)
	assert.ErrorContains(t, err, "failed to parse self responses")
}

func TestLoadSelfResponses_ValidationFailure(t *testing.T) {
	path := writeJSONFile(t, "self.json", []types.Response{{
		QuestionID:   "q1",
		Text:         "Leading teams.",
		Domain:       "not_a_domain",
		QualityScore: 0.9,
	}})

	_, err := loadSelfResponses(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "self response 0")
}

func TestLoadAdvisorResponses(t *testing.T) {
	path := writeJSONFile(t, "advisors.json", []types.AdvisorResponse{{
		Response: types.Response{
			QuestionID:   "a1",
			QuestionText: "What are they best at?",
			Text:         "Rallying a team.",
			Domain:       types.DomainStrengths,
			KeyThemes:    []string{"leadership"},
			QualityScore: 0.8,
		},
		CredibilityWeight: 0.8,
	}})

	responses, err := loadAdvisorResponses(path)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, 0.8, responses[0].CredibilityWeight)
}

func TestLoadAdvisorResponses_OutOfRangeCredibility(t *testing.T) {
	path := writeJSONFile(t, "advisors.json", []types.AdvisorResponse{{
		Response: types.Response{
			QuestionID:   "a1",
			Text:         "Rallying a team.",
			Domain:       types.DomainStrengths,
			QualityScore: 0.8,
		},
		CredibilityWeight: 1.3,
	}})

	_, err := loadAdvisorResponses(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "advisor response 0")
}

func TestWriteSynthesis_ToFile(t *testing.T) {
	result := &types.CareerSynthesis{
		ID:        "synthesis-1",
		SessionID: "session-1",
	}
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeSynthesis(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var roundTrip types.CareerSynthesis
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, "synthesis-1", roundTrip.ID)
	assert.Equal(t, "session-1", roundTrip.SessionID)
}

func TestWriteSynthesis_BadPath(t *testing.T) {
	err := writeSynthesis(filepath.Join(t.TempDir(), "missing", "out.json"), &types.CareerSynthesis{})
	assert.ErrorContains(t, err, "failed to write synthesis")
}
