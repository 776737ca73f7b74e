// Package collab defines the external text-understanding collaborator the
// engine depends on: theme tagging and narrative prose generation. The engine
// only ever sees these interfaces; concrete implementations (Gemini-backed or
// deterministic local fallbacks) are injected by the caller.
package collab

import (
	"context"

	"github.com/Wittering/wigu-synthesis/internal/types"
)

// NarrativeKind says which prose artifact is being requested.
type NarrativeKind string

// Narrative kinds.
const (
	NarrativeExecutiveSummary NarrativeKind = "executive_summary"
	NarrativeRecommendations  NarrativeKind = "recommendations"
)

// ThemeExtractor tags a free-text answer with short normalized theme strings.
type ThemeExtractor interface {
	// ExtractThemes returns theme tags for the answer to the given question.
	ExtractThemes(ctx context.Context, question, answer string) ([]string, error)
}

// NarrativeGenerator produces prose from categorized insights.
type NarrativeGenerator interface {
	// GenerateNarrative writes the requested kind of prose from the insights
	// and free-form context values.
	GenerateNarrative(ctx context.Context, kind NarrativeKind, insights []types.SynthesisInsight, context map[string]string) (string, error)
}

// Collaborator bundles both capabilities; the Gemini client and the local
// fallback each implement it.
type Collaborator interface {
	ThemeExtractor
	NarrativeGenerator
}
