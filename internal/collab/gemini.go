package collab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"

	"github.com/Wittering/wigu-synthesis/internal/llm"
	"github.com/Wittering/wigu-synthesis/internal/prompts"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// DefaultTimeout bounds a single collaborator call.
const DefaultTimeout = 20 * time.Second

// maxThemesPerResponse caps how many tags a single answer can receive.
const maxThemesPerResponse = 5

// GeminiCollaborator implements Collaborator on top of the LLM client.
// Every call carries a deadline; callers are expected to fall back to the
// local implementation when a TimeoutError or ParseError comes back.
type GeminiCollaborator struct {
	client  llm.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiCollaborator wraps an LLM client. A zero timeout uses
// DefaultTimeout; a nil logger disables logging.
func NewGeminiCollaborator(client llm.Client, timeout time.Duration, logger *zap.Logger) *GeminiCollaborator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiCollaborator{client: client, timeout: timeout, logger: logger}
}

// themesResponse is the expected JSON shape from the tagging prompt.
type themesResponse struct {
	Themes []string `json:"themes"`
}

// ExtractThemes asks the model to tag an answer with normalized themes.
func (g *GeminiCollaborator) ExtractThemes(ctx context.Context, question, answer string) ([]string, error) {
	template := prompts.MustGet("synthesis.json", "extract-themes")
	prompt := prompts.Format(template, map[string]string{
		"Question": question,
		"Answer":   answer,
	})

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.GenerateJSON(callCtx, prompt, llm.TierLite)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, &TimeoutError{Op: "extract-themes", Timeout: g.timeout, Cause: err}
		}
		return nil, fmt.Errorf("theme extraction failed: %w", err)
	}

	themes, err := parseThemes(raw)
	if err != nil {
		g.logger.Warn("theme extraction returned malformed JSON, attempting repair",
			zap.String("content", raw))
		repaired, repairErr := jsonrepair.JSONRepair(raw)
		if repairErr != nil {
			return nil, &ParseError{Op: "extract-themes", Content: raw, Cause: err}
		}
		themes, err = parseThemes(repaired)
		if err != nil {
			return nil, &ParseError{Op: "extract-themes", Content: raw, Cause: err}
		}
	}

	return normalizeThemes(themes), nil
}

// GenerateNarrative asks the model for prose of the requested kind.
func (g *GeminiCollaborator) GenerateNarrative(ctx context.Context, kind NarrativeKind, insights []types.SynthesisInsight, contextValues map[string]string) (string, error) {
	template, err := prompts.Get("synthesis.json", string(kind))
	if err != nil {
		return "", fmt.Errorf("no prompt for narrative kind %q: %w", kind, err)
	}

	data := map[string]string{
		"Insights": formatInsights(insights),
	}
	for k, v := range contextValues {
		data[k] = v
	}
	prompt := prompts.Format(template, data)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.client.GenerateContent(callCtx, prompt, llm.TierStandard)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", &TimeoutError{Op: string(kind), Timeout: g.timeout, Cause: err}
		}
		return "", fmt.Errorf("narrative generation failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// parseThemes accepts either the object form {"themes": [...]} or a bare
// JSON array of strings.
func parseThemes(raw string) ([]string, error) {
	raw = llm.CleanJSONBlock(raw)

	var obj themesResponse
	if err := json.Unmarshal([]byte(raw), &obj); err == nil && obj.Themes != nil {
		return obj.Themes, nil
	}

	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		return nil, err
	}
	return arr, nil
}

// normalizeThemes lowercases tags, converts spaces to underscores, drops
// empties and duplicates, and applies the per-response cap.
func normalizeThemes(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		t = strings.ReplaceAll(t, " ", "_")
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
		if len(out) >= maxThemesPerResponse {
			break
		}
	}
	return out
}

// formatInsights renders insights as prompt context lines.
func formatInsights(insights []types.SynthesisInsight) string {
	if len(insights) == 0 {
		return "(no categorized insights)"
	}
	var sb strings.Builder
	for _, ins := range insights {
		sb.WriteString(fmt.Sprintf("- [%s] %s: %s (confidence %.2f)\n",
			ins.Category.Label(), ins.Title, ins.Description, ins.Confidence))
	}
	return sb.String()
}
