package synthesis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Wittering/wigu-synthesis/internal/collab"
	"github.com/Wittering/wigu-synthesis/internal/insights"
	"github.com/Wittering/wigu-synthesis/internal/johari"
	"github.com/Wittering/wigu-synthesis/internal/narrative"
	"github.com/Wittering/wigu-synthesis/internal/scoring"
	"github.com/Wittering/wigu-synthesis/internal/themes"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

// Phase tracks where a run is in its lifecycle. Recorded in result metadata
// and logs; the caller never branches on it.
type Phase string

// Run phases.
const (
	PhaseValidating        Phase = "validating"
	PhaseComputing         Phase = "computing"
	PhaseAssembling        Phase = "assembling"
	PhaseDone              Phase = "done"
	PhaseFailed            Phase = "failed"
	PhaseFallbackAssembled Phase = "fallback_assembled"
)

// minDomainsBeforeWarning is the coverage below which a side triggers a
// warning (not a failure).
const minDomainsBeforeWarning = 2

// Engine runs syntheses. Stateless per invocation: concurrent runs share
// nothing but the injected collaborator.
type Engine struct {
	collaborator collab.Collaborator
	fallback     *collab.LocalFallback
	categorizer  *insights.Categorizer
	logger       *zap.Logger
	now          func() time.Time
	newID        func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithCollaborator injects the network collaborator. Without it the engine
// runs entirely on the deterministic local fallback.
func WithCollaborator(c collab.Collaborator) Option {
	return func(e *Engine) { e.collaborator = c }
}

// WithLogger sets the engine logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides synthesis id generation. Used by tests.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// NewEngine creates an Engine with the deterministic local collaborator as
// the default.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		fallback: collab.NewLocalFallback(),
		logger:   zap.NewNop(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.collaborator == nil {
		e.collaborator = e.fallback
	}
	e.categorizer = insights.NewCategorizer(e.logger)
	return e
}

// Options carries per-run options.
type Options struct {
	// AdditionalContext is free-form context handed to the narrative
	// generator and recorded in result metadata.
	AdditionalContext map[string]string
}

// computed carries the outputs of the computing phase into assembly.
type computed struct {
	sets      *themes.ThemeSets
	model     *types.FiveInsightsModel
	window    *types.JohariWindow
	frame     *types.NarrativeFrame
	alignment float64
	conf      float64
}

// GenerateSynthesis runs one synthesis. The returned error is non-nil only
// when ctx is cancelled; every other failure mode yields a complete fallback
// synthesis and a nil error.
func (e *Engine) GenerateSynthesis(ctx context.Context, sessionID string, self []types.Response, advisors []types.AdvisorResponse, opts *Options) (*types.CareerSynthesis, error) {
	if opts == nil {
		opts = &Options{}
	}
	id := e.newID()
	generatedAt := e.now().UTC()
	log := e.logger.With(zap.String("session_id", sessionID), zap.String("synthesis_id", id))

	// Validating
	if err := e.validate(self, advisors, log); err != nil {
		log.Warn("validation failed, producing fallback synthesis", zap.Error(err))
		return fallbackSynthesis(id, sessionID, generatedAt, err.Error()), nil
	}

	// Computing
	result, err := e.compute(ctx, self, advisors)
	if err != nil {
		if ctx.Err() != nil {
			// Cancellation discards partial results and surfaces to the
			// caller; it is the one path that is not converted to fallback.
			return nil, ctx.Err()
		}
		log.Warn("computation failed, producing fallback synthesis", zap.Error(err))
		return fallbackSynthesis(id, sessionID, generatedAt, err.Error()), nil
	}

	// Assembling
	out, err := e.assemble(ctx, id, sessionID, generatedAt, self, advisors, result, opts)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn("assembly failed, producing fallback synthesis", zap.Error(err))
		return fallbackSynthesis(id, sessionID, generatedAt, err.Error()), nil
	}

	log.Info("synthesis complete",
		zap.Float64("alignment", out.AlignmentScore),
		zap.String("confidence", string(out.ConfidenceLevel)),
		zap.Int("insights", out.Insights.Total()))
	return out, nil
}

// validate implements the Validating phase. Empty lists fail; thin domain
// coverage only warns.
func (e *Engine) validate(self []types.Response, advisors []types.AdvisorResponse, log *zap.Logger) error {
	if len(self) == 0 {
		return &ValidationError{Message: "no self responses provided"}
	}
	if len(advisors) == 0 {
		return &ValidationError{Message: "no advisor responses provided"}
	}
	if n := scoring.DistinctDomains(self); n < minDomainsBeforeWarning {
		log.Warn("self responses cover few domains", zap.Int("domains", n))
	}
	if n := scoring.DistinctAdvisorDomains(advisors); n < minDomainsBeforeWarning {
		log.Warn("advisor responses cover few domains", zap.Int("domains", n))
	}
	return nil
}

// compute implements the Computing phase. Panics anywhere inside become
// InternalComputationErrors for the caller to convert to fallback.
func (e *Engine) compute(ctx context.Context, self []types.Response, advisors []types.AdvisorResponse) (result *computed, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &InternalComputationError{Stage: "computing", Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	self = e.ensureThemes(ctx, self)
	advisors = e.ensureAdvisorThemes(ctx, advisors)

	sets := themes.Reconcile(self, advisors)

	var (
		model  *types.FiveInsightsModel
		window *types.JohariWindow
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var catErr error
		model, catErr = e.categorizer.Categorize(gCtx, sets, self, advisors)
		return catErr
	})
	g.Go(func() error {
		window = johari.Build(sets)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, &InternalComputationError{Stage: "categorizing", Cause: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frame := narrative.Compose(model, sets, self)

	return &computed{
		sets:      sets,
		model:     model,
		window:    window,
		frame:     frame,
		alignment: scoring.AlignmentScore(sets),
		conf:      scoring.ConfidenceScore(self, advisors),
	}, nil
}

// assemble implements the Assembling phase: narrative prose plus the final
// immutable record.
func (e *Engine) assemble(ctx context.Context, id, sessionID string, generatedAt time.Time, self []types.Response, advisors []types.AdvisorResponse, result *computed, opts *Options) (out *types.CareerSynthesis, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &InternalComputationError{Stage: "assembling", Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	summary := e.executiveSummary(ctx, result, opts)
	recommendations := e.recommendations(ctx, result, opts)

	metadata := map[string]string{
		"phase":               string(PhaseDone),
		"self_theme_count":    strconv.Itoa(len(result.sets.SelfThemes)),
		"advisor_theme_count": strconv.Itoa(len(result.sets.AdvisorThemes)),
	}
	for k, v := range opts.AdditionalContext {
		metadata["ctx_"+k] = v
	}

	return &types.CareerSynthesis{
		ID:                       id,
		SessionID:                sessionID,
		GeneratedAt:              generatedAt,
		SelfResponseIDs:          responseIDs(self),
		AdvisorResponseIDs:       advisorResponseIDs(advisors),
		ThemeSets:                result.sets.Record(),
		Insights:                 *result.model,
		Johari:                   *result.window,
		Narrative:                *result.frame,
		ExecutiveSummary:         summary,
		StrategicRecommendations: recommendations,
		AlignmentScore:           result.alignment,
		ConfidenceLevel:          scoring.ConfidenceLevel(result.conf),
		Metadata:                 metadata,
	}, nil
}

// executiveSummary asks the collaborator for prose and degrades to the
// deterministic template on timeout or parse failure.
func (e *Engine) executiveSummary(ctx context.Context, result *computed, opts *Options) string {
	contextValues := e.narrativeContext(result, opts)
	all := result.model.All()
	summary, err := e.collaborator.GenerateNarrative(ctx, collab.NarrativeExecutiveSummary, all, contextValues)
	if err == nil && summary != "" {
		return summary
	}
	if err != nil {
		e.logger.Warn("narrative collaborator failed, using template summary", zap.Error(err))
	}
	summary, _ = e.fallback.GenerateNarrative(ctx, collab.NarrativeExecutiveSummary, all, contextValues)
	return summary
}

// recommendations asks the collaborator for recommendation lines and degrades
// to the deterministic per-category key recommendations.
func (e *Engine) recommendations(ctx context.Context, result *computed, opts *Options) []string {
	text, err := e.collaborator.GenerateNarrative(ctx, collab.NarrativeRecommendations, result.model.All(), e.narrativeContext(result, opts))
	if err == nil {
		if recs := splitRecommendations(text); len(recs) > 0 {
			return recs
		}
	}
	if err != nil {
		e.logger.Warn("recommendations collaborator failed, using key recommendations", zap.Error(err))
	}
	return result.model.KeyRecommendations
}

// narrativeContext builds the template values handed to narrative generation.
func (e *Engine) narrativeContext(result *computed, opts *Options) map[string]string {
	contextValues := map[string]string{
		"AlignmentScore":  fmt.Sprintf("%.2f", result.alignment),
		"ConfidenceLevel": string(scoring.ConfidenceLevel(result.conf)),
	}
	for k, v := range opts.AdditionalContext {
		contextValues[k] = v
	}
	return contextValues
}

// splitRecommendations turns generated recommendation prose into one entry
// per non-empty line, stripping leading list dashes.
func splitRecommendations(text string) []string {
	var recs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line != "" {
			recs = append(recs, line)
		}
	}
	return recs
}

// ensureThemes tags any self response that arrived without theme tags,
// degrading to the keyword fallback when the collaborator fails.
func (e *Engine) ensureThemes(ctx context.Context, self []types.Response) []types.Response {
	out := make([]types.Response, len(self))
	copy(out, self)
	for i := range out {
		if len(out[i].KeyThemes) > 0 {
			continue
		}
		out[i].KeyThemes = e.extractThemes(ctx, out[i].QuestionText, out[i].Text)
	}
	return out
}

// ensureAdvisorThemes is ensureThemes for the advisor side.
func (e *Engine) ensureAdvisorThemes(ctx context.Context, advisors []types.AdvisorResponse) []types.AdvisorResponse {
	out := make([]types.AdvisorResponse, len(advisors))
	copy(out, advisors)
	for i := range out {
		if len(out[i].KeyThemes) > 0 {
			continue
		}
		out[i].KeyThemes = e.extractThemes(ctx, out[i].QuestionText, out[i].Text)
	}
	return out
}

func (e *Engine) extractThemes(ctx context.Context, question, answer string) []string {
	tags, err := e.collaborator.ExtractThemes(ctx, question, answer)
	if err == nil {
		return tags
	}
	e.logger.Warn("theme extraction collaborator failed, using keyword fallback", zap.Error(err))
	tags, _ = e.fallback.ExtractThemes(ctx, question, answer)
	return tags
}

func responseIDs(self []types.Response) []string {
	ids := make([]string, 0, len(self))
	for i := range self {
		ids = append(ids, self[i].QuestionID)
	}
	return ids
}

func advisorResponseIDs(advisors []types.AdvisorResponse) []string {
	ids := make([]string, 0, len(advisors))
	for i := range advisors {
		ids = append(ids, advisors[i].QuestionID)
	}
	return ids
}
