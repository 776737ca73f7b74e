package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Wittering/wigu-synthesis/internal/types"
)

// SaveSynthesis persists a complete synthesis result plus its component
// artifacts for a run.
func (db *DB) SaveSynthesis(ctx context.Context, runID uuid.UUID, result *types.CareerSynthesis) error {
	if err := db.SaveArtifact(ctx, runID, StepThemeSets, CategoryReconciliation, result.ThemeSets); err != nil {
		return err
	}
	if err := db.SaveArtifact(ctx, runID, StepFiveInsights, CategoryInsights, result.Insights); err != nil {
		return err
	}
	if err := db.SaveArtifact(ctx, runID, StepJohariWindow, CategoryInsights, result.Johari); err != nil {
		return err
	}
	if err := db.SaveArtifact(ctx, runID, StepNarrative, CategoryInsights, result.Narrative); err != nil {
		return err
	}
	return db.SaveArtifact(ctx, runID, StepSynthesis, CategorySynthesis, result)
}

// GetSynthesisByRunID loads the full synthesis artifact for a run. Returns
// nil when the run has no synthesis artifact.
func (db *DB) GetSynthesisByRunID(ctx context.Context, runID uuid.UUID) (*types.CareerSynthesis, error) {
	content, err := db.GetArtifact(ctx, runID, StepSynthesis)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var result types.CareerSynthesis
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal synthesis: %w", err)
	}
	return &result, nil
}

// GetSynthesisBySession loads the synthesis of the most recent run for a
// session. Returns nil when the session has no completed synthesis.
func (db *DB) GetSynthesisBySession(ctx context.Context, sessionID string) (*types.CareerSynthesis, error) {
	runID, err := db.LatestRunForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if runID == uuid.Nil {
		return nil, nil
	}
	return db.GetSynthesisByRunID(ctx, runID)
}
