package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/Wittering/wigu-synthesis/internal/synthesis"
	"github.com/Wittering/wigu-synthesis/internal/types"

	"go.uber.org/zap"
)

// SynthesizeRequest represents the request body for /synthesize
type SynthesizeRequest struct {
	SessionID         string                  `json:"session_id"`
	SelfResponses     []types.Response        `json:"self_responses"`
	AdvisorResponses  []types.AdvisorResponse `json:"advisor_responses"`
	AdditionalContext map[string]string       `json:"additional_context,omitempty"`
}

// SynthesizeResponse wraps the synthesis result with run bookkeeping. RunID
// is set only when persistence is configured and the run was stored; the
// synthesis document itself is never modified after assembly.
type SynthesizeResponse struct {
	Synthesis *types.CareerSynthesis `json:"synthesis"`
	RunID     string                 `json:"run_id,omitempty"`
}

// handleSynthesize runs a synthesis over the posted responses and returns the
// full result. With a database configured the result is also persisted under
// a new run.
func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req SynthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.SessionID == "" {
		s.errorResponse(w, http.StatusBadRequest, "session_id is required")
		return
	}
	if len(req.SelfResponses) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "self_responses is required")
		return
	}
	if len(req.AdvisorResponses) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "advisor_responses is required")
		return
	}
	for i := range req.SelfResponses {
		if err := types.ValidateResponse(&req.SelfResponses[i]); err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("self_responses[%d]: %v", i, err))
			return
		}
	}
	for i := range req.AdvisorResponses {
		if err := types.ValidateAdvisorResponse(&req.AdvisorResponses[i]); err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("advisor_responses[%d]: %v", i, err))
			return
		}
	}

	opts := &synthesis.Options{AdditionalContext: req.AdditionalContext}
	result, err := s.engine.GenerateSynthesis(r.Context(), req.SessionID, req.SelfResponses, req.AdvisorResponses, opts)
	if err != nil {
		// Only context cancellation reaches here.
		s.errorResponse(w, http.StatusServiceUnavailable, "Synthesis cancelled: "+err.Error())
		return
	}

	resp := SynthesizeResponse{Synthesis: result}
	if s.db != nil {
		runID, err := s.db.CreateRun(r.Context(), req.SessionID)
		if err != nil {
			s.logger.Error("creating run", zap.Error(err))
		} else if err := s.db.SaveSynthesis(r.Context(), runID, result); err != nil {
			s.logger.Error("saving synthesis", zap.Error(err))
		} else {
			status := "completed"
			if result.IsFallback() {
				status = "fallback"
			}
			if err := s.db.CompleteRun(r.Context(), runID, status); err != nil {
				s.logger.Error("completing run", zap.Error(err))
			}
			resp.RunID = runID.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetSynthesis returns a persisted synthesis by run ID
func (s *Server) handleGetSynthesis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Persistence is not configured")
		return
	}

	idStr := r.PathValue("id")
	runID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID format")
		return
	}

	result, err := s.db.GetSynthesisByRunID(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "Synthesis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetSessionSynthesis returns the latest persisted synthesis for a session
func (s *Server) handleGetSessionSynthesis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Persistence is not configured")
		return
	}

	sessionID := r.PathValue("session_id")
	if sessionID == "" {
		s.errorResponse(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	result, err := s.db.GetSynthesisBySession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "Synthesis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
