package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/conversation"
	"github.com/jonathan/career-coach/internal/types"
)

var validate = validator.New()

// StartSessionRequest represents the request body for POST /sessions
type StartSessionRequest struct {
	SessionID      string `json:"session_id,omitempty"`
	TargetIndustry string `json:"target_industry,omitempty"`
	TargetRole     string `json:"target_role,omitempty"`
	Seniority      string `json:"seniority,omitempty"`
}

// SessionResponse represents a session snapshot
type SessionResponse struct {
	SessionID                 string             `json:"session_id"`
	Phase                     types.Phase        `json:"phase"`
	TurnCount                 int                `json:"turn_count"`
	ScoreHistory              []float64          `json:"score_history,omitempty"`
	Target                    types.BenchmarkKey `json:"target"`
	LowConfidenceProgression  bool               `json:"low_confidence_progression,omitempty"`
	SessionProgressPercentage int                `json:"session_progress_percentage"`
}

// TurnRequestBody represents the request body for POST /sessions/{id}/turns
type TurnRequestBody struct {
	UserInput  string             `json:"user_input" validate:"required"`
	IncludeATS bool               `json:"include_ats,omitempty"`
	ATSWeights map[string]float64 `json:"ats_weights,omitempty"`
}

// AnalyzeRequest represents the request body for the stateless analysis endpoints
type AnalyzeRequest struct {
	Text string `json:"text" validate:"required"`
}

// errorBody is the wire shape of all error responses
type errorBody struct {
	Success   bool   `json:"success"`
	ErrorKind string `json:"error_kind"`
	Message   string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindValidationError, "invalid request body: "+err.Error())
		return
	}

	target := types.BenchmarkKey{
		Industry:  req.TargetIndustry,
		Role:      req.TargetRole,
		Seniority: req.Seniority,
	}

	sess, err := s.controller.StartSession(r.Context(), req.SessionID, target)
	if err != nil {
		s.analysisError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, sessionResponse(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.controller.GetSession(r.Context(), r.PathValue("id"))
	if err != nil {
		s.analysisError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.EndSession(r.Context(), r.PathValue("id")); err != nil {
		s.analysisError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.controller.ResetSession(r.Context(), r.PathValue("id"))
	if err != nil {
		s.analysisError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

func (s *Server) handleProcessTurn(w http.ResponseWriter, r *http.Request) {
	var req TurnRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindValidationError, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	result, err := s.controller.ProcessTurn(r.Context(), conversation.TurnRequest{
		SessionID:  r.PathValue("id"),
		Input:      req.UserInput,
		IncludeATS: req.IncludeATS,
		ATSWeights: req.ATSWeights,
	})
	if err != nil {
		s.analysisError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleAnalyzeQuality(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	score, err := s.analyzer.Analyze(req.Text)
	if err != nil {
		s.analysisError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, score)
}

func (s *Server) handleMineAchievements(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	achievements := s.miner.Mine(req.Text)
	s.jsonResponse(w, http.StatusOK, map[string]any{"achievements": achievements})
}

func (s *Server) handleBenchmarkPercentile(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dimension := q.Get("dimension")
	if dimension == "" {
		s.errorResponse(w, http.StatusBadRequest, KindValidationError, "dimension is required")
		return
	}
	score, err := strconv.ParseFloat(q.Get("score"), 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindValidationError, "score must be a number")
		return
	}

	key := types.BenchmarkKey{
		Industry:  q.Get("industry"),
		Role:      q.Get("role"),
		Seniority: q.Get("seniority"),
	}

	percentile, err := s.engine.Percentile(dimension, score, key)
	if err != nil {
		s.analysisError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, percentile)
}

func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (*AnalyzeRequest, bool) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindValidationError, "invalid request body: "+err.Error())
		return nil, false
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindValidationError, err.Error())
		return nil, false
	}
	return &req, true
}

func sessionResponse(sess *types.Session) SessionResponse {
	return SessionResponse{
		SessionID:                 sess.ID,
		Phase:                     sess.Phase,
		TurnCount:                 len(sess.Turns),
		ScoreHistory:              sess.ScoreHistory,
		Target:                    sess.Target,
		LowConfidenceProgression:  sess.LowConfidenceProgression,
		SessionProgressPercentage: sess.Phase.ProgressPercentage(),
	}
}

// analysisError maps a domain error to its response shape.
func (s *Server) analysisError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	kind := ErrorKind(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.errorResponse(w, status, kind, err.Error())
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, kind, message string) {
	s.jsonResponse(w, status, errorBody{Success: false, ErrorKind: kind, Message: message})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}
