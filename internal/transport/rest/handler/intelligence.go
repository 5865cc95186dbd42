package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"lifetrack/internal/model"
	"lifetrack/internal/service"
)

// IntelligenceProvider produces the aggregated dashboard and core views
type IntelligenceProvider interface {
	Dashboard(ctx context.Context) (*model.DashboardView, error)
	Core(ctx context.Context) (*model.CoreView, error)
}

// InsightGenerator is the external AI bridge
type InsightGenerator interface {
	GenerateInsight(ctx context.Context, m model.MetricSet, recentReview string) (*model.AIInsightReport, error)
	Chat(ctx context.Context, message string, m model.MetricSet) string
}

// IntelligenceHandler handles the /api/intelligence endpoints
type IntelligenceHandler struct {
	intelligence IntelligenceProvider
	ai           InsightGenerator
}

// NewIntelligenceHandler creates a new intelligence handler
func NewIntelligenceHandler(intelligence IntelligenceProvider, ai InsightGenerator) *IntelligenceHandler {
	return &IntelligenceHandler{intelligence: intelligence, ai: ai}
}

// Dashboard handles GET /api/intelligence/dashboard
func (h *IntelligenceHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.intelligence.Dashboard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to aggregate intelligence data")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Core handles GET /api/intelligence/core
func (h *IntelligenceHandler) Core(w http.ResponseWriter, r *http.Request) {
	view, err := h.intelligence.Core(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to aggregate intelligence data")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GenerateAI handles POST /api/intelligence/generate-ai
func (h *IntelligenceHandler) GenerateAI(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateAIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Metrics == nil {
		writeError(w, http.StatusBadRequest, "metrics required")
		return
	}

	report, err := h.ai.GenerateInsight(r.Context(), *req.Metrics, req.Context)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAIMissingKey):
			writeErrorDetails(w, http.StatusServiceUnavailable, "AI provider not configured", err.Error())
		case errors.Is(err, service.ErrAIUnavailable):
			writeErrorDetails(w, http.StatusBadGateway, "AI provider failed", err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Chat handles POST /api/intelligence/chat. Internal failures degrade to an
// apology reply at 200 so the chat UI never breaks.
func (h *IntelligenceHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply := h.ai.Chat(r.Context(), req.Message, req.Metrics)
	writeJSON(w, http.StatusOK, model.ChatResponse{Reply: reply})
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeErrorDetails(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "details": details})
}
