package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"lifetrack/internal/config"
	"lifetrack/internal/model"
	"lifetrack/internal/telemetry"
)

// chatApology is returned whenever the chat path fails; the chat UI always
// gets a usable reply.
const chatApology = "Sorry, I couldn't think that one through right now. Please try again in a moment."

// AIService bridges to the Gemini API for the structured insight report and
// free-form chat
type AIService struct {
	config  *config.AIConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewAIService creates a new AI bridge
func NewAIService(cfg *config.AIConfig, logger *zap.Logger) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "gemini",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
		}),
		logger: logger,
	}
}

// GenerateInsight asks the model for the fixed insight report schema. It does
// not fall back to the rule engine: any failure is surfaced to the caller,
// who should treat this endpoint as best-effort.
func (s *AIService) GenerateInsight(ctx context.Context, m model.MetricSet, recentReview string) (*model.AIInsightReport, error) {
	if !s.config.IsEnabled() {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrAIMissingKey)
	}

	text, err := s.callGemini(ctx, s.config.Models.Insight, s.buildInsightPrompt(m, recentReview), true)
	if err != nil {
		telemetry.AICallsTotal.WithLabelValues("insight", "error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	telemetry.AICallsTotal.WithLabelValues("insight", "ok").Inc()

	raw, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}

	var report model.AIInsightReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, fmt.Errorf("%w: malformed report JSON: %v", ErrAIUnavailable, err)
	}
	if err := validateReport(&report); err != nil {
		return nil, fmt.Errorf("%w: incomplete report: %v", ErrAIUnavailable, err)
	}
	return &report, nil
}

// Chat forwards a free-form question plus the metric snapshot. It never
// returns an error; failures degrade to a fixed apology.
func (s *AIService) Chat(ctx context.Context, message string, m model.MetricSet) string {
	if !s.config.IsEnabled() {
		return chatApology
	}

	text, err := s.callGemini(ctx, s.config.Models.Chat, s.buildChatPrompt(message, m), false)
	if err != nil {
		telemetry.AICallsTotal.WithLabelValues("chat", "error").Inc()
		s.logger.Warn("chat call failed", zap.Error(err))
		return chatApology
	}
	telemetry.AICallsTotal.WithLabelValues("chat", "ok").Inc()
	reply := strings.TrimSpace(text)
	if reply == "" {
		return chatApology
	}
	return reply
}

// callGemini makes a request to the Gemini API through the circuit breaker
func (s *AIService) callGemini(ctx context.Context, modelName, prompt string, wantJSON bool) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
	}
	if wantJSON {
		reqBody["generationConfig"] = map[string]interface{}{
			"responseMimeType": "application/json",
		}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("gemini status %d: %s", resp.StatusCode, snippet(body))
		}
		return body, nil
	})
	if err != nil {
		return "", err
	}

	// Parse Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(result.([]byte), &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}
	return "", errors.New("empty response from Gemini")
}

// Prompt builders
func (s *AIService) buildInsightPrompt(m model.MetricSet, recentReview string) string {
	reviewCtx := ""
	if recentReview != "" {
		reviewCtx = fmt.Sprintf("\nMost recent weekly review by the user: \"%s\"\n", recentReview)
	}

	return fmt.Sprintf(`You are a routine-health analyst for a personal life-management app. Return ONLY valid JSON matching this schema:
{
  "title": "short report title",
  "priority": "Low" or "Medium" or "High",
  "synthesis": "2-3 sentence synthesis of the user's current state",
  "insights": ["exactly", "five", "bullet", "insight", "strings"],
  "causalChain": "A → B → C chain describing the dominant dynamic",
  "predictions": {
    "nextRiskDay": "weekday name",
    "burnoutProbability": 0 to 100,
    "financialRisk": "Low" or "Medium" or "High"
  },
  "weeklyOutlook": "one sentence",
  "monthlyOutlook": "one sentence",
  "recommendations": [
    {"title": "...", "impact": 0 to 100, "risk": "Low/Medium/High", "icon": "tag", "action": "...", "source": "ai"}
  ]
}
The insights array must contain exactly 5 entries and recommendations exactly 3.

Current normalized scores (0-100):
- Consistency: %d
- Focus: %d
- Study Load: %d
- Financial: %d
%s
Analyze the scores and produce the report.`,
		m.Consistency, m.Focus, m.StudyLoad, m.Financial, reviewCtx)
}

func (s *AIService) buildChatPrompt(message string, m model.MetricSet) string {
	return fmt.Sprintf(`You are a friendly routine coach inside a personal life-management app.
Answer the user's question helpfully and generally. Only reference their tracked metrics when it is contextually necessary for the answer.

User's current scores (0-100): consistency %d, focus %d, study load %d, financial %d.

User's question: %s`,
		m.Consistency, m.Focus, m.StudyLoad, m.Financial, message)
}

// extractJSON returns the first balanced {...} block in text, tolerating
// leading and trailing prose around the object.
func extractJSON(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", errors.New("no JSON object in model reply")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], nil
				}
			}
		}
	}
	return "", errors.New("unbalanced JSON object in model reply")
}

// validateReport rejects partially-filled report shapes outright
func validateReport(r *model.AIInsightReport) error {
	switch {
	case r.Title == "":
		return errors.New("missing title")
	case r.Priority == "":
		return errors.New("missing priority")
	case r.Synthesis == "":
		return errors.New("missing synthesis")
	case len(r.Insights) != 5:
		return fmt.Errorf("expected 5 insights, got %d", len(r.Insights))
	case r.CausalChain == "":
		return errors.New("missing causalChain")
	case r.WeeklyOutlook == "":
		return errors.New("missing weeklyOutlook")
	case r.MonthlyOutlook == "":
		return errors.New("missing monthlyOutlook")
	case len(r.Recommendations) != 3:
		return fmt.Errorf("expected 3 recommendations, got %d", len(r.Recommendations))
	}
	return nil
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}
