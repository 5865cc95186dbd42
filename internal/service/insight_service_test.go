package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifetrack/internal/model"
)

func fixedInsightService(t time.Time) *InsightService {
	s := NewInsightService()
	s.now = func() time.Time { return t }
	return s
}

func TestOverloadBranch(t *testing.T) {
	s := NewInsightService()

	bundle, predictions := s.Evaluate(model.MetricSet{Consistency: 70, Focus: 40, StudyLoad: 90})

	assert.Equal(t, 89, predictions.BurnoutProbability)
	require.Len(t, bundle.Recommendations, 3)
	assert.Equal(t, model.RiskHigh, bundle.Recommendations[0].Risk)
	assert.Equal(t, "rule:overload", bundle.Recommendations[0].Source)
	assert.Contains(t, bundle.CauseEffectChains[0], "Cognitive Fatigue")

	// focus < 65 also fires the sleep recommendation; a filler completes the list
	assert.Equal(t, "rule:focus-low", bundle.Recommendations[1].Source)
	assert.Equal(t, "rule:filler", bundle.Recommendations[2].Source)
}

func TestPeakBranch(t *testing.T) {
	s := NewInsightService()

	bundle, predictions := s.Evaluate(model.MetricSet{Consistency: 85, Focus: 80, StudyLoad: 60})

	assert.Equal(t, 5, predictions.BurnoutProbability)
	require.Len(t, bundle.Recommendations, 3)
	assert.Equal(t, "rule:peak", bundle.Recommendations[0].Source)
	assert.Equal(t, model.RiskLow, bundle.Recommendations[0].Risk)
}

func TestDefaultBranchPadsWithFillers(t *testing.T) {
	s := NewInsightService()

	// No rule branch qualifies: focus >= 65 and studyLoad >= 50.
	bundle, predictions := s.Evaluate(model.MetricSet{Consistency: 60, Focus: 70, StudyLoad: 60})

	assert.Equal(t, 35, predictions.BurnoutProbability)
	require.Len(t, bundle.Recommendations, 3)
	for _, rec := range bundle.Recommendations {
		assert.Equal(t, "rule:filler", rec.Source)
	}
	assert.Equal(t, "Review your weekly plan", bundle.Recommendations[0].Title)
}

func TestConditionalRecommendations(t *testing.T) {
	s := NewInsightService()

	// Default branch, but both conditionals qualify.
	bundle, _ := s.Evaluate(model.MetricSet{Consistency: 60, Focus: 40, StudyLoad: 30})

	require.Len(t, bundle.Recommendations, 3)
	assert.Equal(t, "rule:focus-low", bundle.Recommendations[0].Source)
	assert.Equal(t, "rule:study-capacity", bundle.Recommendations[1].Source)
	assert.Equal(t, "rule:filler", bundle.Recommendations[2].Source)
}

func TestPadRecommendationsTruncates(t *testing.T) {
	var recs []model.Recommendation
	for i := 0; i < 5; i++ {
		recs = append(recs, model.Recommendation{Title: string(rune('A' + i))})
	}

	padded := padRecommendations(recs)
	require.Len(t, padded, 3)
	assert.Equal(t, "A", padded[0].Title)
	assert.Equal(t, "C", padded[2].Title)
}

func TestPredictionsReportTodayAsRiskDay(t *testing.T) {
	wednesday := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)
	s := fixedInsightService(wednesday)

	_, predictions := s.Evaluate(model.MetricSet{})
	assert.Equal(t, "Wednesday", predictions.NextRiskDay)
	assert.Equal(t, model.RiskLow, predictions.FinancialRisk)
}

func TestMiniInsight(t *testing.T) {
	s := NewInsightService()

	tests := []struct {
		name string
		m    model.MetricSet
		want string
	}{
		{
			"strong week",
			model.MetricSet{Consistency: 82, Focus: 60, StudyLoad: 40, Financial: 70},
			"Strong habits · Low study load · Finances stable",
		},
		{
			"struggling week",
			model.MetricSet{Consistency: 30, Focus: 20, StudyLoad: 85, Financial: 20},
			"Habits slipping · Heavy study load · Spending elevated",
		},
		{
			"middling week",
			model.MetricSet{Consistency: 55, Focus: 50, StudyLoad: 60, Financial: 65},
			"Habits steady · Balanced study load · Finances stable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.MiniInsight(tt.m))
		})
	}
}
