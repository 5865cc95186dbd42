package service

import (
	"strings"
	"time"

	"lifetrack/internal/model"
)

// Burnout probabilities reported per rule branch.
const (
	burnoutOverload = 89
	burnoutPeak     = 5
	burnoutStable   = 35
)

// maxRecommendations is the fixed size of every recommendation list.
const maxRecommendations = 3

// fillerRecommendations pad the list when fewer rules fire, in this order.
var fillerRecommendations = []model.Recommendation{
	{
		Title:  "Review your weekly plan",
		Impact: 40,
		Risk:   model.RiskLow,
		Icon:   "calendar",
		Action: "Spend 15 minutes reconciling this week's routines and goals.",
		Source: "rule:filler",
	},
	{
		Title:  "Take hydration breaks between sessions",
		Impact: 35,
		Risk:   model.RiskLow,
		Icon:   "droplet",
		Action: "Step away from the desk for two minutes every focus block.",
		Source: "rule:filler",
	},
	{
		Title:  "Run an evening shutdown ritual",
		Impact: 30,
		Risk:   model.RiskLow,
		Icon:   "moon",
		Action: "Close open loops before bed: tomorrow's top task, then screens off.",
		Source: "rule:filler",
	},
}

// InsightService is the deterministic rule engine behind the core view
type InsightService struct {
	now func() time.Time
}

// NewInsightService creates a new insight service
func NewInsightService() *InsightService {
	return &InsightService{now: time.Now}
}

// Evaluate runs the decision table over the metric set. The returned bundle
// always carries exactly three recommendations.
func (s *InsightService) Evaluate(m model.MetricSet) (model.InsightBundle, model.Predictions) {
	var (
		summary string
		chains  []string
		recs    []model.Recommendation
		burnout int
	)

	switch {
	case m.StudyLoad > 80 && m.Focus < 50:
		summary = "Study volume is outrunning recovery. Sustained high load with degraded focus is the classic signature of cognitive fatigue setting in."
		chains = []string{"Excessive Study Hours → Cognitive Fatigue → Reduced Focus Quality"}
		recs = append(recs, model.Recommendation{
			Title:  "Deload: cut study volume by 30% this week",
			Impact: 92,
			Risk:   model.RiskHigh,
			Icon:   "brain",
			Action: "Drop the two lowest-priority study blocks and protect sleep for the next three days.",
			Source: "rule:overload",
		})
		burnout = burnoutOverload

	case m.Consistency > 80 && m.Focus > 75:
		summary = "You are in a peak window: habits are holding and focus quality is high. This is the time to raise difficulty, not volume."
		chains = []string{"Consistent Habits → Stable Energy → Sustained Focus"}
		recs = append(recs, model.Recommendation{
			Title:  "Increase session difficulty",
			Impact: 68,
			Risk:   model.RiskLow,
			Icon:   "trending-up",
			Action: "Swap one routine focus block for harder material while the streak holds.",
			Source: "rule:peak",
		})
		burnout = burnoutPeak

	default:
		summary = "The week is stable with some friction. No single metric is failing, but small inconsistencies are costing momentum."
		chains = []string{"Irregular Routines → Context Switching → Recurring Friction"}
		burnout = burnoutStable
	}

	if m.Focus < 65 {
		recs = append(recs, model.Recommendation{
			Title:  "Extend your sleep window by 45 minutes",
			Impact: 74,
			Risk:   model.RiskMedium,
			Icon:   "moon",
			Action: "Move bedtime earlier this week; focus scores track sleep debt closely.",
			Source: "rule:focus-low",
		})
	}
	if m.StudyLoad < 50 {
		recs = append(recs, model.Recommendation{
			Title:  "Schedule a 90-minute deep work block",
			Impact: 70,
			Risk:   model.RiskLow,
			Icon:   "timer",
			Action: "Put one uninterrupted study block on tomorrow's calendar before anything else.",
			Source: "rule:study-capacity",
		})
	}

	recs = padRecommendations(recs)

	bundle := model.InsightBundle{
		HumanReadableSummary: summary,
		CauseEffectChains:    chains,
		Recommendations:      recs,
	}
	predictions := model.Predictions{
		NextRiskDay:        s.now().Weekday().String(),
		BurnoutProbability: burnout,
		FinancialRisk:      model.RiskLow,
	}
	return bundle, predictions
}

// MiniInsight joins three threshold-picked fragments for the dashboard view,
// e.g. "Strong habits · Low study load · Finances stable".
func (s *InsightService) MiniInsight(m model.MetricSet) string {
	var habits string
	switch {
	case m.Consistency >= 70:
		habits = "Strong habits"
	case m.Consistency >= 50:
		habits = "Habits steady"
	default:
		habits = "Habits slipping"
	}

	var study string
	switch {
	case m.StudyLoad > 80:
		study = "Heavy study load"
	case m.StudyLoad < 50:
		study = "Low study load"
	default:
		study = "Balanced study load"
	}

	finances := "Finances stable"
	if m.Financial < 60 {
		finances = "Spending elevated"
	}

	return strings.Join([]string{habits, study, finances}, " · ")
}

// padRecommendations trims to or fills up to exactly maxRecommendations
func padRecommendations(recs []model.Recommendation) []model.Recommendation {
	if len(recs) >= maxRecommendations {
		return recs[:maxRecommendations]
	}
	for _, filler := range fillerRecommendations {
		if len(recs) == maxRecommendations {
			break
		}
		recs = append(recs, filler)
	}
	return recs
}
