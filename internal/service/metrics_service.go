package service

import (
	"math"

	"lifetrack/internal/model"
)

// Weekly focus minutes that earn a full focus score.
const weeklyFocusTarget = 300.0

// MetricsService normalizes raw collaborator records into the 0-100 metric set
type MetricsService struct{}

// NewMetricsService creates a new metrics service
func NewMetricsService() *MetricsService {
	return &MetricsService{}
}

// Normalize derives the four domain scores from a record snapshot
func (s *MetricsService) Normalize(snap *model.RecordSnapshot) model.MetricSet {
	return model.MetricSet{
		Consistency: s.consistency(snap.Habits, snap.Attendance),
		Focus:       s.focus(snap.Sessions),
		StudyLoad:   s.studyLoad(snap.StudyItems),
		Financial:   s.financial(snap.Expenses),
	}
}

// GlobalScore combines the metric set with fixed weights
func (s *MetricsService) GlobalScore(m model.MetricSet) int {
	score := 0.35*float64(m.Consistency) + 0.35*float64(m.Focus) + 0.30*float64(m.StudyLoad)
	return clampScore(int(math.Round(score)))
}

// DomainStatus bands each metric domain into Optimal / Stable / Attention
func (s *MetricsService) DomainStatus(m model.MetricSet) []model.DomainStatus {
	domains := []struct {
		name  string
		score int
	}{
		{"Consistency", m.Consistency},
		{"Focus", m.Focus},
		{"Study", m.StudyLoad},
		{"Financial", m.Financial},
	}

	statuses := make([]model.DomainStatus, 0, len(domains))
	for _, d := range domains {
		statuses = append(statuses, model.DomainStatus{
			Domain: d.name,
			Score:  d.score,
			Status: statusFor(d.score),
		})
	}
	return statuses
}

// consistency averages an active-streak component with an attendance-rate
// component. No habits yet is treated as an optimistic 80, not a failure;
// with neither input present the score defaults to 82.
func (s *MetricsService) consistency(habits []model.Habit, attendance []model.Attendance) int {
	if len(habits) == 0 && len(attendance) == 0 {
		return 82
	}

	habitComponent := 80.0
	if len(habits) > 0 {
		active := 0
		for _, h := range habits {
			if h.CurrentStreak > 0 {
				active++
			}
		}
		habitComponent = float64(active) / float64(len(habits)) * 100
	}

	attendanceComponent := 0.0
	if len(attendance) > 0 {
		present := 0
		for _, a := range attendance {
			if a.Status == model.StatusPresent {
				present++
			}
		}
		attendanceComponent = float64(present) / float64(len(attendance)) * 100
	}

	// Round once, after combining the components.
	return clampScore(int(math.Round((habitComponent + attendanceComponent) / 2)))
}

func (s *MetricsService) focus(sessions []model.FocusSession) int {
	total := 0
	for _, sess := range sessions {
		total += sess.Duration
	}
	score := int(math.Round(float64(total) / weeklyFocusTarget * 100))
	if score > 100 {
		score = 100
	}
	return clampScore(score)
}

func (s *MetricsService) studyLoad(items []model.StudyItem) int {
	sum, count := 0, 0
	for _, item := range items {
		if item.Type == model.StudySubject {
			sum += item.Progress
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return clampScore(int(math.Round(float64(sum) / float64(count))))
}

func (s *MetricsService) financial(expenses []model.Expense) int {
	income, spent := 0.0, 0.0
	for _, e := range expenses {
		switch e.Type {
		case model.TransactionIncome:
			income += e.Amount
		case model.TransactionExpense:
			spent += e.Amount
		}
	}
	if income+spent == 0 {
		return 0
	}
	return clampScore(int(math.Round(income / (income + spent) * 100)))
}

func statusFor(score int) string {
	switch {
	case score >= 75:
		return model.StatusOptimal
	case score >= 50:
		return model.StatusStable
	default:
		return model.StatusAttention
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
