package service

import (
	"math"
	"sort"
	"time"

	"lifetrack/internal/model"
)

const (
	trendDays = 7

	// Full daily focus score is earned at one hour of sessions.
	dailyFocusTarget = 60.0

	// Per-day linear decay applied to past-day load/study points. The store
	// keeps no historical snapshots for load and study, so prior days are a
	// deterministic approximation anchored on today's baseline.
	loadDecayStep  = 3
	studyDecayStep = 2
)

// Rank-ordered palette for the distribution chart.
var distributionPalette = []string{"#6366f1", "#8b5cf6", "#ec4899", "#f59e0b", "#10b981"}

const emptyDistributionFill = "#94a3b8"

// ChartService builds the time-series and per-module chart datasets
type ChartService struct{}

// NewChartService creates a new chart service
func NewChartService() *ChartService {
	return &ChartService{}
}

// PerformanceData returns exactly 7 daily points, oldest first, ending on the
// calendar day of now. Day boundaries are midnight-aligned in now's zone.
func (s *ChartService) PerformanceData(snap *model.RecordSnapshot, studyLoad int, now time.Time) []model.PerformancePoint {
	today := dayStart(now)
	loadBase := s.todayRoutineScore(snap.Routines, today)

	points := make([]model.PerformancePoint, 0, trendDays)
	for daysAgo := trendDays - 1; daysAgo >= 0; daysAgo-- {
		day := today.AddDate(0, 0, -daysAgo)

		minutes := 0
		for _, sess := range snap.Sessions {
			// Records come back in UTC; bucket them in now's zone.
			if dayStart(sess.CompletedAt.In(day.Location())).Equal(day) {
				minutes += sess.Duration
			}
		}
		focus := int(math.Round(float64(minutes) / dailyFocusTarget * 100))
		if focus > 100 {
			focus = 100
		}

		points = append(points, model.PerformancePoint{
			Date:  day.Format("Mon"),
			Focus: clampScore(focus),
			Load:  clampScore(loadBase - loadDecayStep*daysAgo),
			Study: clampScore(studyLoad - studyDecayStep*daysAgo),
		})
	}
	return points
}

// HeatIndicator returns the 7 daily focus scores, oldest first
func (s *ChartService) HeatIndicator(points []model.PerformancePoint) []int {
	heat := make([]int, 0, len(points))
	for _, p := range points {
		heat = append(heat, p.Focus)
	}
	return heat
}

// ModulePerformance scores the seven life-tracking modules
func (s *ChartService) ModulePerformance(snap *model.RecordSnapshot, m model.MetricSet, now time.Time) []model.ModuleScore {
	return []model.ModuleScore{
		{Name: "Time", Score: s.todayRoutineScore(snap.Routines, dayStart(now))},
		{Name: "Goals", Score: s.goalScore(snap.Goals)},
		{Name: "Focus", Score: m.Focus},
		{Name: "Habits", Score: m.Consistency},
		{Name: "Attendance", Score: s.attendanceScore(snap.Attendance)},
		{Name: "Routines", Score: s.routineScore(snap.Routines)},
		{Name: "Study", Score: m.StudyLoad},
	}
}

// Distribution takes the top 5 modules by score, descending, and assigns the
// fixed palette in rank order. An all-zero board yields a single placeholder.
func (s *ChartService) Distribution(modules []model.ModuleScore) []model.DistributionSlice {
	scored := make([]model.ModuleScore, 0, len(modules))
	for _, mod := range modules {
		if mod.Score > 0 {
			scored = append(scored, mod)
		}
	}
	if len(scored) == 0 {
		return []model.DistributionSlice{{Name: "None", Value: 100, Fill: emptyDistributionFill}}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > len(distributionPalette) {
		scored = scored[:len(distributionPalette)]
	}

	slices := make([]model.DistributionSlice, 0, len(scored))
	for i, mod := range scored {
		slices = append(slices, model.DistributionSlice{
			Name:  mod.Name,
			Value: mod.Score,
			Fill:  distributionPalette[i],
		})
	}
	return slices
}

// todayRoutineScore is the completion ratio of routine tasks due on day,
// 0 when none are scheduled.
func (s *ChartService) todayRoutineScore(routines []model.Routine, day time.Time) int {
	completed, total := 0, 0
	for _, r := range routines {
		if !dayStart(r.Date.In(day.Location())).Equal(day) {
			continue
		}
		for _, t := range r.Tasks {
			total++
			if t.Completed {
				completed++
			}
		}
	}
	return ratioScore(completed, total)
}

func (s *ChartService) routineScore(routines []model.Routine) int {
	completed, total := 0, 0
	for _, r := range routines {
		for _, t := range r.Tasks {
			total++
			if t.Completed {
				completed++
			}
		}
	}
	return ratioScore(completed, total)
}

func (s *ChartService) goalScore(goals []model.Goal) int {
	completed := 0
	for _, g := range goals {
		if g.Progress >= 100 {
			completed++
		}
	}
	return ratioScore(completed, len(goals))
}

func (s *ChartService) attendanceScore(records []model.Attendance) int {
	present := 0
	for _, a := range records {
		if a.Status == model.StatusPresent {
			present++
		}
	}
	return ratioScore(present, len(records))
}

// ratioScore returns completed/total scaled to 0-100, 0 for an empty total
func ratioScore(completed, total int) int {
	if total == 0 {
		return 0
	}
	return clampScore(int(math.Round(float64(completed) / float64(total) * 100)))
}

func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
