package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifetrack/internal/model"
)

// A Monday afternoon; the trailing week runs Tue..Mon.
var chartNow = time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

func chartSnapshot() *model.RecordSnapshot {
	return &model.RecordSnapshot{
		Sessions: []model.FocusSession{
			{Duration: 60, CompletedAt: chartNow.Add(-5 * time.Hour)},          // today
			{Duration: 30, CompletedAt: chartNow.AddDate(0, 0, -3)},            // Friday
			{Duration: 15, CompletedAt: chartNow.AddDate(0, 0, -3).Add(time.Hour)}, // Friday again
		},
		Routines: []model.Routine{
			{Name: "Morning", Date: chartNow, Tasks: []model.RoutineTask{
				{Completed: true}, {Completed: true}, {Completed: false},
			}},
			{Name: "Evening", Date: chartNow, Tasks: []model.RoutineTask{
				{Completed: true}, {Completed: false},
			}},
		},
	}
}

func TestPerformanceDataShape(t *testing.T) {
	s := NewChartService()

	points := s.PerformanceData(chartSnapshot(), 50, chartNow)
	require.Len(t, points, 7)

	assert.Equal(t, "Tue", points[0].Date, "oldest point is six days back")
	assert.Equal(t, "Mon", points[6].Date, "series ends today")
}

func TestPerformanceDataDailyFocus(t *testing.T) {
	s := NewChartService()

	points := s.PerformanceData(chartSnapshot(), 50, chartNow)

	assert.Equal(t, 100, points[6].Focus, "60 minutes today is a full daily score")
	assert.Equal(t, 75, points[3].Focus, "45 minutes on Friday")
	assert.Equal(t, 0, points[0].Focus, "no sessions six days ago")
}

func TestPerformanceDataDeterministicDecay(t *testing.T) {
	s := NewChartService()
	snap := chartSnapshot()

	// Today's routine baseline: 3 of 5 tasks completed.
	points := s.PerformanceData(snap, 50, chartNow)
	assert.Equal(t, 60, points[6].Load)
	assert.Equal(t, 60-3*3, points[3].Load)
	assert.Equal(t, 60-3*6, points[0].Load)

	assert.Equal(t, 50, points[6].Study)
	assert.Equal(t, 50-2*6, points[0].Study)

	// Identical inputs produce identical output.
	again := s.PerformanceData(snap, 50, chartNow)
	assert.Equal(t, points, again)
}

func TestPerformanceDataDecayClampsAtZero(t *testing.T) {
	s := NewChartService()

	points := s.PerformanceData(&model.RecordSnapshot{}, 5, chartNow)
	assert.Equal(t, 0, points[0].Study, "5 - 2*6 clamps at zero")
	assert.Equal(t, 0, points[0].Load)
}

func TestPerformanceDataBucketsInServerZone(t *testing.T) {
	s := NewChartService()

	// Mongo hands timestamps back in UTC while now carries the server zone.
	// 20:00 IST is 14:30 UTC on the same local calendar day.
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, ist)
	snap := &model.RecordSnapshot{
		Sessions: []model.FocusSession{
			{Duration: 60, CompletedAt: now.Add(-2 * time.Hour).UTC()},
		},
		Routines: []model.Routine{
			{Name: "Morning", Date: now.UTC(), Tasks: []model.RoutineTask{
				{Completed: true}, {Completed: false},
			}},
		},
	}

	points := s.PerformanceData(snap, 50, now)
	require.Len(t, points, 7)
	assert.Equal(t, 100, points[6].Focus, "today's session counts despite the zone offset")
	assert.Equal(t, 50, points[6].Load, "today's routine counts despite the zone offset")

	modules := s.ModulePerformance(snap, model.MetricSet{}, now)
	assert.Equal(t, 50, modules[0].Score, "Time module matches the routine dated today")
}

func TestTimeScoreZeroWithoutTodayRoutine(t *testing.T) {
	s := NewChartService()

	// Completed routines exist, but none dated today.
	snap := &model.RecordSnapshot{
		Routines: []model.Routine{
			{Name: "Morning", Date: chartNow.AddDate(0, 0, -2), Tasks: []model.RoutineTask{
				{Completed: true}, {Completed: true},
			}},
		},
	}

	modules := s.ModulePerformance(snap, model.MetricSet{}, chartNow)
	assert.Equal(t, "Time", modules[0].Name)
	assert.Zero(t, modules[0].Score, "nothing scheduled today scores 0")
	assert.Equal(t, 100, modules[5].Score, "Routines still reflects the overall ratio")

	points := s.PerformanceData(snap, 50, chartNow)
	assert.Zero(t, points[6].Load, "load baseline follows the Time score")
}

func TestHeatIndicatorTracksDailyFocus(t *testing.T) {
	s := NewChartService()

	points := s.PerformanceData(chartSnapshot(), 50, chartNow)
	heat := s.HeatIndicator(points)

	require.Len(t, heat, 7)
	for i, p := range points {
		assert.Equal(t, p.Focus, heat[i])
	}
}

func TestModulePerformance(t *testing.T) {
	s := NewChartService()

	snap := chartSnapshot()
	snap.Goals = []model.Goal{{Progress: 100}, {Progress: 55}, {Progress: 70}}
	snap.Attendance = presentRecords(3, 1)

	modules := s.ModulePerformance(snap, model.MetricSet{Consistency: 72, Focus: 48, StudyLoad: 50}, chartNow)
	require.Len(t, modules, 7)

	byName := map[string]int{}
	var names []string
	for _, mod := range modules {
		byName[mod.Name] = mod.Score
		names = append(names, mod.Name)
	}

	assert.Equal(t, []string{"Time", "Goals", "Focus", "Habits", "Attendance", "Routines", "Study"}, names)
	assert.Equal(t, 60, byName["Time"], "today's routine tasks: 3 of 5")
	assert.Equal(t, 33, byName["Goals"], "one of three goals complete")
	assert.Equal(t, 48, byName["Focus"])
	assert.Equal(t, 72, byName["Habits"])
	assert.Equal(t, 75, byName["Attendance"])
	assert.Equal(t, 60, byName["Routines"])
	assert.Equal(t, 50, byName["Study"])
}

func TestModulePerformanceEmptySnapshot(t *testing.T) {
	s := NewChartService()

	modules := s.ModulePerformance(&model.RecordSnapshot{}, model.MetricSet{}, chartNow)
	for _, mod := range modules {
		assert.Equal(t, 0, mod.Score, mod.Name)
	}
}

func TestDistributionRanksTopFive(t *testing.T) {
	s := NewChartService()

	modules := []model.ModuleScore{
		{Name: "Time", Score: 10},
		{Name: "Goals", Score: 90},
		{Name: "Focus", Score: 0},
		{Name: "Habits", Score: 70},
		{Name: "Attendance", Score: 40},
		{Name: "Routines", Score: 55},
		{Name: "Study", Score: 25},
	}

	slices := s.Distribution(modules)
	require.Len(t, slices, 5, "at most five slices")

	assert.Equal(t, "Goals", slices[0].Name)
	assert.Equal(t, 90, slices[0].Value)
	assert.Equal(t, "Habits", slices[1].Name)
	assert.Equal(t, "Study", slices[4].Name, "lowest survivor; Focus at 0 and Time at 10 drop out")

	for i, slice := range slices {
		assert.Equal(t, distributionPalette[i], slice.Fill)
	}
}

func TestDistributionAllZero(t *testing.T) {
	s := NewChartService()

	slices := s.Distribution([]model.ModuleScore{{Name: "Time"}, {Name: "Goals"}})
	require.Len(t, slices, 1)
	assert.Equal(t, model.DistributionSlice{Name: "None", Value: 100, Fill: emptyDistributionFill}, slices[0])
}
