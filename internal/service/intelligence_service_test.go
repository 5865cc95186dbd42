package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lifetrack/internal/model"
)

// fakeStore backs all eight repository interfaces for tests
type fakeStore struct {
	snap     model.RecordSnapshot
	failRead error
	calls    atomic.Int32
}

func (f *fakeStore) GetSince(ctx context.Context, since time.Time) ([]model.FocusSession, error) {
	f.calls.Add(1)
	return f.snap.Sessions, f.failRead
}

type fakeHabits struct{ store *fakeStore }

func (f fakeHabits) GetAll(ctx context.Context) ([]model.Habit, error) {
	f.store.calls.Add(1)
	return f.store.snap.Habits, nil
}

type fakeRoutines struct{ store *fakeStore }

func (f fakeRoutines) GetAll(ctx context.Context) ([]model.Routine, error) {
	f.store.calls.Add(1)
	return f.store.snap.Routines, nil
}

type fakeExpenses struct{ store *fakeStore }

func (f fakeExpenses) GetSince(ctx context.Context, since time.Time) ([]model.Expense, error) {
	f.store.calls.Add(1)
	return f.store.snap.Expenses, nil
}

type fakeAttendance struct{ store *fakeStore }

func (f fakeAttendance) GetSince(ctx context.Context, since time.Time) ([]model.Attendance, error) {
	f.store.calls.Add(1)
	return f.store.snap.Attendance, nil
}

type fakeStudy struct{ store *fakeStore }

func (f fakeStudy) GetAll(ctx context.Context) ([]model.StudyItem, error) {
	f.store.calls.Add(1)
	return f.store.snap.StudyItems, nil
}

type fakeGoals struct{ store *fakeStore }

func (f fakeGoals) GetAll(ctx context.Context) ([]model.Goal, error) {
	f.store.calls.Add(1)
	return f.store.snap.Goals, nil
}

type fakeReviews struct{ store *fakeStore }

func (f fakeReviews) GetLatest(ctx context.Context) (*model.WeeklyReview, error) {
	f.store.calls.Add(1)
	return f.store.snap.Review, nil
}

// fakeViewCache implements cache.IntelligenceCache in memory
type fakeViewCache struct {
	dashboard *model.DashboardView
	core      *model.CoreView
	getErr    error
	setErr    error
}

func (c *fakeViewCache) GetDashboard(ctx context.Context) (*model.DashboardView, error) {
	return c.dashboard, c.getErr
}

func (c *fakeViewCache) SetDashboard(ctx context.Context, view *model.DashboardView) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.dashboard = view
	return nil
}

func (c *fakeViewCache) GetCore(ctx context.Context) (*model.CoreView, error) {
	return c.core, c.getErr
}

func (c *fakeViewCache) SetCore(ctx context.Context, view *model.CoreView) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.core = view
	return nil
}

func newTestIntelligence(store *fakeStore, viewCache *fakeViewCache) *IntelligenceService {
	svc := NewIntelligenceService(
		store,
		fakeHabits{store}, fakeRoutines{store}, fakeExpenses{store},
		fakeAttendance{store}, fakeStudy{store}, fakeGoals{store}, fakeReviews{store},
		viewCache,
		NewMetricsService(),
		NewChartService(),
		NewInsightService(),
		zap.NewNop(),
	)
	svc.now = func() time.Time { return chartNow }
	return svc
}

func TestDashboardAggregation(t *testing.T) {
	store := &fakeStore{snap: model.RecordSnapshot{
		Sessions: []model.FocusSession{{Duration: 150, CompletedAt: chartNow}},
		Habits:   []model.Habit{{CurrentStreak: 2}, {CurrentStreak: 1}},
		StudyItems: []model.StudyItem{
			{Type: model.StudySubject, Progress: 60},
		},
		Expenses: []model.Expense{
			{Amount: 300, Type: model.TransactionIncome},
			{Amount: 100, Type: model.TransactionExpense},
		},
	}}
	viewCache := &fakeViewCache{}

	view, err := newTestIntelligence(store, viewCache).Dashboard(context.Background())
	require.NoError(t, err)

	// habits all active, no attendance: (100+0)/2
	assert.Equal(t, 50, view.Metrics.Consistency)
	assert.Equal(t, 50, view.Metrics.Focus)
	assert.Equal(t, 60, view.Metrics.StudyLoad)
	assert.Equal(t, 75, view.Metrics.Financial)
	assert.Equal(t, 53, view.GlobalScore) // 0.35*50 + 0.35*50 + 0.30*60
	assert.NotEmpty(t, view.MiniInsight)
	assert.Equal(t, int32(8), store.calls.Load(), "all eight collections are read")

	assert.Equal(t, view, viewCache.dashboard, "computed view is cached")
}

func TestDashboardServedFromCache(t *testing.T) {
	store := &fakeStore{}
	cached := &model.DashboardView{GlobalScore: 77, MiniInsight: "cached"}
	viewCache := &fakeViewCache{dashboard: cached}

	view, err := newTestIntelligence(store, viewCache).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cached, view)
	assert.Zero(t, store.calls.Load(), "cache hit skips the fan-out")
}

func TestDashboardCacheFailureFallsThrough(t *testing.T) {
	store := &fakeStore{}
	viewCache := &fakeViewCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}

	view, err := newTestIntelligence(store, viewCache).Dashboard(context.Background())
	require.NoError(t, err, "cache problems never fail the request")
	assert.Equal(t, 82, view.Metrics.Consistency)
	assert.Equal(t, int32(8), store.calls.Load())
}

func TestAggregationFailsOnSingleReadError(t *testing.T) {
	store := &fakeStore{failRead: errors.New("mongo timeout")}

	_, err := newTestIntelligence(store, &fakeViewCache{}).Dashboard(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAggregationFailed)

	_, err = newTestIntelligence(store, &fakeViewCache{}).Core(context.Background())
	assert.ErrorIs(t, err, ErrAggregationFailed)
}

func TestCoreViewShape(t *testing.T) {
	store := &fakeStore{snap: model.RecordSnapshot{
		Sessions: []model.FocusSession{{Duration: 45, CompletedAt: chartNow}},
		Habits:   []model.Habit{{CurrentStreak: 5}},
		Routines: []model.Routine{{Date: chartNow, Tasks: []model.RoutineTask{
			{Completed: true}, {Completed: false},
		}}},
		StudyItems: []model.StudyItem{{Type: model.StudySubject, Progress: 70}},
		Goals:      []model.Goal{{Progress: 100}},
	}}
	viewCache := &fakeViewCache{}

	view, err := newTestIntelligence(store, viewCache).Core(context.Background())
	require.NoError(t, err)

	assert.Len(t, view.Charts.PerformanceData, 7)
	assert.Len(t, view.HeatIndicator, 7)
	assert.Len(t, view.Charts.ModulePerformance, 7)
	assert.Len(t, view.AILayer.Recommendations, 3)
	assert.Len(t, view.DomainStatus, 4)
	assert.NotEmpty(t, view.Charts.PerformanceDistribution)
	assert.NotEmpty(t, view.AILayer.HumanReadableSummary)
	assert.Equal(t, "Mon", view.Charts.PerformanceData[6].Date)
	assert.Equal(t, view, viewCache.core)
}

func TestWarmFillsBothViews(t *testing.T) {
	store := &fakeStore{}
	viewCache := &fakeViewCache{}

	err := newTestIntelligence(store, viewCache).Warm(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, viewCache.dashboard)
	assert.NotNil(t, viewCache.core)
}
