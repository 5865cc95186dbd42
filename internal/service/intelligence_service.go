package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lifetrack/internal/cache"
	"lifetrack/internal/model"
	"lifetrack/internal/repository"
)

const (
	// Trailing windows for the time-bounded reads.
	expenseWindowDays    = 30
	attendanceWindowDays = 30

	// Upper bound on the parallel collection reads per request.
	fetchTimeout = 5 * time.Second
)

// IntelligenceService orchestrates the eight-collection fan-out and assembles
// the dashboard and core views
type IntelligenceService struct {
	sessions   repository.FocusSessionRepo
	habits     repository.HabitRepo
	routines   repository.RoutineRepo
	expenses   repository.ExpenseRepo
	attendance repository.AttendanceRepo
	study      repository.StudyItemRepo
	goals      repository.GoalRepo
	reviews    repository.WeeklyReviewRepo

	cache    cache.IntelligenceCache
	metrics  *MetricsService
	charts   *ChartService
	insights *InsightService
	logger   *zap.Logger
	now      func() time.Time
}

// NewIntelligenceService creates a new intelligence orchestrator
func NewIntelligenceService(
	sessions repository.FocusSessionRepo,
	habits repository.HabitRepo,
	routines repository.RoutineRepo,
	expenses repository.ExpenseRepo,
	attendance repository.AttendanceRepo,
	study repository.StudyItemRepo,
	goals repository.GoalRepo,
	reviews repository.WeeklyReviewRepo,
	viewCache cache.IntelligenceCache,
	metrics *MetricsService,
	charts *ChartService,
	insights *InsightService,
	logger *zap.Logger,
) *IntelligenceService {
	return &IntelligenceService{
		sessions:   sessions,
		habits:     habits,
		routines:   routines,
		expenses:   expenses,
		attendance: attendance,
		study:      study,
		goals:      goals,
		reviews:    reviews,
		cache:      viewCache,
		metrics:    metrics,
		charts:     charts,
		insights:   insights,
		logger:     logger,
		now:        time.Now,
	}
}

// Dashboard returns the lightweight view, serving a cached copy when fresh
func (s *IntelligenceService) Dashboard(ctx context.Context) (*model.DashboardView, error) {
	if view, err := s.cache.GetDashboard(ctx); err != nil {
		s.logger.Warn("dashboard cache read failed", zap.Error(err))
	} else if view != nil {
		return view, nil
	}

	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	view := s.buildDashboard(snap)
	if err := s.cache.SetDashboard(ctx, view); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
	return view, nil
}

// Core returns the heavy view, serving a cached copy when fresh
func (s *IntelligenceService) Core(ctx context.Context) (*model.CoreView, error) {
	if view, err := s.cache.GetCore(ctx); err != nil {
		s.logger.Warn("core cache read failed", zap.Error(err))
	} else if view != nil {
		return view, nil
	}

	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	view := s.buildCore(snap)
	if err := s.cache.SetCore(ctx, view); err != nil {
		s.logger.Warn("core cache write failed", zap.Error(err))
	}
	return view, nil
}

// Warm recomputes both views from a single snapshot and refreshes the cache.
// Used by the background warmer; bypasses cache reads.
func (s *IntelligenceService) Warm(ctx context.Context) error {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.SetDashboard(ctx, s.buildDashboard(snap)); err != nil {
		return err
	}
	return s.cache.SetCore(ctx, s.buildCore(snap))
}

func (s *IntelligenceService) buildDashboard(snap *model.RecordSnapshot) *model.DashboardView {
	m := s.metrics.Normalize(snap)
	return &model.DashboardView{
		GlobalScore: s.metrics.GlobalScore(m),
		Metrics:     m,
		MiniInsight: s.insights.MiniInsight(m),
	}
}

func (s *IntelligenceService) buildCore(snap *model.RecordSnapshot) *model.CoreView {
	now := s.now()
	m := s.metrics.Normalize(snap)

	performance := s.charts.PerformanceData(snap, m.StudyLoad, now)
	modules := s.charts.ModulePerformance(snap, m, now)
	bundle, predictions := s.insights.Evaluate(m)

	return &model.CoreView{
		GlobalScore:  s.metrics.GlobalScore(m),
		Metrics:      m,
		DomainStatus: s.metrics.DomainStatus(m),
		Charts: model.Charts{
			PerformanceData:         performance,
			ModulePerformance:       modules,
			PerformanceDistribution: s.charts.Distribution(modules),
		},
		HeatIndicator: s.charts.HeatIndicator(performance),
		AILayer:       bundle,
		Predictions:   predictions,
	}
}

// fetchSnapshot issues the eight reads in parallel and joins them. The reads
// are independent; a record written between two of them may or may not be
// seen, which is accepted. Any single failure fails the whole snapshot.
func (s *IntelligenceService) fetchSnapshot(ctx context.Context) (*model.RecordSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	now := s.now()
	weekStart := dayStart(now).AddDate(0, 0, -(trendDays - 1))
	monthAgo := now.AddDate(0, 0, -expenseWindowDays)

	var snap model.RecordSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.Sessions, err = s.sessions.GetSince(gctx, weekStart)
		return err
	})
	g.Go(func() (err error) {
		snap.Habits, err = s.habits.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Routines, err = s.routines.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Expenses, err = s.expenses.GetSince(gctx, monthAgo)
		return err
	})
	g.Go(func() (err error) {
		snap.Attendance, err = s.attendance.GetSince(gctx, now.AddDate(0, 0, -attendanceWindowDays))
		return err
	})
	g.Go(func() (err error) {
		snap.StudyItems, err = s.study.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Goals, err = s.goals.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Review, err = s.reviews.GetLatest(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("collection read failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAggregationFailed, err)
	}
	return &snap, nil
}
