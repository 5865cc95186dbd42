package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"lifetrack/internal/cache"
	"lifetrack/internal/config"
	"lifetrack/internal/repository"
	"lifetrack/internal/service"
	"lifetrack/internal/transport/rest"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	cfg := config.Load()

	aiConfig := config.DefaultAIConfig()
	logger.Info("AI config",
		zap.String("insightModel", aiConfig.Models.Insight),
		zap.String("chatModel", aiConfig.Models.Chat),
		zap.Bool("enabled", aiConfig.IsEnabled()),
	)
	if !aiConfig.IsEnabled() {
		logger.Warn("GEMINI_API_KEY not set; generate-ai will report missing credential, chat will apologize")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to ping Redis", zap.Error(err))
	}
	logger.Info("connected to Redis")

	// Initialize repositories
	sessionRepo := repository.NewFocusSessionRepo(db)
	habitRepo := repository.NewHabitRepo(db)
	routineRepo := repository.NewRoutineRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	attendanceRepo := repository.NewAttendanceRepo(db)
	studyRepo := repository.NewStudyItemRepo(db)
	goalRepo := repository.NewGoalRepo(db)
	reviewRepo := repository.NewWeeklyReviewRepo(db)

	// Initialize cache and services
	viewCache := cache.NewIntelligenceCache(rdb)
	intelligenceSvc := service.NewIntelligenceService(
		sessionRepo, habitRepo, routineRepo, expenseRepo,
		attendanceRepo, studyRepo, goalRepo, reviewRepo,
		viewCache,
		service.NewMetricsService(),
		service.NewChartService(),
		service.NewInsightService(),
		logger,
	)
	aiSvc := service.NewAIService(aiConfig, logger)

	// Background warmer: refresh the cached views every 10 minutes and at
	// midnight, when every trailing window rolls over.
	warmer := cron.New()
	warm := func() {
		warmCtx, warmCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer warmCancel()
		if err := intelligenceSvc.Warm(warmCtx); err != nil {
			logger.Warn("cache warm failed", zap.Error(err))
		}
	}
	if _, err := warmer.AddFunc("@every 10m", warm); err != nil {
		logger.Fatal("schedule cache warmer", zap.Error(err))
	}
	if _, err := warmer.AddFunc("0 0 * * *", warm); err != nil {
		logger.Fatal("schedule cache warmer", zap.Error(err))
	}
	warmer.Start()
	defer warmer.Stop()

	router := rest.NewRouter(&rest.Container{
		Intelligence: intelligenceSvc,
		AI:           aiSvc,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
