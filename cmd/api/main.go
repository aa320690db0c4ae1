package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/eduface-labs/eduface/internal/api"
	"github.com/eduface-labs/eduface/internal/config"
	"github.com/eduface-labs/eduface/internal/database"
	"github.com/eduface-labs/eduface/internal/detect"
	"github.com/eduface-labs/eduface/internal/mood"
	"github.com/eduface-labs/eduface/internal/provider/fallback"
	"github.com/eduface-labs/eduface/internal/registry"
	"github.com/eduface-labs/eduface/internal/repository"
	"github.com/eduface-labs/eduface/internal/service"
	"github.com/eduface-labs/eduface/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional, real deployments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting EduFace API",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	subjectRepo := repository.NewSubjectRepository(pool)
	if err := database.SeedSubjects(ctx, subjectRepo, logger); err != nil {
		return fmt.Errorf("failed to seed subjects: %w", err)
	}

	// Face pipeline
	detector, err := detect.NewDetector(cfg.CascadePath)
	if err != nil {
		return fmt.Errorf("failed to load face cascade: %w", err)
	}

	templates := store.NewTemplateStore(cfg.FaceDataDir)
	students := registry.NewStudentRegistry()
	faceService := service.NewFaceService(detector, templates, students).
		WithThreshold(cfg.VerifyThreshold).
		WithMaxImages(cfg.MaxImagesPerUser)

	// Attendance ledger
	attendanceService := service.NewAttendanceService(
		repository.NewAttendanceRepository(pool),
		subjectRepo,
	)

	// Mood analysis
	emotionProvider, err := mood.NewEmotionProvider(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create emotion provider: %w", err)
	}
	logger.Info("emotion provider ready", slog.String("provider", emotionProvider.Name()))
	moodService := service.NewMoodService(emotionProvider, fallback.NewProvider(), logger)

	router := api.NewRouter(logger, &api.Dependencies{
		FaceService:       faceService,
		AttendanceService: attendanceService,
		MoodService:       moodService,
		DB:                pool,
	})
	router.Setup()

	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}
