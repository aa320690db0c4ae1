package api

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/eduface-labs/eduface/internal/api/docs"
	"github.com/eduface-labs/eduface/internal/api/handler"
	"github.com/eduface-labs/eduface/internal/api/middleware"
	"github.com/eduface-labs/eduface/internal/database"
)

// Dependencies carries the wired services the router exposes.
type Dependencies struct {
	FaceService       handler.FaceService
	AttendanceService handler.AttendanceService
	MoodService       handler.MoodService
	DB                *pgxpool.Pool
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "EduFace API",
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Swagger documentation
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	apiGroup := r.app.Group("/api")

	var pinger handler.DatabasePinger
	if r.deps != nil && r.deps.DB != nil {
		pinger = poolPinger{pool: r.deps.DB}
	}
	healthHandler := handler.NewHealthHandler(pinger)
	apiGroup.Get("/health", healthHandler.Health)
	apiGroup.Get("/ready", healthHandler.Ready)

	if r.deps == nil {
		return
	}

	faceHandler := handler.NewFaceHandler(r.deps.FaceService, r.logger)
	apiGroup.Post("/face/register", faceHandler.Register)
	apiGroup.Post("/face/verify", faceHandler.Verify)

	attendanceHandler := handler.NewAttendanceHandler(r.deps.AttendanceService, r.logger)
	apiGroup.Post("/attendance/mark", attendanceHandler.Mark)
	apiGroup.Get("/attendance", attendanceHandler.List)
	apiGroup.Get("/subjects", attendanceHandler.Subjects)

	moodHandler := handler.NewMoodHandler(r.deps.MoodService, r.logger)
	apiGroup.Post("/mood/analyze", moodHandler.Analyze)
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}

type poolPinger struct {
	pool *pgxpool.Pool
}

func (p poolPinger) HealthCheck(ctx context.Context) error {
	return database.HealthCheck(ctx, p.pool)
}
