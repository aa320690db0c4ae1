package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DatabasePinger reports database reachability for the readiness probe.
type DatabasePinger interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	db DatabasePinger
}

func NewHealthHandler(db DatabasePinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Health GET /api/health - liveness probe
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "ok",
		Service:   "EduFace API",
		Version:   "1.0.0",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Ready GET /api/ready - readiness probe, checks the database
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.HealthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
				"error":  "database unreachable",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
