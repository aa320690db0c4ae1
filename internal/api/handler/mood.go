package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/eduface-labs/eduface/internal/domain"
)

// MoodService interface for the service
type MoodService interface {
	Analyze(ctx context.Context, imageBlob string) (*domain.MoodReport, error)
}

// MoodHandler handles emotion analysis requests
type MoodHandler struct {
	service MoodService
	logger  *slog.Logger
}

func NewMoodHandler(service MoodService, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{
		service: service,
		logger:  logger,
	}
}

// AnalyzeRequest is the mood analysis body.
type AnalyzeRequest struct {
	Image string `json:"image"`
}

// AnalyzeResponse response for the analyze endpoint
type AnalyzeResponse struct {
	Success         bool               `json:"success"`
	DominantEmotion string             `json:"dominant_emotion"`
	Emotions        map[string]float64 `json:"emotions"`
	RiskLevel       string             `json:"risk_level"`
	Confidence      float64            `json:"confidence"`
	Note            string             `json:"note,omitempty"`
}

// Analyze POST /api/mood/analyze - emotion scores plus a wellbeing risk tier
func (h *MoodHandler) Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrValidationFailed.WithError(err)
	}

	report, err := h.service.Analyze(c.Context(), req.Image)
	if err != nil {
		return err
	}

	if report.RiskLevel != domain.RiskLow {
		h.logger.Warn("elevated mood risk detected",
			slog.String("risk_level", report.RiskLevel),
			slog.String("dominant_emotion", report.DominantEmotion),
		)
	}

	return c.JSON(AnalyzeResponse{
		Success:         true,
		DominantEmotion: report.DominantEmotion,
		Emotions:        report.Emotions,
		RiskLevel:       report.RiskLevel,
		Confidence:      report.Confidence,
		Note:            report.Note,
	})
}
