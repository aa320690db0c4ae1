package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/eduface-labs/eduface/internal/domain"
	"github.com/eduface-labs/eduface/internal/service"
)

// FaceService interface for the service
type FaceService interface {
	Enroll(ctx context.Context, studentID, name string, imageBlobs []string) (*service.EnrollResult, error)
	Verify(ctx context.Context, studentID, imageBlob string) (*domain.Verification, error)
}

// FaceHandler handles enrollment and verification requests
type FaceHandler struct {
	service FaceService
	logger  *slog.Logger
}

// NewFaceHandler creates a new FaceHandler instance
func NewFaceHandler(service FaceService, logger *slog.Logger) *FaceHandler {
	return &FaceHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRequest is the enrollment body. Images are base64 strings, with
// or without a data-URL prefix.
type RegisterRequest struct {
	StudentID string   `json:"student_id"`
	Name      string   `json:"name"`
	Images    []string `json:"images"`
}

// RegisterResponse response for register endpoint
type RegisterResponse struct {
	Success     bool   `json:"success"`
	StudentID   string `json:"student_id"`
	Message     string `json:"message"`
	ImagesSaved int    `json:"images_saved"`
}

// VerifyRequest is the verification body.
type VerifyRequest struct {
	StudentID string `json:"student_id"`
	Image     string `json:"image"`
}

// Register POST /api/face/register - enroll a student's face images
func (h *FaceHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrValidationFailed.WithError(err)
	}

	result, err := h.service.Enroll(c.Context(), req.StudentID, req.Name, req.Images)
	if err != nil {
		return err
	}

	h.logger.Info("face registered",
		slog.String("student_id", result.StudentID),
		slog.Int("images_saved", result.ImagesSaved),
	)

	return c.JSON(RegisterResponse{
		Success:     true,
		StudentID:   result.StudentID,
		Message:     fmt.Sprintf("Face registered for %s", result.Name),
		ImagesSaved: result.ImagesSaved,
	})
}

// Verify POST /api/face/verify - verify a probe image against enrollment
//
// Negative outcomes (no face, unknown student, no match) are 200 responses
// with verified=false, never errors.
func (h *FaceHandler) Verify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrValidationFailed.WithError(err)
	}
	if req.Image == "" {
		return domain.ErrNoImageProvided
	}

	verification, err := h.service.Verify(c.Context(), req.StudentID, req.Image)
	if err != nil {
		return err
	}

	return c.JSON(verification)
}
