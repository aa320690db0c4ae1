package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/eduface-labs/eduface/internal/domain"
)

// AttendanceService interface for the service
type AttendanceService interface {
	Mark(ctx context.Context, studentID, subject string) (*domain.AttendanceRecord, error)
	List(ctx context.Context, studentID, date string) ([]domain.AttendanceRecord, error)
	ListSubjects(ctx context.Context) ([]domain.Subject, error)
}

// AttendanceHandler handles attendance ledger requests
type AttendanceHandler struct {
	service AttendanceService
	logger  *slog.Logger
}

func NewAttendanceHandler(service AttendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger,
	}
}

// MarkRequest is the attendance mark body.
type MarkRequest struct {
	StudentID string `json:"student_id"`
	Subject   string `json:"subject"`
}

// MarkResponse response for the mark endpoint
type MarkResponse struct {
	Success    bool                     `json:"success"`
	Attendance *domain.AttendanceRecord `json:"attendance"`
	Message    string                   `json:"message"`
}

// ListResponse response for the list endpoint
type ListResponse struct {
	Success bool                      `json:"success"`
	Records []domain.AttendanceRecord `json:"records"`
	Count   int                       `json:"count"`
}

// SubjectsResponse response for the subjects endpoint
type SubjectsResponse struct {
	Success  bool             `json:"success"`
	Subjects []domain.Subject `json:"subjects"`
}

// Mark POST /api/attendance/mark - append a ledger entry
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrValidationFailed.WithError(err)
	}

	rec, err := h.service.Mark(c.Context(), req.StudentID, req.Subject)
	if err != nil {
		return err
	}

	h.logger.Info("attendance marked",
		slog.String("student_id", rec.StudentID),
		slog.String("subject", rec.Subject),
	)

	return c.JSON(MarkResponse{
		Success:    true,
		Attendance: rec,
		Message:    fmt.Sprintf("Attendance marked for %s", rec.Subject),
	})
}

// List GET /api/attendance - ledger entries, newest first. Optional
// student_id and date query filters.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	recs, err := h.service.List(c.Context(), c.Query("student_id"), c.Query("date"))
	if err != nil {
		return err
	}

	if recs == nil {
		recs = []domain.AttendanceRecord{}
	}

	return c.JSON(ListResponse{
		Success: true,
		Records: recs,
		Count:   len(recs),
	})
}

// Subjects GET /api/subjects - the seeded subject catalog
func (h *AttendanceHandler) Subjects(c *fiber.Ctx) error {
	subjects, err := h.service.ListSubjects(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(SubjectsResponse{
		Success:  true,
		Subjects: subjects,
	})
}
