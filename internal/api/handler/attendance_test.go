package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eduface-labs/eduface/internal/domain"
)

// MockAttendanceService is a mock implementation of AttendanceService
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) Mark(ctx context.Context, studentID, subject string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, studentID, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceService) List(ctx context.Context, studentID, date string) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, studentID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceService) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subject), args.Error(1)
}

func TestAttendanceHandler_Mark(t *testing.T) {
	rec := &domain.AttendanceRecord{
		ID:         uuid.New(),
		StudentID:  "stu-001",
		Subject:    "Physics",
		Date:       "2026-03-15",
		Time:       "09:30:05",
		Status:     domain.AttendanceStatusPresent,
		Confidence: 91.2,
	}
	mockService := new(MockAttendanceService)
	mockService.On("Mark", mock.Anything, "stu-001", "Physics").Return(rec, nil)

	app := newTestApp()
	h := NewAttendanceHandler(mockService, slog.Default())
	app.Post("/api/attendance/mark", h.Mark)

	payload, _ := json.Marshal(MarkRequest{StudentID: "stu-001", Subject: "Physics"})
	req := httptest.NewRequest("POST", "/api/attendance/mark", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result MarkResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)
	assert.Equal(t, "Attendance marked for Physics", result.Message)
	require.NotNil(t, result.Attendance)
	assert.Equal(t, "stu-001", result.Attendance.StudentID)
	assert.Equal(t, domain.AttendanceStatusPresent, result.Attendance.Status)
	mockService.AssertExpectations(t)
}

func TestAttendanceHandler_Mark_MissingStudentID(t *testing.T) {
	mockService := new(MockAttendanceService)
	mockService.On("Mark", mock.Anything, "", "Physics").Return(nil, domain.ErrStudentIDRequired)

	app := newTestApp()
	h := NewAttendanceHandler(mockService, slog.Default())
	app.Post("/api/attendance/mark", h.Mark)

	payload, _ := json.Marshal(MarkRequest{Subject: "Physics"})
	req := httptest.NewRequest("POST", "/api/attendance/mark", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "STUDENT_ID_REQUIRED", errResp.Error.Code)
}

func TestAttendanceHandler_List(t *testing.T) {
	records := []domain.AttendanceRecord{
		{ID: uuid.New(), StudentID: "stu-001", Subject: "Physics"},
		{ID: uuid.New(), StudentID: "stu-002", Subject: "General"},
	}
	mockService := new(MockAttendanceService)
	mockService.On("List", mock.Anything, "", "").Return(records, nil)

	app := newTestApp()
	h := NewAttendanceHandler(mockService, slog.Default())
	app.Get("/api/attendance", h.List)

	req := httptest.NewRequest("GET", "/api/attendance", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result ListResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Count)
	assert.Len(t, result.Records, 2)
}

func TestAttendanceHandler_List_Filters(t *testing.T) {
	mockService := new(MockAttendanceService)
	mockService.On("List", mock.Anything, "stu-001", "2026-03-15").
		Return([]domain.AttendanceRecord{}, nil)

	app := newTestApp()
	h := NewAttendanceHandler(mockService, slog.Default())
	app.Get("/api/attendance", h.List)

	req := httptest.NewRequest("GET", "/api/attendance?student_id=stu-001&date=2026-03-15", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestAttendanceHandler_List_EmptyIsNotNull(t *testing.T) {
	mockService := new(MockAttendanceService)
	mockService.On("List", mock.Anything, "", "").Return([]domain.AttendanceRecord(nil), nil)

	app := newTestApp()
	h := NewAttendanceHandler(mockService, slog.Default())
	app.Get("/api/attendance", h.List)

	req := httptest.NewRequest("GET", "/api/attendance", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"records":[]`)
}

func TestAttendanceHandler_Subjects(t *testing.T) {
	mockService := new(MockAttendanceService)
	mockService.On("ListSubjects", mock.Anything).Return([]domain.Subject{
		{ID: 1, Name: "General"},
		{ID: 2, Name: "Mathematics"},
	}, nil)

	app := newTestApp()
	h := NewAttendanceHandler(mockService, slog.Default())
	app.Get("/api/subjects", h.Subjects)

	req := httptest.NewRequest("GET", "/api/subjects", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result SubjectsResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)
	require.Len(t, result.Subjects, 2)
	assert.Equal(t, "General", result.Subjects[0].Name)
}
