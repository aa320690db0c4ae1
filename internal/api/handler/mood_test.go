package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eduface-labs/eduface/internal/domain"
)

// MockMoodService is a mock implementation of MoodService
type MockMoodService struct {
	mock.Mock
}

func (m *MockMoodService) Analyze(ctx context.Context, imageBlob string) (*domain.MoodReport, error) {
	args := m.Called(ctx, imageBlob)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoodReport), args.Error(1)
}

func TestMoodHandler_Analyze(t *testing.T) {
	mockService := new(MockMoodService)
	mockService.On("Analyze", mock.Anything, "aW1n").Return(&domain.MoodReport{
		DominantEmotion: "happy",
		Emotions:        map[string]float64{"happy": 62.4, "neutral": 30.0, "sad": 7.6},
		RiskLevel:       domain.RiskLow,
		Confidence:      62.4,
	}, nil)

	app := newTestApp()
	h := NewMoodHandler(mockService, slog.Default())
	app.Post("/api/mood/analyze", h.Analyze)

	payload, _ := json.Marshal(AnalyzeRequest{Image: "aW1n"})
	req := httptest.NewRequest("POST", "/api/mood/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result AnalyzeResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)
	assert.Equal(t, "happy", result.DominantEmotion)
	assert.Equal(t, domain.RiskLow, result.RiskLevel)
	assert.InDelta(t, 62.4, result.Confidence, 0.001)
	assert.Empty(t, result.Note)
	mockService.AssertExpectations(t)
}

func TestMoodHandler_Analyze_FallbackNote(t *testing.T) {
	mockService := new(MockMoodService)
	mockService.On("Analyze", mock.Anything, "aW1n").Return(&domain.MoodReport{
		DominantEmotion: "neutral",
		Emotions:        map[string]float64{"neutral": 100},
		RiskLevel:       domain.RiskLow,
		Confidence:      100,
		Note:            "Using fallback analysis (deepface unavailable)",
	}, nil)

	app := newTestApp()
	h := NewMoodHandler(mockService, slog.Default())
	app.Post("/api/mood/analyze", h.Analyze)

	payload, _ := json.Marshal(AnalyzeRequest{Image: "aW1n"})
	req := httptest.NewRequest("POST", "/api/mood/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	var result AnalyzeResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Contains(t, result.Note, "fallback analysis")
}

func TestMoodHandler_Analyze_MissingImage(t *testing.T) {
	mockService := new(MockMoodService)
	mockService.On("Analyze", mock.Anything, "").Return(nil, domain.ErrNoImageProvided)

	app := newTestApp()
	h := NewMoodHandler(mockService, slog.Default())
	app.Post("/api/mood/analyze", h.Analyze)

	payload, _ := json.Marshal(AnalyzeRequest{})
	req := httptest.NewRequest("POST", "/api/mood/analyze", bytes.NewReader(payload))
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
	assert.Equal(t, "NO_IMAGE_PROVIDED", errResp.Error.Code)
}

func TestMoodHandler_Analyze_ProviderFailure(t *testing.T) {
	mockService := new(MockMoodService)
	mockService.On("Analyze", mock.Anything, "aW1n").Return(nil, domain.ErrMoodProviderFailed)

	app := newTestApp()
	h := NewMoodHandler(mockService, slog.Default())
	app.Post("/api/mood/analyze", h.Analyze)

	payload, _ := json.Marshal(AnalyzeRequest{Image: "aW1n"})
	req := httptest.NewRequest("POST", "/api/mood/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)
}
