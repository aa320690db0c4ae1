package deepface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req AnalyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"emotion"}, req.Actions)
		assert.NotEmpty(t, req.Img)

		_ = json.NewEncoder(w).Encode(AnalyzeResponse{
			Results: []AnalyzeResult{{
				Emotion:         map[string]float64{"happy": 72.5, "sad": 10.1, "neutral": 17.4},
				DominantEmotion: "happy",
			}},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, RetryCount: 0})
	resp, err := client.Analyze(context.Background(), "aW1hZ2U=")

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "happy", resp.Results[0].DominantEmotion)
	assert.Equal(t, 72.5, resp.Results[0].Emotion["happy"])
}

func TestAnalyze_ClientErrorNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad image", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, RetryCount: 3})
	_, err := client.Analyze(context.Background(), "aW1hZ2U=")

	require.Error(t, err)
	assert.Equal(t, 1, calls, "4xx responses must not be retried")
}

func TestAnalyze_Unreachable(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1", RetryCount: 0})
	_, err := client.Analyze(context.Background(), "aW1hZ2U=")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestProvider_AnalyzeEmotions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(AnalyzeResponse{
			Results: []AnalyzeResult{{
				Emotion:         map[string]float64{"sad": 61.0, "fear": 20.0, "neutral": 19.0},
				DominantEmotion: "sad",
			}},
		})
	}))
	defer server.Close()

	p := NewProvider(Config{BaseURL: server.URL, RetryCount: 0})
	scores, err := p.AnalyzeEmotions(context.Background(), []byte("fake-image-bytes"))

	require.NoError(t, err)
	assert.Equal(t, 61.0, scores["sad"])

	dominant, confidence := scores.Dominant()
	assert.Equal(t, "sad", dominant)
	assert.Equal(t, 61.0, confidence)
}

func TestProvider_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(AnalyzeResponse{})
	}))
	defer server.Close()

	p := NewProvider(Config{BaseURL: server.URL, RetryCount: 0})
	_, err := p.AnalyzeEmotions(context.Background(), []byte("fake"))

	assert.ErrorIs(t, err, ErrNoResults)
}

func TestCalculateBackoff(t *testing.T) {
	assert.Equal(t, "1s", calculateBackoff(0).String())
	assert.Equal(t, "1s", calculateBackoff(1).String())
	assert.Equal(t, "2s", calculateBackoff(2).String())
	assert.Equal(t, "4s", calculateBackoff(3).String())
}
