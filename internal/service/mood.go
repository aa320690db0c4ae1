package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/eduface-labs/eduface/internal/domain"
	"github.com/eduface-labs/eduface/internal/imaging"
	"github.com/eduface-labs/eduface/internal/provider"
)

// MoodService runs facial emotion analysis and derives a wellbeing risk
// level from the scores. When the primary provider fails the service
// degrades to the fallback provider instead of surfacing an error.
type MoodService struct {
	primary  provider.EmotionProvider
	fallback provider.EmotionProvider
	logger   *slog.Logger
}

func NewMoodService(primary, fallback provider.EmotionProvider, logger *slog.Logger) *MoodService {
	return &MoodService{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Analyze decodes the uploaded image and produces a mood report. The report
// carries a note when the fallback provider produced the scores.
func (s *MoodService) Analyze(ctx context.Context, imageBlob string) (*domain.MoodReport, error) {
	if imageBlob == "" {
		return nil, domain.ErrNoImageProvided
	}

	imageBytes, err := imaging.DecodeDataURLBytes(imageBlob)
	if err != nil {
		return nil, domain.ErrInvalidImage.WithError(err)
	}

	scores, err := s.primary.AnalyzeEmotions(ctx, imageBytes)
	note := ""
	if err != nil {
		s.logger.Warn("emotion provider failed, using fallback",
			slog.String("provider", s.primary.Name()),
			slog.String("error", err.Error()))

		if s.fallback == nil {
			return nil, domain.ErrMoodProviderFailed.WithError(err)
		}

		scores, err = s.fallback.AnalyzeEmotions(ctx, imageBytes)
		if err != nil {
			return nil, domain.ErrMoodProviderFailed.WithError(err)
		}
		note = "Using fallback analysis (" + s.primary.Name() + " unavailable)"
	}

	emotions := make(map[string]float64, len(scores))
	for label, score := range scores {
		emotions[label] = roundScore(score)
	}
	dominant, _ := scores.Dominant()

	return &domain.MoodReport{
		DominantEmotion: dominant,
		Emotions:        emotions,
		RiskLevel:       domain.DeriveRiskLevel(scores),
		Confidence:      roundScore(scores[dominant]),
		Note:            note,
	}, nil
}

func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
