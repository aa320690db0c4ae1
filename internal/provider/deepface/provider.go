package deepface

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/eduface-labs/eduface/internal/provider"
)

// Provider implements provider.EmotionProvider against a DeepFace-compatible
// HTTP service.
type Provider struct {
	client *Client
}

var _ provider.EmotionProvider = (*Provider)(nil)

// NewProvider creates a DeepFace emotion provider
func NewProvider(config Config) *Provider {
	return &Provider{client: NewClient(config)}
}

func (p *Provider) Name() string {
	return "deepface"
}

// AnalyzeEmotions runs the emotion action and returns the scores for the
// first face result.
func (p *Provider) AnalyzeEmotions(ctx context.Context, image []byte) (provider.EmotionScores, error) {
	imageBase64 := base64.StdEncoding.EncodeToString(image)

	resp, err := p.client.Analyze(ctx, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("deepface analyze: %w", err)
	}

	if len(resp.Results) == 0 {
		return nil, ErrNoResults
	}

	scores := make(provider.EmotionScores, len(resp.Results[0].Emotion))
	for emotion, score := range resp.Results[0].Emotion {
		scores[emotion] = score
	}
	return scores, nil
}
