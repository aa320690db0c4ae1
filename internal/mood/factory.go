// Package mood selects and wires emotion analysis providers.
package mood

import (
	"context"
	"fmt"
	"time"

	"github.com/eduface-labs/eduface/internal/config"
	"github.com/eduface-labs/eduface/internal/provider"
	"github.com/eduface-labs/eduface/internal/provider/deepface"
	"github.com/eduface-labs/eduface/internal/provider/fallback"
	"github.com/eduface-labs/eduface/internal/provider/rekognition"
)

// ProviderType defines supported emotion provider types
type ProviderType string

const (
	// ProviderTypeDeepFace is the DeepFace provider (local, for dev/test)
	ProviderTypeDeepFace ProviderType = "deepface"
	// ProviderTypeRekognition is the AWS Rekognition provider (cloud, for prod)
	ProviderTypeRekognition ProviderType = "rekognition"
	// ProviderTypeFallback is the offline deterministic provider
	ProviderTypeFallback ProviderType = "fallback"
)

// NewEmotionProvider creates an EmotionProvider instance based on configuration
//
// Environment variables:
//   - MOOD_PROVIDER: "deepface", "rekognition" or "fallback" (default: "deepface")
//   - DEEPFACE_URL: DeepFace API URL (default: "http://localhost:5005")
//   - AWS_REGION: AWS region for Rekognition (via AWS SDK credential chain)
func NewEmotionProvider(ctx context.Context, cfg *config.Config) (provider.EmotionProvider, error) {
	providerType := ProviderType(cfg.MoodProvider)

	switch providerType {
	case ProviderTypeRekognition:
		return rekognition.NewProvider(ctx, rekognition.Config{Region: cfg.AWSRegion})

	case ProviderTypeFallback:
		return fallback.NewProvider(), nil

	case ProviderTypeDeepFace, "":
		// Default to DeepFace for dev/test environments
		return createDeepFaceProvider(cfg), nil

	default:
		return nil, fmt.Errorf("unknown provider type: %s (supported: %s, %s, %s)",
			cfg.MoodProvider, ProviderTypeDeepFace, ProviderTypeRekognition, ProviderTypeFallback)
	}
}

func createDeepFaceProvider(cfg *config.Config) provider.EmotionProvider {
	dfConfig := deepface.DefaultConfig()
	if cfg.DeepFaceURL != "" {
		dfConfig.BaseURL = cfg.DeepFaceURL
	}
	dfConfig.Timeout = 30 * time.Second

	return deepface.NewProvider(dfConfig)
}
