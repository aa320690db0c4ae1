// Package rekognition implements emotion analysis on AWS Rekognition for
// deployments without a local DeepFace service.
package rekognition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"

	"github.com/eduface-labs/eduface/internal/provider"
)

// maxImageSize is the Rekognition image bytes limit (5MB).
const maxImageSize = 5 * 1024 * 1024

// Config holds provider settings.
type Config struct {
	Region string
}

// Provider implements provider.EmotionProvider using DetectFaces with full
// attributes.
type Provider struct {
	client *rekognition.Client
}

var _ provider.EmotionProvider = (*Provider)(nil)

// NewProvider builds a Rekognition client from the default AWS credential
// chain.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Provider{client: rekognition.NewFromConfig(awsCfg)}, nil
}

func (p *Provider) Name() string {
	return "rekognition"
}

// AnalyzeEmotions maps the emotions of the first detected face onto the
// shared label vocabulary.
func (p *Provider) AnalyzeEmotions(ctx context.Context, image []byte) (provider.EmotionScores, error) {
	if len(image) == 0 || len(image) > maxImageSize {
		return nil, fmt.Errorf("rekognition: image size %d out of range", len(image))
	}

	out, err := p.client.DetectFaces(ctx, &rekognition.DetectFacesInput{
		Image:      &types.Image{Bytes: image},
		Attributes: []types.Attribute{types.AttributeAll},
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("rekognition detect faces (%s): %w", apiErr.ErrorCode(), err)
		}
		return nil, fmt.Errorf("rekognition detect faces: %w", err)
	}

	if len(out.FaceDetails) == 0 {
		return nil, errors.New("rekognition: no face detected")
	}

	return mapEmotions(out.FaceDetails[0].Emotions), nil
}

// mapEmotions converts Rekognition emotion names to the DeepFace-style
// vocabulary the risk policy is written against.
func mapEmotions(emotions []types.Emotion) provider.EmotionScores {
	labels := map[types.EmotionName]string{
		types.EmotionNameHappy:     "happy",
		types.EmotionNameSad:       "sad",
		types.EmotionNameAngry:     "angry",
		types.EmotionNameDisgusted: "disgust",
		types.EmotionNameSurprised: "surprise",
		types.EmotionNameFear:      "fear",
		types.EmotionNameCalm:      "neutral",
	}

	scores := make(provider.EmotionScores, len(emotions))
	for _, e := range emotions {
		if e.Confidence == nil {
			continue
		}
		label, ok := labels[e.Type]
		if !ok {
			label = strings.ToLower(string(e.Type))
		}
		scores[label] = float64(*e.Confidence)
	}
	return scores
}
