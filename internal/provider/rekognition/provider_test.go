package rekognition

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/stretchr/testify/assert"
)

func TestMapEmotions(t *testing.T) {
	emotions := []types.Emotion{
		{Type: types.EmotionNameHappy, Confidence: aws.Float32(72.5)},
		{Type: types.EmotionNameCalm, Confidence: aws.Float32(15.0)},
		{Type: types.EmotionNameDisgusted, Confidence: aws.Float32(2.5)},
		{Type: types.EmotionNameSurprised, Confidence: aws.Float32(10.0)},
	}

	scores := mapEmotions(emotions)

	assert.InDelta(t, 72.5, scores["happy"], 0.001)
	assert.InDelta(t, 15.0, scores["neutral"], 0.001)
	assert.InDelta(t, 2.5, scores["disgust"], 0.001)
	assert.InDelta(t, 10.0, scores["surprise"], 0.001)

	dominant, confidence := scores.Dominant()
	assert.Equal(t, "happy", dominant)
	assert.InDelta(t, 72.5, confidence, 0.001)
}

func TestMapEmotions_SkipsMissingConfidence(t *testing.T) {
	emotions := []types.Emotion{
		{Type: types.EmotionNameSad},
		{Type: types.EmotionNameFear, Confidence: aws.Float32(42.0)},
	}

	scores := mapEmotions(emotions)

	assert.Len(t, scores, 1)
	assert.InDelta(t, 42.0, scores["fear"], 0.001)
}

func TestMapEmotions_UnknownNameLowercased(t *testing.T) {
	emotions := []types.Emotion{
		{Type: types.EmotionName("CONFUSED"), Confidence: aws.Float32(55.0)},
	}

	scores := mapEmotions(emotions)

	assert.InDelta(t, 55.0, scores["confused"], 0.001)
}

func TestMapEmotions_Empty(t *testing.T) {
	scores := mapEmotions(nil)
	assert.Empty(t, scores)

	dominant, confidence := scores.Dominant()
	assert.Equal(t, "neutral", dominant)
	assert.Zero(t, confidence)
}
