// Package provider defines the interface emotion-analysis backends
// implement and the score vocabulary they return.
package provider

import "context"

// EmotionProvider analyzes a facial expression in an image and returns
// per-emotion scores.
type EmotionProvider interface {
	// AnalyzeEmotions returns emotion scores for the most prominent face
	// in the image. Scores are percentages summing to roughly 100.
	AnalyzeEmotions(ctx context.Context, image []byte) (EmotionScores, error)

	// Name identifies the backend in logs and responses.
	Name() string
}

// EmotionScores maps emotion labels (happy, sad, angry, fear, surprise,
// disgust, neutral) to 0-100 percentages.
type EmotionScores map[string]float64

// Dominant returns the highest-scoring emotion. Empty scores report
// "neutral" at zero confidence.
func (s EmotionScores) Dominant() (string, float64) {
	label := "neutral"
	best := 0.0
	for emotion, score := range s {
		if score > best || (score == best && emotion < label) {
			label = emotion
			best = score
		}
	}
	return label, best
}
