package domain

// MoodReport is the result of facial-expression analysis on a single image.
// Emotion scores are percentages that sum to roughly 100.
type MoodReport struct {
	DominantEmotion string             `json:"dominant_emotion"`
	Emotions        map[string]float64 `json:"emotions"`
	RiskLevel       string             `json:"risk_level"`
	Confidence      float64            `json:"confidence"`
	Note            string             `json:"note,omitempty"`
}

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// DeriveRiskLevel maps raw emotion scores to a risk tier. The cutoffs are
// policy constants: elevated sadness or fear escalates to medium, strong
// sadness (or sadness combined with fear) to high.
func DeriveRiskLevel(emotions map[string]float64) string {
	sad := emotions["sad"]
	fear := emotions["fear"]

	risk := RiskLow
	if sad > 40 || fear > 30 {
		risk = RiskMedium
	}
	if sad > 60 || (sad > 40 && fear > 20) {
		risk = RiskHigh
	}
	return risk
}
