package domain

import "math"

// ScoreTier buckets a final score by percentage.
type ScoreTier string

const (
	TierPerfect   ScoreTier = "perfect"
	TierExcellent ScoreTier = "excellent"
	TierGood      ScoreTier = "good"
	TierAverage   ScoreTier = "average"
	TierNeedsWork ScoreTier = "needs_work"
)

var scoreMessages = map[ScoreTier]string{
	TierPerfect:   "🏆 ¡Perfecto! Eres un verdadero experto.",
	TierExcellent: "⭐ ¡Excelente trabajo! Tienes un gran conocimiento.",
	TierGood:      "👍 ¡Buen trabajo! Sigues mejorando.",
	TierAverage:   "📚 ¡No está mal! Hay espacio para mejorar.",
	TierNeedsWork: "💪 ¡Sigue practicando! Cada intento te hace mejor.",
}

// ScoreSummary is the end-of-quiz result shown to the player.
type ScoreSummary struct {
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage float64   `json:"percentage"`
	Tier       ScoreTier `json:"tier"`
	Message    string    `json:"message"`
	// Color is a UI hint: success, info, warning or error.
	Color string `json:"color"`
}

// EvaluateScore maps score/total onto a tier, message and colour.
func EvaluateScore(score, total int) ScoreSummary {
	pct := 0.0
	if total > 0 {
		pct = float64(score) / float64(total) * 100
	}

	var tier ScoreTier
	switch {
	case total > 0 && score == total:
		tier = TierPerfect
	case pct >= 80:
		tier = TierExcellent
	case pct >= 60:
		tier = TierGood
	case pct >= 40:
		tier = TierAverage
	default:
		tier = TierNeedsWork
	}

	color := "error"
	switch {
	case pct >= 80:
		color = "success"
	case pct >= 60:
		color = "info"
	case pct >= 40:
		color = "warning"
	}

	return ScoreSummary{
		Score:      score,
		Total:      total,
		Percentage: math.Round(pct*100) / 100,
		Tier:       tier,
		Message:    scoreMessages[tier],
		Color:      color,
	}
}

// ScoreMessage returns the message for a tier.
func ScoreMessage(tier ScoreTier) string {
	return scoreMessages[tier]
}
