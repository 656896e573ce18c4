package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateScore(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		total     int
		wantTier  ScoreTier
		wantColor string
	}{
		{"perfect", 10, 10, TierPerfect, "success"},
		{"zero", 0, 10, TierNeedsWork, "error"},
		{"eighty percent", 8, 10, TierExcellent, "success"},
		{"just below eighty", 79, 100, TierGood, "info"},
		{"sixty percent", 6, 10, TierGood, "info"},
		{"forty percent", 4, 10, TierAverage, "warning"},
		{"below forty", 3, 10, TierNeedsWork, "error"},
		{"empty quiz", 0, 0, TierNeedsWork, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateScore(tt.score, tt.total)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.wantColor, got.Color)
			assert.Equal(t, ScoreMessage(tt.wantTier), got.Message)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}

func TestEvaluateScore_Messages(t *testing.T) {
	assert.Equal(t, "🏆 ¡Perfecto! Eres un verdadero experto.", EvaluateScore(10, 10).Message)
	assert.Equal(t, "💪 ¡Sigue practicando! Cada intento te hace mejor.", EvaluateScore(0, 10).Message)
	assert.InDelta(t, 66.67, EvaluateScore(2, 3).Percentage, 0.001)
}
