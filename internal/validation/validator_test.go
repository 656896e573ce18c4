package validation

import (
	"testing"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func fieldsOf(errs domain.ValidationErrors) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", Sanitize("  <script>alert(1)</script> "))
	assert.Equal(t, "ciencia", Sanitize("ciencia"))
}

func TestValidateStartQuiz(t *testing.T) {
	v := NewValidator(5, 20)

	tests := []struct {
		name       string
		req        dto.StartQuizRequest
		wantFields []string
	}{
		{"defaults", dto.StartQuizRequest{}, nil},
		{"valid", dto.StartQuizRequest{Category: "Ciencia", Count: 10, Difficulty: "Medio"}, nil},
		{"english difficulty", dto.StartQuizRequest{Category: "mixed", Difficulty: "hard"}, nil},
		{"count too low", dto.StartQuizRequest{Count: 3}, []string{"count"}},
		{"count too high", dto.StartQuizRequest{Count: 21}, []string{"count"}},
		{"bad difficulty", dto.StartQuizRequest{Difficulty: "extremo"}, []string{"difficulty"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			errs := v.ValidateStartQuiz(&req)
			if tt.wantFields == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantFields, fieldsOf(errs))
		})
	}
}

func TestValidateStartQuiz_NormalisesInPlace(t *testing.T) {
	req := dto.StartQuizRequest{Category: " <Historia> ", Difficulty: " FÁCIL "}
	require.Empty(t, NewValidator(5, 20).ValidateStartQuiz(&req))
	assert.Equal(t, "historia", req.Category)
	assert.Equal(t, "fácil", req.Difficulty)
}

func TestValidateFeedback(t *testing.T) {
	v := NewValidator(5, 20)
	opts := []string{"Paris", "Lyon", "Marsella", "Niza"}

	tests := []struct {
		name       string
		req        dto.FeedbackRequest
		wantFields []string
	}{
		{"valid", dto.FeedbackRequest{Question: "¿Capital de Francia?", Options: opts, ChosenIndex: intPtr(0)}, nil},
		{"valid with correct index", dto.FeedbackRequest{Question: "q", Options: opts, ChosenIndex: intPtr(1), CorrectIndex: intPtr(0)}, nil},
		{"missing question", dto.FeedbackRequest{Question: " <> ", Options: opts, ChosenIndex: intPtr(0)}, []string{"question"}},
		{"three options", dto.FeedbackRequest{Question: "q", Options: opts[:3], ChosenIndex: intPtr(0)}, []string{"options"}},
		{"blank option", dto.FeedbackRequest{Question: "q", Options: []string{"a", " ", "c", "d"}, ChosenIndex: intPtr(0)}, []string{"options"}},
		{"missing chosen", dto.FeedbackRequest{Question: "q", Options: opts}, []string{"chosen_index"}},
		{"chosen out of range", dto.FeedbackRequest{Question: "q", Options: opts, ChosenIndex: intPtr(4)}, []string{"chosen_index"}},
		{"correct out of range", dto.FeedbackRequest{Question: "q", Options: opts, ChosenIndex: intPtr(0), CorrectIndex: intPtr(-1)}, []string{"correct_index"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Options = append([]string(nil), tt.req.Options...)
			errs := v.ValidateFeedback(&req)
			if tt.wantFields == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantFields, fieldsOf(errs))
		})
	}
}

func TestValidateScore(t *testing.T) {
	v := NewValidator(5, 20)
	assert.Empty(t, v.ValidateScore(&dto.ScoreRequest{Score: 10, Total: 10}))
	assert.Empty(t, v.ValidateScore(&dto.ScoreRequest{Score: 0, Total: 0}))
	assert.Equal(t, []string{"score"}, fieldsOf(v.ValidateScore(&dto.ScoreRequest{Score: 11, Total: 10})))
	assert.Equal(t, []string{"score"}, fieldsOf(v.ValidateScore(&dto.ScoreRequest{Score: -1, Total: 10})))
	assert.Equal(t, []string{"total"}, fieldsOf(v.ValidateScore(&dto.ScoreRequest{Score: 0, Total: 21})))
}

func TestValidateGenerate(t *testing.T) {
	v := NewValidator(5, 20)
	assert.Empty(t, v.ValidateGenerate(&dto.GenerateRequest{Prompt: "Hola", MaxTokens: 100, Temperature: floatPtr(0.7)}))
	assert.Empty(t, v.ValidateGenerate(&dto.GenerateRequest{Prompt: "Hola", Temperature: floatPtr(0)}))
	assert.Empty(t, v.ValidateGenerate(&dto.GenerateRequest{Prompt: "Hola"}))
	assert.Equal(t, []string{"prompt"}, fieldsOf(v.ValidateGenerate(&dto.GenerateRequest{Prompt: "  "})))
	assert.Equal(t, []string{"max_tokens", "temperature"},
		fieldsOf(v.ValidateGenerate(&dto.GenerateRequest{Prompt: "x", MaxTokens: 5000, Temperature: floatPtr(3)})))
	assert.Equal(t, []string{"temperature"},
		fieldsOf(v.ValidateGenerate(&dto.GenerateRequest{Prompt: "x", Temperature: floatPtr(-0.1)})))
}
