package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedAssembler struct{}

func (fixedAssembler) GenerateQuizSet(_ context.Context, count int, categories []domain.Category, _ domain.Difficulty) domain.QuizSet {
	set := domain.QuizSet{ID: "test"}
	for i := 0; i < count; i++ {
		set.Questions = append(set.Questions, domain.GeneratedQuestion{
			QuizQuestion: domain.QuizQuestion{
				Question:     "¿Cuál es la fórmula química del agua?",
				Options:      []string{"H2O", "CO2", "NaCl", "CH4"},
				CorrectIndex: 0,
			},
			Category: categories[0],
			Source:   domain.SourceFallback,
		})
	}
	return set
}

type fixedFeedback struct{}

func (fixedFeedback) GenerateFeedback(context.Context, string, string, []string) string {
	return "El agua está formada por dos átomos de hidrógeno y uno de oxígeno."
}

func testCatalog() *domain.Catalog {
	return domain.NewCatalog([]domain.CategoryInfo{
		{Name: domain.Science, Description: "Física, química y biología"},
		{Name: domain.History, Description: "Eventos históricos"},
	}, "Todas las categorías")
}

func newTestGame(input string) (*game, *bytes.Buffer) {
	catalog := testCatalog()
	s := session.New(catalog, fixedAssembler{}, fixedFeedback{}, session.Config{DefaultCount: 5, MinQuestions: 5, MaxQuestions: 20}, nil)
	out := &bytes.Buffer{}
	return newGame(s, catalog, strings.NewReader(input), out), out
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"a", 0, true},
		{" D ", 3, true},
		{"2", 1, true},
		{"4", 3, true},
		{"5", 0, false},
		{"E", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseAnswer(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseCategoryChoice(t *testing.T) {
	infos := testCatalog().Describe()

	cat, ok := parseCategoryChoice("", infos)
	assert.True(t, ok)
	assert.Equal(t, "mixto", cat)

	cat, ok = parseCategoryChoice("2", infos)
	assert.True(t, ok)
	assert.Equal(t, "ciencia", cat)

	cat, ok = parseCategoryChoice("Historia", infos)
	assert.True(t, ok)
	assert.Equal(t, "historia", cat)

	_, ok = parseCategoryChoice("9", infos)
	assert.False(t, ok)
	_, ok = parseCategoryChoice("cocina", infos)
	assert.False(t, ok)
}

func TestGame_PlayFullQuiz(t *testing.T) {
	// Three right, one invalid entry, then two wrong.
	g, out := newTestGame("a\nA\n1\nx\nb\nc\n")

	err := g.play(context.Background(), "ciencia", session.Options{})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Pregunta 1 de 5")
	assert.Contains(t, text, "Pregunta 5 de 5")
	assert.Contains(t, text, "A) H2O")
	assert.Contains(t, text, "Respuesta no válida.")
	assert.Contains(t, text, "La respuesta correcta era A) H2O")
	assert.Contains(t, text, "Resultado: 3/5 (60%)")
	assert.Contains(t, text, "Algunas preguntas provienen del banco local")
	assert.Equal(t, session.StateCompleted, g.session.State())
}

func TestGame_QuitMidQuiz(t *testing.T) {
	g, _ := newTestGame("a\nsalir\n")

	err := g.play(context.Background(), "ciencia", session.Options{})
	assert.ErrorIs(t, err, errQuit)

	current, total, score := g.session.Progress()
	assert.Equal(t, 1, current)
	assert.Equal(t, 5, total)
	assert.Equal(t, 1, score)
}

func TestGame_ChooseCategoryRetries(t *testing.T) {
	g, out := newTestGame("cocina\n3\n")

	cat, err := g.chooseCategory()
	require.NoError(t, err)
	assert.Equal(t, "historia", cat)
	assert.Contains(t, out.String(), "Categoría no válida.")
}

func TestGame_AskAgain(t *testing.T) {
	g, _ := newTestGame("sí\n")
	assert.True(t, g.askAgain())

	g, _ = newTestGame("n\n")
	assert.False(t, g.askAgain())

	g, _ = newTestGame("")
	assert.False(t, g.askAgain())
}
