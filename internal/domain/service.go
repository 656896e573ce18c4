package domain

import "context"

// QuestionGenerator produces one question for a category and never fails.
type QuestionGenerator interface {
	GenerateQuestion(ctx context.Context, category Category, difficulty Difficulty) GeneratedQuestion
}

// QuestionBank is the offline source of curated questions.
type QuestionBank interface {
	Pick(category Category) QuizQuestion
}

// QuizSetAssembler builds an ordered quiz set and never fails.
type QuizSetAssembler interface {
	GenerateQuizSet(ctx context.Context, count int, categories []Category, difficulty Difficulty) QuizSet
}

// FeedbackGenerator explains a submitted answer and never returns empty text.
type FeedbackGenerator interface {
	GenerateFeedback(ctx context.Context, question, chosenOption string, options []string) string
}

// Feedback is an explanation with its provenance.
type Feedback struct {
	Text string
	// UsesFallback is set when the text came from the local responder.
	UsesFallback bool
}

// FeedbackExplainer is a FeedbackGenerator that also reports where the text came from.
type FeedbackExplainer interface {
	FeedbackGenerator
	Explain(ctx context.Context, question, chosenOption string, options []string) Feedback
}

// Difficulty optionally steers question generation.
type Difficulty string

const (
	DifficultyAny    Difficulty = ""
	DifficultyEasy   Difficulty = "fácil"
	DifficultyMedium Difficulty = "medio"
	DifficultyHard   Difficulty = "difícil"
)

var difficultyAliases = map[string]Difficulty{
	"":        DifficultyAny,
	"fácil":   DifficultyEasy,
	"facil":   DifficultyEasy,
	"easy":    DifficultyEasy,
	"medio":   DifficultyMedium,
	"medium":  DifficultyMedium,
	"difícil": DifficultyHard,
	"dificil": DifficultyHard,
	"hard":    DifficultyHard,
}

// ParseDifficulty accepts Spanish and English names, with or without accents.
func ParseDifficulty(raw string) (Difficulty, bool) {
	d, ok := difficultyAliases[raw]
	return d, ok
}
