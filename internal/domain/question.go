package domain

import (
	"fmt"
	"strings"
	"time"
)

// OptionCount is the fixed number of choices in every question.
const OptionCount = 4

// QuizQuestion is a multiple-choice question with exactly four distinct options.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// NewQuizQuestion validates and copies the inputs into a QuizQuestion.
func NewQuizQuestion(question string, options []string, correctIndex int) (QuizQuestion, error) {
	q := QuizQuestion{
		Question:     strings.TrimSpace(question),
		Options:      make([]string, len(options)),
		CorrectIndex: correctIndex,
	}
	for i, o := range options {
		q.Options[i] = strings.TrimSpace(o)
	}
	if err := q.Validate(); err != nil {
		return QuizQuestion{}, err
	}
	return q, nil
}

// Validate reports whether the question satisfies the shape every consumer relies on.
func (q QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewInvalidQuestionError("question text is empty")
	}
	if len(q.Options) != OptionCount {
		return NewInvalidQuestionError(fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)))
	}
	seen := make(map[string]struct{}, OptionCount)
	for i, o := range q.Options {
		if o == "" {
			return NewInvalidQuestionError(fmt.Sprintf("option %d is empty", i))
		}
		key := strings.ToLower(o)
		if _, dup := seen[key]; dup {
			return NewInvalidQuestionError(fmt.Sprintf("option %q is duplicated", o))
		}
		seen[key] = struct{}{}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return NewInvalidQuestionError(fmt.Sprintf("correct index %d out of range", q.CorrectIndex))
	}
	return nil
}

// Clone returns a copy that shares no memory with q.
func (q QuizQuestion) Clone() QuizQuestion {
	out := q
	out.Options = append([]string(nil), q.Options...)
	return out
}

// CorrectOption returns the text of the correct option.
func (q QuizQuestion) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}

// QuestionSource records where a question came from.
type QuestionSource string

const (
	SourceGenerated QuestionSource = "generated"
	SourceFallback  QuestionSource = "fallback"
)

// GeneratedQuestion is a question produced for one slot of a quiz set.
type GeneratedQuestion struct {
	QuizQuestion
	Category Category       `json:"category"`
	Source   QuestionSource `json:"source"`
}

// QuizSet is an ordered batch of questions for one quiz run.
type QuizSet struct {
	ID        string              `json:"id"`
	Questions []GeneratedQuestion `json:"questions"`
	// UsedFallback is set when the concurrent pass failed as a whole and the set
	// was rebuilt from the local bank.
	UsedFallback bool      `json:"used_fallback"`
	CreatedAt    time.Time `json:"created_at"`
}

// Len returns the number of questions in the set.
func (s QuizSet) Len() int {
	return len(s.Questions)
}

// FallbackCount returns how many questions came from the local bank.
func (s QuizSet) FallbackCount() int {
	n := 0
	for _, q := range s.Questions {
		if q.Source == SourceFallback {
			n++
		}
	}
	return n
}
