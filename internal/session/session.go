// Package session runs one quiz in memory for an interactive client.
//
// A session moves from setup to playing when a quiz set is generated and from
// playing to completed after the last question is answered. Answers must be
// submitted in order, once per question.
package session

import (
	"context"
	"fmt"
	"sync"

	"quiz-terminal/internal/domain"

	"go.uber.org/zap"
)

// State is the phase of a session.
type State int

const (
	StateSetup State = iota
	StatePlaying
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StatePlaying:
		return "playing"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config bounds the quiz size.
type Config struct {
	DefaultCount int
	MinQuestions int
	MaxQuestions int
}

// Options customise one quiz run. Zero values use the configured defaults.
type Options struct {
	Count      int
	Difficulty domain.Difficulty
}

// AnswerResult is returned for every submitted answer.
type AnswerResult struct {
	IsCorrect     bool
	CorrectIndex  int
	CorrectOption string
	Feedback      string
	Score         int
	Completed     bool
}

type Session struct {
	catalog   *domain.Catalog
	assembler domain.QuizSetAssembler
	feedback  domain.FeedbackGenerator
	cfg       Config
	logger    *zap.Logger

	mu      sync.Mutex
	state   State
	set     domain.QuizSet
	current int
	score   int
	// epoch changes on every start and reset so a superseded StartQuiz can tell.
	epoch uint64
}

func New(catalog *domain.Catalog, assembler domain.QuizSetAssembler, feedback domain.FeedbackGenerator, cfg Config, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		catalog:   catalog,
		assembler: assembler,
		feedback:  feedback,
		cfg:       cfg,
		logger:    logger,
	}
}

// StartQuiz generates a new quiz set for category and resets score and progress.
// "mixto" selects every catalog category.
func (s *Session) StartQuiz(ctx context.Context, category string, opts Options) (domain.QuizSet, error) {
	cat, err := s.catalog.Parse(category)
	if err != nil {
		return domain.QuizSet{}, err
	}
	count := opts.Count
	if count == 0 {
		count = s.cfg.DefaultCount
	}
	if count < s.cfg.MinQuestions || count > s.cfg.MaxQuestions {
		return domain.QuizSet{}, domain.ValidationErrors{
			domain.NewOutOfRangeError("count", count, s.cfg.MinQuestions, s.cfg.MaxQuestions),
		}
	}

	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	s.state = StateSetup
	s.set = domain.QuizSet{}
	s.mu.Unlock()

	set := s.assembler.GenerateQuizSet(ctx, count, s.catalog.Expand(cat), opts.Difficulty)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return domain.QuizSet{}, domain.NewInvalidStateError("quiz was reset while it was being generated")
	}
	if set.Len() == 0 {
		return domain.QuizSet{}, domain.NewInternalError("quiz set is empty", nil)
	}
	s.set = set
	s.state = StatePlaying
	s.current = 0
	s.score = 0

	s.logger.Info("Quiz session started",
		zap.String("set_id", set.ID),
		zap.String("category", cat.String()),
		zap.Int("count", set.Len()),
	)
	return set, nil
}

// CurrentQuestion returns the question awaiting an answer and its index.
func (s *Session) CurrentQuestion() (domain.GeneratedQuestion, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return domain.GeneratedQuestion{}, 0, domain.NewInvalidStateError(fmt.Sprintf("no question to answer in state %s", s.state))
	}
	return s.set.Questions[s.current], s.current, nil
}

// SubmitAnswer scores optionIndex against the current question, which must be questionIndex.
// The session advances before feedback is generated, so a slow explanation
// never blocks the next question.
func (s *Session) SubmitAnswer(ctx context.Context, questionIndex, optionIndex int) (AnswerResult, error) {
	s.mu.Lock()
	if s.state != StatePlaying {
		state := s.state
		s.mu.Unlock()
		return AnswerResult{}, domain.NewInvalidStateError(fmt.Sprintf("cannot submit an answer in state %s", state))
	}
	if questionIndex != s.current {
		current := s.current
		s.mu.Unlock()
		return AnswerResult{}, domain.NewInvalidStateError(
			fmt.Sprintf("question %d is not the current question", questionIndex),
		).WithContext("current_question", current)
	}
	if optionIndex < 0 || optionIndex >= domain.OptionCount {
		s.mu.Unlock()
		return AnswerResult{}, domain.ValidationErrors{
			domain.NewOutOfRangeError("option_index", optionIndex, 0, domain.OptionCount-1),
		}
	}

	q := s.set.Questions[s.current]
	result := AnswerResult{
		IsCorrect:     optionIndex == q.CorrectIndex,
		CorrectIndex:  q.CorrectIndex,
		CorrectOption: q.CorrectOption(),
	}
	if result.IsCorrect {
		s.score++
	}
	s.current++
	if s.current >= s.set.Len() {
		s.state = StateCompleted
	}
	result.Score = s.score
	result.Completed = s.state == StateCompleted
	s.mu.Unlock()

	result.Feedback = s.feedback.GenerateFeedback(ctx, q.Question, q.Options[optionIndex], q.Options)
	return result, nil
}

// FinalScore is available once every question has been answered.
func (s *Session) FinalScore() (domain.ScoreSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCompleted {
		return domain.ScoreSummary{}, domain.NewInvalidStateError(fmt.Sprintf("quiz is not completed (state %s)", s.state))
	}
	return domain.EvaluateScore(s.score, s.set.Len()), nil
}

// Reset discards the current quiz. A StartQuiz still generating is abandoned.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.state = StateSetup
	s.set = domain.QuizSet{}
	s.current = 0
	s.score = 0
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Progress returns the current question index, the set size and the score so far.
func (s *Session) Progress() (current, total, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.set.Len(), s.score
}
