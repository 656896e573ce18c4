package service

import (
	"context"
	"time"

	"quiz-terminal/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string, opts domain.GenerateOptions) string {
	args := m.Called(ctx, prompt, opts)
	return args.String(0)
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) domain.ProviderResult {
	args := m.Called(ctx, prompt, opts)
	return args.Get(0).(domain.ProviderResult)
}

// --- MockQuestionBank ---
type MockQuestionBank struct {
	mock.Mock
}

func (m *MockQuestionBank) Pick(category domain.Category) domain.QuizQuestion {
	args := m.Called(category)
	return args.Get(0).(domain.QuizQuestion)
}

// --- MockQuizSetAssembler ---
type MockQuizSetAssembler struct {
	mock.Mock
}

func (m *MockQuizSetAssembler) GenerateQuizSet(ctx context.Context, count int, categories []domain.Category, difficulty domain.Difficulty) domain.QuizSet {
	args := m.Called(ctx, count, categories, difficulty)
	return args.Get(0).(domain.QuizSet)
}

// --- MockFeedbackGenerator ---
type MockFeedbackGenerator struct {
	mock.Mock
}

func (m *MockFeedbackGenerator) GenerateFeedback(ctx context.Context, question, chosenOption string, options []string) string {
	args := m.Called(ctx, question, chosenOption, options)
	return args.String(0)
}

func (m *MockFeedbackGenerator) Explain(ctx context.Context, question, chosenOption string, options []string) domain.Feedback {
	args := m.Called(ctx, question, chosenOption, options)
	return args.Get(0).(domain.Feedback)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockProviderGateway ---
type MockProviderGateway struct {
	mock.Mock
}

func (m *MockProviderGateway) GenerateWith(ctx context.Context, providerID, prompt string, opts domain.GenerateOptions) (domain.ProviderResult, error) {
	args := m.Called(ctx, providerID, prompt, opts)
	return args.Get(0).(domain.ProviderResult), args.Error(1)
}

func (m *MockProviderGateway) Diagnose(ctx context.Context, probePrompt string) []domain.ProviderDiagnosis {
	args := m.Called(ctx, probePrompt)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ProviderDiagnosis)
}

// questionGeneratorFunc adapts a function to domain.QuestionGenerator.
type questionGeneratorFunc func(ctx context.Context, category domain.Category, difficulty domain.Difficulty) domain.GeneratedQuestion

func (f questionGeneratorFunc) GenerateQuestion(ctx context.Context, category domain.Category, difficulty domain.Difficulty) domain.GeneratedQuestion {
	return f(ctx, category, difficulty)
}

type staticResponder string

func (s staticResponder) Respond(string) string { return string(s) }
