package service

import (
	"context"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/dto"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// OfflineNotice is shown when a quiz set was rebuilt from the local bank.
const OfflineNotice = "Usando preguntas offline: el servicio de IA no está disponible"

// QuizService defines the stateless quiz operations behind the HTTP API.
type QuizService interface {
	GetCategories() *dto.CategoriesResponse
	StartQuiz(ctx context.Context, req *dto.StartQuizRequest) (*dto.QuizSetResponse, error)
	GetFeedback(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	GetScore(req *dto.ScoreRequest) *dto.ScoreResponse
}

type quizService struct {
	catalog      *domain.Catalog
	assembler    domain.QuizSetAssembler
	feedback     domain.FeedbackGenerator
	defaultCount int
	logger       *zap.Logger
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	catalog *domain.Catalog,
	assembler domain.QuizSetAssembler,
	feedback domain.FeedbackGenerator,
	defaultCount int,
	logger *zap.Logger,
) QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &quizService{
		catalog:      catalog,
		assembler:    assembler,
		feedback:     feedback,
		defaultCount: defaultCount,
		logger:       logger,
	}
}

// GetCategories lists the catalog, "mixto" first.
func (s *quizService) GetCategories() *dto.CategoriesResponse {
	return &dto.CategoriesResponse{
		Categories: lo.Map(s.catalog.Describe(), func(c domain.CategoryInfo, _ int) dto.CategoryResponse {
			return dto.CategoryResponse{Name: c.Name.String(), Description: c.Description}
		}),
	}
}

// StartQuiz generates a quiz set. Generation failures never surface as errors;
// only an unknown category or difficulty does.
func (s *quizService) StartQuiz(ctx context.Context, req *dto.StartQuizRequest) (*dto.QuizSetResponse, error) {
	category, err := s.catalog.Parse(req.Category)
	if err != nil {
		return nil, err
	}
	difficulty, ok := domain.ParseDifficulty(req.Difficulty)
	if !ok {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("difficulty", req.Difficulty)}
	}
	count := req.Count
	if count == 0 {
		count = s.defaultCount
	}

	set := s.assembler.GenerateQuizSet(ctx, count, s.catalog.Expand(category), difficulty)
	s.logger.Info("Quiz started",
		zap.String("set_id", set.ID),
		zap.String("category", category.String()),
		zap.Int("count", set.Len()),
		zap.Bool("used_fallback", set.UsedFallback),
	)
	return toQuizSetResponse(set), nil
}

// GetFeedback explains the chosen option. Correctness is reported only when the
// caller supplies the correct index.
func (s *quizService) GetFeedback(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	if req.ChosenIndex == nil || *req.ChosenIndex < 0 || *req.ChosenIndex >= len(req.Options) {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("chosen_index")}
	}

	chosen := req.Options[*req.ChosenIndex]
	resp := &dto.FeedbackResponse{
		Feedback: s.feedback.GenerateFeedback(ctx, req.Question, chosen, req.Options),
	}
	if req.CorrectIndex != nil && *req.CorrectIndex >= 0 && *req.CorrectIndex < len(req.Options) {
		resp.IsCorrect = lo.ToPtr(*req.ChosenIndex == *req.CorrectIndex)
		resp.CorrectOption = req.Options[*req.CorrectIndex]
	}
	return resp, nil
}

func (s *quizService) GetScore(req *dto.ScoreRequest) *dto.ScoreResponse {
	sum := domain.EvaluateScore(req.Score, req.Total)
	return &dto.ScoreResponse{
		Score:      sum.Score,
		Total:      sum.Total,
		Percentage: sum.Percentage,
		Tier:       string(sum.Tier),
		Message:    sum.Message,
		Color:      sum.Color,
	}
}

func toQuizSetResponse(set domain.QuizSet) *dto.QuizSetResponse {
	resp := &dto.QuizSetResponse{
		ID:           set.ID,
		UsedFallback: set.UsedFallback,
		CreatedAt:    set.CreatedAt,
		Questions: lo.Map(set.Questions, func(q domain.GeneratedQuestion, i int) dto.QuestionResponse {
			return dto.QuestionResponse{
				Index:        i,
				Question:     q.Question,
				Options:      append([]string(nil), q.Options...),
				CorrectIndex: q.CorrectIndex,
				Category:     q.Category.String(),
				Source:       string(q.Source),
			}
		}),
	}
	if set.UsedFallback {
		resp.Notice = OfflineNotice
	}
	return resp
}
