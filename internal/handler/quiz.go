package handler

import (
	"quiz-terminal/internal/dto"
	"quiz-terminal/internal/middleware"
	"quiz-terminal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GetCategories godoc
// @Summary List quiz categories
// @Description Returns every category with its description, "mixto" first
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /categories [get]
func (h *QuizHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCategories())
}

// StartQuiz godoc
// @Summary Generate a quiz set
// @Description Generates a quiz set for a category. Questions come from the AI providers or, when they fail, from the offline bank.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.StartQuizRequest true "Quiz options"
// @Success 200 {object} dto.QuizSetResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) StartQuiz(c *fiber.Ctx) error {
	req, ok := middleware.ValidatedBody[dto.StartQuizRequest](c)
	if !ok {
		return fiber.ErrBadRequest
	}

	resp, err := h.service.StartQuiz(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetFeedback godoc
// @Summary Explain an answer
// @Description Returns an explanation for the chosen option. When correct_index is sent the response also says whether the answer was right.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Submitted answer"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Router /quiz/feedback [post]
func (h *QuizHandler) GetFeedback(c *fiber.Ctx) error {
	req, ok := middleware.ValidatedBody[dto.FeedbackRequest](c)
	if !ok {
		return fiber.ErrBadRequest
	}

	resp, err := h.service.GetFeedback(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetScore godoc
// @Summary Summarise a final score
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.ScoreRequest true "Score"
// @Success 200 {object} dto.ScoreResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz/score [post]
func (h *QuizHandler) GetScore(c *fiber.Ctx) error {
	req, ok := middleware.ValidatedBody[dto.ScoreRequest](c)
	if !ok {
		return fiber.ErrBadRequest
	}
	return c.JSON(h.service.GetScore(req))
}
