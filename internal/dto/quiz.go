package dto

import "time"

// CategoryResponse represents a category in the API response
// @Description Category information
type CategoryResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoriesResponse lists the categories a quiz can be started with.
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// StartQuizRequest represents a request to generate a quiz set
// @Description Request body for starting a quiz
type StartQuizRequest struct {
	Category   string `json:"category" example:"ciencia"`
	Count      int    `json:"count,omitempty" example:"10"`
	Difficulty string `json:"difficulty,omitempty" example:"medio"`
}

// QuestionResponse is one question of a quiz set.
type QuestionResponse struct {
	Index        int      `json:"index"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Category     string   `json:"category"`
	Source       string   `json:"source"`
}

// QuizSetResponse represents a generated quiz set
// @Description Quiz set with its questions in play order
type QuizSetResponse struct {
	ID           string             `json:"id"`
	Questions    []QuestionResponse `json:"questions"`
	UsedFallback bool               `json:"used_fallback"`
	Notice       string             `json:"notice,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// FeedbackRequest represents a submitted answer to explain
// @Description Request body for answer feedback
type FeedbackRequest struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	ChosenIndex  *int     `json:"chosen_index"`
	CorrectIndex *int     `json:"correct_index,omitempty"`
}

// FeedbackResponse carries the explanation. IsCorrect and CorrectOption are
// present only when the request included correct_index.
type FeedbackResponse struct {
	IsCorrect     *bool  `json:"is_correct,omitempty"`
	CorrectOption string `json:"correct_option,omitempty"`
	Feedback      string `json:"feedback"`
}

// ScoreRequest represents a final score to summarise
type ScoreRequest struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// ScoreResponse is the score summary with its tier message.
type ScoreResponse struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Tier       string  `json:"tier"`
	Message    string  `json:"message"`
	Color      string  `json:"color"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
