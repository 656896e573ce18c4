package validation

import (
	"strings"
	"unicode/utf8"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/dto"
)

const (
	maxCategoryLength = 50
	maxQuestionLength = 1000
	maxOptionLength   = 300
	maxPromptLength   = 4000
	maxTokensLimit    = 1024
	maxTemperature    = 2.0
)

var sanitizer = strings.NewReplacer("<", "", ">", "")

// Validator provides request validation functionality
type Validator struct {
	minQuestions int
	maxQuestions int
}

// NewValidator creates a validator enforcing the quiz size bounds.
func NewValidator(minQuestions, maxQuestions int) *Validator {
	return &Validator{minQuestions: minQuestions, maxQuestions: maxQuestions}
}

// Sanitize trims s and strips angle brackets.
func Sanitize(s string) string {
	return strings.TrimSpace(sanitizer.Replace(s))
}

// ValidateStartQuiz validates and sanitises a start request in place.
// Count 0 means "use the configured default".
func (v *Validator) ValidateStartQuiz(req *dto.StartQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	req.Category = strings.ToLower(Sanitize(req.Category))
	if utf8.RuneCountInString(req.Category) > maxCategoryLength {
		errors = append(errors, domain.NewOutOfRangeError("category", utf8.RuneCountInString(req.Category), 0, maxCategoryLength))
	}

	if req.Count != 0 && (req.Count < v.minQuestions || req.Count > v.maxQuestions) {
		errors = append(errors, domain.NewOutOfRangeError("count", req.Count, v.minQuestions, v.maxQuestions))
	}

	req.Difficulty = strings.ToLower(Sanitize(req.Difficulty))
	if _, ok := domain.ParseDifficulty(req.Difficulty); !ok {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", req.Difficulty))
	}

	return errors
}

// ValidateFeedback validates and sanitises a feedback request in place.
func (v *Validator) ValidateFeedback(req *dto.FeedbackRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	req.Question = Sanitize(req.Question)
	if req.Question == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	} else if n := utf8.RuneCountInString(req.Question); n > maxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("question", n, 1, maxQuestionLength))
	}

	if len(req.Options) != domain.OptionCount {
		errors = append(errors, domain.NewOutOfRangeError("options", len(req.Options), domain.OptionCount, domain.OptionCount))
	} else {
		for i := range req.Options {
			req.Options[i] = Sanitize(req.Options[i])
			if req.Options[i] == "" {
				errors = append(errors, domain.NewMissingFieldError("options"))
				break
			}
			if n := utf8.RuneCountInString(req.Options[i]); n > maxOptionLength {
				errors = append(errors, domain.NewOutOfRangeError("options", n, 1, maxOptionLength))
				break
			}
		}
	}

	if req.ChosenIndex == nil {
		errors = append(errors, domain.NewMissingFieldError("chosen_index"))
	} else if !validIndex(*req.ChosenIndex) {
		errors = append(errors, domain.NewOutOfRangeError("chosen_index", *req.ChosenIndex, 0, domain.OptionCount-1))
	}

	if req.CorrectIndex != nil && !validIndex(*req.CorrectIndex) {
		errors = append(errors, domain.NewOutOfRangeError("correct_index", *req.CorrectIndex, 0, domain.OptionCount-1))
	}

	return errors
}

// ValidateScore checks 0 <= score <= total <= the maximum quiz size.
func (v *Validator) ValidateScore(req *dto.ScoreRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Total < 0 || req.Total > v.maxQuestions {
		errors = append(errors, domain.NewOutOfRangeError("total", req.Total, 0, v.maxQuestions))
		return errors
	}
	if req.Score < 0 || req.Score > req.Total {
		errors = append(errors, domain.NewOutOfRangeError("score", req.Score, 0, req.Total))
	}

	return errors
}

// ValidateGenerate validates and sanitises a proxy generation request in place.
func (v *Validator) ValidateGenerate(req *dto.GenerateRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	req.Prompt = Sanitize(req.Prompt)
	if req.Prompt == "" {
		errors = append(errors, domain.NewMissingFieldError("prompt"))
	} else if n := utf8.RuneCountInString(req.Prompt); n > maxPromptLength {
		errors = append(errors, domain.NewOutOfRangeError("prompt", n, 1, maxPromptLength))
	}

	if req.MaxTokens < 0 || req.MaxTokens > maxTokensLimit {
		errors = append(errors, domain.NewOutOfRangeError("max_tokens", req.MaxTokens, 0, maxTokensLimit))
	}
	if t := req.Temperature; t != nil && (*t < 0 || *t > maxTemperature) {
		errors = append(errors, domain.NewOutOfRangeError("temperature", *t, 0, maxTemperature))
	}

	return errors
}

func validIndex(i int) bool {
	return i >= 0 && i < domain.OptionCount
}
