package middleware

import (
	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedBodyKey is the fiber.Locals key holding the parsed, validated request body.
const ValidatedBodyKey = "validated_body"

// ValidationMiddleware parses JSON bodies and validates them before the handler runs.
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

func (vm *ValidationMiddleware) ValidateStartQuiz() fiber.Handler {
	return bindAndValidate(vm.validator.ValidateStartQuiz)
}

func (vm *ValidationMiddleware) ValidateFeedback() fiber.Handler {
	return bindAndValidate(vm.validator.ValidateFeedback)
}

func (vm *ValidationMiddleware) ValidateScore() fiber.Handler {
	return bindAndValidate(vm.validator.ValidateScore)
}

func (vm *ValidationMiddleware) ValidateGenerate() fiber.Handler {
	return bindAndValidate(vm.validator.ValidateGenerate)
}

// ValidatedBody returns the body stored by a validation middleware.
func ValidatedBody[T any](c *fiber.Ctx) (*T, bool) {
	req, ok := c.Locals(ValidatedBodyKey).(*T)
	return req, ok
}

func bindAndValidate[T any](validate func(*T) domain.ValidationErrors) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(req); err != nil {
				return domain.NewInvalidInputError("Request body is not valid JSON")
			}
		}
		if errs := validate(req); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedBodyKey, req)
		return c.Next()
	}
}
