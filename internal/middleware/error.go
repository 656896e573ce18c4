package middleware

import (
	"errors"
	"net/http"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every failed request except validation failures.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse lists every rejected field of a request body.
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// statusByCode maps domain error codes to HTTP statuses. Unlisted codes are 500.
var statusByCode = map[domain.ErrorCode]int{
	domain.CodeNotFound:         http.StatusNotFound,
	domain.CodeProviderNotFound: http.StatusNotFound,

	domain.CodeInvalidInput:    http.StatusBadRequest,
	domain.CodeInvalidCategory: http.StatusBadRequest,
	domain.CodeInvalidQuestion: http.StatusBadRequest,
	domain.CodeValidation:      http.StatusBadRequest,
	domain.CodeMissingField:    http.StatusBadRequest,
	domain.CodeInvalidFormat:   http.StatusBadRequest,
	domain.CodeOutOfRange:      http.StatusBadRequest,

	domain.CodeInvalidState: http.StatusConflict,
	domain.CodeRateLimited:  http.StatusTooManyRequests,
}

func statusForCode(code domain.ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorHandler is the application's fiber.ErrorHandler.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := renderError(err)
		logRequestError(c, err, status)
		return c.Status(status).JSON(body)
	}
}

// renderError picks the status and body for err. Anything that is not a
// validation, domain or fiber error is hidden behind a generic 500.
func renderError(err error) (int, interface{}) {
	var (
		validationErrs domain.ValidationErrors
		domainErr      *domain.DomainError
		fiberErr       *fiber.Error
	)
	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, ValidationErrorResponse{
			Code:    string(domain.CodeValidation),
			Message: "Request validation failed",
			Status:  http.StatusBadRequest,
			Errors:  validationErrs,
		}
	case errors.As(err, &domainErr):
		status := statusForCode(domainErr.Code)
		return status, ErrorResponse{
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Status:  status,
			Details: domainErr.Context,
		}
	case errors.As(err, &fiberErr):
		return fiberErr.Code, ErrorResponse{Code: "HTTP_ERROR", Message: fiberErr.Message, Status: fiberErr.Code}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		}
	}
}

func logRequestError(c *fiber.Ctx, err error, status int) {
	log := logger.Get().Warn
	if status >= http.StatusInternalServerError {
		log = logger.Get().Error
	}
	log("Request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Error(err),
	)
}
