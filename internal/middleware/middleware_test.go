package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/dto"
	"quiz-terminal/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
}

func decode[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{"validation", domain.ValidationErrors{domain.NewMissingFieldError("question")}, 400, "VALIDATION_ERROR"},
		{"invalid category", domain.NewInvalidCategoryError("cocina"), 400, "INVALID_CATEGORY"},
		{"invalid state", domain.NewInvalidStateError("not playing"), 409, "INVALID_STATE"},
		{"unknown provider", domain.NewProviderNotFoundError("openai"), 404, "PROVIDER_NOT_FOUND"},
		{"rate limited", domain.NewRateLimitedError(), 429, "RATE_LIMITED"},
		{"internal", domain.NewInternalError("boom", errors.New("cause")), 500, "INTERNAL_ERROR"},
		{"fiber", fiber.ErrMethodNotAllowed, 405, "HTTP_ERROR"},
		{"unknown", errors.New("???"), 500, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tt.expectedBody)
		})
	}
}

func TestErrorHandler_DomainContextBecomesDetails(t *testing.T) {
	app := newTestApp()
	app.Get("/", func(c *fiber.Ctx) error { return domain.NewProviderNotFoundError("openai") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body := decode[ErrorResponse](t, resp.Body)
	assert.Equal(t, "openai", body.Details["provider"])
	assert.Equal(t, 404, body.Status)
}

func TestStatusForCode(t *testing.T) {
	assert.Equal(t, 400, statusForCode(domain.CodeOutOfRange))
	assert.Equal(t, 404, statusForCode(domain.CodeNotFound))
	assert.Equal(t, 500, statusForCode(domain.CodeInternal))
	assert.Equal(t, 500, statusForCode(domain.ErrorCode("UNLISTED")))
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	app := newTestApp()
	app.Get("/", func(c *fiber.Ctx) error {
		return fmt.Errorf("start quiz: %w", domain.NewInvalidCategoryError("cocina"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	body := decode[ErrorResponse](t, resp.Body)
	assert.Equal(t, "INVALID_CATEGORY", body.Code)
}

func TestValidationMiddleware(t *testing.T) {
	vm := NewValidationMiddleware(validation.NewValidator(5, 20))
	app := newTestApp()
	app.Post("/quiz", vm.ValidateStartQuiz(), func(c *fiber.Ctx) error {
		req, ok := ValidatedBody[dto.StartQuizRequest](c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(req)
	})

	t.Run("valid body is normalised", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/quiz", strings.NewReader(`{"category":" Ciencia ","count":5}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		got := decode[dto.StartQuizRequest](t, resp.Body)
		assert.Equal(t, "ciencia", got.Category)
		assert.Equal(t, 5, got.Count)
	})

	t.Run("empty body uses defaults", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/quiz", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("invalid fields", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/quiz", strings.NewReader(`{"count":50,"difficulty":"imposible"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		body := decode[ValidationErrorResponse](t, resp.Body)
		require.Len(t, body.Errors, 2)
		assert.Equal(t, "count", body.Errors[0].Field)
		assert.Equal(t, "difficulty", body.Errors[1].Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/quiz", strings.NewReader(`{"category":`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 2, time.Hour)
	app := newTestApp()
	app.Get("/", rl.Handler(), func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
}

func TestRateLimiter_SeparateClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 1, time.Hour)
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 1, time.Second)
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.allow("10.0.0.1")
	now = now.Add(2 * time.Minute)
	rl.allow("10.0.0.2")
	rl.evictIdle()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}
