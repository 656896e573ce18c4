package handler

import (
	"quiz-terminal/internal/dto"
	"quiz-terminal/internal/middleware"
	"quiz-terminal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProviderHandler exposes individual text-generation providers.
type ProviderHandler struct {
	service service.ProviderService
}

func NewProviderHandler(service service.ProviderService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// Generate godoc
// @Summary Generate text with one provider
// @Description Calls a single provider, trying its models in order. Provider failures are reported with success=false, not as HTTP errors.
// @Tags providers
// @Accept json
// @Produce json
// @Param id path string true "Provider id" example(gemini)
// @Param request body dto.GenerateRequest true "Prompt"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Router /providers/{id}/generate [post]
func (h *ProviderHandler) Generate(c *fiber.Ctx) error {
	req, ok := middleware.ValidatedBody[dto.GenerateRequest](c)
	if !ok {
		return fiber.ErrBadRequest
	}

	resp, err := h.service.Generate(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Diagnose godoc
// @Summary Probe every provider
// @Description Tries each model of each provider with a short prompt and reports which ones answer
// @Tags providers
// @Produce json
// @Success 200 {object} dto.DiagnosticsResponse
// @Router /providers/test [get]
func (h *ProviderHandler) Diagnose(c *fiber.Ctx) error {
	return c.JSON(h.service.Diagnose(c.UserContext()))
}
