package llm

import (
	"context"
	"fmt"

	"quiz-terminal/internal/domain"

	"github.com/tmc/langchaingo/llms/googleai"
)

// NewGoogleAIBackends creates one Gemini backend per model, in priority order.
func NewGoogleAIBackends(ctx context.Context, apiKey string, models []string) ([]domain.TextBackend, error) {
	if !HasUsableKey(apiKey) {
		return nil, domain.ErrMissingCredential
	}
	backends := make([]domain.TextBackend, 0, len(models))
	for _, model := range models {
		client, err := googleai.New(ctx,
			googleai.WithAPIKey(apiKey),
			googleai.WithDefaultModel(model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client for %s: %w", model, err)
		}
		backends = append(backends, NewLangchainBackend(model, client))
	}
	return backends, nil
}
