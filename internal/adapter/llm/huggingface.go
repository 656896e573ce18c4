package llm

import (
	"fmt"

	"quiz-terminal/internal/domain"

	"github.com/tmc/langchaingo/llms/huggingface"
)

// NewHuggingFaceBackends creates one inference backend per model, in priority order.
// baseURL overrides the public inference endpoint when set.
func NewHuggingFaceBackends(apiKey, baseURL string, models []string) ([]domain.TextBackend, error) {
	if !HasUsableKey(apiKey) {
		return nil, domain.ErrMissingCredential
	}
	backends := make([]domain.TextBackend, 0, len(models))
	for _, model := range models {
		opts := []huggingface.Option{
			huggingface.WithToken(apiKey),
			huggingface.WithModel(model),
		}
		if baseURL != "" {
			opts = append(opts, huggingface.WithURL(baseURL))
		}
		client, err := huggingface.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create Hugging Face client for %s: %w", model, err)
		}
		backends = append(backends, NewLangchainBackend(model, client))
	}
	return backends, nil
}
