package llm

import (
	"context"
	"fmt"
	"math"

	"quiz-terminal/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIBackend serves one model of an OpenAI-compatible chat completion API.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackends creates one backend per model sharing a single client.
// baseURL points the client at a compatible server when set.
func NewOpenAIBackends(apiKey, baseURL string, models []string) ([]domain.TextBackend, error) {
	if !HasUsableKey(apiKey) {
		return nil, domain.ErrMissingCredential
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	backends := make([]domain.TextBackend, 0, len(models))
	for _, model := range models {
		backends = append(backends, &OpenAIBackend{client: client, model: model})
	}
	return backends, nil
}

func (b *OpenAIBackend) Model() string {
	return b.model
}

func (b *OpenAIBackend) TryGenerate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   opts.MaxTokens,
		Temperature: wireTemperature(opts.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.model, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: %w", b.model, domain.ErrEmptyCompletion)
	}
	return cleanCompletion(resp.Choices[0].Message.Content)
}

// wireTemperature maps 0 to the smallest float32 so go-openai does not omit it.
func wireTemperature(t float64) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}

var _ domain.TextBackend = (*OpenAIBackend)(nil)
