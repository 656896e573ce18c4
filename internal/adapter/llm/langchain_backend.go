// Package llm adapts concrete text-generation clients to domain.TextBackend.
package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"quiz-terminal/internal/domain"

	"github.com/tmc/langchaingo/llms"
)

var thinkTagPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)

// LangchainBackend serves one model through any langchaingo llms.Model.
type LangchainBackend struct {
	model  string
	client llms.Model
}

// NewLangchainBackend binds a langchaingo client to a model name.
func NewLangchainBackend(model string, client llms.Model) *LangchainBackend {
	return &LangchainBackend{model: model, client: client}
}

func (b *LangchainBackend) Model() string {
	return b.model
}

// TryGenerate sends prompt as a single human message and returns the cleaned completion.
func (b *LangchainBackend) TryGenerate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	callOpts := []llms.CallOption{llms.WithModel(b.model), llms.WithTemperature(opts.Temperature)}
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxTokens))
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, b.client, prompt, callOpts...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.model, err)
	}
	return cleanCompletion(text)
}

// cleanCompletion drops reasoning blocks some models emit and rejects empty output.
func cleanCompletion(text string) (string, error) {
	text = strings.TrimSpace(thinkTagPattern.ReplaceAllString(text, ""))
	if text == "" {
		return "", domain.ErrEmptyCompletion
	}
	return text, nil
}

var _ domain.TextBackend = (*LangchainBackend)(nil)
