package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quiz-terminal/internal/config"
	"quiz-terminal/internal/domain"
)

// Provider kinds accepted in configuration.
const (
	KindGoogleAI    = "googleai"
	KindHuggingFace = "huggingface"
	KindOllama      = "ollama"
	KindOpenAI      = "openai"
)

var placeholderKeys = map[string]struct{}{
	"tu_api_key_aqui": {},
	"demo_mode":       {},
}

// HasUsableKey rejects empty keys, known placeholders and keys too short to be real.
func HasUsableKey(key string) bool {
	key = strings.TrimSpace(key)
	if len(key) < 10 {
		return false
	}
	_, placeholder := placeholderKeys[key]
	return !placeholder
}

// NewBackends builds the model backends of one configured provider.
// A missing credential is reported as domain.ErrMissingCredential so callers can
// keep the provider in the chain as a soft failure.
func NewBackends(ctx context.Context, pc config.ProviderConfig, callTimeout time.Duration) ([]domain.TextBackend, error) {
	if len(pc.Models) == 0 {
		return nil, fmt.Errorf("provider %s has no models", pc.ID)
	}
	switch pc.Kind {
	case KindGoogleAI:
		return NewGoogleAIBackends(ctx, pc.APIKey, pc.Models)
	case KindHuggingFace:
		return NewHuggingFaceBackends(pc.APIKey, pc.BaseURL, pc.Models)
	case KindOllama:
		return NewOllamaBackends(pc.BaseURL, pc.Models, callTimeout)
	case KindOpenAI:
		return NewOpenAIBackends(pc.APIKey, pc.BaseURL, pc.Models)
	default:
		return nil, fmt.Errorf("provider %s has unsupported kind %q", pc.ID, pc.Kind)
	}
}
