package llm

import (
	"fmt"
	"net/http"
	"time"

	"quiz-terminal/internal/domain"

	"github.com/tmc/langchaingo/llms/ollama"
)

// NewOllamaBackends creates one backend per locally served model. No credential is needed.
func NewOllamaBackends(serverURL string, models []string, timeout time.Duration) ([]domain.TextBackend, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server url is empty")
	}
	httpClient := &http.Client{Timeout: timeout}
	backends := make([]domain.TextBackend, 0, len(models))
	for _, model := range models {
		client, err := ollama.New(
			ollama.WithServerURL(serverURL),
			ollama.WithModel(model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client for %s: %w", model, err)
		}
		backends = append(backends, NewLangchainBackend(model, client))
	}
	return backends, nil
}
