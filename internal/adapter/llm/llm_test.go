package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz-terminal/internal/config"
	"quiz-terminal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// unsetTemperature marks a call that carried no temperature option.
const unsetTemperature = -1.0

// fakeModel records the options of the last call and replies with a canned text.
type fakeModel struct {
	reply    string
	err      error
	lastOpts llms.CallOptions
	lastText string
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.lastOpts = llms.CallOptions{Temperature: unsetTemperature}
	for _, opt := range options {
		opt(&f.lastOpts)
	}
	if len(messages) > 0 && len(messages[0].Parts) > 0 {
		if tc, ok := messages[0].Parts[0].(llms.TextContent); ok {
			f.lastText = tc.Text
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestLangchainBackend_TryGenerate(t *testing.T) {
	fake := &fakeModel{reply: "  <think>pensando...</think>Pregunta: ¿Capital?  "}
	b := NewLangchainBackend("gemini-1.5-flash", fake)

	text, err := b.TryGenerate(context.Background(), "hola", domain.GenerateOptions{MaxTokens: 200, Temperature: 0.8})
	require.NoError(t, err)
	assert.Equal(t, "Pregunta: ¿Capital?", text)
	assert.Equal(t, "gemini-1.5-flash", b.Model())

	assert.Equal(t, "hola", fake.lastText)
	assert.Equal(t, "gemini-1.5-flash", fake.lastOpts.Model)
	assert.Equal(t, 200, fake.lastOpts.MaxTokens)
	assert.InDelta(t, 0.8, fake.lastOpts.Temperature, 1e-9)
}

func TestLangchainBackend_SendsZeroTemperature(t *testing.T) {
	fake := &fakeModel{reply: "ok"}
	b := NewLangchainBackend("gemini-1.5-flash", fake)

	_, err := b.TryGenerate(context.Background(), "hola", domain.GenerateOptions{MaxTokens: 20, Temperature: 0})
	require.NoError(t, err)
	assert.NotEqual(t, unsetTemperature, fake.lastOpts.Temperature, "temperature option must be sent")
	assert.Zero(t, fake.lastOpts.Temperature)
}

func TestLangchainBackend_Errors(t *testing.T) {
	t.Run("client error", func(t *testing.T) {
		clientErr := errors.New("quota exceeded")
		b := NewLangchainBackend("m", &fakeModel{err: clientErr})
		_, err := b.TryGenerate(context.Background(), "p", domain.GenerateOptions{})
		assert.ErrorIs(t, err, clientErr)
	})

	t.Run("empty completion", func(t *testing.T) {
		b := NewLangchainBackend("m", &fakeModel{reply: "   "})
		_, err := b.TryGenerate(context.Background(), "p", domain.GenerateOptions{})
		assert.ErrorIs(t, err, domain.ErrEmptyCompletion)
	})
}

func TestHasUsableKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"short", false},
		{"tu_api_key_aqui", false},
		{"demo_mode", false},
		{"hf_abcdefghijklmnop", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, HasUsableKey(tt.key))
		})
	}
}

func TestNewBackends_MissingCredentialIsSoft(t *testing.T) {
	for _, kind := range []string{KindGoogleAI, KindHuggingFace, KindOpenAI} {
		t.Run(kind, func(t *testing.T) {
			_, err := NewBackends(context.Background(), config.ProviderConfig{
				ID:     kind,
				Kind:   kind,
				APIKey: "demo_mode",
				Models: []string{"m"},
			}, time.Second)
			assert.ErrorIs(t, err, domain.ErrMissingCredential)
		})
	}
}

func TestNewBackends_InvalidConfig(t *testing.T) {
	_, err := NewBackends(context.Background(), config.ProviderConfig{ID: "x", Kind: KindOpenAI}, time.Second)
	assert.ErrorContains(t, err, "no models")

	_, err = NewBackends(context.Background(), config.ProviderConfig{ID: "x", Kind: "carrier-pigeon", Models: []string{"m"}}, time.Second)
	assert.ErrorContains(t, err, "unsupported kind")

	_, err = NewBackends(context.Background(), config.ProviderConfig{ID: "x", Kind: KindOllama, Models: []string{"m"}}, time.Second)
	assert.ErrorContains(t, err, "server url is empty")
}

func TestNewBackends_HuggingFacePreservesModelOrder(t *testing.T) {
	models := []string{"google/flan-t5-small", "distilgpt2"}
	backends, err := NewBackends(context.Background(), config.ProviderConfig{
		ID:     "huggingface",
		Kind:   KindHuggingFace,
		APIKey: "hf_abcdefghijklmnop",
		Models: models,
	}, time.Second)
	require.NoError(t, err)
	require.Len(t, backends, 2)
	assert.Equal(t, models[0], backends[0].Model())
	assert.Equal(t, models[1], backends[1].Model())
}

func TestOpenAIBackend_TryGenerate(t *testing.T) {
	var got struct {
		Model       string   `json:"model"`
		MaxTokens   int      `json:"max_tokens"`
		Temperature *float64 `json:"temperature"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test-1234567890", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"Respuesta generada"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	backends, err := NewOpenAIBackends("sk-test-1234567890", server.URL+"/v1", []string{"gpt-4o-mini"})
	require.NoError(t, err)
	require.Len(t, backends, 1)

	text, err := backends[0].TryGenerate(context.Background(), "Explica", domain.GenerateOptions{MaxTokens: 150, Temperature: 0.7})
	require.NoError(t, err)
	assert.Equal(t, "Respuesta generada", text)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 150, got.MaxTokens)
	require.NotNil(t, got.Temperature)
	assert.InDelta(t, 0.7, *got.Temperature, 1e-6)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "Explica", got.Messages[0].Content)
}

func TestOpenAIBackend_SendsZeroTemperature(t *testing.T) {
	var got struct {
		Temperature *float64 `json:"temperature"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	backends, err := NewOpenAIBackends("sk-test-1234567890", server.URL+"/v1", []string{"gpt-4o-mini"})
	require.NoError(t, err)

	_, err = backends[0].TryGenerate(context.Background(), "Explica", domain.GenerateOptions{MaxTokens: 10, Temperature: 0})
	require.NoError(t, err)
	require.NotNil(t, got.Temperature, "temperature must be present in the request body")
	assert.Less(t, *got.Temperature, 1e-6)
}

func TestOpenAIBackend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	}))
	defer server.Close()

	backends, err := NewOpenAIBackends("sk-test-1234567890", server.URL+"/v1", []string{"gpt-4o-mini"})
	require.NoError(t, err)

	_, err = backends[0].TryGenerate(context.Background(), "p", domain.GenerateOptions{})
	assert.Error(t, err)
}
