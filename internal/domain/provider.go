package domain

import (
	"context"
	"errors"
)

// LocalProviderID identifies text produced by the rule-based responder.
const LocalProviderID = "local"

// GenerateOptions carries the sampling parameters of one generation request.
// Backends forward Temperature as given, including 0.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float64
}

var (
	// ErrEmptyCompletion is returned by a backend whose model answered with no text.
	ErrEmptyCompletion = errors.New("model returned an empty completion")
	// ErrMissingCredential marks a provider whose API key is absent or a placeholder.
	ErrMissingCredential = errors.New("API key not configured")
	// ErrAllModelsFailed is returned when every model of a provider failed.
	ErrAllModelsFailed = errors.New("all models failed")
)

// TextBackend is one named model of a provider.
type TextBackend interface {
	// Model returns the model identifier used in results and logs.
	Model() string
	// TryGenerate returns the raw completion for prompt or an error.
	TryGenerate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// ProviderResult is the outcome of one provider (or the whole gateway) for one prompt.
type ProviderResult struct {
	Success      bool   `json:"success"`
	Text         string `json:"text,omitempty"`
	ProviderID   string `json:"provider,omitempty"`
	Model        string `json:"model,omitempty"`
	Message      string `json:"message,omitempty"`
	UsesFallback bool   `json:"usesFallback"`
}

// TextGenerator turns a prompt into text and never fails.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts GenerateOptions) string
}

// ResultGenerator is GenerateText with provenance. It never fails.
type ResultGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) ProviderResult
}

// LocalResponder produces canned text for a prompt without any external call.
type LocalResponder interface {
	Respond(prompt string) string
}

// ModelProbe is the outcome of probing a single model.
type ModelProbe struct {
	Model    string `json:"model"`
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
	Millis   int64  `json:"duration_ms"`
}

// ProviderDiagnosis is the outcome of probing every model of a provider.
type ProviderDiagnosis struct {
	ProviderID   string       `json:"provider"`
	Available    bool         `json:"available"`
	Message      string       `json:"message,omitempty"`
	WorkingModel string       `json:"working_model,omitempty"`
	Results      []ModelProbe `json:"results"`
}
