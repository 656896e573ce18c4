package dto

// GenerateRequest is the body of the per-provider proxy route.
// @Description Request body for direct text generation
type GenerateRequest struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens,omitempty" example:"100"`
	// Temperature is nil when the caller leaves it out; 0 asks for greedy sampling.
	Temperature *float64 `json:"temperature,omitempty" example:"0.7"`
}

// GenerateResponse mirrors domain.ProviderResult for the wire.
type GenerateResponse struct {
	Success      bool   `json:"success"`
	Text         string `json:"text,omitempty"`
	Provider     string `json:"provider"`
	Model        string `json:"model,omitempty"`
	Message      string `json:"message,omitempty"`
	UsesFallback bool   `json:"uses_fallback"`
}

// ModelProbeResponse is the outcome of one diagnostic call.
type ModelProbeResponse struct {
	Model    string `json:"model"`
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
	Millis   int64  `json:"duration_ms"`
}

// ProviderDiagnosisResponse summarises which models of a provider work.
type ProviderDiagnosisResponse struct {
	Provider     string               `json:"provider"`
	Available    bool                 `json:"available"`
	WorkingModel string               `json:"working_model,omitempty"`
	Message      string               `json:"message,omitempty"`
	Results      []ModelProbeResponse `json:"results"`
}

// DiagnosticsResponse is returned by GET /api/providers/test.
type DiagnosticsResponse struct {
	Providers []ProviderDiagnosisResponse `json:"providers"`
	// Working is true when at least one provider has a working model.
	Working bool `json:"working"`
}
