package service

import (
	"context"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/dto"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	defaultProxyMaxTokens   = 100
	defaultProxyTemperature = 0.7
)

// ProviderGateway is the part of the gateway the provider routes need.
type ProviderGateway interface {
	GenerateWith(ctx context.Context, providerID, prompt string, opts domain.GenerateOptions) (domain.ProviderResult, error)
	Diagnose(ctx context.Context, probePrompt string) []domain.ProviderDiagnosis
}

// ProviderService exposes single providers and their diagnostics.
type ProviderService interface {
	Generate(ctx context.Context, providerID string, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	Diagnose(ctx context.Context) *dto.DiagnosticsResponse
}

type providerService struct {
	gateway     ProviderGateway
	probePrompt string
	logger      *zap.Logger
}

func NewProviderService(gateway ProviderGateway, probePrompt string, logger *zap.Logger) ProviderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &providerService{gateway: gateway, probePrompt: probePrompt, logger: logger}
}

// Generate calls one provider without falling through to the others. A failing
// provider is reported in the response body, not as an error.
func (s *providerService) Generate(ctx context.Context, providerID string, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	opts := domain.GenerateOptions{MaxTokens: req.MaxTokens, Temperature: defaultProxyTemperature}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultProxyMaxTokens
	}
	if req.Temperature != nil {
		opts.Temperature = *req.Temperature
	}

	res, err := s.gateway.GenerateWith(ctx, providerID, req.Prompt, opts)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		s.logger.Info("Provider generation failed",
			zap.String("provider", providerID),
			zap.String("reason", res.Message),
		)
	}
	return &dto.GenerateResponse{
		Success:      res.Success,
		Text:         res.Text,
		Provider:     res.ProviderID,
		Model:        res.Model,
		Message:      res.Message,
		UsesFallback: res.UsesFallback,
	}, nil
}

func (s *providerService) Diagnose(ctx context.Context) *dto.DiagnosticsResponse {
	diag := s.gateway.Diagnose(ctx, s.probePrompt)
	return &dto.DiagnosticsResponse{
		Providers: lo.Map(diag, func(d domain.ProviderDiagnosis, _ int) dto.ProviderDiagnosisResponse {
			return dto.ProviderDiagnosisResponse{
				Provider:     d.ProviderID,
				Available:    d.Available,
				WorkingModel: d.WorkingModel,
				Message:      d.Message,
				Results: lo.Map(d.Results, func(p domain.ModelProbe, _ int) dto.ModelProbeResponse {
					return dto.ModelProbeResponse(p)
				}),
			}
		}),
		Working: lo.SomeBy(diag, func(d domain.ProviderDiagnosis) bool { return d.WorkingModel != "" }),
	}
}
