// Package gateway implements the provider chain that turns a prompt into text.
//
// Providers are tried in priority order and, inside each provider, models are
// tried in priority order. The first success wins. When every provider fails the
// local responder answers, so GenerateText never fails.
package gateway

import (
	"context"
	"time"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/metrics"

	"go.uber.org/zap"
)

type Gateway struct {
	providers   []*Provider
	responder   domain.LocalResponder
	callTimeout time.Duration
	logger      *zap.Logger
}

// New creates a gateway over providers, in priority order.
func New(providers []*Provider, responder domain.LocalResponder, callTimeout time.Duration, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		providers:   providers,
		responder:   responder,
		callTimeout: callTimeout,
		logger:      logger,
	}
}

// GenerateText returns text for prompt from the first provider that succeeds,
// or the local responder's text.
func (g *Gateway) GenerateText(ctx context.Context, prompt string, opts domain.GenerateOptions) string {
	return g.Generate(ctx, prompt, opts).Text
}

// Generate is GenerateText with provenance. The result is always successful.
func (g *Gateway) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) domain.ProviderResult {
	for _, p := range g.providers {
		res := p.generate(ctx, prompt, opts, g.callTimeout, g.logger)
		if res.Success {
			return res
		}
		g.logger.Info("Provider failed, trying next",
			zap.String("provider", p.ID()),
			zap.String("reason", res.Message),
		)
		if ctx.Err() != nil {
			break
		}
	}

	metrics.LocalResponses.Inc()
	g.logger.Warn("All providers failed, using local responder")
	return domain.ProviderResult{
		Success:      true,
		Text:         g.responder.Respond(prompt),
		ProviderID:   domain.LocalProviderID,
		UsesFallback: true,
	}
}

// GenerateWith runs a single provider without falling through to others.
// The only error is an unknown provider id; provider failure is reported in the result.
func (g *Gateway) GenerateWith(ctx context.Context, providerID, prompt string, opts domain.GenerateOptions) (domain.ProviderResult, error) {
	p := g.provider(providerID)
	if p == nil {
		return domain.ProviderResult{}, domain.NewProviderNotFoundError(providerID)
	}
	return p.generate(ctx, prompt, opts, g.callTimeout, g.logger), nil
}

// Diagnose probes each provider's models in order until one answers.
func (g *Gateway) Diagnose(ctx context.Context, probePrompt string) []domain.ProviderDiagnosis {
	out := make([]domain.ProviderDiagnosis, 0, len(g.providers))
	for _, p := range g.providers {
		d := domain.ProviderDiagnosis{ProviderID: p.ID(), Available: p.Available(), Results: []domain.ModelProbe{}}
		if !p.Available() {
			d.Message = p.unavailableMessage()
			out = append(out, d)
			continue
		}
		for _, b := range p.backends {
			start := time.Now()
			text, err := callBackend(ctx, b, probePrompt, domain.GenerateOptions{MaxTokens: 30, Temperature: 0.7}, g.callTimeout)
			probe := domain.ModelProbe{Model: b.Model(), Millis: time.Since(start).Milliseconds()}
			if err != nil {
				probe.Error = err.Error()
				d.Results = append(d.Results, probe)
				continue
			}
			probe.Success = true
			probe.Response = text
			d.Results = append(d.Results, probe)
			d.WorkingModel = b.Model()
			break
		}
		if d.WorkingModel == "" {
			d.Message = domain.ErrAllModelsFailed.Error()
		}
		out = append(out, d)
	}
	return out
}

// ProviderIDs lists the providers in priority order.
func (g *Gateway) ProviderIDs() []string {
	ids := make([]string, len(g.providers))
	for i, p := range g.providers {
		ids[i] = p.ID()
	}
	return ids
}

func (g *Gateway) provider(id string) *Provider {
	for _, p := range g.providers {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

var _ domain.TextGenerator = (*Gateway)(nil)
