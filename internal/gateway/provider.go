package gateway

import (
	"context"
	"fmt"
	"time"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/metrics"

	"go.uber.org/zap"
)

// Provider is one external text-generation service with its model priority list.
type Provider struct {
	id       string
	backends []domain.TextBackend
	// unavailable is set when the provider could not be configured, e.g. no API key.
	unavailable error
}

// NewProvider creates a provider that tries backends in order.
func NewProvider(id string, backends []domain.TextBackend) *Provider {
	return &Provider{id: id, backends: backends}
}

// NewUnavailableProvider keeps a provider in the chain that always fails softly with reason.
func NewUnavailableProvider(id string, reason error) *Provider {
	return &Provider{id: id, unavailable: reason}
}

func (p *Provider) ID() string {
	return p.id
}

// Models lists the model identifiers in priority order.
func (p *Provider) Models() []string {
	out := make([]string, len(p.backends))
	for i, b := range p.backends {
		out[i] = b.Model()
	}
	return out
}

// Available reports whether the provider has at least one backend to try.
func (p *Provider) Available() bool {
	return p.unavailable == nil && len(p.backends) > 0
}

func (p *Provider) unavailableMessage() string {
	if p.unavailable != nil {
		return p.unavailable.Error()
	}
	return "no models configured"
}

// generate tries each model in order and returns the first success.
func (p *Provider) generate(ctx context.Context, prompt string, opts domain.GenerateOptions, callTimeout time.Duration, logger *zap.Logger) domain.ProviderResult {
	if !p.Available() {
		metrics.ObserveAttempt(p.id, "", metrics.OutcomeSkipped, 0)
		return domain.ProviderResult{
			ProviderID:   p.id,
			Message:      p.unavailableMessage(),
			UsesFallback: true,
		}
	}

	for _, backend := range p.backends {
		if err := ctx.Err(); err != nil {
			metrics.ObserveAttempt(p.id, backend.Model(), metrics.OutcomeSkipped, 0)
			return domain.ProviderResult{ProviderID: p.id, Message: err.Error(), UsesFallback: true}
		}

		start := time.Now()
		text, err := callBackend(ctx, backend, prompt, opts, callTimeout)
		elapsed := time.Since(start)
		if err != nil {
			metrics.ObserveAttempt(p.id, backend.Model(), metrics.OutcomeError, elapsed)
			logger.Warn("Model call failed",
				zap.String("provider", p.id),
				zap.String("model", backend.Model()),
				zap.Duration("duration", elapsed),
				zap.Error(err),
			)
			continue
		}

		metrics.ObserveAttempt(p.id, backend.Model(), metrics.OutcomeSuccess, elapsed)
		logger.Debug("Model call succeeded",
			zap.String("provider", p.id),
			zap.String("model", backend.Model()),
			zap.Duration("duration", elapsed),
		)
		return domain.ProviderResult{
			Success:    true,
			Text:       text,
			ProviderID: p.id,
			Model:      backend.Model(),
		}
	}

	return domain.ProviderResult{
		ProviderID:   p.id,
		Message:      domain.ErrAllModelsFailed.Error(),
		UsesFallback: true,
	}
}

// callBackend bounds a single model call and turns a panicking client into an error.
func callBackend(ctx context.Context, backend domain.TextBackend, prompt string, opts domain.GenerateOptions, timeout time.Duration) (text string, err error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model %s panicked: %v", backend.Model(), r)
		}
	}()
	return backend.TryGenerate(ctx, prompt, opts)
}
