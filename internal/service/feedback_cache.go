package service

import (
	"context"
	"errors"
	"time"

	"quiz-terminal/internal/cache"
	"quiz-terminal/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultFeedbackTTL = 24 * time.Hour

// cachedFeedbackGenerator serves repeated explanations from the cache and
// collapses concurrent requests for the same answer into one generation.
// Only provider text is stored; local responder text is served uncached.
type cachedFeedbackGenerator struct {
	next    domain.FeedbackExplainer
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
	logger  *zap.Logger
}

// NewCachedFeedbackGenerator wraps next with a response cache. A nil cache returns next unchanged.
func NewCachedFeedbackGenerator(next domain.FeedbackExplainer, c domain.Cache, ttl time.Duration, logger *zap.Logger) domain.FeedbackGenerator {
	if c == nil {
		return next
	}
	if ttl <= 0 {
		ttl = defaultFeedbackTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cachedFeedbackGenerator{next: next, cache: c, ttl: ttl, logger: logger}
}

func (g *cachedFeedbackGenerator) GenerateFeedback(ctx context.Context, question, chosenOption string, options []string) string {
	parts := append([]string{question, chosenOption}, options...)
	cacheKey := cache.GenerateCacheKey("feedback", "text", cache.HashText(parts...))

	cached, err := g.cache.Get(ctx, cacheKey)
	switch {
	case err == nil && cached != "":
		g.logger.Debug("Feedback cache hit", zap.String("cacheKey", cacheKey))
		return cached
	case err != nil && !errors.Is(err, domain.ErrCacheMiss):
		g.logger.Warn("Feedback cache read failed", zap.String("cacheKey", cacheKey), zap.Error(err))
	}

	res, _, _ := g.sfGroup.Do(cacheKey, func() (interface{}, error) {
		fb := g.next.Explain(ctx, question, chosenOption, options)
		if fb.UsesFallback {
			g.logger.Debug("Skipping cache for local feedback", zap.String("cacheKey", cacheKey))
			return fb.Text, nil
		}
		if errSet := g.cache.Set(ctx, cacheKey, fb.Text, g.ttl); errSet != nil {
			g.logger.Warn("Failed to cache feedback", zap.String("cacheKey", cacheKey), zap.Error(errSet))
		}
		return fb.Text, nil
	})
	return res.(string)
}
