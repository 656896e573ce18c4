// Package app wires configuration into the quiz components shared by the API
// server and the terminal client.
package app

import (
	"context"
	"errors"

	"quiz-terminal/internal/adapter"
	"quiz-terminal/internal/adapter/llm"
	"quiz-terminal/internal/cache"
	"quiz-terminal/internal/config"
	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/fallback"
	"quiz-terminal/internal/gateway"
	"quiz-terminal/internal/parser"
	"quiz-terminal/internal/service"
	"quiz-terminal/internal/session"
	"quiz-terminal/internal/util"
	"quiz-terminal/internal/validation"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Components holds the wired quiz engine.
type Components struct {
	Config    *config.Config
	Catalog   *domain.Catalog
	Bank      *fallback.Bank
	Gateway   *gateway.Gateway
	Assembler domain.QuizSetAssembler
	Feedback  domain.FeedbackGenerator
	Validator *validation.Validator

	QuizService     service.QuizService
	ProviderService service.ProviderService

	redisClient *redis.Client
	logger      *zap.Logger
}

// Build constructs every component from cfg. Providers that cannot be built
// stay in the chain as unavailable so diagnostics can report them.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Components, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog := domain.NewCatalog(lo.Map(cfg.Quiz.Categories, func(c config.CategoryConfig, _ int) domain.CategoryInfo {
		return domain.CategoryInfo{Name: domain.Category(c.Name), Description: c.Description}
	}), cfg.Quiz.MixedDescription)
	if len(catalog.Categories()) == 0 {
		return nil, errors.New("no usable quiz categories configured")
	}

	rnd := util.NewRandom(cfg.Quiz.Seed)
	bank := fallback.NewBank(rnd)
	responder := fallback.NewResponder()

	providers := make([]*gateway.Provider, 0, len(cfg.LLM.Providers))
	for _, pc := range cfg.LLM.Providers {
		backends, err := llm.NewBackends(ctx, pc, cfg.LLM.CallTimeout)
		if err != nil {
			logger.Warn("Provider unavailable",
				zap.String("provider", pc.ID),
				zap.String("kind", pc.Kind),
				zap.Error(err),
			)
			providers = append(providers, gateway.NewUnavailableProvider(pc.ID, err))
			continue
		}
		logger.Info("Provider initialized",
			zap.String("provider", pc.ID),
			zap.Strings("models", pc.Models),
		)
		providers = append(providers, gateway.NewProvider(pc.ID, backends))
	}
	gw := gateway.New(providers, responder, cfg.LLM.CallTimeout, logger.Named("gateway"))

	generator := service.NewQuestionGenerator(
		gw,
		parser.New(parser.Config{
			QuestionMarkers: cfg.Parser.QuestionMarkers,
			AnswerMarkers:   cfg.Parser.AnswerMarkers,
			StrictAnswer:    cfg.Parser.StrictAnswer,
		}),
		bank,
		rnd,
		domain.GenerateOptions{MaxTokens: cfg.Quiz.QuestionMaxTokens, Temperature: cfg.Quiz.QuestionTemperature},
		logger.Named("generator"),
	)
	assembler := service.NewQuizSetAssembler(generator, bank, catalog, rnd, service.AssemblerOptions{
		Concurrency: cfg.Quiz.Concurrency,
		SlotTimeout: cfg.Quiz.SlotTimeout,
	}, logger.Named("assembler"))

	c := &Components{
		Config:    cfg,
		Catalog:   catalog,
		Bank:      bank,
		Gateway:   gw,
		Assembler: assembler,
		Validator: validation.NewValidator(cfg.Quiz.MinQuestions, cfg.Quiz.MaxQuestions),
		logger:    logger,
	}

	explainer := service.NewFeedbackGenerator(gw, responder,
		domain.GenerateOptions{MaxTokens: cfg.Quiz.FeedbackMaxTokens, Temperature: cfg.Quiz.FeedbackTemperature},
		logger.Named("feedback"),
	)
	var feedback domain.FeedbackGenerator = explainer
	if cfg.FeedbackCache.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("Feedback cache disabled, Redis unreachable", zap.Error(err))
		} else {
			logger.Info("Feedback cache enabled", zap.String("address", cfg.Redis.Address), zap.Duration("ttl", cfg.FeedbackCache.TTL))
			c.redisClient = client
			feedback = service.NewCachedFeedbackGenerator(explainer, adapter.NewRedisCacheAdapter(client), cfg.FeedbackCache.TTL, logger.Named("feedback_cache"))
		}
	}
	c.Feedback = feedback

	c.QuizService = service.NewQuizService(catalog, assembler, feedback, cfg.Quiz.QuestionCount, logger.Named("quiz"))
	c.ProviderService = service.NewProviderService(gw, cfg.LLM.ProbePrompt, logger.Named("providers"))
	return c, nil
}

// NewSession starts an empty interactive session over the shared components.
func (c *Components) NewSession() *session.Session {
	return session.New(c.Catalog, c.Assembler, c.Feedback, session.Config{
		DefaultCount: c.Config.Quiz.QuestionCount,
		MinQuestions: c.Config.Quiz.MinQuestions,
		MaxQuestions: c.Config.Quiz.MaxQuestions,
	}, c.logger.Named("session"))
}

// Close releases the Redis connection, if any.
func (c *Components) Close() error {
	if c.redisClient == nil {
		return nil
	}
	return c.redisClient.Close()
}
