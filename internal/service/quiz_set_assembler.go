package service

import (
	"context"
	"fmt"
	"time"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/metrics"
	"quiz-terminal/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AssemblerOptions bounds the concurrent pass.
type AssemblerOptions struct {
	Concurrency int
	SlotTimeout time.Duration
}

type quizSetAssembler struct {
	generator domain.QuestionGenerator
	bank      domain.QuestionBank
	catalog   *domain.Catalog
	rnd       util.Random
	opts      AssemblerOptions
	logger    *zap.Logger
	now       func() time.Time
}

// NewQuizSetAssembler creates an assembler that fans out one generator call per slot.
func NewQuizSetAssembler(
	generator domain.QuestionGenerator,
	bank domain.QuestionBank,
	catalog *domain.Catalog,
	rnd util.Random,
	opts AssemblerOptions,
	logger *zap.Logger,
) domain.QuizSetAssembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &quizSetAssembler{
		generator: generator,
		bank:      bank,
		catalog:   catalog,
		rnd:       rnd,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
	}
}

// GenerateQuizSet returns count questions in slot order. Categories are sampled
// per slot with replacement; an empty categories list means the whole catalog.
func (a *quizSetAssembler) GenerateQuizSet(ctx context.Context, count int, categories []domain.Category, difficulty domain.Difficulty) domain.QuizSet {
	set := domain.QuizSet{ID: util.NewULID(), CreatedAt: a.now()}
	if count <= 0 {
		set.Questions = []domain.GeneratedQuestion{}
		return set
	}
	if len(categories) == 0 {
		categories = a.catalog.Categories()
	}

	slots := a.sampleCategories(count, categories)
	questions, err := a.generateConcurrently(ctx, slots, difficulty)
	if err != nil {
		a.logger.Error("Quiz set generation failed, rebuilding from local bank",
			zap.String("set_id", set.ID),
			zap.Int("count", count),
			zap.Error(err),
		)
		metrics.QuizSetFallbacks.Inc()
		set.Questions = a.generateFromBank(a.sampleCategories(count, categories))
		set.UsedFallback = true
		return set
	}

	set.Questions = questions
	a.logger.Info("Quiz set generated",
		zap.String("set_id", set.ID),
		zap.Int("count", count),
		zap.Int("fallback_questions", set.FallbackCount()),
	)
	return set
}

// sampleCategories draws categories up front, on the caller's goroutine, so a
// seeded source yields the same slot layout on every run.
func (a *quizSetAssembler) sampleCategories(count int, categories []domain.Category) []domain.Category {
	slots := make([]domain.Category, count)
	for i := range slots {
		slots[i] = util.Choice(a.rnd, categories)
	}
	return slots
}

func (a *quizSetAssembler) generateConcurrently(ctx context.Context, slots []domain.Category, difficulty domain.Difficulty) ([]domain.GeneratedQuestion, error) {
	questions := make([]domain.GeneratedQuestion, len(slots))

	g, gctx := errgroup.WithContext(ctx)
	if a.opts.Concurrency > 0 {
		g.SetLimit(a.opts.Concurrency)
	}

	for i, category := range slots {
		i, category := i, category
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("slot %d (%s) panicked: %v", i, category, r)
				}
			}()

			slotCtx := gctx
			if a.opts.SlotTimeout > 0 {
				var cancel context.CancelFunc
				slotCtx, cancel = context.WithTimeout(gctx, a.opts.SlotTimeout)
				defer cancel()
			}

			questions[i] = a.generator.GenerateQuestion(slotCtx, category, difficulty)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return questions, nil
}

func (a *quizSetAssembler) generateFromBank(slots []domain.Category) []domain.GeneratedQuestion {
	out := make([]domain.GeneratedQuestion, len(slots))
	for i, category := range slots {
		out[i] = domain.GeneratedQuestion{
			QuizQuestion: a.bank.Pick(category),
			Category:     category,
			Source:       domain.SourceFallback,
		}
		metrics.QuestionSources.WithLabelValues(string(domain.SourceFallback)).Inc()
	}
	return out
}
