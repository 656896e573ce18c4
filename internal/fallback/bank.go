// Package fallback holds the offline sources of quiz content: the curated
// question bank and the rule-based responder used when no provider answers.
package fallback

import (
	"fmt"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/util"
)

// bankOrder fixes the union order so seeded picks over unknown categories are reproducible.
var bankOrder = []domain.Category{
	domain.Programming,
	domain.History,
	domain.Science,
	domain.Geography,
	domain.Art,
	domain.Sports,
	domain.Technology,
	domain.Music,
	domain.Cinema,
	domain.Literature,
}

// Bank is the static per-category question pool. It is read-only after construction.
type Bank struct {
	rnd   util.Random
	pools map[domain.Category][]domain.QuizQuestion
	all   []domain.QuizQuestion
}

// NewBank builds the bank from the embedded pools. It panics if an embedded
// entry violates the question invariants.
func NewBank(rnd util.Random) *Bank {
	b := &Bank{
		rnd:   rnd,
		pools: make(map[domain.Category][]domain.QuizQuestion, len(defaultPools)),
	}
	for _, cat := range bankOrder {
		for i, e := range defaultPools[cat] {
			q, err := domain.NewQuizQuestion(e.q, e.options[:], e.correct)
			if err != nil {
				panic(fmt.Sprintf("fallback bank entry %s[%d]: %v", cat, i, err))
			}
			b.pools[cat] = append(b.pools[cat], q)
			b.all = append(b.all, q)
		}
	}
	return b
}

// Pick returns a uniformly random question from the category's pool, or from the
// union of all pools when the category is unknown.
func (b *Bank) Pick(category domain.Category) domain.QuizQuestion {
	pool, ok := b.pools[category]
	if !ok || len(pool) == 0 {
		pool = b.all
	}
	return util.Choice(b.rnd, pool).Clone()
}

// Pool returns a copy of the category's questions.
func (b *Bank) Pool(category domain.Category) []domain.QuizQuestion {
	pool := b.pools[category]
	out := make([]domain.QuizQuestion, len(pool))
	for i, q := range pool {
		out[i] = q.Clone()
	}
	return out
}

// Categories lists the categories that have a pool, in bank order.
func (b *Bank) Categories() []domain.Category {
	return append([]domain.Category(nil), bankOrder...)
}

// Size returns the total number of questions across all pools.
func (b *Bank) Size() int {
	return len(b.all)
}

var _ domain.QuestionBank = (*Bank)(nil)
