package util

import (
	"math/rand"
	"sync"
	"time"
)

// Random is the source of every random choice in the quiz pipeline.
// Implementations must be safe for concurrent use.
type Random interface {
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandom returns a goroutine-safe Random. A zero seed means "seed from the clock".
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// Choice returns a uniformly random element of items. items must not be empty.
func Choice[T any](rnd Random, items []T) T {
	return items[rnd.Intn(len(items))]
}
