package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-terminal/internal/cache"
	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/service"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	waterQuestion = "¿Cuál es la fórmula química del agua?"
	waterOptions  = []string{"H2O", "CO2", "NaCl", "CH4"}
)

// feedbackKey builds the key the cached feedback generator uses for an answer.
func feedbackKey(question, chosen string, options []string) string {
	parts := append([]string{question, chosen}, options...)
	return cache.GenerateCacheKey("feedback", "text", cache.HashText(parts...))
}

// countingExplainer answers every request with a fixed feedback and counts calls.
type countingExplainer struct {
	feedback domain.Feedback
	calls    int
}

func (e *countingExplainer) Explain(context.Context, string, string, []string) domain.Feedback {
	e.calls++
	return e.feedback
}

func (e *countingExplainer) GenerateFeedback(ctx context.Context, q, c string, o []string) string {
	return e.Explain(ctx, q, c, o).Text
}

// recordingCache notes the keys written through it.
type recordingCache struct {
	domain.Cache
	written []string
}

func (r *recordingCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	r.written = append(r.written, key)
	return r.Cache.Set(ctx, key, value, ttl)
}

func TestRedisCacheAdapter_FeedbackKeys(t *testing.T) {
	ctx := context.Background()
	key := feedbackKey(waterQuestion, "CO2", waterOptions)
	explanation := "El agua está formada por dos átomos de hidrógeno y uno de oxígeno."
	redisErr := errors.New("connection reset by peer")

	tests := []struct {
		name    string
		expect  func(m redismock.ClientMock)
		run     func(c domain.Cache) (string, error)
		want    string
		wantErr error
	}{
		{
			name:   "stored explanation is returned",
			expect: func(m redismock.ClientMock) { m.ExpectGet(key).SetVal(explanation) },
			run:    func(c domain.Cache) (string, error) { return c.Get(ctx, key) },
			want:   explanation,
		},
		{
			name:    "missing explanation is a cache miss",
			expect:  func(m redismock.ClientMock) { m.ExpectGet(key).RedisNil() },
			run:     func(c domain.Cache) (string, error) { return c.Get(ctx, key) },
			wantErr: domain.ErrCacheMiss,
		},
		{
			name:    "read failure is passed through",
			expect:  func(m redismock.ClientMock) { m.ExpectGet(key).SetErr(redisErr) },
			run:     func(c domain.Cache) (string, error) { return c.Get(ctx, key) },
			wantErr: redisErr,
		},
		{
			name:   "explanation is stored with its ttl",
			expect: func(m redismock.ClientMock) { m.ExpectSet(key, explanation, 24*time.Hour).SetVal("OK") },
			run:    func(c domain.Cache) (string, error) { return "", c.Set(ctx, key, explanation, 24*time.Hour) },
		},
		{
			name:    "write failure is passed through",
			expect:  func(m redismock.ClientMock) { m.ExpectSet(key, explanation, time.Minute).SetErr(redisErr) },
			run:     func(c domain.Cache) (string, error) { return "", c.Set(ctx, key, explanation, time.Minute) },
			wantErr: redisErr,
		},
		{
			name:   "deleting an absent key succeeds",
			expect: func(m redismock.ClientMock) { m.ExpectDel(key).SetVal(0) },
			run:    func(c domain.Cache) (string, error) { return "", c.Delete(ctx, key) },
		},
		{
			name:    "unreachable server fails ping",
			expect:  func(m redismock.ClientMock) { m.ExpectPing().SetErr(redisErr) },
			run:     func(c domain.Cache) (string, error) { return "", c.Ping(ctx) },
			wantErr: redisErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tt.expect(mock)

			got, err := tt.run(NewRedisCacheAdapter(db))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisCacheAdapter_CachedFeedbackRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	key := feedbackKey(waterQuestion, "CO2", waterOptions)
	explanation := "El CO2 es dióxido de carbono; el agua es H2O."

	next := &countingExplainer{feedback: domain.Feedback{Text: explanation}}
	gen := service.NewCachedFeedbackGenerator(next, NewRedisCacheAdapter(db), time.Hour, nil)

	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, explanation, time.Hour).SetVal("OK")
	assert.Equal(t, explanation, gen.GenerateFeedback(ctx, waterQuestion, "CO2", waterOptions))

	mock.ExpectGet(key).SetVal(explanation)
	assert.Equal(t, explanation, gen.GenerateFeedback(ctx, waterQuestion, "CO2", waterOptions))

	assert.Equal(t, 1, next.calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_LocalFeedbackIsNotWritten(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	key := feedbackKey(waterQuestion, "NaCl", waterOptions)

	next := &countingExplainer{feedback: domain.Feedback{Text: "Respuesta sin conexión.", UsesFallback: true}}
	store := &recordingCache{Cache: NewRedisCacheAdapter(db)}
	gen := service.NewCachedFeedbackGenerator(next, store, time.Hour, nil)

	mock.ExpectGet(key).RedisNil()
	mock.ExpectGet(key).RedisNil()
	assert.Equal(t, "Respuesta sin conexión.", gen.GenerateFeedback(ctx, waterQuestion, "NaCl", waterOptions))
	assert.Equal(t, "Respuesta sin conexión.", gen.GenerateFeedback(ctx, waterQuestion, "NaCl", waterOptions))

	assert.Equal(t, 2, next.calls)
	assert.Empty(t, store.written)
	require.NoError(t, mock.ExpectationsWereMet())
}
