package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for provider attempts.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
)

var (
	ProviderAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_provider_attempts_total",
			Help: "Model calls made by the provider gateway",
		},
		[]string{"provider", "model", "outcome"},
	)

	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quiz_provider_call_duration_seconds",
			Help:    "Duration of individual model calls",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20},
		},
		[]string{"provider", "model"},
	)

	LocalResponses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_local_responses_total",
			Help: "Prompts answered by the local responder after every provider failed",
		},
	)

	QuestionSources = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_questions_total",
			Help: "Questions produced, by source",
		},
		[]string{"source"},
	)

	QuizSetFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_set_fallbacks_total",
			Help: "Quiz sets rebuilt sequentially from the local bank",
		},
	)

	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)
)

var registerOnce sync.Once

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ProviderAttempts,
			ProviderLatency,
			LocalResponses,
			QuestionSources,
			QuizSetFallbacks,
			RequestCounter,
			RequestDuration,
		)
	})
}

// ObserveAttempt records one model call.
func ObserveAttempt(provider, model, outcome string, d time.Duration) {
	ProviderAttempts.WithLabelValues(provider, model, outcome).Inc()
	if outcome != OutcomeSkipped {
		ProviderLatency.WithLabelValues(provider, model).Observe(d.Seconds())
	}
}

// Middleware records request counts and latencies per route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Resolve errors here so the recorded status matches what the client sees.
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		route := c.Route().Path
		RequestCounter.WithLabelValues(
			c.Method(),
			route,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return nil
	}
}

// Handler exposes the default registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
