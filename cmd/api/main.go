// @title Quiz Terminal API
// @version 1.0
// @description Multiple-choice trivia in Spanish. Questions and explanations come from AI providers with an offline fallback bank.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-terminal/internal/app"
	"quiz-terminal/internal/config"
	"quiz-terminal/internal/handler"
	"quiz-terminal/internal/logger"
	"quiz-terminal/internal/metrics"
	"quiz-terminal/internal/middleware"

	_ "quiz-terminal/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	metrics.Init()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	components, err := app.Build(rootCtx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to build quiz components", zap.Error(err))
	}
	defer components.Close()

	quizHandler := handler.NewQuizHandler(components.QuizService)
	providerHandler := handler.NewProviderHandler(components.ProviderService)
	validationMiddleware := middleware.NewValidationMiddleware(components.Validator)
	rateLimiter := middleware.NewRateLimiter(rootCtx, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	server := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	server.Use(requestLogger())
	server.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	server.Use(recover.New())
	server.Use(metrics.Middleware())

	server.Get("/swagger/*", swagger.HandlerDefault)
	server.Get("/metrics", metrics.Handler())
	server.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "providers": components.Gateway.ProviderIDs()})
	})

	apiGroup := server.Group("/api")

	apiGroup.Get("/categories", quizHandler.GetCategories)
	apiGroup.Post("/quiz", rateLimiter.Handler(), validationMiddleware.ValidateStartQuiz(), quizHandler.StartQuiz)
	apiGroup.Post("/quiz/feedback", rateLimiter.Handler(), validationMiddleware.ValidateFeedback(), quizHandler.GetFeedback)
	apiGroup.Post("/quiz/score", validationMiddleware.ValidateScore(), quizHandler.GetScore)

	apiGroup.Get("/providers/test", rateLimiter.Handler(), providerHandler.Diagnose)
	apiGroup.Post("/providers/:id/generate", rateLimiter.Handler(), validationMiddleware.ValidateGenerate(), providerHandler.Generate)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := server.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
