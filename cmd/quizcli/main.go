// Command quizcli plays a trivia quiz in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"quiz-terminal/internal/app"
	"quiz-terminal/internal/config"
	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/logger"
	"quiz-terminal/internal/session"

	"go.uber.org/zap"
)

func main() {
	category := flag.String("category", "", "category to play; asks interactively when empty")
	count := flag.Int("count", 0, "number of questions (0 uses the configured default)")
	difficulty := flag.String("difficulty", "", "fácil, medio or difícil")
	flag.Parse()

	diff, ok := domain.ParseDifficulty(*difficulty)
	if !ok {
		log.Fatalf("Unknown difficulty %q", *difficulty)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Keep stdout for the game itself.
	if cfg.Logger.File != "" {
		cfg.Logger.Output = "none"
	} else {
		cfg.Logger.Output = "stderr"
		cfg.Logger.Level = "warn"
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := app.Build(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to build quiz components", zap.Error(err))
	}
	defer components.Close()

	g := newGame(components.NewSession(), components.Catalog, os.Stdin, os.Stdout)
	fmt.Println("🎯 Quiz de trivia. Escribe \"salir\" para terminar.")

	for {
		cat := *category
		if cat == "" {
			if cat, err = g.chooseCategory(); err != nil {
				break
			}
		}

		err = g.play(ctx, cat, session.Options{Count: *count, Difficulty: diff})
		if errors.Is(err, errQuit) || ctx.Err() != nil {
			break
		}
		if err != nil {
			appLogger.Error("Quiz failed", zap.Error(err))
			fmt.Printf("Error: %v\n", err)
			break
		}
		if !g.askAgain() {
			break
		}
		g.session.Reset()
	}
	fmt.Println("¡Hasta pronto!")
}
