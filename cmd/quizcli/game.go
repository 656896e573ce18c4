package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/session"

	"github.com/samber/lo"
)

var optionLetters = []string{"A", "B", "C", "D"}

// errQuit is returned when the player leaves mid-game.
var errQuit = errors.New("player quit")

// game drives one session from a line-oriented reader.
type game struct {
	session *session.Session
	catalog *domain.Catalog
	in      *bufio.Scanner
	out     io.Writer
}

func newGame(s *session.Session, catalog *domain.Catalog, in io.Reader, out io.Writer) *game {
	return &game{session: s, catalog: catalog, in: bufio.NewScanner(in), out: out}
}

func (g *game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

// readLine returns the next trimmed line, or errQuit on EOF or "salir".
func (g *game) readLine() (string, error) {
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	line := strings.TrimSpace(g.in.Text())
	if strings.EqualFold(line, "salir") || strings.EqualFold(line, "q") {
		return "", errQuit
	}
	return line, nil
}

// chooseCategory asks until the player picks a listed category by number or name.
func (g *game) chooseCategory() (string, error) {
	infos := g.catalog.Describe()
	g.printf("\nCategorías disponibles:\n")
	for i, info := range infos {
		g.printf("  %2d. %-14s %s\n", i+1, info.Name, info.Description)
	}
	for {
		g.printf("Elige una categoría [1]: ")
		line, err := g.readLine()
		if err != nil {
			return "", err
		}
		if cat, ok := parseCategoryChoice(line, infos); ok {
			return cat, nil
		}
		g.printf("Categoría no válida.\n")
	}
}

// play runs one quiz to completion and prints the final score.
func (g *game) play(ctx context.Context, category string, opts session.Options) error {
	g.printf("\nGenerando preguntas de %s...\n", category)
	set, err := g.session.StartQuiz(ctx, category, opts)
	if err != nil {
		return err
	}
	if set.UsedFallback || set.FallbackCount() > 0 {
		g.printf("(Algunas preguntas provienen del banco local sin conexión.)\n")
	}

	for {
		q, idx, err := g.session.CurrentQuestion()
		if err != nil {
			return err
		}
		g.printf("\nPregunta %d de %d  [%s]\n%s\n", idx+1, set.Len(), q.Category, q.Question)
		for i, opt := range q.Options {
			g.printf("  %s) %s\n", optionLetters[i], opt)
		}

		choice, err := g.askAnswer()
		if err != nil {
			return err
		}
		res, err := g.session.SubmitAnswer(ctx, idx, choice)
		if err != nil {
			return err
		}
		if res.IsCorrect {
			g.printf("✅ ¡Correcto!\n")
		} else {
			g.printf("❌ Incorrecto. La respuesta correcta era %s) %s\n", optionLetters[res.CorrectIndex], res.CorrectOption)
		}
		g.printf("%s\n", res.Feedback)
		g.printf("Puntuación: %d\n", res.Score)
		if res.Completed {
			break
		}
	}

	summary, err := g.session.FinalScore()
	if err != nil {
		return err
	}
	g.printf("\n%s\nResultado: %d/%d (%.0f%%)\n", summary.Message, summary.Score, summary.Total, summary.Percentage)
	return nil
}

func (g *game) askAnswer() (int, error) {
	for {
		g.printf("Tu respuesta (A-D): ")
		line, err := g.readLine()
		if err != nil {
			return 0, err
		}
		if idx, ok := parseAnswer(line); ok {
			return idx, nil
		}
		g.printf("Respuesta no válida.\n")
	}
}

// askAgain reports whether the player wants another round.
func (g *game) askAgain() bool {
	g.printf("\n¿Jugar otra vez? (s/n): ")
	line, err := g.readLine()
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(line), "s")
}

// parseAnswer accepts a letter A-D or a number 1-4.
func parseAnswer(input string) (int, bool) {
	input = strings.ToUpper(strings.TrimSpace(input))
	if _, idx, ok := lo.FindIndexOf(optionLetters, func(l string) bool { return l == input }); ok {
		return idx, true
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > domain.OptionCount {
		return 0, false
	}
	return n - 1, true
}

// parseCategoryChoice accepts a 1-based index into infos or a category name.
// Empty input selects the first entry.
func parseCategoryChoice(input string, infos []domain.CategoryInfo) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if len(infos) == 0 {
		return "", false
	}
	if input == "" {
		return infos[0].Name.String(), true
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(infos) {
			return "", false
		}
		return infos[n-1].Name.String(), true
	}
	info, ok := lo.Find(infos, func(c domain.CategoryInfo) bool { return c.Name.String() == input })
	return info.Name.String(), ok
}
