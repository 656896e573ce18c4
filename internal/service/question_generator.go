package service

import (
	"context"
	"fmt"
	"strings"

	"quiz-terminal/internal/domain"
	"quiz-terminal/internal/metrics"
	"quiz-terminal/internal/util"

	"go.uber.org/zap"
)

// QuestionParser turns raw model output into a validated question.
type QuestionParser interface {
	Parse(raw string) (domain.QuizQuestion, bool)
}

// styleAdjectives add variety to otherwise identical prompts.
var styleAdjectives = []string{
	"innovadora", "desafiante", "interesante", "educativa", "sorprendente", "creativa",
}

var difficultySentences = map[domain.Difficulty]string{
	domain.DifficultyEasy:   "Genera preguntas básicas y de conocimiento general sobre",
	domain.DifficultyMedium: "Genera preguntas de dificultad intermedia sobre",
	domain.DifficultyHard:   "Genera preguntas avanzadas y específicas sobre",
}

const questionPromptTemplate = `Genera una pregunta de opción múltiple ÚNICA y ORIGINAL sobre %[1]s.
IMPORTANTE: Evita preguntas repetitivas sobre términos básicos. Sé creativo y variado.
Haz una pregunta %[2]s que desafíe el conocimiento.
%[3]s
Formato EXACTO:
Pregunta: [Tu pregunta aquí]
A) [Opción 1]
B) [Opción 2]
C) [Opción 3]
D) [Opción 4]
Respuesta correcta: [A, B, C o D]

Categorías de %[1]s:
- Si es programación: incluye diferentes lenguajes, frameworks, conceptos
- Si es deportes: varía entre diferentes deportes, reglas, equipamiento
- Si es historia: diferentes épocas, civilizaciones, eventos
- Si es ciencia: física, química, biología, astronomía
- Si es geografía: países, capitales, ríos, montañas, continentes
- Si es arte: pintores, escultores, movimientos artísticos, obras famosas
- Si es tecnología: inventos, empresas, dispositivos, innovaciones
- Si es música: instrumentos, compositores, géneros, bandas
- Si es cine: directores, actores, películas, géneros
- Si es literatura: autores, obras, géneros, personajes

Ejemplo para deportes:
Pregunta: ¿Cuántos jugadores conforman un equipo de voleibol en la cancha?
A) 5
B) 6
C) 7
D) 8
Respuesta correcta: B`

type questionGenerator struct {
	llm    domain.TextGenerator
	parser QuestionParser
	bank   domain.QuestionBank
	rnd    util.Random
	opts   domain.GenerateOptions
	logger *zap.Logger
}

// NewQuestionGenerator creates a generator that asks llm for a question and
// falls back to bank when the answer cannot be parsed.
func NewQuestionGenerator(
	llm domain.TextGenerator,
	parser QuestionParser,
	bank domain.QuestionBank,
	rnd util.Random,
	opts domain.GenerateOptions,
	logger *zap.Logger,
) domain.QuestionGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &questionGenerator{
		llm:    llm,
		parser: parser,
		bank:   bank,
		rnd:    rnd,
		opts:   opts,
		logger: logger,
	}
}

// GenerateQuestion makes a single generation attempt. There is no regeneration on parse failure.
func (g *questionGenerator) GenerateQuestion(ctx context.Context, category domain.Category, difficulty domain.Difficulty) domain.GeneratedQuestion {
	prompt := BuildQuestionPrompt(category, util.Choice(g.rnd, styleAdjectives), difficulty)
	raw := g.llm.GenerateText(ctx, prompt, g.opts)

	if q, ok := g.parser.Parse(raw); ok {
		metrics.QuestionSources.WithLabelValues(string(domain.SourceGenerated)).Inc()
		return domain.GeneratedQuestion{QuizQuestion: q, Category: category, Source: domain.SourceGenerated}
	}

	g.logger.Info("Could not parse generated question, using local bank",
		zap.String("category", category.String()),
		zap.Int("raw_length", len(raw)),
	)
	metrics.QuestionSources.WithLabelValues(string(domain.SourceFallback)).Inc()
	return domain.GeneratedQuestion{QuizQuestion: g.bank.Pick(category), Category: category, Source: domain.SourceFallback}
}

// BuildQuestionPrompt renders the generation prompt for category.
func BuildQuestionPrompt(category domain.Category, style string, difficulty domain.Difficulty) string {
	difficultyLine := ""
	if sentence, ok := difficultySentences[difficulty]; ok {
		difficultyLine = fmt.Sprintf("%s %s.\n", sentence, category)
	}
	return strings.TrimSpace(fmt.Sprintf(questionPromptTemplate, category, style, difficultyLine))
}
