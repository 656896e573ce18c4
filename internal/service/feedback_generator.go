package service

import (
	"context"
	"fmt"
	"strings"

	"quiz-terminal/internal/domain"

	"go.uber.org/zap"
)

type feedbackGenerator struct {
	llm       domain.ResultGenerator
	responder domain.LocalResponder
	opts      domain.GenerateOptions
	logger    *zap.Logger
}

// NewFeedbackGenerator creates a generator that explains answers through llm.
// responder supplies the text when llm returns nothing usable.
func NewFeedbackGenerator(llm domain.ResultGenerator, responder domain.LocalResponder, opts domain.GenerateOptions, logger *zap.Logger) domain.FeedbackExplainer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &feedbackGenerator{llm: llm, responder: responder, opts: opts, logger: logger}
}

func (f *feedbackGenerator) GenerateFeedback(ctx context.Context, question, chosenOption string, options []string) string {
	return f.Explain(ctx, question, chosenOption, options).Text
}

func (f *feedbackGenerator) Explain(ctx context.Context, question, chosenOption string, options []string) domain.Feedback {
	prompt := BuildFeedbackPrompt(question, chosenOption, options)
	res := f.llm.Generate(ctx, prompt, f.opts)
	if text := strings.TrimSpace(res.Text); text != "" {
		return domain.Feedback{Text: text, UsesFallback: res.UsesFallback}
	}
	f.logger.Debug("Empty feedback text, using local responder")
	return domain.Feedback{Text: f.responder.Respond(prompt), UsesFallback: true}
}

// BuildFeedbackPrompt renders the explanation prompt for a submitted answer.
func BuildFeedbackPrompt(question, chosenOption string, options []string) string {
	return fmt.Sprintf("Pregunta: %s\nRespuesta del usuario: %s\nOpciones disponibles: %s\nExplicación detallada:",
		question, chosenOption, strings.Join(options, ", "))
}
