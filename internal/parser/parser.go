// Package parser extracts a structured multiple-choice question from free-form model output.
package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"quiz-terminal/internal/domain"
)

var optionPattern = regexp.MustCompile(`(?i)^[A-D]\)\s*(.+)$`)

// Config selects the markers the parser looks for.
type Config struct {
	QuestionMarkers []string
	AnswerMarkers   []string
	// StrictAnswer rejects output without a usable answer marker instead of defaulting to A.
	StrictAnswer bool
}

// DefaultConfig accepts both Spanish and English markers.
func DefaultConfig() Config {
	return Config{
		QuestionMarkers: []string{"pregunta:", "question:"},
		AnswerMarkers:   []string{"respuesta correcta:", "correct answer:"},
	}
}

// Parser is stateless and safe for concurrent use.
type Parser struct {
	questionMarkers []string
	answerMarkers   []string
	strict          bool
}

func New(cfg Config) *Parser {
	if len(cfg.QuestionMarkers) == 0 {
		cfg.QuestionMarkers = DefaultConfig().QuestionMarkers
	}
	if len(cfg.AnswerMarkers) == 0 {
		cfg.AnswerMarkers = DefaultConfig().AnswerMarkers
	}
	return &Parser{
		questionMarkers: lowerAll(cfg.QuestionMarkers),
		answerMarkers:   lowerAll(cfg.AnswerMarkers),
		strict:          cfg.StrictAnswer,
	}
}

// Parse returns the question encoded in raw, or false when raw is not a
// well-formed question with exactly four options.
func (p *Parser) Parse(raw string) (domain.QuizQuestion, bool) {
	lines := splitLines(raw)

	question, ok := p.findAfterMarker(lines, p.questionMarkers)
	if !ok || question == "" {
		return domain.QuizQuestion{}, false
	}

	var options []string
	for _, line := range lines {
		if m := optionPattern.FindStringSubmatch(line); m != nil {
			options = append(options, strings.TrimSpace(m[1]))
		}
	}
	if len(options) != domain.OptionCount {
		return domain.QuizQuestion{}, false
	}

	correct := 0
	if rest, found := p.findAfterMarker(lines, p.answerMarkers); found {
		if idx, ok := answerIndex(rest); ok {
			correct = idx
		} else if p.strict {
			return domain.QuizQuestion{}, false
		}
	} else if p.strict {
		return domain.QuizQuestion{}, false
	}

	q, err := domain.NewQuizQuestion(question, options, correct)
	if err != nil {
		return domain.QuizQuestion{}, false
	}
	return q, true
}

// findAfterMarker returns the trimmed text following the first marker found in
// the first line that contains any marker.
func (p *Parser) findAfterMarker(lines []string, markers []string) (string, bool) {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, marker := range markers {
			if idx := strings.Index(lower, marker); idx >= 0 {
				// Lowercasing can change byte lengths, so map the offset back onto the original line.
				start := byteOffset(line, utf8.RuneCountInString(lower[:idx+len(marker)]))
				return strings.TrimSpace(line[start:]), true
			}
		}
	}
	return "", false
}

// answerIndex finds the first standalone letter A-D in s, e.g. "B", "[c]" or "B) Lyon".
func answerIndex(s string) (int, bool) {
	runes := []rune(s)
	for i, r := range runes {
		upper := unicode.ToUpper(r)
		if upper < 'A' || upper > 'D' {
			continue
		}
		if i > 0 && unicode.IsLetter(runes[i-1]) {
			continue
		}
		if i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
			continue
		}
		return int(upper - 'A'), true
	}
	return 0, false
}

func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func byteOffset(s string, runeCount int) int {
	n := 0
	for i := range s {
		if n == runeCount {
			return i
		}
		n++
	}
	return len(s)
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
