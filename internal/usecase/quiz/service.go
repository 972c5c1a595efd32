// Package quiz synthesizes fill-in-the-blank multiple-choice questions
// from arbitrary text and exports them in CSV, JSON, and plain-text form.
package quiz

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"tasktamer/internal/domain/entity"
	"tasktamer/internal/observability/logging"
	"tasktamer/internal/usecase/transform"
	"tasktamer/internal/utils/text"
)

var (
	// ErrNoQuestions is returned when an export is requested before any
	// quiz has been generated.
	ErrNoQuestions = errors.New("no quiz questions available")
	// ErrUnknownFormat is returned for an unrecognized export format.
	ErrUnknownFormat = errors.New("unknown export format")
)

const (
	// DefaultQuestions is used when the requested count is out of range.
	DefaultQuestions = 3

	questionPrefix = "Fill in the blank: "
	blankMarker    = "_____"

	// minBlankWords is the minimum word count for a sentence to yield a
	// usable blank.
	minBlankWords = 4
)

// placeholderOptions are the fixed distractors of the heuristic
// synthesizer. Questions carrying them are flagged as degraded.
var placeholderOptions = [3]string{"Option A", "Option B", "Option C"}

// Service generates quiz questions, preferring the NLP pipeline when
// available and falling back to deterministic blank synthesis.
type Service struct {
	pipeline     transform.Pipeline
	maxQuestions int
}

// NewService creates a quiz service.
//
// Parameters:
//   - pipeline: optional NLP backend; may be nil or unavailable
//   - maxQuestions: upper bound for the requested question count
func NewService(pipeline transform.Pipeline, maxQuestions int) *Service {
	if maxQuestions < 1 {
		maxQuestions = DefaultQuestions
	}
	return &Service{pipeline: pipeline, maxQuestions: maxQuestions}
}

// Generate produces numQuestions quiz questions from content. Requests
// outside [1, maxQuestions] reset to the default of 3. The result is
// padded from a fixed pool of sample questions when the content does not
// yield enough, so callers may still receive fewer than requested only
// when the pool itself is exhausted.
func (s *Service) Generate(ctx context.Context, content string, numQuestions int) []entity.QuizQuestion {
	log := logging.WithRequestID(ctx, slog.Default())
	if numQuestions < 1 || numQuestions > s.maxQuestions {
		log.Warn("Requested question count out of range, using default",
			slog.Int("requested", numQuestions),
			slog.Int("max", s.maxQuestions),
			slog.Int("default", DefaultQuestions))
		numQuestions = DefaultQuestions
	}

	if result, err := transform.FirstResult(ctx, s.pipeline, transform.QuestionInstruction, content); err == nil {
		if questions := parsePipelineQuestions(result, numQuestions); len(questions) > 0 {
			log.Info("Quiz produced by NLP pipeline",
				slog.String("backend", s.pipeline.Name()),
				slog.Int("questions", len(questions)))
			return pad(questions, numQuestions)
		}
		log.Warn("NLP pipeline quiz output unusable, using heuristic fallback",
			slog.String("backend", s.pipeline.Name()))
	} else if s.pipeline != nil && s.pipeline.Available() {
		log.Warn("NLP pipeline quiz generation failed, using heuristic fallback",
			slog.String("backend", s.pipeline.Name()),
			slog.Any("error", err))
	}

	return pad(s.synthesize(content, numQuestions), numQuestions)
}

// synthesize builds blank questions from a deterministic systematic
// sample of the content's sentences. Given the same content and count it
// always selects the same sentences.
func (s *Service) synthesize(content string, numQuestions int) []entity.QuizQuestion {
	sentences := text.SplitSentences(content)
	if len(sentences) == 0 {
		return nil
	}

	stride := len(sentences) / (numQuestions + 1)
	if stride < 1 {
		stride = 1
	}

	// At most numQuestions sentences are sampled; ones that are too
	// short to blank leave a shortfall for the caller to pad, they are
	// not substituted by later sentences.
	var questions []entity.QuizQuestion
	for i, sampled := 0, 0; i < len(sentences) && sampled < numQuestions; i, sampled = i+stride, sampled+1 {
		if q, ok := blankQuestion(sentences[i]); ok {
			questions = append(questions, q)
		}
	}
	return questions
}

// blankQuestion removes the middle word of a sentence and turns it into a
// fill-in-the-blank question. Sentences under four words are rejected.
func blankQuestion(sentence string) (entity.QuizQuestion, bool) {
	words := strings.Fields(sentence)
	if len(words) < minBlankWords {
		return entity.QuizQuestion{}, false
	}

	// Middle word, but never the final one.
	idx := len(words) / 2
	if idx > len(words)-2 {
		idx = len(words) - 2
	}
	answer := words[idx]

	blanked := make([]string, len(words))
	copy(blanked, words)
	blanked[idx] = blankMarker

	return entity.QuizQuestion{
		Question: questionPrefix + strings.Join(blanked, " "),
		Options:  []string{answer, placeholderOptions[0], placeholderOptions[1], placeholderOptions[2]},
		Answer:   answer,
		Degraded: true,
	}, true
}

// pad tops up questions from the sample pool until the requested count is
// reached or the pool runs out.
func pad(questions []entity.QuizQuestion, want int) []entity.QuizQuestion {
	for i := 0; len(questions) < want && i < len(sampleQuestions); i++ {
		questions = append(questions, sampleQuestions[i])
	}
	return questions
}
