package quiz

import (
	"math/rand"

	"tasktamer/internal/domain/entity"
)

// FormattedQuestion is a question prepared for presentation or export:
// options in randomized order with the correct option's letter computed.
type FormattedQuestion struct {
	Question      string
	Options       []string
	CorrectLetter string
	Answer        string
	Degraded      bool
}

// Format shuffles a question's options and assigns the correct letter.
// The random source is injected so presentation randomness stays isolated
// from the deterministic generation path; each call produces a fresh
// shuffle. Duplicate option texts are possible and the first match wins,
// matching the scoring rule that compares option text to the answer.
func Format(q entity.QuizQuestion, rng *rand.Rand) FormattedQuestion {
	options := make([]string, len(q.Options))
	copy(options, q.Options)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	letter := "A"
	for i, opt := range options {
		if opt == q.Answer {
			letter = string(rune('A' + i))
			break
		}
	}

	return FormattedQuestion{
		Question:      q.Question,
		Options:       options,
		CorrectLetter: letter,
		Answer:        q.Answer,
		Degraded:      q.Degraded,
	}
}

// FormatAll shuffles every question with the same random source.
func FormatAll(questions []entity.QuizQuestion, rng *rand.Rand) []FormattedQuestion {
	formatted := make([]FormattedQuestion, len(questions))
	for i, q := range questions {
		formatted[i] = Format(q, rng)
	}
	return formatted
}
