package quiz

import (
	"regexp"
	"strings"

	"tasktamer/internal/domain/entity"
)

var (
	// answerWord strips the word "answer" from a correct-letter line so
	// its capital A cannot be mistaken for option A.
	answerWord = regexp.MustCompile(`(?i)answer`)

	// optionLetter matches a standalone option letter, skipping letters
	// embedded in words.
	optionLetter = regexp.MustCompile(`\b([A-D])\b`)
)

// parsePipelineQuestions parses the NLP pipeline's quiz output. Each
// question is a blank-line-separated block: question text on the first
// line, four options prefixed "A. " through "D. ", and optionally a line
// marking the correct letter. Blocks that don't fit the shape are
// skipped; a fully unusable response yields nil so the caller falls back.
func parsePipelineQuestions(raw string, limit int) []entity.QuizQuestion {
	var questions []entity.QuizQuestion

	for _, block := range strings.Split(raw, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")
		if len(lines) < 5 {
			continue
		}

		question := strings.TrimSpace(lines[0])
		options := make([]string, 0, 4)
		for _, line := range lines[1:5] {
			line = strings.TrimSpace(line)
			for _, prefix := range [4]string{"A. ", "B. ", "C. ", "D. "} {
				if strings.HasPrefix(line, prefix) {
					line = line[len(prefix):]
					break
				}
			}
			options = append(options, line)
		}

		correct := 0
		for _, line := range lines {
			idx := strings.Index(strings.ToLower(line), "correct")
			if idx < 0 {
				continue
			}
			tail := answerWord.ReplaceAllString(line[idx+len("correct"):], "")
			if m := optionLetter.FindStringSubmatch(tail); m != nil {
				correct = strings.Index("ABCD", m[1])
			}
			break
		}

		q := entity.QuizQuestion{
			Question: question,
			Options:  options,
			Answer:   options[correct],
		}
		if err := q.Validate(); err != nil {
			continue
		}
		questions = append(questions, q)
		if len(questions) == limit {
			break
		}
	}
	return questions
}
