package quiz

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"tasktamer/internal/domain/entity"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatText = "text"
)

// exportedQuestion is the JSON export shape.
type exportedQuestion struct {
	QuestionNumber    int               `json:"question_number"`
	Question          string            `json:"question"`
	Options           map[string]string `json:"options"`
	CorrectAnswer     string            `json:"correct_answer"`
	CorrectAnswerText string            `json:"correct_answer_text"`
}

// Export renders questions in the given format. Option order is
// re-randomized on every call, so consecutive exports of the same quiz
// differ in option placement but never in content.
func Export(questions []entity.QuizQuestion, format string, rng *rand.Rand) (string, error) {
	if len(questions) == 0 {
		return "", ErrNoQuestions
	}

	formatted := FormatAll(questions, rng)

	switch format {
	case FormatCSV:
		return exportCSV(formatted)
	case FormatJSON:
		return exportJSON(formatted)
	case FormatText:
		return exportText(formatted), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func exportCSV(questions []FormattedQuestion) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Question Number", "Question", "Option A", "Option B",
		"Option C", "Option D", "Correct Answer", "Correct Answer Text"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, q := range questions {
		row := []string{
			strconv.Itoa(i + 1),
			q.Question,
			q.Options[0],
			q.Options[1],
			q.Options[2],
			q.Options[3],
			q.CorrectLetter,
			q.Answer,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.String(), nil
}

func exportJSON(questions []FormattedQuestion) (string, error) {
	exported := make([]exportedQuestion, len(questions))
	for i, q := range questions {
		exported[i] = exportedQuestion{
			QuestionNumber: i + 1,
			Question:       q.Question,
			Options: map[string]string{
				"A": q.Options[0],
				"B": q.Options[1],
				"C": q.Options[2],
				"D": q.Options[3],
			},
			CorrectAnswer:     q.CorrectLetter,
			CorrectAnswerText: q.Answer,
		}
	}

	data, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal quiz JSON: %w", err)
	}
	return string(data), nil
}

func exportText(questions []FormattedQuestion) string {
	var b strings.Builder
	b.WriteString("QUIZ QUESTIONS AND ANSWERS\n\n")

	for i, q := range questions {
		fmt.Fprintf(&b, "Question %d: %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "%c) %s\n", 'A'+j, opt)
		}
		fmt.Fprintf(&b, "Correct Answer: %s (%s)\n\n", q.CorrectLetter, q.Answer)
	}
	return b.String()
}
