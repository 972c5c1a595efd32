package quiz

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tasktamer/internal/domain/entity"
)

func exportFixture() []entity.QuizQuestion {
	return []entity.QuizQuestion{
		{
			Question: "Fill in the blank: one two _____ four five.",
			Options:  []string{"three", "Option A", "Option B", "Option C"},
			Answer:   "three",
			Degraded: true,
		},
		{
			Question: "Which feature helps test your understanding of content?",
			Options:  []string{"Quiz", "Breakdown", "Summary", "Timeline"},
			Answer:   "Quiz",
		},
	}
}

func TestFormat_AnswerAlwaysPresent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	q := exportFixture()[0]

	for i := 0; i < 50; i++ {
		f := Format(q, rng)
		if len(f.Options) != 4 {
			t.Fatalf("formatted options = %d, want 4", len(f.Options))
		}
		idx := int(f.CorrectLetter[0] - 'A')
		if idx < 0 || idx > 3 || f.Options[idx] != q.Answer {
			t.Errorf("letter %s does not point at answer %q in %v", f.CorrectLetter, q.Answer, f.Options)
		}
	}
}

func TestFormat_PreservesOptionSet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := exportFixture()[1]

	f := Format(q, rng)
	got := append([]string(nil), f.Options...)
	want := append([]string(nil), q.Options...)
	sort.Strings(got)
	sort.Strings(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("option set changed by shuffle (-want +got):\n%s", diff)
	}
}

func TestExport_CSVRoundTrip(t *testing.T) {
	questions := exportFixture()
	out, err := Export(questions, FormatCSV, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Export(csv) error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parsing exported CSV: %v", err)
	}
	if len(records) != len(questions)+1 {
		t.Fatalf("CSV has %d records, want header + %d rows", len(records), len(questions))
	}

	wantHeader := []string{"Question Number", "Question", "Option A", "Option B",
		"Option C", "Option D", "Correct Answer", "Correct Answer Text"}
	if diff := cmp.Diff(wantHeader, records[0]); diff != "" {
		t.Errorf("CSV header mismatch (-want +got):\n%s", diff)
	}

	for i, q := range questions {
		row := records[i+1]
		if row[1] != q.Question {
			t.Errorf("row %d question = %q, want %q", i, row[1], q.Question)
		}
		letterIdx := int(row[6][0] - 'A')
		if row[2+letterIdx] != q.Answer {
			t.Errorf("row %d: letter %s option = %q, want answer %q", i, row[6], row[2+letterIdx], q.Answer)
		}
		if row[7] != q.Answer {
			t.Errorf("row %d answer text = %q, want %q", i, row[7], q.Answer)
		}

		gotOptions := append([]string(nil), row[2:6]...)
		wantOptions := append([]string(nil), q.Options...)
		sort.Strings(gotOptions)
		sort.Strings(wantOptions)
		if diff := cmp.Diff(wantOptions, gotOptions); diff != "" {
			t.Errorf("row %d option set mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestExport_JSONRoundTrip(t *testing.T) {
	questions := exportFixture()
	out, err := Export(questions, FormatJSON, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Export(json) error: %v", err)
	}

	var parsed []exportedQuestion
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("parsing exported JSON: %v", err)
	}
	if len(parsed) != len(questions) {
		t.Fatalf("JSON has %d entries, want %d", len(parsed), len(questions))
	}

	for i, q := range questions {
		e := parsed[i]
		if e.QuestionNumber != i+1 {
			t.Errorf("entry %d number = %d, want %d", i, e.QuestionNumber, i+1)
		}
		if e.Question != q.Question {
			t.Errorf("entry %d question = %q, want %q", i, e.Question, q.Question)
		}
		if e.Options[e.CorrectAnswer] != q.Answer {
			t.Errorf("entry %d: letter %s option = %q, want answer %q",
				i, e.CorrectAnswer, e.Options[e.CorrectAnswer], q.Answer)
		}
		if e.CorrectAnswerText != q.Answer {
			t.Errorf("entry %d answer text = %q, want %q", i, e.CorrectAnswerText, q.Answer)
		}
	}
}

func TestExport_Text(t *testing.T) {
	out, err := Export(exportFixture(), FormatText, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Export(text) error: %v", err)
	}

	if !strings.HasPrefix(out, "QUIZ QUESTIONS AND ANSWERS\n\n") {
		t.Errorf("text export missing title block:\n%s", out)
	}
	for _, want := range []string{"Question 1:", "Question 2:", "A) ", "D) ", "Correct Answer: "} {
		if !strings.Contains(out, want) {
			t.Errorf("text export missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "(three)") || !strings.Contains(out, "(Quiz)") {
		t.Errorf("text export missing answer texts:\n%s", out)
	}
}

func TestExport_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := Export(nil, FormatCSV, rng); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Export(no questions) error = %v, want ErrNoQuestions", err)
	}
	if _, err := Export(exportFixture(), "xml", rng); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Export(unknown format) error = %v, want ErrUnknownFormat", err)
	}
}
