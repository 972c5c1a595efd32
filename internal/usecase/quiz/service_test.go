package quiz

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const passage = "Task management is essential for productivity in daily work. " +
	"Breaking complex tasks into smaller steps helps make them more manageable. " +
	"The Pomodoro Technique suggests working in focused intervals of twenty five minutes. " +
	"Time blocking schedules specific activities during designated time slots. " +
	"Prioritization helps categorize tasks by urgency and importance every day. " +
	"Regular reviews of your task list help ensure steady progress toward goals. " +
	"Digital tools can enhance task management with reminders and organization features."

func TestGenerate_ExactCount(t *testing.T) {
	svc := NewService(nil, 10)

	questions := svc.Generate(context.Background(), passage, 3)
	if len(questions) != 3 {
		t.Fatalf("Generate() returned %d questions, want 3", len(questions))
	}

	for i, q := range questions {
		if err := q.Validate(); err != nil {
			t.Errorf("question %d invalid: %v", i, err)
		}
		if !strings.HasPrefix(q.Question, questionPrefix) {
			t.Errorf("question %d missing prefix: %q", i, q.Question)
		}
		if !strings.Contains(q.Question, blankMarker) {
			t.Errorf("question %d missing blank marker: %q", i, q.Question)
		}
		if !q.Degraded {
			t.Errorf("question %d should be flagged degraded (placeholder distractors)", i)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	svc := NewService(nil, 10)

	first := svc.Generate(context.Background(), passage, 3)
	second := svc.Generate(context.Background(), passage, 3)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Generate() not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerate_CountReset(t *testing.T) {
	svc := NewService(nil, 5)

	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"zero resets to default", 0, DefaultQuestions},
		{"negative resets to default", -2, DefaultQuestions},
		{"above max resets to default", 6, DefaultQuestions},
		{"in range honored", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := svc.Generate(context.Background(), passage, tt.requested)
			if len(questions) != tt.want {
				t.Errorf("Generate(n=%d) returned %d questions, want %d", tt.requested, len(questions), tt.want)
			}
		})
	}
}

func TestGenerate_PadsFromSamplePool(t *testing.T) {
	svc := NewService(nil, 10)

	// One short sentence yields no blank questions; the pool fills in.
	questions := svc.Generate(context.Background(), "Too short.", 3)
	if len(questions) != 3 {
		t.Fatalf("Generate() returned %d questions, want 3 from sample pool", len(questions))
	}
	if diff := cmp.Diff(sampleQuestions[:3], questions); diff != "" {
		t.Errorf("padded questions mismatch (-want +got):\n%s", diff)
	}
}

func TestBlankQuestion(t *testing.T) {
	tests := []struct {
		name         string
		sentence     string
		wantOK       bool
		wantAnswer   string
		wantQuestion string
	}{
		{
			name:         "five words blanks the middle",
			sentence:     "one two three four five.",
			wantOK:       true,
			wantAnswer:   "three",
			wantQuestion: "Fill in the blank: one two _____ four five.",
		},
		{
			name:       "four words never blanks the last",
			sentence:   "alpha beta gamma delta.",
			wantOK:     true,
			wantAnswer: "gamma",
		},
		{
			name:     "three words rejected",
			sentence: "much too short.",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := blankQuestion(tt.sentence)
			if ok != tt.wantOK {
				t.Fatalf("blankQuestion(%q) ok = %v, want %v", tt.sentence, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if q.Answer != tt.wantAnswer {
				t.Errorf("answer = %q, want %q", q.Answer, tt.wantAnswer)
			}
			if tt.wantQuestion != "" && q.Question != tt.wantQuestion {
				t.Errorf("question = %q, want %q", q.Question, tt.wantQuestion)
			}
		})
	}
}

func TestParsePipelineQuestions(t *testing.T) {
	raw := "What technique uses focused intervals?\n" +
		"A. Pomodoro Technique\n" +
		"B. Time blocking\n" +
		"C. Eisenhower Matrix\n" +
		"D. Task batching\n" +
		"The correct answer is A\n" +
		"\n" +
		"garbage block without options"

	questions := parsePipelineQuestions(raw, 5)
	if len(questions) != 1 {
		t.Fatalf("parsed %d questions, want 1", len(questions))
	}
	q := questions[0]
	if q.Answer != "Pomodoro Technique" {
		t.Errorf("answer = %q, want %q", q.Answer, "Pomodoro Technique")
	}
	if q.Degraded {
		t.Error("pipeline question should not be flagged degraded")
	}
	if err := q.Validate(); err != nil {
		t.Errorf("parsed question invalid: %v", err)
	}
}

func TestSynthesizeShortSampleLeavesShortfall(t *testing.T) {
	// Six sentences, two questions: stride 2 samples sentences 0 and 2.
	// Sentence 2 is too short to blank; the sampler must leave a
	// shortfall for padding rather than slide on to sentence 4.
	content := "Deep work sessions require uninterrupted blocks of focused time. " +
		"Planning the weekly review keeps commitments visible and honest. " +
		"Too short here. " +
		"Writing down open loops clears mental space for real work. " +
		"Batching similar errands saves substantial transition time overall. " +
		"A shutdown ritual marks the clean end of the working day."

	svc := NewService(nil, 10)
	questions := svc.synthesize(content, 2)

	if len(questions) != 1 {
		t.Fatalf("synthesized %d questions, want 1 (short sample dropped, not substituted)", len(questions))
	}
	if strings.Contains(questions[0].Question, "Batching") {
		t.Errorf("question %q drawn from beyond the sampled sentences", questions[0].Question)
	}
	if !strings.Contains(questions[0].Question, "Deep work") {
		t.Errorf("question %q should come from the first sampled sentence", questions[0].Question)
	}
}

func TestParsePipelineQuestions_CorrectLetterMarkers(t *testing.T) {
	tests := []struct {
		name       string
		marker     string
		wantAnswer string
	}{
		// "Answer" carries a capital A; the scan must not read it as
		// option A.
		{"colon form", "Correct Answer: B", "Time blocking"},
		{"prose form", "The correct answer is C", "Eisenhower Matrix"},
		{"parenthesized", "Correct: (D)", "Task batching"},
		{"bare letter", "Correct Answer B", "Time blocking"},
		{"no marker defaults to first option", "", "Pomodoro Technique"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := "Which technique fits 25-minute focus intervals?\n" +
				"A. Pomodoro Technique\n" +
				"B. Time blocking\n" +
				"C. Eisenhower Matrix\n" +
				"D. Task batching\n" +
				tt.marker

			if tt.marker == "" {
				raw = strings.TrimRight(raw, "\n")
			}
			questions := parsePipelineQuestions(raw, 1)
			if len(questions) != 1 {
				t.Fatalf("parsed %d questions, want 1", len(questions))
			}
			if got := questions[0].Answer; got != tt.wantAnswer {
				t.Errorf("answer = %q, want %q", got, tt.wantAnswer)
			}
		})
	}
}

func TestParsePipelineQuestions_Unusable(t *testing.T) {
	if got := parsePipelineQuestions("no structure here at all", 3); got != nil {
		t.Errorf("parsePipelineQuestions() = %v, want nil for unusable input", got)
	}
}

// fakePipeline returns a canned quiz response.
type fakePipeline struct {
	results []string
	err     error
}

func (f *fakePipeline) Run(_ context.Context, _ string, _ []string) ([]string, error) {
	return f.results, f.err
}
func (f *fakePipeline) Available() bool { return true }
func (f *fakePipeline) Name() string    { return "fake" }

func TestGenerate_PipelinePreferred(t *testing.T) {
	raw := "Which feature creates summaries?\n" +
		"A. Summarizer\n" +
		"B. Quiz\n" +
		"C. Breakdown\n" +
		"D. Locator\n" +
		"Correct: A"
	svc := NewService(&fakePipeline{results: []string{raw}}, 10)

	questions := svc.Generate(context.Background(), passage, 1)
	if len(questions) != 1 {
		t.Fatalf("Generate() returned %d questions, want 1", len(questions))
	}
	if questions[0].Answer != "Summarizer" {
		t.Errorf("answer = %q, want pipeline-provided answer", questions[0].Answer)
	}
}

func TestGenerate_PipelineGarbageFallsBack(t *testing.T) {
	svc := NewService(&fakePipeline{results: []string{"not a quiz"}}, 10)

	questions := svc.Generate(context.Background(), passage, 3)
	if len(questions) != 3 {
		t.Fatalf("Generate() returned %d questions, want 3 from fallback", len(questions))
	}
	for i, q := range questions {
		if !q.Degraded {
			t.Errorf("fallback question %d should be flagged degraded", i)
		}
	}
}

func TestSamplePoolIsValid(t *testing.T) {
	for i, q := range sampleQuestions {
		if err := q.Validate(); err != nil {
			t.Errorf("sample question %d invalid: %v", i, err)
		}
	}
	if len(sampleQuestions) == 0 {
		t.Error("sample pool must not be empty")
	}
}
