// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as QuizQuestion and QuizSession,
// along with their lifecycle rules and domain-specific errors.
package entity

import "fmt"

// QuizQuestion represents a single multiple-choice quiz item.
// Exactly one of Options matches Answer; the other three are distractors.
type QuizQuestion struct {
	// Question is the prompt shown to the user, e.g.
	// "Fill in the blank: Task management is _____ for productivity."
	Question string

	// Options holds exactly four candidate answers in presentation order.
	// Duplicates are possible when a distractor collides with the answer;
	// uniqueness is intentionally not enforced.
	Options []string

	// Answer is the correct option text. Invariant: Answer is always a
	// member of Options.
	Answer string

	// Degraded is true when the distractors are the fixed placeholder
	// strings produced by the heuristic synthesizer rather than real
	// alternatives from the NLP pipeline. The UI uses this to label the
	// question as degraded-mode output.
	Degraded bool
}

// Validate checks the QuizQuestion invariants.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return &ValidationError{Field: "question", Message: "question text is required"}
	}
	if len(q.Options) != 4 {
		return &ValidationError{Field: "options", Message: fmt.Sprintf("expected 4 options, got %d", len(q.Options))}
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return &ValidationError{Field: "answer", Message: "answer must be one of the options"}
}

// SessionState describes the lifecycle phase of a QuizSession.
type SessionState int

const (
	// SessionNotStarted is the initial state before any quiz is generated.
	SessionNotStarted SessionState = iota
	// SessionInProgress means questions exist and answers may be recorded.
	SessionInProgress
	// SessionCompleted means the final answer was submitted or the quiz
	// was ended explicitly. No further answers are accepted.
	SessionCompleted
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case SessionNotStarted:
		return "not_started"
	case SessionInProgress:
		return "in_progress"
	case SessionCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// AnswerRecord captures one submitted answer.
type AnswerRecord struct {
	QuestionIdx    int
	SelectedAnswer string
	IsCorrect      bool
}

// QuizSession holds the quiz state for a single user session.
// It is owned by exactly one session and is never shared, so it carries
// no locking of its own.
//
// Lifecycle: NotStarted -> InProgress (on Start) -> Completed (on the
// final answer or End); Reset returns to NotStarted from any state.
type QuizSession struct {
	Questions   []QuizQuestion
	UserAnswers []AnswerRecord

	state SessionState
	score int
}

// NewQuizSession creates an empty session in the NotStarted state.
func NewQuizSession() *QuizSession {
	return &QuizSession{state: SessionNotStarted}
}

// State returns the current lifecycle state.
func (s *QuizSession) State() SessionState { return s.state }

// Start installs a freshly generated question set and moves the session
// to InProgress. Any previously recorded answers are discarded.
func (s *QuizSession) Start(questions []QuizQuestion) error {
	if len(questions) == 0 {
		return &ValidationError{Field: "questions", Message: "cannot start a quiz with no questions"}
	}
	s.Questions = questions
	s.UserAnswers = nil
	s.score = 0
	s.state = SessionInProgress
	return nil
}

// RecordAnswer records the user's choice for the question at idx.
// It is valid only while the session is InProgress. Recording is
// idempotent per question index: re-submitting an already answered
// question neither double-counts nor changes the stored record.
// Answering the last unanswered question completes the session.
func (s *QuizSession) RecordAnswer(idx int, selected string) (bool, error) {
	if s.state != SessionInProgress {
		return false, fmt.Errorf("%w: session is %s", ErrQuizNotInProgress, s.state)
	}
	if idx < 0 || idx >= len(s.Questions) {
		return false, fmt.Errorf("%w: index %d of %d questions", ErrQuestionIndex, idx, len(s.Questions))
	}
	for _, rec := range s.UserAnswers {
		if rec.QuestionIdx == idx {
			return rec.IsCorrect, nil
		}
	}

	correct := selected == s.Questions[idx].Answer
	s.UserAnswers = append(s.UserAnswers, AnswerRecord{
		QuestionIdx:    idx,
		SelectedAnswer: selected,
		IsCorrect:      correct,
	})
	if correct {
		s.score++
	}
	if len(s.UserAnswers) == len(s.Questions) {
		s.state = SessionCompleted
	}
	return correct, nil
}

// End moves the session to Completed regardless of how many answers
// were recorded.
func (s *QuizSession) End() {
	if s.state == SessionInProgress {
		s.state = SessionCompleted
	}
}

// Reset discards all quiz state and returns to NotStarted.
func (s *QuizSession) Reset() {
	s.Questions = nil
	s.UserAnswers = nil
	s.score = 0
	s.state = SessionNotStarted
}

// Score returns the number of correct answers and the score as a
// percentage of the total question count. An empty session scores (0, 0).
func (s *QuizSession) Score() (int, float64) {
	if len(s.Questions) == 0 {
		return 0, 0
	}
	return s.score, float64(s.score) / float64(len(s.Questions)) * 100
}

// Feedback returns a study-advice message keyed off the score percentage.
func (s *QuizSession) Feedback() string {
	_, pct := s.Score()
	switch {
	case pct >= 90:
		return "Excellent! You have a strong understanding of the material."
	case pct >= 75:
		return "Good job! You have a solid grasp of most concepts."
	case pct >= 60:
		return "Not bad! You understand the basics but might want to review some areas."
	case pct >= 40:
		return "You're making progress! More study is recommended to improve your understanding."
	default:
		return "You should spend more time studying this material to improve your understanding."
	}
}
