// Package quiz provides HTTP handlers for the quiz lifecycle: generation,
// answering, results, export, and reset. All state lives on the session.
package quiz

// GenerateRequest is the JSON body for POST /quiz. Exactly one of Content
// or URL should be set; Content wins when both are present.
type GenerateRequest struct {
	Content      string `json:"content"`
	URL          string `json:"url"`
	NumQuestions int    `json:"num_questions"`
}

// QuestionDTO is one question as presented to the client. The correct
// answer is never included; it stays on the server session.
type QuestionDTO struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Degraded bool     `json:"degraded"`
}

// GenerateResponse is the JSON reply for POST /quiz.
type GenerateResponse struct {
	Questions []QuestionDTO `json:"questions"`
	Count     int           `json:"count"`
}

// AnswerRequest is the JSON body for POST /quiz/answer.
type AnswerRequest struct {
	QuestionIdx int    `json:"question_idx"`
	Selected    string `json:"selected"`
}

// AnswerResponse is the JSON reply for POST /quiz/answer.
type AnswerResponse struct {
	Correct   bool `json:"correct"`
	Score     int  `json:"score"`
	Answered  int  `json:"answered"`
	Total     int  `json:"total"`
	Completed bool `json:"completed"`
}

// ResultsResponse is the JSON reply for GET /quiz/results.
type ResultsResponse struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Feedback   string  `json:"feedback"`
	State      string  `json:"state"`
}
