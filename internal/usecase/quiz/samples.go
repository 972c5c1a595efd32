package quiz

import "tasktamer/internal/domain/entity"

// sampleQuestions is the static pool used to pad short quizzes. The
// questions are about the product itself, not the user's content.
var sampleQuestions = []entity.QuizQuestion{
	{
		Question: "What is the primary purpose of TaskTamer?",
		Options: []string{
			"To break down complex tasks into manageable steps",
			"To manage project deadlines",
			"To assign tasks to team members",
			"To track time spent on tasks",
		},
		Answer: "To break down complex tasks into manageable steps",
	},
	{
		Question: "Which feature helps test your understanding of content?",
		Options:  []string{"Quiz", "Breakdown", "Summary", "Timeline"},
		Answer:   "Quiz",
	},
	{
		Question: "What is the main benefit of breaking down tasks?",
		Options: []string{
			"It makes complex tasks more manageable",
			"It automatically completes the tasks for you",
			"It creates a visual timeline",
			"It assigns tasks to team members",
		},
		Answer: "It makes complex tasks more manageable",
	},
	{
		Question: "How does TaskTamer help with learning?",
		Options: []string{
			"By creating quizzes to test your understanding",
			"By automatically completing research for you",
			"By connecting you with tutors",
			"By providing pre-written essays",
		},
		Answer: "By creating quizzes to test your understanding",
	},
	{
		Question: "Which of these is NOT a feature of TaskTamer?",
		Options: []string{
			"Video conferencing with team members",
			"Task breakdown",
			"Document summarization",
			"Knowledge quizzes",
		},
		Answer: "Video conferencing with team members",
	},
}
