package metrics

import "time"

// Tool label values for transformation metrics.
const (
	ToolBreakdown = "breakdown"
	ToolSummary   = "summary"
	ToolQuiz      = "quiz"
)

// RecordTransformation records one content transformation.
// pipelineUsed distinguishes NLP pipeline results from heuristic
// fallbacks, which is the main signal for pipeline health dashboards.
func RecordTransformation(tool string, pipelineUsed bool, duration time.Duration) {
	source := "heuristic"
	if pipelineUsed {
		source = "pipeline"
	}
	TransformationsTotal.WithLabelValues(tool, source).Inc()
	TransformationDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordDegradedQuiz records a quiz generated with placeholder
// distractors.
func RecordDegradedQuiz() {
	DegradedQuizzesTotal.Inc()
}

// RecordQuizExport records a quiz export in the given format.
func RecordQuizExport(format string) {
	QuizExportsTotal.WithLabelValues(format).Inc()
}

// UpdateSessionsActive updates the live session gauge. Called after
// session creation and after each purge run.
func UpdateSessionsActive(count int) {
	SessionsActive.Set(float64(count))
}

// RecordSessionsPurged records sessions removed by the expiry job.
func RecordSessionsPurged(count int) {
	if count > 0 {
		SessionsPurgedTotal.Add(float64(count))
	}
}

// RecordContentFetchSuccess records a successful URL content fetch.
func RecordContentFetchSuccess(duration time.Duration, size int) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
	ContentFetchSize.Observe(float64(size))
}

// RecordContentFetchFailed records a failed URL content fetch.
func RecordContentFetchFailed(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}
