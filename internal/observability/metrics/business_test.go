package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordTransformation(t *testing.T) {
	tests := []struct {
		name         string
		tool         string
		pipelineUsed bool
		duration     time.Duration
	}{
		{
			name:         "summary via pipeline",
			tool:         ToolSummary,
			pipelineUsed: true,
			duration:     120 * time.Millisecond,
		},
		{
			name:         "quiz via heuristic",
			tool:         ToolQuiz,
			pipelineUsed: false,
			duration:     3 * time.Millisecond,
		},
		{
			name:         "breakdown with zero duration",
			tool:         ToolBreakdown,
			pipelineUsed: false,
			duration:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordTransformation(tt.tool, tt.pipelineUsed, tt.duration)
			})
		})
	}
}

func TestRecordDegradedQuiz(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordDegradedQuiz()
	})
}

func TestRecordQuizExport(t *testing.T) {
	for _, format := range []string{"csv", "json", "text"} {
		assert.NotPanics(t, func() {
			RecordQuizExport(format)
		})
	}
}

func TestSessionMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		UpdateSessionsActive(42)
		RecordSessionsPurged(3)
		RecordSessionsPurged(0)
	})
}

func TestContentFetchMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordContentFetchSuccess(250*time.Millisecond, 4096)
		RecordContentFetchFailed(10 * time.Second)
	})
}

func TestRecordHTTPRequest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       string
		requestSize  int
		responseSize int
	}{
		{
			name:         "successful POST",
			method:       "POST",
			path:         "/summarize",
			status:       "200",
			requestSize:  512,
			responseSize: 1024,
		},
		{
			name:   "sizes omitted",
			method: "GET",
			path:   "/healthz",
			status: "200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordHTTPRequest(tt.method, tt.path, tt.status, 5*time.Millisecond, tt.requestSize, tt.responseSize)
			})
		})
	}
}
