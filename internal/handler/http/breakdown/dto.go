// Package breakdown provides HTTP handlers for the task-breakdown
// endpoints: decomposition, next-action tips, and coarse scheduling.
package breakdown

// BreakRequest is the JSON body for POST /breakdown. Exactly one of Task
// or URL should be set; Task wins when both are present.
type BreakRequest struct {
	Task string `json:"task"`
	URL  string `json:"url"`
}

// BreakResponse is the JSON reply for POST /breakdown.
type BreakResponse struct {
	Steps    []string `json:"steps"`
	Degraded bool     `json:"degraded"`
}

// ScheduleRequest is the JSON body for POST /breakdown/schedule.
// Steps defaults to the session's last breakdown when omitted.
// StartDate is an optional YYYY-MM-DD date; it defaults to today.
type ScheduleRequest struct {
	Steps     []string `json:"steps"`
	StartDate string   `json:"start_date"`
}

// ScheduledEntry is one step with its calendar assignment.
type ScheduledEntry struct {
	Step            string `json:"step"`
	Date            string `json:"date"` // YYYY-MM-DD
	TimeSlot        string `json:"time_slot"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ScheduleResponse is the JSON reply for POST /breakdown/schedule.
type ScheduleResponse struct {
	Schedule []ScheduledEntry `json:"schedule"`
}

// SuggestRequest is the JSON body for POST /breakdown/suggest.
type SuggestRequest struct {
	Step string `json:"step"`
}

// SuggestResponse is the JSON reply for POST /breakdown/suggest.
type SuggestResponse struct {
	Tip string `json:"tip"`
}
