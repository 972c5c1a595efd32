package breakdown

import (
	"strings"
	"time"

	"tasktamer/internal/domain/entity"
)

// timeSlots are the four daily working slots steps cycle through.
var timeSlots = [4]string{
	"Morning (9:00 AM)",
	"Midday (12:00 PM)",
	"Afternoon (3:00 PM)",
	"Evening (6:00 PM)",
}

// durationKeywords map step keywords to a coarse effort estimate.
var durationKeywords = []struct {
	keyword  string
	duration time.Duration
}{
	{"research", 2 * time.Hour},
	{"gather", 2 * time.Hour},
	{"analyze", 2 * time.Hour},
	{"write", 90 * time.Minute},
	{"create", 90 * time.Minute},
	{"develop", 90 * time.Minute},
	{"organize", time.Hour},
	{"plan", time.Hour},
	{"outline", time.Hour},
	{"review", 45 * time.Minute},
	{"finalize", 45 * time.Minute},
}

// defaultDuration is assigned when no keyword matches.
const defaultDuration = time.Hour

// Schedule assigns each step a calendar date, a time slot, and a duration
// estimate. Slots cycle through the four daily slots; the date advances
// one day every four steps, starting from start (normally the current
// date).
func Schedule(steps entity.StepList, start time.Time) []entity.ScheduledStep {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	scheduled := make([]entity.ScheduledStep, len(steps))
	for i, step := range steps {
		scheduled[i] = entity.ScheduledStep{
			Step:     step,
			Date:     day.AddDate(0, 0, i/len(timeSlots)),
			TimeSlot: timeSlots[i%len(timeSlots)],
			Duration: estimateDuration(step),
		}
	}
	return scheduled
}

func estimateDuration(step string) time.Duration {
	lower := strings.ToLower(step)
	for _, entry := range durationKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.duration
		}
	}
	return defaultDuration
}
