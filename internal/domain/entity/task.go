package entity

import "time"

// StepList is an ordered sequence of imperative task steps.
// Order is significant: it is the intended execution order.
type StepList []string

// IsEmpty reports whether the list has no steps.
func (s StepList) IsEmpty() bool { return len(s) == 0 }

// ScheduledStep pairs a task step with a coarse calendar assignment.
type ScheduledStep struct {
	Step     string
	Date     time.Time
	TimeSlot string
	Duration time.Duration
}
