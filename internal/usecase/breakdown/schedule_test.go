package breakdown

import (
	"testing"
	"time"

	"tasktamer/internal/domain/entity"
)

func TestSchedule_SlotAndDateCycling(t *testing.T) {
	steps := entity.StepList{
		"Research the topic.",
		"Write the draft.",
		"Organize the material.",
		"Review the result.",
		"Finalize the document.",
		"Meet the group.",
	}
	start := time.Date(2026, time.March, 2, 15, 30, 0, 0, time.UTC)

	scheduled := Schedule(steps, start)
	if len(scheduled) != len(steps) {
		t.Fatalf("Schedule() returned %d entries, want %d", len(scheduled), len(steps))
	}

	day0 := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	day1 := day0.AddDate(0, 0, 1)

	wantSlots := []string{
		timeSlots[0], timeSlots[1], timeSlots[2], timeSlots[3],
		timeSlots[0], timeSlots[1],
	}
	wantDates := []time.Time{day0, day0, day0, day0, day1, day1}

	for i, s := range scheduled {
		if s.Step != steps[i] {
			t.Errorf("entry %d step = %q, want %q", i, s.Step, steps[i])
		}
		if s.TimeSlot != wantSlots[i] {
			t.Errorf("entry %d slot = %q, want %q", i, s.TimeSlot, wantSlots[i])
		}
		if !s.Date.Equal(wantDates[i]) {
			t.Errorf("entry %d date = %v, want %v", i, s.Date, wantDates[i])
		}
	}
}

func TestSchedule_DurationEstimates(t *testing.T) {
	tests := []struct {
		step string
		want time.Duration
	}{
		{"Research the topic.", 2 * time.Hour},
		{"Write the draft.", 90 * time.Minute},
		{"Organize the material.", time.Hour},
		{"Review the result.", 45 * time.Minute},
		{"Meet the group.", defaultDuration},
	}
	for _, tt := range tests {
		if got := estimateDuration(tt.step); got != tt.want {
			t.Errorf("estimateDuration(%q) = %v, want %v", tt.step, got, tt.want)
		}
	}
}

func TestSchedule_Empty(t *testing.T) {
	if got := Schedule(nil, time.Now()); len(got) != 0 {
		t.Errorf("Schedule(nil) = %v, want empty", got)
	}
}
