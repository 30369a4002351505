package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_SurfacesAdvanceReminderOncePerDay(t *testing.T) {
	c := NewClassifier(10 * time.Minute)
	tracker := NewTracker()
	schedules := []Schedule{{ID: "med-1", SubjectID: "patient-1", Name: "Metformin", Times: []string{"08:00"}, Active: true}}

	var surfaced []Reminder
	for minute := 50; minute < 60; minute++ {
		reminders := c.Classify(schedules, clock(7, minute), nil).Reminders()
		surfaced = append(surfaced, tracker.Surface("patient-1", reminders)...)
	}

	require.Len(t, surfaced, 1)
	assert.Equal(t, KindAdvance, surfaced[0].Kind)
	assert.Equal(t, "08:00", surfaced[0].Time)
	assert.Equal(t, "2026-03-14", surfaced[0].Date)
}

func TestTracker_DueReminderFiresAtSlotMinute(t *testing.T) {
	c := NewClassifier(10 * time.Minute)
	tracker := NewTracker()
	schedules := []Schedule{{ID: "med-1", Times: []string{"08:00"}, Active: true}}

	first := tracker.Surface("patient-1", c.Classify(schedules, clock(7, 55), nil).Reminders())
	require.Len(t, first, 1)
	assert.Equal(t, KindAdvance, first[0].Kind)

	atSlot := tracker.Surface("patient-1", c.Classify(schedules, clock(8, 0), nil).Reminders())
	require.Len(t, atSlot, 1)
	assert.Equal(t, KindDue, atSlot[0].Kind)

	again := tracker.Surface("patient-1", c.Classify(schedules, clock(8, 0), nil).Reminders())
	assert.Empty(t, again)
}

func TestTracker_TakenSlotRaisesNothing(t *testing.T) {
	c := NewClassifier(10 * time.Minute)
	tracker := NewTracker()
	schedules := []Schedule{{ID: "med-1", Times: []string{"08:00"}, Active: true}}
	taken := TakenSet{}
	taken.Add(DoseKey{ScheduleID: "med-1", Date: "2026-03-14", Time: "08:00"})

	got := tracker.Surface("patient-1", c.Classify(schedules, clock(7, 55), taken).Reminders())

	assert.Empty(t, got)
}

func TestTracker_SubjectsAreIsolated(t *testing.T) {
	c := NewClassifier(10 * time.Minute)
	tracker := NewTracker()
	schedules := []Schedule{{ID: "med-1", Times: []string{"08:00"}, Active: true}}
	reminders := c.Classify(schedules, clock(7, 55), nil).Reminders()

	assert.Len(t, tracker.Surface("patient-1", reminders), 1)
	assert.Len(t, tracker.Surface("patient-2", reminders), 1)
	assert.Empty(t, tracker.Surface("patient-1", reminders))
	assert.Equal(t, 2, tracker.Subjects())
}

func TestTracker_NewDayRearms(t *testing.T) {
	c := NewClassifier(10 * time.Minute)
	tracker := NewTracker()
	schedules := []Schedule{{ID: "med-1", Times: []string{"08:00"}, Active: true}}

	today := clock(7, 55)
	tomorrow := today.AddDate(0, 0, 1)

	assert.Len(t, tracker.Surface("p", c.Classify(schedules, today, nil).Reminders()), 1)
	assert.Len(t, tracker.Surface("p", c.Classify(schedules, tomorrow, nil).Reminders()), 1)

	removed := tracker.Prune(tomorrow.Format(DateLayout))
	assert.Equal(t, 1, removed)
}

func TestTracker_ReleaseKeepsRetainedTimes(t *testing.T) {
	c := NewClassifier(10 * time.Minute)
	tracker := NewTracker()
	schedules := []Schedule{{ID: "med-1", Times: []string{"08:00", "08:04"}, Active: true}}
	reminders := c.Classify(schedules, clock(7, 55), nil).Reminders()

	require.Len(t, tracker.Surface("p", reminders), 2)

	assert.Equal(t, 1, tracker.Release("p", "med-1", []string{"08:00"}))
	assert.Len(t, tracker.Surface("p", reminders), 1, "only the released slot resurfaces")

	assert.Equal(t, 0, tracker.Release("p", "med-2", nil))
	assert.Equal(t, 2, tracker.Release("p", "med-1", nil))
}
